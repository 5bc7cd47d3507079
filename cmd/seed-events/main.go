package main

import (
	"fmt"
	"log"
	"time"

	"philharmonic-tickets/internal/config"
	"philharmonic-tickets/internal/database"
	"philharmonic-tickets/internal/models"
	"philharmonic-tickets/internal/repositories"
)

// Seeds the catalog with a sample concert season for local development.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	eventRepo := repositories.NewEventRepository(db.DB)

	season := []models.EventCreateRequest{
		{
			Title:            "Beethoven Symphony No. 9",
			Description:      "Season opening gala with full chorus.",
			Date:             time.Date(2026, 9, 12, 19, 30, 0, 0, time.UTC),
			Price:            95.00,
			AvailableTickets: 400,
		},
		{
			Title:            "Mahler Symphony No. 2 \"Resurrection\"",
			Description:      "With the festival chorus and soloists.",
			Date:             time.Date(2026, 10, 3, 19, 30, 0, 0, time.UTC),
			Price:            85.00,
			AvailableTickets: 350,
		},
		{
			Title:            "An Evening of Chopin",
			Description:      "Solo piano recital: nocturnes, ballades and the second sonata.",
			Date:             time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC),
			Price:            45.00,
			AvailableTickets: 180,
		},
		{
			Title:            "Stravinsky: The Rite of Spring",
			Description:      "Paired with Debussy's La Mer.",
			Date:             time.Date(2026, 11, 7, 19, 30, 0, 0, time.UTC),
			Price:            70.00,
			AvailableTickets: 320,
		},
		{
			Title:            "Handel's Messiah",
			Description:      "Annual holiday performance.",
			Date:             time.Date(2026, 12, 19, 18, 0, 0, 0, time.UTC),
			Price:            60.00,
			AvailableTickets: 500,
		},
	}

	for i := range season {
		event, err := eventRepo.Create(&season[i])
		if err != nil {
			log.Fatalf("Failed to seed event %q: %v", season[i].Title, err)
		}
		fmt.Printf("Created event %d: %s (%d tickets at %.2f)\n",
			event.ID, event.Title, event.AvailableTickets, event.Price)
	}

	fmt.Printf("Seeded %d events\n", len(season))
}
