package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"philharmonic-tickets/internal/config"
	"philharmonic-tickets/internal/database"
	"philharmonic-tickets/internal/models"
	"philharmonic-tickets/internal/repositories"
	"philharmonic-tickets/internal/utils"
)

// Creates (or resets the password of) an admin account. There is no API
// endpoint that elevates a role, so the first admin is bootstrapped here.
func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

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

	userRepo := repositories.NewUserRepository(db.DB)

	passwordHash, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	existing, err := userRepo.GetByUsername(*username)
	if err == nil {
		if err := userRepo.UpdatePassword(existing.ID, passwordHash); err != nil {
			log.Fatal("Failed to update admin password:", err)
		}
		if existing.Role != models.RoleAdmin {
			if _, err := db.DB.Exec("UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2", models.RoleAdmin, existing.ID); err != nil {
				log.Fatal("Failed to promote user to admin:", err)
			}
		}
		fmt.Printf("Admin %q already existed; password reset (ID: %d)\n", *username, existing.ID)
		return
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		log.Fatal("Failed to look up admin user:", err)
	}

	user, err := userRepo.Create(&models.UserCreateRequest{
		Username:     *username,
		PasswordHash: passwordHash,
		FullName:     "Administrator",
		Role:         models.RoleAdmin,
	})
	if err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	fmt.Printf("Admin user created successfully!\n")
	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("User ID: %d\n", user.ID)
}
