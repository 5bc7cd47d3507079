package main

import (
	"fmt"
	"log"
	"net/http"

	"philharmonic-tickets/internal/config"
	"philharmonic-tickets/internal/database"
	"philharmonic-tickets/internal/handlers"
	"philharmonic-tickets/internal/middleware"
	"philharmonic-tickets/internal/repositories"
	"philharmonic-tickets/internal/services"

	"github.com/go-chi/chi/v5"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
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
	log.Println("Database connection established")

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db.DB)
	eventRepo := repositories.NewEventRepository(db.DB)
	orderRepo := repositories.NewOrderRepository(db.DB)

	// Initialize services
	tokenService := services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := services.NewAuthService(userRepo, tokenService)
	userService := services.NewUserService(userRepo)
	eventService := services.NewEventService(eventRepo)
	orderService := services.NewOrderService(orderRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	usersHandler := handlers.NewUsersHandler(userService)
	eventsHandler := handlers.NewEventsHandler(eventService)
	ordersHandler := handlers.NewOrdersHandler(orderService)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.CORS.AllowedOrigins

	// Initialize router
	r := chi.NewRouter()

	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CORSMiddleware(corsConfig))

	// Public routes
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	r.Get("/api/events", eventsHandler.List)
	r.Get("/api/events/{id}", eventsHandler.Get)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/api/users/me", usersHandler.Me)
		r.Put("/api/users/me", usersHandler.UpdateMe)

		r.Post("/api/orders", ordersHandler.Create)
		r.Get("/api/orders", ordersHandler.ListMine)
	})

	// Admin routes
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Use(middleware.RequireAdmin)

		r.Post("/events", eventsHandler.Create)
		r.Put("/events/{id}", eventsHandler.Update)
		r.Delete("/events/{id}", eventsHandler.Delete)

		r.Get("/orders", ordersHandler.ListAll)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"philharmonic-tickets"}`))
	})

	serverAddr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s (Environment: %s)", serverAddr, cfg.Server.Env)
	log.Fatal(http.ListenAndServe(serverAddr, r))
}
