package main

import (
	"fmt"
	"log"

	"eventify/internal/config"
	"eventify/internal/database"
	"eventify/internal/handlers"
	"eventify/internal/repositories"
	"eventify/internal/services"

	_ "eventify/docs"
)

// @title Eventify API
// @version 1.0
// @description Event ticketing backend: auth, event CRUD, seat-limited booking, gate check-in, broadcast messaging and a canned-response assistant.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{Path: cfg.Database.Path})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	log.Println("Database ready at", cfg.Database.Path)

	userRepo := repositories.NewUserRepository(db.DB)
	eventRepo := repositories.NewEventRepository(db.DB)
	bookingRepo := repositories.NewBookingRepository(db.DB)

	emailService := services.NewEmailService(cfg.Email)
	authService := services.NewAuthService(userRepo)
	eventService := services.NewEventService(eventRepo)
	bookingService := services.NewBookingService(db, bookingRepo, eventRepo, userRepo, emailService)
	chatService := services.NewChatService()

	router := handlers.SetupRouter(
		cfg.CORS.Origin,
		handlers.NewAuthHandler(authService),
		handlers.NewEventHandler(eventService),
		handlers.NewBookingHandler(bookingService),
		handlers.NewChatHandler(chatService),
	)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("Server failed:", err)
	}
}
