package main

import (
	"errors"
	"log"
	"time"

	"eventify/internal/config"
	"eventify/internal/database"
	"eventify/internal/models"
	"eventify/internal/repositories"
)

// Seeds an admin account and a handful of sample events for local
// development. Safe to run repeatedly.
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

	users := repositories.NewUserRepository(db.DB)
	events := repositories.NewEventRepository(db.DB)

	admin := &models.User{
		Name:     "Admin",
		Email:    "admin@eventify.local",
		Password: "admin123",
		Role:     models.RoleAdmin,
	}
	if err := users.Create(admin); err != nil {
		if !errors.Is(err, models.ErrEmailTaken) {
			log.Fatal("Failed to create admin user:", err)
		}
		log.Println("Admin user already exists, skipping")
	} else {
		log.Printf("Created admin user %s (id %d)", admin.Email, admin.ID)
	}

	existing, err := events.List()
	if err != nil {
		log.Fatal("Failed to list events:", err)
	}
	if len(existing) > 0 {
		log.Printf("%d events already present, skipping sample data", len(existing))
		return
	}

	now := time.Now()
	samples := []*models.EventCreateRequest{
		{
			Title:       "Indie Music Night",
			Description: "Live sets from local indie bands.",
			Location:    "The Warehouse, Downtown",
			Category:    "Music",
			StartDate:   now.AddDate(0, 0, 14),
			EndDate:     now.AddDate(0, 0, 14).Add(5 * time.Hour),
			Price:       25,
			TotalSeats:  200,
		},
		{
			Title:       "Tech Careers Fair",
			Description: "Meet hiring teams from forty companies.",
			Location:    "Convention Center Hall B",
			Category:    "Business",
			StartDate:   now.AddDate(0, 1, 0),
			EndDate:     now.AddDate(0, 1, 0).Add(8 * time.Hour),
			Price:       0,
			TotalSeats:  500,
		},
		{
			Title:       "Street Food Festival",
			Description: "Thirty vendors, one park.",
			Location:    "Riverside Park",
			Category:    "Food",
			StartDate:   now.AddDate(0, 0, 7),
			EndDate:     now.AddDate(0, 0, 9),
			Price:       10,
			TotalSeats:  1000,
		},
	}

	for _, req := range samples {
		event := models.NewEvent(req)
		if err := events.Create(event); err != nil {
			log.Fatal("Failed to create sample event:", err)
		}
		log.Printf("Created event %q (id %d, %d seats)", event.Title, event.ID, event.AvailableSeats)
	}
}
