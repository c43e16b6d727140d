package main

import (
	"flag"
	"log"

	"eventify/internal/config"
	"eventify/internal/database"
)

func main() {
	status := flag.Bool("status", false, "show migration status instead of applying migrations")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{Path: cfg.Database.Path})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if *status {
		if err := db.GetMigrationStatus(); err != nil {
			log.Fatal("Failed to read migration status:", err)
		}
		return
	}

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	log.Println("Migrations applied")
}
