package main

import (
	"context"
	"log"

	"datalens/adapters/postgres"
	"datalens/adapters/tabular"
	"datalens/app"
	"datalens/internal/config"
	loader "datalens/internal/dataset"
	"datalens/ports"
	"datalens/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The profile registry is optional; the explorer runs without it
	var profiles ports.ProfileRepository
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		profiles, err = postgres.NewProfileRepository(context.Background(), db)
		if err != nil {
			log.Fatalf("Failed to initialize profile registry: %v", err)
		}
		log.Println("Profile registry enabled")
	}

	reader := tabular.NewFileReader()
	service := app.NewExploreService(loader.NewLoader(reader), profiles, cfg.Sampling.MinN, cfg.Sampling.Seed)

	server, err := ui.NewServer(cfg, service)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Printf("Starting dataset explorer on port %s (data file: %s)", cfg.Server.Port, cfg.Data.FilePath)
	log.Fatal(server.Start(":" + cfg.Server.Port))
}
