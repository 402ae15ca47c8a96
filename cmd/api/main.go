package main

import (
	"log"

	"datalens/adapters/tabular"
	"datalens/app"
	"datalens/internal/api"
	"datalens/internal/config"
	loader "datalens/internal/dataset"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	reader := tabular.NewFileReader()
	service := app.NewExploreService(loader.NewLoader(reader), nil, cfg.Sampling.MinN, cfg.Sampling.Seed)

	a := api.NewApp(cfg, service)
	log.Fatal(a.Start(":" + cfg.Server.APIPort))
}
