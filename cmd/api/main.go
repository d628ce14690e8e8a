package main

import (
	"fmt"
	"log"

	"upright/internal/config"
	"upright/internal/pkg/upright"
	"upright/internal/routes"
	"upright/internal/store"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.UprightAPIKey == "" {
		log.Fatal("UPRIGHT_API_KEY is not set")
	}

	client := upright.New(cfg.UprightAPIKey, cfg.UprightAPIBase)
	checkboxes := store.NewFileStore(cfg.CheckboxStatePath)

	router := routes.SetupRouter(client, checkboxes, cfg)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting server on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
