package main

import (
	"context"

	"scaperune/inspector/internal/config"
	"scaperune/inspector/internal/container"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting sprite catalog inspector...")

	// Load configuration using viper
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize container with all dependencies
	app, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Run the inspection
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Inspection failed: %v", err)
	}
}
