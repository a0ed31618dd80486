package main

import (
	"log"

	"safequeue-viz/config"
	"safequeue-viz/internal/controller"
	"safequeue-viz/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	srvc, err := service.NewService(cfg)
	if err != nil {
		log.Fatalf("Error setting up services: %v", err)
	}
	defer srvc.Logger.Cleanup()

	ctrl := controller.NewController(cfg, srvc)
	if err := ctrl.Serve(); err != nil {
		log.Fatalf("Error serving: %v", err)
	}
}
