package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/caresuite/hms-portal/internal/portal"
	"github.com/caresuite/hms-portal/pkg/config"
	"github.com/caresuite/hms-portal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logger.New(cfg.LogLevel)

	service := portal.New(cfg, logger)

	go func() {
		if err := service.Start(); err != nil {
			logger.Fatalf("Failed to start portal service: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down portal service...")
	if err := service.Stop(); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
	logger.Info("Portal service stopped")
}
