package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if cfg.KafkaBrokers == "" {
		log.Fatal("KAFKA_BROKERS must be set for the worker")
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel, cfg.LogDir)
	defer logger.Sync()

	w := worker.New(cfg, logger)
	go w.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	w.Stop()
}
