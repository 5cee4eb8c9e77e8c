package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/api"
	"storefront/internal/auth"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/session"
	"storefront/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel, cfg.LogDir)
	defer logger.Sync()

	// Initialize database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Seed(); err != nil {
		logger.Fatal("Failed to seed catalog: %v", err)
	}

	st := store.NewGormStore(db.DB)

	// Event publishing is optional; without a broker checkouts still work.
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.KafkaBrokers != "" {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers)
	}
	defer publisher.Close()

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionMaxAge, cfg.Env == "production")
	authSvc := auth.NewService(st)
	checkoutSvc := checkout.NewService(st, publisher, logger)

	// Initialize API server
	server := api.New(cfg, logger, st, authSvc, checkoutSvc, sessions)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		logger.Error("Forced shutdown: %v", err)
	}
}
