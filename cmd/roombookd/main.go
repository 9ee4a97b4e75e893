package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"roombook-backend/config"
	"roombook-backend/internal/api"
	"roombook-backend/internal/directory"
	"roombook-backend/internal/notification"
	"roombook-backend/internal/seed"
	"roombook-backend/internal/watch"
)

func main() {
	logger := log.New(os.Stdout, "roombook-backend ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// The directory is the single process-wide booking state; everything
	// downstream gets it by reference.
	dir := directory.New(directory.Config{
		DayStart:       cfg.Booking.DayStart,
		DayEnd:         cfg.Booking.DayEnd,
		MaxSuggestions: cfg.Booking.MaxSuggestions,
	})
	registry := watch.NewRegistry()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var webpushOptions *webpush.Options
	if cfg.Push.Enabled {
		if cfg.Push.PublicKey == "" || cfg.Push.PrivateKey == "" {
			logger.Fatalf("push is enabled but VAPID keys are not configured")
		}
		webpushOptions = &webpush.Options{
			VAPIDPublicKey:  cfg.Push.PublicKey,
			VAPIDPrivateKey: cfg.Push.PrivateKey,
			Subscriber:      cfg.Push.Subject,
			TTL:             cfg.Push.TTL,
		}
		pool := notification.NewWorkerPool(cfg.WorkerPool.Size, registry, webpushOptions)
		pool.Start(ctx)
		dir.SetNotifier(pool)
		logger.Printf("freed-slot notifications enabled with %d workers", cfg.WorkerPool.Size)
	}

	if cfg.Seed.Path != "" {
		layout, err := seed.LoadLayout(cfg.Seed.Path)
		if err != nil {
			logger.Fatalf("failed to load seed layout: %v", err)
		}
		if err := seed.Apply(layout, dir); err != nil {
			logger.Fatalf("failed to apply seed layout: %v", err)
		}
		logger.Printf("seed layout applied from %s", cfg.Seed.Path)
	}

	router := api.NewRouter(cfg, dir, registry, webpushOptions)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
