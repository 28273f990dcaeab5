package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mandhitown/backend/config"
	"github.com/mandhitown/backend/internal/seed"
	"github.com/mandhitown/backend/internal/server"
	"github.com/mandhitown/backend/internal/service"
	"github.com/mandhitown/backend/internal/store"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Seed the restaurant catalog and build the state container
	st := store.New(seed.Restaurants(seed.Chain(cfg.SeedFile)...))

	// Media uploads are optional; the services degrade per operation
	var media service.MediaUploader
	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize S3: %v", err)
	}
	if s3Config != nil {
		media = service.NewS3MediaService(s3Config)
	} else {
		log.Println("No S3 bucket configured, media uploads disabled")
	}

	// Shared token blocklist when redis is configured, in-process otherwise
	var blocklist service.TokenBlocklist = service.NewMemoryBlocklist()
	if cfg.RedisAddr != "" {
		blocklist = service.NewRedisBlocklist(cfg.RedisAddr, cfg.RedisPassword)
	}

	// Create and start server
	srv := server.New(st, cfg.JWTSecret, media, blocklist)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.ServerPort)
		errChan <- srv.Start(cfg.ServerPort)
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
