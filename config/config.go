package config

import (
	"fmt"
	"os"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string

	// JWT configuration
	JWTSecret string

	// Redis configuration (optional; enables the shared token blocklist)
	RedisAddr     string
	RedisPassword string

	// Media upload configuration (optional; empty bucket disables uploads)
	S3Bucket  string
	AWSRegion string

	// Catalog seed configuration (optional curated dataset)
	SeedFile string
}

// LoadConfig creates a new Config instance from environment variables.
// In development and test a missing JWT secret falls back to a fixed demo
// value; production refuses to start without one.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:    os.Getenv("SERVER_PORT"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		S3Bucket:      os.Getenv("S3_BUCKET_NAME"),
		AWSRegion:     os.Getenv("AWS_REGION"),
		SeedFile:      os.Getenv("RESTAURANT_SEED_FILE"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "5000"
	}
	if cfg.JWTSecret == "" {
		if IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "dev-secret-change-me"
	}

	return cfg, nil
}
