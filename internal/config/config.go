package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const prodString = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	HTTPAddr        string
	RoomsFeedURL    string
	BookingsFeedURL string
	FeedTimeout     time.Duration
	StorePath       string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origins for CORS (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	cfg.IsProduction = getEnv("APP_ENV", "dev") == prodString

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Both XML feed URLs are required
	cfg.RoomsFeedURL = os.Getenv("ROOMS_FEED_URL")
	if cfg.RoomsFeedURL == "" {
		return nil, fmt.Errorf("ROOMS_FEED_URL is required")
	}
	cfg.BookingsFeedURL = os.Getenv("BOOKINGS_FEED_URL")
	if cfg.BookingsFeedURL == "" {
		return nil, fmt.Errorf("BOOKINGS_FEED_URL is required")
	}

	// Per-fetch timeout for the feeds, parsed as time.Duration (e.g. "10s")
	timeoutStr := getEnv("FEED_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FEED_TIMEOUT: %w", err)
	}
	cfg.FeedTimeout = timeout

	// Path of the pending booking store file
	cfg.StorePath = getEnv("STORE_PATH", "./data/pending_bookings.json")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
