// ABOUTME: Configuration loader for the planner service
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port            string
	PricingCacheTTL int // seconds, for pricing API responses (default 300)

	// Planner
	Region        string // GCP region key into the pricing catalog
	DefaultMaxVMs int    // default VM count ceiling for optimize requests
}

func Load() (*Config, error) {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		PricingCacheTTL: getEnvInt("PRICING_CACHE_TTL", 300),
		Region:          getEnv("PLANNER_REGION", "us-east4"),
		DefaultMaxVMs:   getEnvInt("PLANNER_MAX_VMS", 10),
	}

	if cfg.Region == "" {
		return nil, fmt.Errorf("PLANNER_REGION cannot be empty")
	}
	if cfg.DefaultMaxVMs < 1 {
		return nil, fmt.Errorf("PLANNER_MAX_VMS must be at least 1, got %d", cfg.DefaultMaxVMs)
	}
	if cfg.PricingCacheTTL < 0 {
		return nil, fmt.Errorf("PRICING_CACHE_TTL cannot be negative, got %d", cfg.PricingCacheTTL)
	}

	return cfg, nil
}

// getEnv returns the env var value or a default when unset.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns the env var parsed as int, or a default when unset
// or unparseable.
func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
