// Package config loads runtime configuration from environment variables,
// optionally seeded from a .env file in the working directory.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/teamvirrey/meetup-announcer/internal/errors"
)

// Defaults
const (
	DefaultRedisAddr   = "localhost:6379"
	DefaultHTTPTimeout = 30 * time.Second
)

// Config holds the announcer runtime configuration
type Config struct {
	// RedisAddr is the cache endpoint (REDIS_ADDR)
	RedisAddr string
	// PoGoAPIBaseURL overrides the API base URL (POGOAPI_BASE_URL);
	// empty uses the client default
	PoGoAPIBaseURL string
	// HTTPTimeout bounds API requests (HTTP_TIMEOUT, Go duration syntax)
	HTTPTimeout time.Duration
	// TemplatesDir overrides the embedded templates (TEMPLATES_DIR)
	TemplatesDir string
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		RedisAddr:      getEnv("REDIS_ADDR", DefaultRedisAddr),
		PoGoAPIBaseURL: os.Getenv("POGOAPI_BASE_URL"),
		HTTPTimeout:    DefaultHTTPTimeout,
		TemplatesDir:   os.Getenv("TEMPLATES_DIR"),
	}

	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid HTTP_TIMEOUT %q: %v", raw, err)
		}
		if timeout <= 0 {
			return nil, errors.InvalidArgumentf("HTTP_TIMEOUT must be positive, got %q", raw)
		}
		cfg.HTTPTimeout = timeout
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
