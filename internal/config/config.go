package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all configuration parameters of the application.
type Config struct {
	DatabasePath string `env:"DATABASE_PATH"`
	ServerPort   string `env:"SERVER_PORT"`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SeedOnFirstRun populates the store with synthetic development data
	// when the database file does not exist yet.
	SeedOnFirstRun bool `env:"SEED_ON_FIRST_RUN" envDefault:"true"`
}

// LoadConfig reads the configuration from environment variables.
// In development it also loads a local .env file when one is present.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration from environment: %w", err)
	}

	// Fallback defaults for the fields that need one.
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "data/database.db"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	return &cfg, nil
}
