// Package config loads server settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// devJWTSecret signs tokens in development when JWT_SECRET is unset.
const devJWTSecret = "dev-secret-change-me"

// Config holds all configuration for the server.
type Config struct {
	// Env is "development" (default) or "production".
	Env string

	Port   int
	DBPath string

	JWTSecret string
	TokenTTL  time.Duration

	LogLevel string

	// DefaultCurrency is the ISO 4217 code amounts are displayed in.
	DefaultCurrency string
	// Locale drives name collation and number formatting.
	Locale language.Tag

	// DigestSchedule is a cron spec for the outstanding-bills digest.
	// "off" in the environment disables the job and leaves this empty.
	DigestSchedule string
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env (when present) and then the environment. Variables
// already set in the environment win over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Env:             strings.ToLower(getEnv("APP_ENV", "development")),
		DBPath:          getEnv("DB_PATH", "./data/billsplitter.db"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DefaultCurrency: strings.ToUpper(getEnv("DEFAULT_CURRENCY", "USD")),
		DigestSchedule:  getEnv("DIGEST_SCHEDULE", "@every 15m"),
	}

	var err error
	if cfg.Port, err = strconv.Atoi(getEnv("PORT", "8080")); err != nil || cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}

	if cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "24h")); err != nil || cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q", os.Getenv("TOKEN_TTL"))
	}

	if _, err := currency.ParseISO(cfg.DefaultCurrency); err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_CURRENCY %q: %w", cfg.DefaultCurrency, err)
	}

	if cfg.Locale, err = language.Parse(getEnv("LOCALE", "en-US")); err != nil {
		return nil, fmt.Errorf("invalid LOCALE %q: %w", os.Getenv("LOCALE"), err)
	}

	if strings.EqualFold(cfg.DigestSchedule, "off") {
		cfg.DigestSchedule = ""
	}
	if cfg.DigestSchedule != "" {
		if _, err := cron.ParseStandard(cfg.DigestSchedule); err != nil {
			return nil, fmt.Errorf("invalid DIGEST_SCHEDULE %q: %w", cfg.DigestSchedule, err)
		}
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("JWT_SECRET not set")
		}
		slog.Warn("JWT_SECRET not set, using development secret")
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
