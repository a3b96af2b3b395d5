package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Offer catalog sources.
const (
	OfferSourceStatic   = "static"
	OfferSourceJSON     = "json"
	OfferSourcePostgres = "postgres"
	OfferSourceSQLite   = "sqlite"
)

type Config struct {
	Environment string
	LogLevel    string
	Port        int

	OfferSource string
	OffersPath  string
	DatabaseURL string
	DBPath      string
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LoadDotEnv reads .env into the process environment if the file exists.
// Variables already set in the environment win.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads configuration from .env (when present) and the environment.
func Load() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("load config: read .env: %w", err)
	}

	port, err := strconv.Atoi(Get("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("load config: PORT must be an integer: %w", err)
	}

	cfg := &Config{
		Environment: Get("APP_ENV", "development"),
		LogLevel:    Get("LOG_LEVEL", "info"),
		Port:        port,
		OfferSource: strings.ToLower(Get("OFFER_SOURCE", OfferSourceStatic)),
		OffersPath:  Get("OFFERS_PATH", "data/seeds/offers.json"),
		DatabaseURL: Get("DATABASE_URL", ""),
		DBPath:      Get("DB_PATH", "data/app.db"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}

	switch c.OfferSource {
	case OfferSourceStatic:
	case OfferSourceJSON:
		if c.OffersPath == "" {
			return errors.New("OFFERS_PATH is required when OFFER_SOURCE=json")
		}
	case OfferSourcePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when OFFER_SOURCE=postgres")
		}
	case OfferSourceSQLite:
		if c.DBPath == "" {
			return errors.New("DB_PATH is required when OFFER_SOURCE=sqlite")
		}
	default:
		return fmt.Errorf("unsupported OFFER_SOURCE %q", c.OfferSource)
	}

	return nil
}
