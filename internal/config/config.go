// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flight-search/flight-offer-service/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Polling  PollingConfig
	Search   SearchConfig
	Cache    CacheConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"45s"`
}

// ProviderConfig holds the upstream flight-data provider settings.
// The API key is optional at load time; calls fail with
// domain.ErrMissingCredentials when it is absent.
type ProviderConfig struct {
	APIKey     string        `env:"DUFFEL_API_KEY"`
	BaseURL    string        `env:"DUFFEL_BASE_URL" envDefault:"https://api.duffel.com"`
	APIVersion string        `env:"DUFFEL_API_VERSION" envDefault:"v2"`
	Timeout    time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"10s"`
}

// PollingConfig holds the offer polling loop settings.
type PollingConfig struct {
	MaxAttempts int           `env:"POLL_MAX_ATTEMPTS" envDefault:"10"`
	Interval    time.Duration `env:"POLL_INTERVAL" envDefault:"2s"`
}

// SearchConfig holds offer search settings.
type SearchConfig struct {
	Timeout              time.Duration `env:"SEARCH_TIMEOUT" envDefault:"30s"`
	FallbackEnabled      bool          `env:"SEARCH_FALLBACK_ENABLED" envDefault:"true"`
	UpcomingDestinations []string      `env:"UPCOMING_DESTINATIONS" envSeparator:"," envDefault:"LHR,DXB,CDG,JFK"`
}

// CacheConfig holds the location suggestion cache settings.
type CacheConfig struct {
	Driver        string        `env:"CACHE_DRIVER" envDefault:"memory"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	LocationTTL   time.Duration `env:"LOCATION_CACHE_TTL" envDefault:"10m"`

	// MaxEntries bounds the memory driver
	MaxEntries int `env:"CACHE_MAX_ENTRIES" envDefault:"10000"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	positive := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"PROVIDER_TIMEOUT", cfg.Provider.Timeout},
		{"POLL_INTERVAL", cfg.Polling.Interval},
		{"SEARCH_TIMEOUT", cfg.Search.Timeout},
		{"LOCATION_CACHE_TTL", cfg.Cache.LocationTTL},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}

	// A single provider call must fit in the search, and the search in the response
	if cfg.Provider.Timeout >= cfg.Search.Timeout {
		return fmt.Errorf("PROVIDER_TIMEOUT (%s) should be less than SEARCH_TIMEOUT (%s)",
			cfg.Provider.Timeout, cfg.Search.Timeout)
	}
	if cfg.Search.Timeout >= cfg.Server.WriteTimeout {
		return fmt.Errorf("SEARCH_TIMEOUT (%s) should be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Search.Timeout, cfg.Server.WriteTimeout)
	}

	if cfg.Polling.MaxAttempts < 1 {
		return fmt.Errorf("POLL_MAX_ATTEMPTS must be at least 1, got %d", cfg.Polling.MaxAttempts)
	}

	if cfg.Provider.BaseURL == "" {
		return fmt.Errorf("DUFFEL_BASE_URL must not be empty")
	}

	for _, code := range cfg.Search.UpcomingDestinations {
		if !domain.IsAirportCode(code) {
			return fmt.Errorf("UPCOMING_DESTINATIONS must contain 3-letter IATA codes, got %q", code)
		}
	}

	// Validate cache driver
	validDrivers := map[string]bool{"memory": true, "redis": true, "none": true}
	if !validDrivers[cfg.Cache.Driver] {
		return fmt.Errorf("CACHE_DRIVER must be one of: memory, redis, none; got %q", cfg.Cache.Driver)
	}
	if cfg.Cache.Driver == "redis" && cfg.Cache.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required when CACHE_DRIVER is redis")
	}
	if cfg.Cache.MaxEntries < 1 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be at least 1, got %d", cfg.Cache.MaxEntries)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// HasProviderCredentials reports whether a provider API key is configured.
func (c *Config) HasProviderCredentials() bool {
	return c.Provider.APIKey != ""
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
