// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"

	ModeSync  = "sync"
	ModeAsync = "async"
)

// Config holds every setting the service reads at startup.
type Config struct {
	Port string

	DatabaseDriver string
	DatabaseURL    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	IPHashSecret string
	// WeakSecret reports that no secret was configured and the hasher will
	// fall back to its built-in key.
	WeakSecret bool

	FallbackURL string

	RateLimit        int
	RateWindow       time.Duration
	RateLimitBackend string

	ClickRecordTimeout time.Duration
	ClickRecordMode    string

	AnalyticsLocation *time.Location
	GeoIPDBPath       string

	Log LogConfig
}

// LogConfig selects the logger flavour and outputs.
type LogConfig struct {
	Env   string
	Level string
	File  string
}

// Load reads an optional .env file, then the environment. Malformed
// numbers, durations and zones are errors; a missing hash secret is not.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseDriver:   getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseURL:      getEnv("DATABASE_URL", "data/affiliate.db"),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		FallbackURL:      getEnv("FALLBACK_URL", "/"),
		RateLimitBackend: getEnv("RATE_LIMIT_BACKEND", BackendMemory),
		ClickRecordMode:  getEnv("CLICK_RECORD_MODE", ModeSync),
		GeoIPDBPath:      getEnv("GEOIP_DB_PATH", ""),
		Log: LogConfig{
			Env:   getEnv("LOG_ENV", "development"),
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	cfg.IPHashSecret = getEnv("IP_HASH_SECRET", getEnv("CLICK_SALT", ""))
	cfg.WeakSecret = cfg.IPHashSecret == ""

	var err error
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = getInt("RATE_LIMIT", 8); err != nil {
		return nil, err
	}
	if cfg.RateWindow, err = getDuration("RATE_WINDOW", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.ClickRecordTimeout, err = getDuration("CLICK_RECORD_TIMEOUT", 1500*time.Millisecond); err != nil {
		return nil, err
	}

	tz := getEnv("ANALYTICS_TIMEZONE", "Asia/Ho_Chi_Minh")
	if cfg.AnalyticsLocation, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("invalid ANALYTICS_TIMEZONE %q: %w", tz, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks enumerations and cross-field requirements.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.DatabaseDriver, validation.In("sqlite", "postgres")),
		validation.Field(&c.DatabaseURL, validation.Required),
		validation.Field(&c.RateLimit, validation.Required, validation.Min(1)),
		validation.Field(&c.RateWindow, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.RateLimitBackend, validation.In(BackendMemory, BackendRedis)),
		validation.Field(&c.ClickRecordTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.ClickRecordMode, validation.In(ModeSync, ModeAsync)),
		validation.Field(&c.RedisAddr,
			validation.When(c.RateLimitBackend == BackendRedis,
				validation.Required.Error("is required when RATE_LIMIT_BACKEND=redis"))),
	)
}

// RedisEnabled reports whether a Redis address is configured.
func (c Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// getEnv retrieves an environment variable or returns the default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return n, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return d, nil
}
