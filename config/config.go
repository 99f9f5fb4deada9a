// Package config reads the service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Port            string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	StoreDriver     string
	LogLevel        string
	LogFormat       string
	GinMode         string
	AllowedOrigins  []string
	RequestTimeout  time.Duration // Zero means store calls have no deadline of their own.
	ShutdownTimeout time.Duration
}

// LoadDotEnv loads .env into the process environment if the file exists.
// Variables already set are left alone.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return godotenv.Load(paths...)
}

// Load reads environment variables into Config, applying defaults for local dev.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "3000"),
		MongoURI:        getEnv("MONGODB_CONNECT_STRING", ""),
		MongoDatabase:   getEnv("MONGODB_DATABASE", "exercise_db"),
		MongoCollection: getEnv("MONGODB_COLLECTION", "exercises"),
		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		LogLevel:        getEnv("LOGGING_LEVEL", "INFO"),
		LogFormat:       getEnv("LOGGING_FORMAT", "JSON"),
		GinMode:         getEnv("GIN_MODE", "release"),
		AllowedOrigins:  splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	var err error
	if cfg.RequestTimeout, err = getDurationEnv("REQUEST_TIMEOUT", 0); err != nil {
		return cfg, err
	}
	if cfg.ShutdownTimeout, err = getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("MONGODB_CONNECT_STRING must be set when STORE_DRIVER is mongo")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	return nil
}

func (c Config) Address() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
