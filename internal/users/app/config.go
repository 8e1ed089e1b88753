package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer    string // Optional: expected issuer of presented tokens (default: identity-auth)
	Secret    string // Required: HS256 verification secret shared with the auth service
	Algorithm string // Optional: JWT signing algorithm, HS256 only (default: HS256)

	BcryptCost int // Optional: bcrypt cost for admin-created passwords (default: library default)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./identity.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8081)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

var (
	ErrMissingSecret        = errors.New("AUTH_SECRET is required")
	ErrUnsupportedAlgorithm = errors.New("only the HS256 algorithm is supported")
)

func LoadConfig() (Config, error) {
	cfg := Config{
		Issuer:              getEnvOrDefault("AUTH_ISSUER", "identity-auth"),
		Secret:              os.Getenv("AUTH_SECRET"),
		Algorithm:           getEnvOrDefault("AUTH_ALGORITHM", "HS256"),
		BcryptCost:          getEnvIntOrDefault("AUTH_BCRYPT_COST", 0),
		DatabaseFile:        getEnvOrDefault("USERS_DATABASE_FILE", "identity.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8081),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.Secret == "" {
		return Config{}, ErrMissingSecret
	}
	if cfg.Algorithm != "HS256" {
		return Config{}, ErrUnsupportedAlgorithm
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
