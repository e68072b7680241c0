package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/logger"
)

// Create a new instance of the logger, JSON formatted for structured logging
var log = logger.New()

// DefaultDatabaseURI is a SQLite file next to the working directory
const DefaultDatabaseURI = "sqlite:///app.db"

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port            int           `json:"port"`
	Host            string        `json:"host"`
	Environment     string        `json:"environment"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Database configuration
	DatabaseURI  string                  `json:"database_uri"`
	Database     database.DatabaseConfig `json:"-"`
	DBMaxRetries int                     `json:"db_max_retries"`
	SeedDatabase bool                    `json:"seed_database"`

	// Logging configuration
	LogLevel string `json:"log_level"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, DatabaseURI: %s, DBMaxRetries: %d, SeedDatabase: %t, LogLevel: %s, ShutdownTimeout: %s}",
		c.Port, c.Host, c.Environment, maskDatabaseURL(c.DatabaseURI), c.DBMaxRetries, c.SeedDatabase, c.LogLevel, c.ShutdownTimeout)
}

// Address returns the host:port the server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" || !strings.Contains(dbURL, "://") {
		return dbURL
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User == nil {
		return dbURL
	}
	if _, hasPassword := parsed.User.Password(); !hasPassword {
		return dbURL
	}

	parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
	return parsed.String()
}

// LoadConfig reads the configuration from environment variables and returns a Config struct
// Returns an error if a variable is malformed or DB_URI names an unsupported store
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "5555"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid APP_PORT: %d is out of range", port)
	}

	dbURI := GetEnvWithDefault("DB_URI", DefaultDatabaseURI)
	dbConfig, err := database.ParseDatabaseURI(dbURI)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_URI: %w", err)
	}

	config := &Config{
		Port:            port,
		Host:            GetEnvWithDefault("APP_HOST", "localhost"),
		Environment:     GetEnvWithDefault("APP_ENV", "development"),
		ShutdownTimeout: time.Duration(GetEnvAsType("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		DatabaseURI:     dbURI,
		Database:        dbConfig,
		DBMaxRetries:    GetEnvAsType("DB_MAX_RETRIES", 5),
		SeedDatabase:    GetEnvAsType("SEED_DATABASE", true),
		LogLevel:        GetEnvWithDefault("LOG_LEVEL", "info"),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			log.Warnf("Environment variable %s is not an integer, using default value", key)
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			log.Warnf("Environment variable %s is not a boolean, using default value", key)
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
