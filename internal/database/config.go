package database

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const memoryPath = ":memory:"

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case "postgres", "postgresql":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		return withForeignKeys(c.Path)
	default:
		return ""
	}
}

// withForeignKeys turns on foreign key enforcement, which SQLite leaves off
// for every new connection.
func withForeignKeys(path string) string {
	if strings.Contains(path, "_foreign_keys") || strings.Contains(path, "_fk=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// ParseDatabaseURI reads a connection URI in the SQLAlchemy style
// (sqlite:///app.db, sqlite:////abs/app.db, postgresql://user:pw@host/db)
// or a bare SQLite file path.
func ParseDatabaseURI(uri string) (DatabaseConfig, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return DatabaseConfig{}, errors.New("database URI is empty")
	}

	scheme, rest, found := strings.Cut(uri, "://")
	if !found {
		return DatabaseConfig{Driver: "sqlite", Path: uri}, nil
	}

	// postgresql+psycopg2 -> postgresql
	driver, _, _ := strings.Cut(strings.ToLower(scheme), "+")

	switch driver {
	case "sqlite", "sqlite3":
		// The authority part is always empty for SQLite, so the path starts
		// after the third slash.
		path := strings.TrimPrefix(rest, "/")
		if path == "" {
			path = memoryPath
		}
		return DatabaseConfig{Driver: "sqlite", Path: path}, nil

	case "postgres", "postgresql":
		parsed, err := url.Parse("postgres://" + rest)
		if err != nil {
			return DatabaseConfig{}, fmt.Errorf("invalid postgres URI: %w", err)
		}
		cfg := DatabaseConfig{
			Driver:  "postgres",
			Host:    parsed.Hostname(),
			Port:    parsed.Port(),
			Name:    strings.TrimPrefix(parsed.Path, "/"),
			SSLMode: parsed.Query().Get("sslmode"),
		}
		if parsed.User != nil {
			cfg.User = parsed.User.Username()
			cfg.Password, _ = parsed.User.Password()
		}
		if cfg.Host == "" {
			cfg.Host = "localhost"
		}
		if cfg.Port == "" {
			cfg.Port = "5432"
		}
		if cfg.SSLMode == "" {
			cfg.SSLMode = "disable"
		}
		return cfg, nil

	default:
		return DatabaseConfig{}, fmt.Errorf("unsupported database scheme: %s (supported: sqlite, postgres)", scheme)
	}
}
