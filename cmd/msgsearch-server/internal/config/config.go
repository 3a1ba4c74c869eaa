// Package config provides configuration management for the msgsearch
// standalone server. It loads settings from environment variables with
// sensible defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Source kinds supported by the server.
const (
	SourceKindHTTP = "http"
	SourceKindSQL  = "sql"
)

// Searcher strategies supported by the server.
const (
	StrategyScan     = "scan"
	StrategyPostings = "postings"
	StrategyBleve    = "bleve"
)

// Config holds all configuration for the msgsearch server.
type Config struct {
	Server   ServerConfig
	Source   SourceConfig
	Database DatabaseConfig
	Search   SearchConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string
	Port int
}

// SourceConfig holds upstream message source configuration.
type SourceConfig struct {
	Kind           string // http or sql
	URL            string // Base URL of the upstream API (http kind)
	TimeoutSeconds int    // Per-attempt fetch timeout
	RetryAttempts  int    // Fetch attempts before giving up
}

// DatabaseConfig holds database connection configuration (sql source kind).
type DatabaseConfig struct {
	Driver   string // mysql, postgres, sqlite3
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Table    string // Messages table name (default: "messages")
}

// SearchConfig holds search engine configuration.
type SearchConfig struct {
	Strategy string // scan, postings, or bleve
}

// Load loads configuration from environment variables.
// Follows 12-factor app principles - configuration via environment.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Source: SourceConfig{
			Kind:           getEnv("SOURCE_KIND", SourceKindHTTP),
			URL:            getEnv("SOURCE_URL", "https://november7-730026606190.europe-west1.run.app"),
			TimeoutSeconds: getEnvInt("SOURCE_TIMEOUT", 10),
			RetryAttempts:  getEnvInt("SOURCE_RETRY_ATTEMPTS", 3),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite3"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 3306),
			User:     getEnv("DB_USER", "msgsearch"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "msgsearch"),
			Table:    getEnv("DB_TABLE", "messages"),
		},
		Search: SearchConfig{
			Strategy: getEnv("SEARCH_STRATEGY", StrategyScan),
		},
	}

	switch cfg.Source.Kind {
	case SourceKindHTTP:
		if cfg.Source.URL == "" {
			return nil, fmt.Errorf("SOURCE_URL environment variable is required for http source")
		}
	case SourceKindSQL:
		driver := strings.ToLower(cfg.Database.Driver)
		if driver != "sqlite3" && cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD environment variable is required for %s", driver)
		}
	default:
		return nil, fmt.Errorf("unknown SOURCE_KIND %q (want http or sql)", cfg.Source.Kind)
	}

	switch cfg.Search.Strategy {
	case StrategyScan, StrategyPostings, StrategyBleve:
	default:
		return nil, fmt.Errorf("unknown SEARCH_STRATEGY %q (want scan, postings, or bleve)", cfg.Search.Strategy)
	}

	return cfg, nil
}

// GetDSN returns the database connection string based on driver.
func (c *DatabaseConfig) GetDSN() string {
	switch strings.ToLower(c.Driver) {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
			c.User, c.Password, c.Host, c.Port, c.Database)
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			c.Host, c.Port, c.User, c.Password, c.Database)
	case "sqlite3":
		return c.Database // SQLite uses file path as DSN
	default:
		return ""
	}
}

// getEnv retrieves environment variable or returns default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves environment variable as integer or returns default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
