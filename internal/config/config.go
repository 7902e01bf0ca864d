package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration options for the timesheet service.
// Values come from environment variables with the TSD_ prefix; command line
// flags may override individual fields after loading.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `env:"TSD_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"TSD_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"TSD_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"TSD_SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path         string        `env:"TSD_DB_PATH" envDefault:"timesheet.db"`
	QueryTimeout time.Duration `env:"TSD_DB_QUERY_TIMEOUT" envDefault:"10s"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Verbose bool `env:"TSD_VERBOSE" envDefault:"false"`
}

// Load parses configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if c.Server.ReadTimeout <= 0 {
		return &ConfigError{Field: "server.read_timeout", Message: "read timeout must be positive"}
	}
	if c.Server.WriteTimeout <= 0 {
		return &ConfigError{Field: "server.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}
	if c.Database.Path == "" {
		return &ConfigError{Field: "database.path", Message: "database path cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
