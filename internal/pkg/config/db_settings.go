package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SqliteDbType selects the embedded SQLite history store
const SqliteDbType = "sqlite"

// PostgresDbType selects a PostgreSQL history store
const PostgresDbType = "postgres"

// DatabaseSettings configures where measurement history is persisted.
// When Enabled is false no connection is opened and measurements are only printed.
type DatabaseSettings struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	Type    string `mapstructure:"type" yaml:"type" toml:"type" validate:"omitempty,oneof=sqlite postgres"`
	DSN     string `mapstructure:"dsn" yaml:"dsn" toml:"dsn"`
	DBName  string `mapstructure:"db_name" yaml:"db_name" toml:"db_name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if !s.Enabled {
		return nil
	}
	if s.Type == "" {
		return fmt.Errorf("database type is required when history is enabled")
	}
	// An empty SQLite DSN falls back to an in-memory database
	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for the postgres history store")
	}

	return nil
}
