// Package persistence provides the GORM-backed measurement history store.
// SQLite is the default backend; PostgreSQL can be selected through
// config.DatabaseSettings.
package persistence
