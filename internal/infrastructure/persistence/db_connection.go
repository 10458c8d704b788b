package persistence

import (
	"fmt"

	"github.com/MGTheTrain/crypto-lab/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const sqliteMemoryDSN = ":memory:"

// NewDBConnection opens the history store described by settings and migrates the
// measurement schema.
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	if settings.Type == config.PostgresDbType && settings.DBName != "" {
		if err := ensurePostgresDatabase(settings); err != nil {
			return nil, err
		}
	}

	dialector, err := dialectorFor(settings)
	if err != nil {
		return nil, err
	}

	// SQL tracing would interleave with the interactive menus
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s history store: %w", settings.Type, err)
	}

	if settings.Type == config.SqliteDbType && sqliteDSN(settings) == sqliteMemoryDSN {
		// each pooled connection to :memory: would see its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&models.MeasurementModel{}); err != nil {
		_ = CloseDB(db)
		return nil, fmt.Errorf("failed to migrate measurement schema: %w", err)
	}

	return db, nil
}

func dialectorFor(settings config.DatabaseSettings) (gorm.Dialector, error) {
	switch settings.Type {
	case config.SqliteDbType:
		return sqlite.Open(sqliteDSN(settings)), nil
	case config.PostgresDbType:
		return postgres.Open(postgresDSN(settings)), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
}

func sqliteDSN(settings config.DatabaseSettings) string {
	if settings.DSN == "" {
		return sqliteMemoryDSN
	}
	return settings.DSN
}

func postgresDSN(settings config.DatabaseSettings) string {
	if settings.DBName == "" {
		return settings.DSN
	}
	return fmt.Sprintf("%s dbname=%s", settings.DSN, settings.DBName)
}

// ensurePostgresDatabase creates settings.DBName through the server's default database.
func ensurePostgresDatabase(settings config.DatabaseSettings) error {
	db, err := gorm.Open(postgres.Open(settings.DSN), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() { _ = CloseDB(db) }()

	var exists bool
	if err := db.Raw("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = ?)", settings.DBName).Scan(&exists).Error; err != nil {
		return fmt.Errorf("failed to look up database %s: %w", settings.DBName, err)
	}
	if exists {
		return nil
	}

	if err := db.Exec(fmt.Sprintf("CREATE DATABASE %q", settings.DBName)).Error; err != nil {
		return fmt.Errorf("failed to create database %s: %w", settings.DBName, err)
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
