//go:build integration
// +build integration

package persistence

import (
	"testing"
	"time"

	"github.com/MGTheTrain/crypto-lab/internal/domain/measurements"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/config"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB              *gorm.DB
	MeasurementRepo *GormMeasurementRepository
}

// SetupTestDB opens an in-memory SQLite database with automatic cleanup
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	settings := config.DatabaseSettings{
		Enabled: true,
		Type:    config.SqliteDbType,
		DSN:     ":memory:",
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
	})

	repo, err := NewGormMeasurementRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create measurement repository")

	return &TestContext{
		DB:              db,
		MeasurementRepo: repo,
	}
}

// CreateTestMeasurement creates a measurement created at the given time
func CreateTestMeasurement(t *testing.T, tool, operation string, created time.Time) *measurements.Measurement {
	t.Helper()

	return &measurements.Measurement{
		ID:              uuid.NewString(),
		Tool:            tool,
		Operation:       operation,
		Bits:            8192,
		Elapsed:         250 * time.Microsecond,
		Outcome:         measurements.OutcomeSuccess,
		DateTimeCreated: created,
	}
}
