//go:build unit
// +build unit

package commands

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/crypto-lab/internal/infrastructure/persistence"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/config"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/logger"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/testutil"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closingLogger struct {
	logger.Logger
	closed int
}

func (l *closingLogger) Close() error {
	l.closed++
	return nil
}

func TestCommandHandler_ReleasesOnError(t *testing.T) {
	db, err := persistence.NewDBConnection(config.DatabaseSettings{
		Enabled: true,
		Type:    config.SqliteDbType,
		DSN:     filepath.Join(t.TempDir(), "history.db"),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	log := &closingLogger{Logger: testutil.SetupTestLogger(t)}
	handler := &commandHandler{deps: &Dependencies{Logger: log, db: db}}

	failure := errors.New("operation failed")
	runE := handler.run(func(*cobra.Command, []string) error {
		return failure
	})

	err = runE(&cobra.Command{}, nil)
	assert.ErrorIs(t, err, failure)
	assert.Nil(t, handler.deps)
	assert.Equal(t, 1, log.closed)
	assert.Error(t, sqlDB.Ping(), "history store must be closed")
}

func TestDependencies_Close(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		var deps *Dependencies
		assert.NoError(t, deps.Close())
	})

	t.Run("ConsoleLogger", func(t *testing.T) {
		deps := &Dependencies{Logger: logger.NewConsoleLogger(config.LogLevelError)}
		assert.NoError(t, deps.Close())
	})

	t.Run("FileLogger", func(t *testing.T) {
		fileLogger := logger.NewFileLogger(&config.LoggerSettings{
			LogLevel:   config.LogLevelInfo,
			LogType:    config.LogTypeFile,
			FilePath:   filepath.Join(t.TempDir(), "lab.log"),
			MaxSize:    1,
			MaxBackups: 1,
			MaxAge:     1,
		})
		fileLogger.Info("before close")

		deps := &Dependencies{Logger: fileLogger}
		assert.NoError(t, deps.Close())
	})
}
