//go:build unit
// +build unit

package logger

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/MGTheTrain/crypto-lab/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton(t *testing.T) {
	t.Helper()
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
	t.Cleanup(func() {
		loggerInstance = nil
		loggerErr = nil
		loggerOnce = sync.Once{}
	})
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.LoggerSettings
		wantErr  bool
	}{
		{
			name:     "console",
			settings: &config.LoggerSettings{LogLevel: config.LogLevelWarning, LogType: config.LogTypeConsole},
		},
		{
			name: "file",
			settings: &config.LoggerSettings{
				LogLevel:   config.LogLevelDebug,
				LogType:    config.LogTypeFile,
				FilePath:   filepath.Join(t.TempDir(), "lab.log"),
				MaxSize:    5,
				MaxBackups: 2,
				MaxAge:     7,
			},
		},
		{
			name:     "nil settings",
			settings: nil,
			wantErr:  true,
		},
		{
			name:     "unknown level",
			settings: &config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole},
			wantErr:  true,
		},
		{
			name:     "unknown type",
			settings: &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"},
			wantErr:  true,
		},
		{
			name:     "file without path",
			settings: &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile, MaxSize: 1, MaxBackups: 1, MaxAge: 1},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, log)
			if closer, ok := log.(*SlogLogger); ok {
				t.Cleanup(func() { _ = closer.Close() })
			}
		})
	}
}

func TestGetLogger_BeforeInit(t *testing.T) {
	resetLoggerSingleton(t)

	_, err := GetLogger()
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestInitLogger_FirstCallWins(t *testing.T) {
	resetLoggerSingleton(t)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelError, LogType: config.LogTypeConsole}))
	first, err := GetLogger()
	require.NoError(t, err)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole}))
	second, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestInitLogger_InvalidSettings(t *testing.T) {
	resetLoggerSingleton(t)

	err := InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"})
	assert.Error(t, err)

	_, err = GetLogger()
	assert.ErrorIs(t, err, ErrNotInitialized)
}
