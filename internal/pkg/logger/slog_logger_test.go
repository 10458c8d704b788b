//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/MGTheTrain/crypto-lab/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
		wantErr  bool
	}{
		{config.LogLevelDebug, slog.LevelDebug, false},
		{config.LogLevelInfo, slog.LevelInfo, false},
		{config.LogLevelWarning, slog.LevelWarn, false},
		{config.LogLevelError, slog.LevelError, false},
		{config.LogLevelCritical, slog.LevelError + 4, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			level, err := ParseLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestTextLogger(t *testing.T) {
	t.Run("FiltersByLevel", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewTextLogger(config.LogLevelWarning, &buf)

		log.Debug("key material loaded")
		log.Info("AES key saved to ", "aes_key.bin")
		log.Warn("failed to record measurement: ", "disk full")
		log.Error("decryption failed")

		output := buf.String()
		assert.NotContains(t, output, "key material loaded")
		assert.NotContains(t, output, "aes_key.bin")
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "failed to record measurement: disk full")
		assert.Contains(t, output, "decryption failed")
	})

	t.Run("OmitsTimestamps", func(t *testing.T) {
		var buf bytes.Buffer
		NewTextLogger(config.LogLevelInfo, &buf).Info("hello")

		assert.NotContains(t, buf.String(), "time=")
		assert.Contains(t, buf.String(), `msg=hello`)
	})

	t.Run("CriticalHidesErrors", func(t *testing.T) {
		var buf bytes.Buffer
		NewTextLogger(config.LogLevelCritical, &buf).Error("not shown")

		assert.Empty(t, buf.String())
	})

	t.Run("Panic", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewTextLogger(config.LogLevelInfo, &buf)

		assert.PanicsWithValue(t, "invalid key size 17", func() {
			log.Panic("invalid key size ", 17)
		})
		assert.Contains(t, buf.String(), "invalid key size 17")
	})

	t.Run("CloseWithoutOwnedOutput", func(t *testing.T) {
		assert.NoError(t, NewConsoleLogger(config.LogLevelInfo).Close())
	})
}
