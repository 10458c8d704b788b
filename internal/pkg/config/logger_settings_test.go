//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSettings_Validate(t *testing.T) {
	fileSettings := func(modify func(*LoggerSettings)) LoggerSettings {
		s := LoggerSettings{
			LogLevel:   LogLevelInfo,
			LogType:    LogTypeFile,
			FilePath:   "logs/crypto-lab.log",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		modify(&s)
		return s
	}

	tests := []struct {
		name     string
		settings LoggerSettings
		errPart  string
	}{
		{"console default", DefaultCLIConfig().Logger, ""},
		{"console ignores rotation", LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeConsole}, ""},
		{"critical level", LoggerSettings{LogLevel: LogLevelCritical, LogType: LogTypeConsole}, ""},
		{"file", fileSettings(func(*LoggerSettings) {}), ""},
		{"missing level", LoggerSettings{LogType: LogTypeConsole}, "LogLevel failed on required"},
		{"unknown level", LoggerSettings{LogLevel: "trace", LogType: LogTypeConsole}, "LogLevel failed on oneof"},
		{"unknown type", LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, "LogType failed on oneof"},
		{"file without path", fileSettings(func(s *LoggerSettings) { s.FilePath = "" }), "FilePath failed on required_if"},
		{"file without max size", fileSettings(func(s *LoggerSettings) { s.MaxSize = 0 }), "MaxSize failed on required_if"},
		{"file max size too large", fileSettings(func(s *LoggerSettings) { s.MaxSize = 500 }), "MaxSize failed on max"},
		{"file negative backups", fileSettings(func(s *LoggerSettings) { s.MaxBackups = -1 }), "MaxBackups failed on min"},
		{"file max age too large", fileSettings(func(s *LoggerSettings) { s.MaxAge = 400 }), "MaxAge failed on max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.errPart == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errPart)
		})
	}
}
