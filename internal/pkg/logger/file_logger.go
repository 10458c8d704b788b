package logger

import (
	"log/slog"

	"github.com/MGTheTrain/crypto-lab/internal/pkg/config"

	"github.com/natefinch/lumberjack"
)

// NewFileLogger writes JSON records to the configured file, rotated by lumberjack.
// Close the returned logger to flush the current file.
func NewFileLogger(settings *config.LoggerSettings) *SlogLogger {
	writer := &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		LocalTime:  true,
		Compress:   true,
	}

	lvl, _ := ParseLevel(settings.LogLevel)
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: lvl})
	return newSlogLogger(handler, writer)
}
