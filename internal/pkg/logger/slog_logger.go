package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/MGTheTrain/crypto-lab/internal/pkg/config"
)

var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError + 4,
}

// ParseLevel maps a configured level name to its slog level
func ParseLevel(level string) (slog.Level, error) {
	l, ok := levels[level]
	if !ok {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
	return l, nil
}

// SlogLogger adapts a slog.Handler to Logger. Arguments are concatenated with fmt.Sprint.
type SlogLogger struct {
	logger *slog.Logger
	closer io.Closer
}

func newSlogLogger(handler slog.Handler, closer io.Closer) *SlogLogger {
	return &SlogLogger{logger: slog.New(handler), closer: closer}
}

// Debug logs at debug level
func (l *SlogLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

// Info logs at info level
func (l *SlogLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

// Warn logs at warning level
func (l *SlogLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

// Error logs at error level
func (l *SlogLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

// Fatal logs at error level, closes the output and exits with status 1
func (l *SlogLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	_ = l.Close()
	os.Exit(1)
}

// Panic logs at error level and panics with the message
func (l *SlogLogger) Panic(args ...interface{}) {
	msg := fmt.Sprint(args...)
	l.logger.Error(msg)
	panic(msg)
}

// Close releases the output when the logger owns it
func (l *SlogLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
