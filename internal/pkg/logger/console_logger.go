package logger

import (
	"io"
	"log/slog"
	"os"
)

// NewTextLogger writes human-readable records without timestamps to w.
// An unknown level falls back to info.
func NewTextLogger(level string, w io.Writer) *SlogLogger {
	lvl, _ := ParseLevel(level)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return newSlogLogger(handler, nil)
}

// NewConsoleLogger creates a text logger on stderr
func NewConsoleLogger(level string) *SlogLogger {
	return NewTextLogger(level, os.Stderr)
}
