package testutil

import (
	"strings"
	"testing"

	"github.com/MGTheTrain/crypto-lab/internal/pkg/config"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/logger"
)

type testLogWriter struct {
	t *testing.T
}

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// SetupTestLogger returns a debug logger whose records appear in the test output
// (go test -v, or on failure) instead of on stderr.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	return logger.NewTextLogger(config.LogLevelDebug, testLogWriter{t: t})
}
