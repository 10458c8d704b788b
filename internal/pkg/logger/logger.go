// Package logger provides the leveled logger shared by the crypto-lab tools.
//
// Records are diagnostics only. Tool output such as digests and timing lines is
// written by the commands themselves, so console records go to stderr and a
// file logger can be configured to keep the terminal clean.
package logger

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
