package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Log levels accepted in LoggerSettings.LogLevel. Critical suppresses everything below fatal errors.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log sinks accepted in LoggerSettings.LogType
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LoggerSettings selects the log level and sink. The rotation fields apply to
// the file sink only and are required there.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" yaml:"log_level" toml:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" yaml:"log_type" toml:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" yaml:"file_path" toml:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size" toml:"max_size" validate:"required_if=LogType file,min=0,max=100"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" validate:"required_if=LogType file,min=0,max=10"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age" validate:"required_if=LogType file,min=0,max=365"`
}

// Validate checks the level, the sink and, for the file sink, the rotation limits
// (max_size 1-100 MB, max_backups 1-10, max_age 1-365 days).
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("%s failed on %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("invalid logger settings: %s", strings.Join(messages, "; "))
	}
	return fmt.Errorf("validation error: %w", err)
}
