package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// Environment variables consulted by InitializeCLIConfig
const (
	EnvConfigPath = "CONFIG_PATH"
	EnvLogLevel   = "CRYPTO_LAB_LOG_LEVEL"
)

// DefaultConfigPath is read when neither a flag nor CONFIG_PATH names a file.
// A missing default file is not an error.
const DefaultConfigPath = "crypto-lab.yaml"

// DefaultHistoryDSN is the SQLite file used for measurement history
const DefaultHistoryDSN = "crypto-lab-history.db"

// CLIConfig is the root configuration of crypto-lab-cli
type CLIConfig struct {
	Logger   LoggerSettings   `mapstructure:"logger" yaml:"logger" toml:"logger"`
	Database DatabaseSettings `mapstructure:"database" yaml:"database" toml:"database"`
	Keys     KeySettings      `mapstructure:"keys" yaml:"keys" toml:"keys"`
}

// DefaultCLIConfig returns the configuration used when no file is present
func DefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		Logger: LoggerSettings{
			LogLevel: LogLevelWarning,
			LogType:  LogTypeConsole,
		},
		Database: DatabaseSettings{
			Enabled: true,
			Type:    SqliteDbType,
			DSN:     DefaultHistoryDSN,
		},
		Keys: DefaultKeySettings(),
	}
}

// Validate validates every section of the configuration
func (c *CLIConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Keys.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeCLIConfig loads the YAML or TOML file at path on top of DefaultCLIConfig.
// An empty path falls back to CONFIG_PATH and then DefaultConfigPath; only an
// explicitly requested file has to exist.
func InitializeCLIConfig(path string) (*CLIConfig, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultConfigPath
		explicit = false
	}

	cfg := DefaultCLIConfig()

	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err := decodeConfig(path, data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logger.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// decodeConfig picks the format from the file extension; anything but .toml is YAML.
// Unknown keys are rejected in both formats.
func decodeConfig(path string, data []byte, cfg *CLIConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown keys %v", undecoded)
		}
		return nil
	}
	return yaml.UnmarshalStrict(data, cfg)
}

// WriteYAML encodes the configuration as YAML
func (c *CLIConfig) WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteTOML encodes the configuration as TOML
func (c *CLIConfig) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
