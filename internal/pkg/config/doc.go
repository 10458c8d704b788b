// Package config holds the settings of crypto-lab-cli: logger, measurement
// history database and key file locations. CLIConfig combines them and is
// loaded from an optional YAML or TOML file layered over built-in defaults.
package config
