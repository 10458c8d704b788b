// Package main is the entry point for the crypto-lab-cli application.
// It initializes the root command, registers the AES, RSA, SHA-256, substitution,
// history and config command groups, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/crypto-lab/cmd/crypto-lab-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func newRootCommand() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "crypto-lab-cli",
		Short: "Educational cryptography CLI tool",
		Long: `crypto-lab-cli demonstrates AES-256-CBC file encryption, RSA-2048 OAEP
encryption with PKCS#1 v1.5 signatures, SHA-256 hashing and frequency
analysis of substitution ciphers.

Running a command group without a subcommand starts its interactive menu.
Every operation reports its elapsed time and throughput; measurements are
kept in a local history database unless disabled in the configuration.

The configuration file (YAML, or TOML when it ends in .toml) is taken from
--config, then CONFIG_PATH, then ./crypto-lab.yaml if present.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringP(commands.ConfigFlag, "", "", "Path to the YAML or TOML configuration file")

	if err := initializeCommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to initialize commands: %w", err)
	}
	return rootCmd, nil
}

func run() error {
	rootCmd, err := newRootCommand()
	if err != nil {
		return err
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitAESCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize AES commands: %w", err)
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := commands.InitSHA256Commands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize SHA-256 commands: %w", err)
	}

	if err := commands.InitSubstitutionCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize substitution commands: %w", err)
	}

	if err := commands.InitHistoryCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize history commands: %w", err)
	}

	if err := commands.InitConfigCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize config commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
