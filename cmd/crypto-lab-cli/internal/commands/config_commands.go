package commands

import (
	"fmt"

	"github.com/MGTheTrain/crypto-lab/internal/pkg/config"

	"github.com/spf13/cobra"
)

// ShowConfigCmd prints the effective configuration after defaults, file and environment are applied
func ShowConfigCmd(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("invalid format flag: %w", err)
	}

	cfg, err := config.InitializeCLIConfig(configPath(cmd))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	switch format {
	case "yaml":
		return cfg.WriteYAML(cmd.OutOrStdout())
	case "toml":
		return cfg.WriteTOML(cmd.OutOrStdout())
	default:
		return fmt.Errorf("unsupported format %q (use yaml or toml)", format)
	}
}

// InitConfigCommands registers configuration commands
func InitConfigCommands(rootCmd *cobra.Command) error {
	var configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}
	rootCmd.AddCommand(configCmd)

	var showCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE:  ShowConfigCmd,
	}
	showCmd.Flags().StringP("format", "", "yaml", "Output format (yaml or toml)")
	configCmd.AddCommand(showCmd)

	return nil
}
