package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/convkit/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness:
schema version, output format, default domain, per-domain precision and
logging settings.`,
		Example: `  # Validate current configuration
  convkit config validate

  # Validate and show detailed information
  convkit config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	cmd.Printf("Configuration is valid\n")

	if verbose {
		cmd.Println()
		cmd.Println("Configuration details:")
		cmd.Printf("  File: %s\n", cfg.ConfigPath())
		cmd.Printf("  Version: %s\n", cfg.Version)
		cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
		cmd.Printf("  Default domain: %s\n", cfg.Display.DefaultDomain)
		if len(cfg.Display.Precision) == 0 {
			cmd.Println("  No precision overrides")
		}
		for name, digits := range cfg.Display.Precision {
			cmd.Printf("  Precision %s: %d\n", name, digits)
		}
		cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}

	return nil
}
