// Package cli implements the convkit command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/convkit/internal/config"
	"github.com/rshade/convkit/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the convkit CLI.
// It wires up configuration, logging and tracing, and the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "convkit",
		Short:         "Unit conversion toolkit",
		Long:          "convkit: convert values between units of length, area, volume, weight, temperature, speed, pressure, angle and data",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				config.SetGlobalConfig(cfg)
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		fmt.Sprintf("configuration file (default $%s/config.yaml)", config.HomeEnvVar))

	cmd.AddCommand(
		NewConvertCmd(),
		NewBatchCmd(),
		NewUnitsCmd(),
		NewTUICmd(),
		NewThemeCmd(),
		newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Convert 100 degrees Celsius to Fahrenheit
  convkit convert 100 celsius fahrenheit

  # Negative values go after --
  convkit convert -- -40 C F

  # Force a domain and print JSON
  convkit convert 5 km mi --domain length --output json

  # Convert a column of numbers from stdin
  seq 1 10 | convkit batch mi km

  # List the units of one domain
  convkit units data

  # Open the interactive converter
  convkit tui temperature

  # Persist the light theme
  convkit theme light

  # Set configuration values
  convkit config set display.precision.length 3`

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
