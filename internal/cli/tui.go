package cli

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/convkit/internal/config"
	"github.com/rshade/convkit/internal/logging"
	"github.com/rshade/convkit/internal/tui"
	"github.com/rshade/convkit/internal/units"
)

// ErrNotATerminal is returned when the TUI is started without a terminal.
var ErrNotATerminal = errors.New("the interactive converter requires a terminal; use 'convkit convert' instead")

// NewTUICmd creates the tui command.
func NewTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui [domain]",
		Short: "Open the interactive converter",
		Long: `Opens a full-screen converter.

Keys: tab/shift+tab move between the value and the unit selectors,
arrow keys pick a unit, ctrl+s swaps the units, ctrl+n/ctrl+p change the
domain, ctrl+t toggles the theme, ctrl+y copies the result, esc quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) || !isTerminal(os.Stdin) {
				return ErrNotATerminal
			}

			cfg := config.GetGlobalConfig()
			domain := cfg.DefaultDomain()
			if len(args) == 1 {
				d, err := units.ParseDomain(args[0])
				if err != nil {
					return err
				}
				domain = d
			}

			store, err := config.NewFileSettingsStore("")
			if err != nil {
				return err
			}

			model, err := tui.NewConverterModel(domain,
				tui.WithSettingsStore(store),
				tui.WithPrecisionFunc(cfg.PrecisionFor),
				tui.WithModelLogger(tuiLogger(cmd.Context())),
			)
			if err != nil {
				return err
			}

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	return cmd
}

// tuiLogger returns the logger for the full-screen converter. Terminal
// output would draw over the alternate screen, so unless logs go to a file
// the model reports problems on its status line only.
func tuiLogger(ctx context.Context) zerolog.Logger {
	if !logging.WritesToFile(ctx) {
		return zerolog.Nop()
	}
	return logging.ComponentLogger(*logging.FromContext(ctx), "tui")
}
