package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/convkit/internal/config"
)

// NewThemeCmd creates the theme command, which shows or persists the theme preference.
func NewThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the colour theme",
		Example: `  convkit theme
  convkit theme light`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(config.ThemeLight), string(config.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.NewFileSettingsStore("")
			if err != nil {
				return err
			}
			return runTheme(cmd, store, args)
		},
	}
	return cmd
}

func runTheme(cmd *cobra.Command, store config.SettingsStore, args []string) error {
	settings, err := store.Load()
	if err != nil {
		if len(args) == 0 {
			return err
		}
		cmd.PrintErrf("Warning: %v, overwriting\n", err)
	}

	if len(args) == 0 {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), settings.Theme)
		return err
	}

	theme, err := config.ParseTheme(args[0])
	if err != nil {
		return err
	}
	settings.Theme = theme
	if err = store.Save(settings); err != nil {
		return err
	}

	cmd.Printf("Theme set to %s\n", theme)
	return nil
}
