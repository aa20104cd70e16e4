package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/convkit/internal/config"
	"github.com/rshade/convkit/internal/converter"
	"github.com/rshade/convkit/internal/logging"
	"github.com/rshade/convkit/internal/units"
)

// conversionFlags are shared by convert and batch.
type conversionFlags struct {
	domain    string
	precision int
}

func (f *conversionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.domain, "domain", "d", "",
		"restrict unit lookup to one domain (default: inferred from the units)")
	cmd.Flags().IntVarP(&f.precision, "precision", "p", -1,
		"maximum fraction digits (default: per-domain setting)")
}

// newSession resolves the unit tokens and opens a session over them.
func (f *conversionFlags) newSession(cmd *cobra.Command, fromToken, toToken string) (*converter.Session, error) {
	var domain units.Domain
	if f.domain != "" {
		d, err := units.ParseDomain(f.domain)
		if err != nil {
			return nil, err
		}
		domain = d
	}

	table, from, to, err := units.ResolvePair(domain, fromToken, toToken)
	if err != nil {
		return nil, err
	}

	precision := f.precision
	if precision < 0 {
		precision = config.GetGlobalConfig().PrecisionFor(table)
	}
	if precision > units.MaxPrecision {
		return nil, fmt.Errorf("precision must be between 0 and %d, got %d", units.MaxPrecision, precision)
	}

	log := logging.ComponentLogger(*logging.FromContext(cmd.Context()), "converter")
	return converter.NewSession(table,
		converter.WithUnits(from, to),
		converter.WithPrecision(precision),
		converter.WithLogger(log),
	)
}

// NewConvertCmd creates the convert command.
func NewConvertCmd() *cobra.Command {
	var (
		flags  conversionFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between two units",
		Long: `Converts a value from one unit to another.

Units are matched by id, symbol or alias (for example "kilometer", "km",
"kilometre"). The domain is inferred from the units unless --domain is set.
A value that is not a number prints "-" instead of failing.`,
		Example: `  convkit convert 100 celsius fahrenheit
  convkit convert 1 mi m --precision 0
  convkit convert 2.5 GiB MB --output json
  convkit convert -- -40 C F`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}

			session, err := flags.newSession(cmd, args[1], args[2])
			if err != nil {
				return err
			}
			res := session.SetInput(args[0])

			logging.FromContext(cmd.Context()).Debug().
				Str("input", res.Input).
				Str("result", res.Formatted).
				Msg("converted")

			done, err := renderStructured(cmd.OutOrStdout(), format, res)
			if done || err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Formatted)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json or yaml (default from config)")

	return cmd
}
