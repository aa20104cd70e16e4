package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/convkit/internal/units"
)

// unitListing is the structured form of one domain in the units listing.
type unitListing struct {
	Domain      units.Domain `json:"domain" yaml:"domain"`
	Base        units.UnitID `json:"base" yaml:"base"`
	DefaultFrom units.UnitID `json:"default_from" yaml:"default_from"`
	DefaultTo   units.UnitID `json:"default_to" yaml:"default_to"`
	Precision   int          `json:"precision" yaml:"precision"`
	Units       []units.Unit `json:"units" yaml:"units"`
}

// NewUnitsCmd creates the units command.
func NewUnitsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "units [domain]",
		Short: "List supported units",
		Example: `  convkit units
  convkit units temperature --output yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}

			tables := units.Tables()
			if len(args) == 1 {
				domain, parseErr := units.ParseDomain(args[0])
				if parseErr != nil {
					return parseErr
				}
				table, _ := units.GetUnitTable(domain)
				tables = []*units.Table{table}
			}

			listings := make([]unitListing, 0, len(tables))
			for _, t := range tables {
				from, to := t.Defaults()
				listings = append(listings, unitListing{
					Domain:      t.Domain(),
					Base:        t.Base(),
					DefaultFrom: from,
					DefaultTo:   to,
					Precision:   t.Precision(),
					Units:       t.Units(),
				})
			}

			done, err := renderStructured(cmd.OutOrStdout(), format, listings)
			if done || err != nil {
				return err
			}
			return renderUnitsTable(cmd, listings)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json or yaml (default from config)")

	return cmd
}

func renderUnitsTable(cmd *cobra.Command, listings []unitListing) error {
	const padding = 2
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, padding, ' ', 0)

	fmt.Fprintln(w, "DOMAIN\tID\tSYMBOL\tNAME\tALIASES")
	for _, l := range listings {
		for _, u := range l.Units {
			marker := ""
			if u.ID == l.Base {
				marker = " *"
			}
			fmt.Fprintf(w, "%s\t%s%s\t%s\t%s\t%s\n",
				l.Domain, u.ID, marker, u.Symbol, u.Label, strings.Join(u.Aliases, ", "))
		}
	}
	return w.Flush()
}
