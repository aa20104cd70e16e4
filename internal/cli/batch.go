package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// NewBatchCmd creates the batch command, which converts one value per input line.
func NewBatchCmd() *cobra.Command {
	var (
		flags conversionFlags
		file  string
	)

	cmd := &cobra.Command{
		Use:   "batch <from> <to>",
		Short: "Convert one value per line from stdin or a file",
		Long: `Reads values line by line and prints "<input>\t<result>" for each.

Blank lines are skipped. Lines that are not numbers print "-" as the result.`,
		Example: `  seq 1 5 | convkit batch mi km
  convkit batch celsius kelvin --file readings.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := flags.newSession(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if file != "" {
				f, openErr := os.Open(file)
				if openErr != nil {
					return fmt.Errorf("opening input file: %w", openErr)
				}
				defer f.Close()
				in = f
			}

			return runBatch(in, cmd.OutOrStdout(), func(line string) string {
				return session.SetInput(line).Formatted
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "", "read values from this file instead of stdin")

	return cmd
}

// runBatch applies convert to every non-blank line of in.
func runBatch(in io.Reader, out io.Writer, convert func(string) string) error {
	scanner := bufio.NewScanner(in)
	w := bufio.NewWriter(out)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", line, convert(line)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return w.Flush()
}
