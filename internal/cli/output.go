package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rshade/convkit/internal/config"
)

// resolveOutputFormat returns the --output flag value, or the configured
// default when the flag was not given.
func resolveOutputFormat(flag string) (string, error) {
	format := flag
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	switch format {
	case config.FormatText, config.FormatJSON, config.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text, json or yaml)", format)
	}
}

// renderStructured writes v as JSON or YAML. It reports false for the
// text format so the caller can render its own text.
func renderStructured(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}
