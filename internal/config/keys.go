package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rshade/convkit/internal/units"
)

// Dotted key names understood by Get and Set.
const (
	KeyVersion        = "version"
	KeyOutputFormat   = "output.default_format"
	KeyDefaultDomain  = "display.default_domain"
	KeyLoggingLevel   = "logging.level"
	KeyLoggingFormat  = "logging.format"
	KeyLoggingFile    = "logging.file"
	precisionKeyStart = "display.precision."
)

// ErrUnknownKey is returned by Get and Set for keys outside the schema.
var ErrUnknownKey = fmt.Errorf("%w: unknown key", ErrInvalidConfig)

// Get returns the string form of a dotted configuration key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeyVersion:
		return c.Version, nil
	case KeyOutputFormat:
		return c.Output.DefaultFormat, nil
	case KeyDefaultDomain:
		return c.Display.DefaultDomain, nil
	case KeyLoggingLevel:
		return c.Logging.Level, nil
	case KeyLoggingFormat:
		return c.Logging.Format, nil
	case KeyLoggingFile:
		return c.Logging.File, nil
	}

	if name, ok := strings.CutPrefix(key, precisionKeyStart); ok {
		domain, err := units.ParseDomain(name)
		if err != nil {
			return "", fmt.Errorf("%w %q: %w", ErrUnknownKey, key, err)
		}
		if digits, found := c.Display.Precision[string(domain)]; found {
			return strconv.Itoa(digits), nil
		}
		table, err := units.GetUnitTable(domain)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(table.Precision()), nil
	}

	return "", fmt.Errorf("%w %q", ErrUnknownKey, key)
}

// Set assigns value to a dotted configuration key and validates the result.
// On validation failure the previous value is restored.
func (c *Config) Set(key, value string) error {
	prev := *c
	prev.Display.Precision = clonePrecision(c.Display.Precision)

	if err := c.assign(key, value); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		*c = prev
		return err
	}
	return nil
}

func (c *Config) assign(key, value string) error {
	switch key {
	case KeyVersion:
		return fmt.Errorf("%w: %s is read-only", ErrInvalidConfig, key)
	case KeyOutputFormat:
		c.Output.DefaultFormat = value
	case KeyDefaultDomain:
		c.Display.DefaultDomain = value
	case KeyLoggingLevel:
		c.Logging.Level = value
	case KeyLoggingFormat:
		c.Logging.Format = value
	case KeyLoggingFile:
		c.Logging.File = value
	default:
		name, ok := strings.CutPrefix(key, precisionKeyStart)
		if !ok {
			return fmt.Errorf("%w %q", ErrUnknownKey, key)
		}
		domain, err := units.ParseDomain(name)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrUnknownKey, key, err)
		}
		digits, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidConfig, key, value)
		}
		if c.Display.Precision == nil {
			c.Display.Precision = make(map[string]int)
		}
		c.Display.Precision[string(domain)] = digits
	}
	return nil
}

// List returns every key with its current value, sorted by key. Precision
// entries appear only for domains with an override.
func (c *Config) List() []KeyValue {
	out := []KeyValue{
		{KeyVersion, c.Version},
		{KeyOutputFormat, c.Output.DefaultFormat},
		{KeyDefaultDomain, c.Display.DefaultDomain},
		{KeyLoggingLevel, c.Logging.Level},
		{KeyLoggingFormat, c.Logging.Format},
		{KeyLoggingFile, c.Logging.File},
	}
	for name, digits := range c.Display.Precision {
		out = append(out, KeyValue{precisionKeyStart + name, strconv.Itoa(digits)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// KeyValue is one entry of List.
type KeyValue struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

func clonePrecision(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
