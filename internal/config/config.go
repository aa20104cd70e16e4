// Package config loads, validates and persists convkit configuration.
//
// Configuration lives in $CONVKIT_HOME/config.yaml (default ~/.convkit).
// Values are resolved in order: built-in defaults, the YAML file, then
// CONVKIT_* environment variables (dots become underscores, so
// CONVKIT_LOGGING_LEVEL overrides logging.level and
// CONVKIT_DISPLAY_PRECISION_LENGTH overrides display.precision.length).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rshade/convkit/internal/units"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "CONVKIT"

// Output formats accepted by output.default_format and --output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalidConfig is returned by Validate for semantically invalid values.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the convkit configuration file.
type Config struct {
	Version string        `yaml:"version" mapstructure:"version"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Display DisplayConfig `yaml:"display" mapstructure:"display"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`

	configPath string
}

// OutputConfig controls CLI result rendering.
type OutputConfig struct {
	// DefaultFormat is text, json or yaml.
	DefaultFormat string `yaml:"default_format" mapstructure:"default_format"`
}

// DisplayConfig controls how results are presented.
type DisplayConfig struct {
	// DefaultDomain is the domain the TUI opens with.
	DefaultDomain string `yaml:"default_domain" mapstructure:"default_domain"`

	// Precision overrides the maximum fraction digits per domain name.
	Precision map[string]int `yaml:"precision,omitempty" mapstructure:"precision"`
}

// setDefaults registers the built-in defaults on v.
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", CurrentVersion)
	v.SetDefault("output.default_format", FormatText)
	v.SetDefault("display.default_domain", string(units.DomainLength))
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
}

// New loads the configuration from the default path. Load failures are
// reported on stderr and the defaults are used instead, so a broken file
// never prevents a conversion. Invalid values are reported too; the
// accessors ignore them.
func New() *Config {
	path, err := DefaultConfigPath()
	if err != nil {
		return defaults("")
	}

	cfg, err := Load(path)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		return defaults(path)
	}
	if err = cfg.Validate(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %v, ignoring invalid values\n", err)
	}
	return cfg
}

// defaults returns a Config holding only built-in values.
func defaults(path string) *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Unmarshalling plain defaults cannot fail.
	_ = v.Unmarshal(&cfg)
	cfg.configPath = path
	return &cfg
}

// Load reads the configuration at path. A missing file is not an error;
// a file that cannot be parsed is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var parseErr viper.ConfigParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
			if _, statErr := os.Stat(path); statErr == nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			// File not found is OK, we'll use defaults
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindPrecisionEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.configPath = path
	return &cfg, nil
}

// bindPrecisionEnv registers display.precision.<domain> with viper.
// AutomaticEnv only consults keys viper already knows, and the precision
// map has no defaults.
func bindPrecisionEnv(v *viper.Viper) {
	for _, d := range units.Domains() {
		key := precisionKeyStart + string(d)
		env := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		_ = v.BindEnv(key, env)
	}
}

// ConfigPath returns the file the configuration was loaded from and saves to.
func (c *Config) ConfigPath() string { return c.configPath }

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) { c.configPath = path }

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("no configuration path set")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating configuration directory: %w", err)
	}

	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing configuration file: %w", err)
	}
	return nil
}

// Validate checks every value for semantic correctness.
func (c *Config) Validate() error {
	if err := CheckVersion(c.Version); err != nil {
		return err
	}

	switch c.Output.DefaultFormat {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: output.default_format must be text, json or yaml, got %q",
			ErrInvalidConfig, c.Output.DefaultFormat)
	}

	if _, err := units.ParseDomain(c.Display.DefaultDomain); err != nil {
		return fmt.Errorf("%w: display.default_domain: %w", ErrInvalidConfig, err)
	}

	for name, digits := range c.Display.Precision {
		if _, err := units.ParseDomain(name); err != nil {
			return fmt.Errorf("%w: display.precision: %w", ErrInvalidConfig, err)
		}
		if digits < 0 || digits > units.MaxPrecision {
			return fmt.Errorf("%w: display.precision.%s must be between 0 and %d, got %d",
				ErrInvalidConfig, name, units.MaxPrecision, digits)
		}
	}

	return c.Logging.Validate()
}

// PrecisionFor returns the configured fraction digits for domain, or the
// table's own precision when no override exists or the override is out of
// range.
func (c *Config) PrecisionFor(table *units.Table) int {
	digits, ok := c.Display.Precision[string(table.Domain())]
	if !ok || digits < 0 || digits > units.MaxPrecision {
		return table.Precision()
	}
	return digits
}

// DefaultDomain returns the configured start-up domain, falling back to length.
func (c *Config) DefaultDomain() units.Domain {
	d, err := units.ParseDomain(c.Display.DefaultDomain)
	if err != nil {
		return units.DomainLength
	}
	return d
}
