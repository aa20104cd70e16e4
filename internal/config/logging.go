package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/convkit/internal/logging"
)

// LoggingConfig is the logging section of the configuration file.
type LoggingConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn or error.
	Level string `yaml:"level" mapstructure:"level"`

	// Format is console or json. File output is always JSON.
	Format string `yaml:"format" mapstructure:"format"`

	// File, when set, sends log lines to this path instead of stderr.
	File string `yaml:"file,omitempty" mapstructure:"file"`
}

// Validate checks the level and format names.
func (lc *LoggingConfig) Validate() error {
	if lc.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(lc.Level)); err != nil {
			return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, lc.Level)
		}
	}

	switch lc.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalidConfig, lc.Format)
	}
}

// ToLoggingConfig converts the section into a logging.Config.
// A non-empty File selects file output; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global configuration's logging
// section. Overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
