package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CurrentVersion is the configuration schema version written by this build.
const CurrentVersion = "1.0.0"

// ErrIncompatibleVersion is returned when a configuration file was written
// by a newer major schema version.
var ErrIncompatibleVersion = errors.New("incompatible configuration version")

// CheckVersion accepts an empty version or any version whose major number
// is not greater than CurrentVersion's.
func CheckVersion(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: version %q is not semantic: %w", ErrInvalidConfig, version, err)
	}

	current := semver.MustParse(CurrentVersion)
	if v.Major() > current.Major() {
		return fmt.Errorf("%w: file is version %s, this build supports %d.x",
			ErrIncompatibleVersion, v, current.Major())
	}
	return nil
}
