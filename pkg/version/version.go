// Package version exposes build metadata injected with -ldflags.
//
//	go build -ldflags "-X github.com/rshade/convkit/pkg/version.version=v1.2.3"
package version

import (
	"fmt"
	"runtime/debug"
)

//nolint:gochecknoglobals // Set at link time.
var (
	version   = "dev"
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the release version, falling back to the module
// version recorded by the Go toolchain for `go install` builds.
func GetVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

// GetGitCommit returns the commit the binary was built from, or "unknown".
func GetGitCommit() string {
	if gitCommit != "" {
		return gitCommit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}
	return "unknown"
}

// GetBuildDate returns the build timestamp, or "unknown".
func GetBuildDate() string {
	if buildDate == "" {
		return "unknown"
	}
	return buildDate
}

// String returns the full version line shown by --version.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", GetVersion(), GetGitCommit(), GetBuildDate())
}
