package circegen

import (
	"fmt"
	"runtime"
)

var (
	// version is set via ldflags during release builds.
	// For development builds, this will show "dev"
	version = "dev"

	// commit is the short git hash of the release build
	commit = "unknown"

	// buildTime is the RFC3339 timestamp of the release build
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or 'unknown'
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or 'unknown'
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version used to build the binary
func GoVersion() string {
	return runtime.Version()
}

// Banner returns the one-line identification printed by the version command
func Banner() string {
	return fmt.Sprintf("circegen %s (commit %s, built %s, %s)", version, commit, buildTime, GoVersion())
}
