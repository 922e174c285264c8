// Package version provides build-time version information for skillseed.
package version

import (
	"fmt"
	"runtime"
)

// Name is the program name shown in version output.
const Name = "skillseed"

// Build-time variables set via ldflags.
// Example: go build -ldflags="-X github.com/andywolf/skillseed/internal/version.Version=v1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Short returns the version string (e.g., "v1.2.3" or "dev").
func Short() string {
	return Version
}

// ShortCommit returns the first seven characters of the commit SHA.
func ShortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}

// Info returns a single-line version string.
// Format: "skillseed v1.2.3 (commit: abc1234, built: 2024-01-15T10:30:00Z, go: go1.24.x)"
func Info() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s, go: %s)",
		Name, Version, ShortCommit(), BuildDate, runtime.Version())
}

// Full returns a multi-line verbose version output.
func Full() string {
	return fmt.Sprintf(`%s %s
  Commit:     %s
  Built:      %s
  Go version: %s
  OS/Arch:    %s/%s`,
		Name, Version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
