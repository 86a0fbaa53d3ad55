package version

import "fmt"

// These variables are set via ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with commit and build date when
// they were stamped in.
func GetFullVersion() string {
	if GitCommit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, %s)", Version, GitCommit, BuildDate)
}
