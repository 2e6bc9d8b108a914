// Package version holds the floorplan build stamp, set with -ldflags -X at
// release time and printed by `floorplan -version`.
package version

import "fmt"

// Build stamp; the zero values mark a local development build.
var (
	Version   = "dev"
	GitSHA    = "unknown"
	BuildTime = "unknown"
)

// String formats the build metadata for -version output.
func String() string {
	return fmt.Sprintf("floorplan %s (git %s, built %s)", Version, GitSHA, BuildTime)
}
