// Package version carries build metadata for logcolor.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time:
//
//	go build -ldflags "-X github.com/dkoosis/logcolor/internal/version.Version=v1.2.0"
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the build metadata on one line.
func String() string {
	return fmt.Sprintf("logcolor %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
