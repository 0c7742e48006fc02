// Package version carries build metadata for quickdaily --version.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time with -ldflags "-X github.com/faizmokh/quickdaily/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the version line. Binaries installed with `go install module@vX`
// carry no ldflags, so the module version from the build info is used instead.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s)", resolved(), Commit, Date)
}

func resolved() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}
