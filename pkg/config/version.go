// Package config carries build metadata stamped in at link time.
package config

import (
	"fmt"
	"runtime"
)

// Set via -ldflags on release builds; the zero values mark a local
// development build.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the full build description on one line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s %s/%s)",
		Version, Commit, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
