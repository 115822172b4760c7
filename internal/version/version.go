package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const coreVersion = "0.1.0"

// Provisioned by ldflags
var commit string

// Core returns the core version.
func Core() string {
	return coreVersion
}

// Commit returns the commit the binary was built from, taken from
// ldflags or the embedded vcs info, or "dev".
func Commit() string {
	if commit != "" {
		return commit
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return "dev"
}

// Full returns the version including commit hash, runtime os and arch.
func Full() string {
	return fmt.Sprintf("v%s (%s) %s/%s", coreVersion, Commit(), runtime.GOOS, runtime.GOARCH)
}
