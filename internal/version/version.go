// Package version reports which swatch build is running, for --version and
// the version command.
//
// Release builds stamp the variables below through the linker:
//
//	go build -ldflags "\
//	  -X github.com/jmylchreest/swatch/internal/version.Version=1.4.0 \
//	  -X github.com/jmylchreest/swatch/internal/version.Commit=$(git rev-parse HEAD) \
//	  -X github.com/jmylchreest/swatch/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	  ./cmd/swatch
//
// A plain "go build" leaves them at their development defaults.
package version

import (
	"fmt"
	"runtime"
)

const unstamped = "unknown"

var (
	Version = "dev"
	Commit  = unstamped
	Date    = unstamped // RFC3339

	GoVersion = runtime.Version()
)

// Info is the build stamp of the swatch binary, as printed by
// "swatch version". Commit and Date read "unknown" for local builds.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build stamp.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String is the "swatch version ..." line. Commit and build date are only
// included for stamped release builds.
func String() string {
	info := GetInfo()
	if info.stamped() {
		return fmt.Sprintf("swatch version %s (commit: %s, built: %s, %s, %s)",
			info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("swatch version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
}

// Short is the bare version, used by cobra's --version flag.
func Short() string {
	return Version
}

func (i Info) stamped() bool {
	return i.Commit != unstamped && i.Date != unstamped
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
