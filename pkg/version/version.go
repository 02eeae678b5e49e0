// Package version reports the version of the repoanalyzer binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at link time with
// -ldflags "-X github.com/quantmind-br/repoanalyzer/pkg/version.Version=v1.0.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

const unknown = "unknown"

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

var readBuildInfo = debug.ReadBuildInfo

// Get returns the version of the running binary. Link-time values win;
// anything left unset is taken from the module version and the VCS stamps
// embedded by `go build` or `go install`.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := readBuildInfo(); ok {
		if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.Commit == "":
				info.Commit = shortRevision(s.Value)
			case s.Key == "vcs.time" && info.BuildTime == "":
				info.BuildTime = s.Value
			}
		}
	}

	if info.Commit == "" {
		info.Commit = unknown
	}
	if info.BuildTime == "" {
		info.BuildTime = unknown
	}
	return info
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

func (i Info) String() string {
	return fmt.Sprintf("repoanalyzer %s (commit %s, built %s, %s %s)",
		i.Version, i.Commit, i.BuildTime, i.GoVersion, i.Platform)
}

// Short returns just the version, as shown by --version
func Short() string {
	return Get().Version
}

// Full returns the version line printed by the version command
func Full() string {
	return Get().String()
}
