package app

import (
	"fmt"
	"runtime/debug"
)

// Version is stamped at release time:
//
//	go build -ldflags "-X github.com/heartmarshall/sesh-ledger/internal/app.Version=1.0.0" ./cmd/tracker
var Version = "dev"

// BuildVersion is Version plus the VCS revision the toolchain recorded in
// the binary, if any.
func BuildVersion() string {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}
	return formatVersion(Version, settings)
}

func formatVersion(version string, settings []debug.BuildSetting) string {
	var rev, at string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.time":
			at = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return version
	}

	if len(rev) > 12 {
		rev = rev[:12]
	}
	if dirty {
		rev += "-dirty"
	}
	if at == "" {
		return fmt.Sprintf("%s (%s)", version, rev)
	}
	return fmt.Sprintf("%s (%s, %s)", version, rev, at)
}
