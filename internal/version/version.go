package version

import (
	"fmt"
	"runtime"
)

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/redhat-appstudio/appconfig/internal/version.BuildVersion=v1.2.3 \
//	  -X github.com/redhat-appstudio/appconfig/internal/version.BuildCommit=$(git rev-parse --short HEAD)"
var (
	BuildVersion = "v0.1.0"
	BuildTime    = "unknown"
	BuildCommit  = "unknown"
)

// Info is the build metadata in structured form.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// GetVersion returns the current version string.
func GetVersion() string {
	return BuildVersion
}

// GetShortVersion returns the version without the "v" prefix.
func GetShortVersion() string {
	if len(BuildVersion) > 0 && BuildVersion[0] == 'v' {
		return BuildVersion[1:]
	}
	return BuildVersion
}

// GetBuildInfo returns version, build time, commit and Go version on one line.
func GetBuildInfo() string {
	return fmt.Sprintf("%s (built: %s, commit: %s, go: %s)",
		BuildVersion, BuildTime, BuildCommit, runtime.Version())
}

// GetInfo returns the build metadata as a struct for JSON or YAML output.
func GetInfo() Info {
	return Info{
		Version:   BuildVersion,
		Commit:    BuildCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
}
