package build

import (
	"runtime"

	"github.com/loozhengyuan/grench/build"
)

const App = "calc"

// Overridden at link time, e.g.
// -ldflags "-X github.com/loozhengyuan/calcsolver/internal/build.Version=v1.2.0"
var (
	Version    = "v0.0.0"
	CommitHash = "dev"
	Timestamp  = "1970-01-01T00:00:00Z"
)

func Info() build.Info {
	return build.Info{
		App:       App,
		System:    runtime.GOOS,
		Arch:      runtime.GOARCH,
		Version:   Version,
		Commit:    CommitHash,
		Timestamp: Timestamp,
	}
}
