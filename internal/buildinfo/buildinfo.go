// Package buildinfo identifies the running firmware or host build.
package buildinfo

import "runtime/debug"

// Set at build time:
//
//	-ldflags "-X surface/internal/buildinfo.Version=v1.2.0 -X surface/internal/buildinfo.Commit=abc1234"
var (
	Version = "dev"
	Commit  = ""
)

// Short returns the version, or a short commit hash for dev builds.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if c := commit(); c != "" {
		return "dev-" + c
	}
	return "dev"
}

// Banner is the one-line identification logged at start.
func Banner(name string) string {
	return name + " " + Short()
}

func commit() string {
	c := Commit
	if c == "" {
		c = vcsRevision()
	}
	if len(c) > 7 {
		c = c[:7]
	}
	return c
}

func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
