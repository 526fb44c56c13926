// Package version carries the build/provenance metadata SSSOM/TSV writers
// stamp into the mapping_tool slot when a mapping set doesn't declare one
// of its own (spec.md §4.C: "mapping_tool ... identifies the tool that
// generated the mapping").
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the sssom-core release version, set via ldflags.
	Version string
	// Branch is the git branch it was built from, set via ldflags.
	Branch string
	// BuildUser is the user who built the binary, set via ldflags.
	BuildUser string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the git commit this build embeds.
	Revision = getRevision()
	// GoVersion is the Go toolchain version used to build.
	GoVersion = runtime.Version()
	// GoOS is the operating system target.
	GoOS = runtime.GOOS
	// GoArch is the architecture target.
	GoArch = runtime.GOARCH
)

// ToolIdentifier returns the string a writer stamps into a mapping set's
// mapping_tool slot when a caller doesn't supply its own: the release
// version if ldflags set one, otherwise the embedded git revision, always
// prefixed with the module name so it reads as curation provenance rather
// than a bare version string (e.g. "sssom-core/v1.4.0" or
// "sssom-core/a1b2c3d-dirty").
func ToolIdentifier() string {
	if Version != "" {
		return fmt.Sprintf("sssom-core/%s", Version)
	}

	return fmt.Sprintf("sssom-core/%s", Revision)
}

func getRevision() string {
	rev := "unknown"

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return rev
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			if v.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
