// Package buildinfo holds version information injected at build time:
//
//	go build -ldflags "-X github.com/matzehuels/pprep/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/pprep/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/pprep/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/pprep
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the build information, one field per line.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s\ngo: %s", Version, Commit, Date, runtime.Version())
}

// Template returns the --version template for cobra.
func Template() string {
	return "{{.Name}} " + Version + "\n" + String()[len("version: "+Version)+1:] + "\n"
}
