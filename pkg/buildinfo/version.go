// Package buildinfo reports which c4dsl build produced a DSL document.
//
// The values are printed by "c4dsl --version". Release builds set them via
// ldflags:
//
//	go build -ldflags "-X github.com/c4dsl/c4dsl/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/c4dsl/c4dsl/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/c4dsl/c4dsl/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/c4dsl
//
// Builds without ldflags report "dev".
package buildinfo

import "fmt"

// Build variables, overwritten at link time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// IsRelease reports whether Version was set at link time.
func IsRelease() bool {
	return Version != "dev"
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template for the c4dsl root command. The
// command name comes from cobra, so renamed binaries print their own name.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
