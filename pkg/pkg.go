//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the membank module embedded at
// build time. It is printed by the CLI when users invoke --version.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across
	// the project. It appears in help text and default config paths.
	Name = "membank"
	// Description is a short, human-readable summary of the project
	// used in help output and documentation.
	Description = "Bank-switched memory translation toolkit"
)

// SemVer returns the embedded version string with surrounding
// whitespace removed.
func SemVer() string {
	return strings.TrimSpace(Version)
}
