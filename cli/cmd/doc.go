// Package cmd implements the membank subcommands: eval, fmt, and
// verify.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the
	// path to the runtime cache directory.
	CacheIdentifier = "cache"

	// DefaultWidthVar is the kong variable identifier containing the
	// default address width in bits.
	DefaultWidthVar = "width"
)
