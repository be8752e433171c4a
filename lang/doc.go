// Package lang implements the membank memory-description language: a
// DSL for bank-switched address translation as found in memory
// controllers, where an incoming address maps to a different
// underlying address depending on which bank layout claims it and,
// within a bank, on guarded switch logic.
//
// Two surface syntaxes parse to one canonical AST: a Z3-solver-
// flavored notation ("(Add #x10)", "(Range 0 16 1)") and a compact
// ASCII notation ("INPUT + 16", "[0:16]"). The evaluator never
// branches on which syntax produced a node.
//
// # Parsing
//
//	c, err := lang.ParseComponent(ctx,
//		`memory<16,2>{ bank { layout: [0:8] translation: INPUT + 8 } }`)
//
// Components are immutable once parsed and safe for concurrent
// translation without synchronization. Use [ParseReader] or
// [ParseComponentCached] to share parses across repeated loads.
//
// # Translation
//
//	out, err := c.Translate(0x4)
//
// Banks are scanned in declaration order and the first layout
// containing the address wins. Switch guards dispatch on the first
// true guard; AND and OR in guards share one precedence level and
// fold strictly left to right. Arithmetic wraps modulo 2^W where W is
// the configured address width (default 64).
//
// The package accepts the Z3 notation purely as an alternate literal
// spelling. It does not solve or prove anything, and it produces
// addresses, never bytes.
package lang
