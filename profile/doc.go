// Package profile provides optional runtime profiling for the membank
// tool.
//
// It integrates [github.com/pkg/profile] behind the "pprof" build tag.
// When built without the tag (the default), every operation is a no-op
// with zero runtime overhead, and the CLI hides its profiling flags.
//
// Supported modes with the tag enabled: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, and trace. Use [Modes] to list
// them programmatically. Profile files are written to the configured
// directory with names matching the mode (cpu.pprof, mem.pprof, ...).
//
//	p := profile.Config(func() (string, string, bool) {
//		return "cpu", "/tmp/profiles", false
//	})
//	defer p.Start().Stop()
//
// Analyze results with:
//
//	go tool pprof /tmp/profiles/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
