// Package cli contains the command line interface for membank.
//
// # Usage
//
//	membank eval -f decoder.mb 0x10 0x2a
//	membank fmt json -f decoder.mb
//	membank verify -f decoder.mb trace.json
//	membank repl -f decoder.mb
//
// The eval command is the default, so addresses can be given directly:
//
//	membank -f decoder.mb 0x10
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu,
//     goroutine, heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/membank/pprof)
package cli
