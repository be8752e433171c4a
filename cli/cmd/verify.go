package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/membank/membank/lang"
)

// Verify checks a memory description against a recorded access trace.
//
// Each trace step is a row of per-port address requests; the bank at a
// request's port position must translate the address to a slot whose
// layout entry round-trips back to that address. Failures are reported
// per access, and a failing trace yields a non-zero exit.
type Verify struct {
	Trace string `arg:"" help:"JSON access trace file or '-' for stdin" name:"trace"`

	File  string `default:"-"        help:"Memory description file or '-' for stdin" short:"f"`
	Width uint   `default:"${width}" help:"Address width in bits"                    short:"w"`
	Quiet bool   `help:"Suppress per-failure output" short:"q"`
}

// Run executes the verify command.
func (v *Verify) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	component, err := ParseSource(ctx, v.File, v.Width)
	if err != nil {
		return err
	}

	src, err := openSource(v.Trace)
	if err != nil {
		return err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return ErrReadTrace.Wrap(err)
	}

	trace, err := lang.DecodeTrace(data)
	if err != nil {
		return ErrReadTrace.Wrap(err)
	}

	report, err := component.Verify(trace)
	if err != nil {
		return err
	}

	if !v.Quiet {
		for _, failure := range report.Failures {
			fmt.Printf("step %d port %d addr %d: %v\n",
				failure.Step, failure.Port, failure.Addr, failure.Err)
		}
	}

	fmt.Printf("checked %d accesses, %d failures\n",
		report.Checked, len(report.Failures))

	if !report.OK() {
		return ErrVerifyFailed.With(
			slog.Int("checked", report.Checked),
			slog.Int("failures", len(report.Failures)),
		)
	}

	return nil
}
