package lang

import (
	"log/slog"
)

// Failure records one trace access the component could not serve.
type Failure struct {
	Step int
	Port int
	Addr uint64
	Err  error
}

// Report summarizes a verification run.
type Report struct {
	Checked  int
	Failures []Failure
}

// OK reports whether every checked access passed.
func (r *Report) OK() bool { return len(r.Failures) == 0 }

// Verify checks the component against an access trace. For each
// request the bank at the request's port position must translate the
// address to a slot whose layout entry is that same address — the
// round-trip a working decoder performs. Structural failures (a port
// with no bank) and translation failures are collected per access;
// the error result is reserved for an unusable trace.
func (c *Component) Verify(t *Trace) (*Report, error) {
	if t == nil || len(t.steps) == 0 {
		return nil, ErrBadTrace.With(slog.String("reason", "empty trace"))
	}

	report := &Report{}

	for access := range t.Accesses() {
		report.Checked++

		if access.Port >= len(c.Banks) {
			report.Failures = append(report.Failures, Failure{
				Step: access.Step,
				Port: access.Port,
				Addr: access.Addr,
				Err: ErrBadTrace.With(
					slog.Int("port", access.Port),
					slog.Int("bank_count", len(c.Banks)),
				),
			})

			continue
		}

		bank := c.Banks[access.Port]

		slot, err := evalTranslation(
			bank.Translation,
			access.Addr,
			func(string) (uint64, bool) { return access.Addr, true },
			c.mask,
		)
		if err != nil {
			report.Failures = append(report.Failures, Failure{
				Step: access.Step,
				Port: access.Port,
				Addr: access.Addr,
				Err:  err,
			})

			continue
		}

		got, ok := bank.Layout.At(slot)
		if !ok || got != access.Addr {
			report.Failures = append(report.Failures, Failure{
				Step: access.Step,
				Port: access.Port,
				Addr: access.Addr,
				Err: ErrVerifyMismatch.With(
					slog.Uint64("slot", slot),
					slog.Uint64("held", got),
				),
			})
		}
	}

	c.logger.Trace("trace verified",
		slog.Int("checked", report.Checked),
		slog.Int("failures", len(report.Failures)),
	)

	return report, nil
}
