package lang

import (
	"errors"
	"slices"
	"testing"
)

func TestDecodeTrace(t *testing.T) {
	t.Parallel()

	trace, err := DecodeTrace([]byte(`[[0, null, 3], [1, 2, null]]`))
	if err != nil {
		t.Fatalf("DecodeTrace() error: %v", err)
	}

	if trace.Steps() != 2 {
		t.Errorf("Steps() = %d, want 2", trace.Steps())
	}

	if trace.Ports() != 3 {
		t.Errorf("Ports() = %d, want 3", trace.Ports())
	}

	got := slices.Collect(trace.Accesses())
	want := []Access{
		{Step: 0, Port: 0, Addr: 0},
		{Step: 0, Port: 2, Addr: 3},
		{Step: 1, Port: 0, Addr: 1},
		{Step: 1, Port: 1, Addr: 2},
	}

	if !slices.Equal(got, want) {
		t.Errorf("Accesses() = %v, want %v", got, want)
	}
}

func TestDecodeTraceRagged(t *testing.T) {
	t.Parallel()

	trace, err := DecodeTrace([]byte(`[[7], [1, 2], []]`))
	if err != nil {
		t.Fatalf("DecodeTrace() error: %v", err)
	}

	if trace.Steps() != 3 {
		t.Errorf("Steps() = %d, want 3", trace.Steps())
	}

	if trace.Ports() != 2 {
		t.Errorf("Ports() = %d, want 2", trace.Ports())
	}
}

func TestDecodeTraceErrors(t *testing.T) {
	t.Parallel()

	for _, data := range []string{``, `[]`, `{"steps": []}`, `[[true]]`} {
		if _, err := DecodeTrace([]byte(data)); !errors.Is(err, ErrBadTrace) {
			t.Errorf("DecodeTrace(%q) error = %v, want ErrBadTrace", data, err)
		}
	}
}

func TestVerifyRoundTripDecoder(t *testing.T) {
	t.Parallel()

	// Even addresses live in bank 0 at slot addr/2; odd addresses in
	// bank 1 at slot (addr-1)/2. Both translations invert their layout.
	c := mustParse(t, `memory<16,2>{
		bank { layout: [0:16:2] translation: INPUT >> 1 }
		bank { layout: [1:16:2] translation: [INPUT - 1; INPUT >> 1] }
	}`)

	trace, err := DecodeTrace([]byte(`[[0, 1], [2, 7], [14, null]]`))
	if err != nil {
		t.Fatalf("DecodeTrace() error: %v", err)
	}

	report, err := c.Verify(trace)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	if report.Checked != 5 {
		t.Errorf("Checked = %d, want 5", report.Checked)
	}

	if !report.OK() {
		t.Errorf("Verify() found failures: %v", report.Failures)
	}
}

func TestVerifyMismatch(t *testing.T) {
	t.Parallel()

	// Slot addr+1 holds addr+1, never addr.
	c := mustParse(t,
		`memory<8,1>{ bank { layout: [0:8] translation: INPUT + 1 } }`)

	trace, err := DecodeTrace([]byte(`[[3]]`))
	if err != nil {
		t.Fatalf("DecodeTrace() error: %v", err)
	}

	report, err := c.Verify(trace)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	if report.OK() {
		t.Fatal("Verify() passed, want mismatch failure")
	}

	if !errors.Is(report.Failures[0].Err, ErrVerifyMismatch) {
		t.Errorf("failure = %v, want ErrVerifyMismatch", report.Failures[0].Err)
	}
}

func TestVerifyPortWithoutBank(t *testing.T) {
	t.Parallel()

	c := mustParse(t,
		`memory<8,1>{ bank { layout: [0:8] translation: NOOP } }`)

	trace, err := DecodeTrace([]byte(`[[0, 5]]`))
	if err != nil {
		t.Fatalf("DecodeTrace() error: %v", err)
	}

	report, err := c.Verify(trace)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	if report.Checked != 2 {
		t.Errorf("Checked = %d, want 2", report.Checked)
	}

	if len(report.Failures) != 1 {
		t.Fatalf("failures = %d, want 1", len(report.Failures))
	}

	failure := report.Failures[0]

	if failure.Port != 1 || !errors.Is(failure.Err, ErrBadTrace) {
		t.Errorf("failure = %+v, want port 1 with ErrBadTrace", failure)
	}
}

func TestVerifyNilTrace(t *testing.T) {
	t.Parallel()

	c := mustParse(t,
		`memory<8,1>{ bank { layout: [0:8] translation: NOOP } }`)

	if _, err := c.Verify(nil); !errors.Is(err, ErrBadTrace) {
		t.Errorf("Verify(nil) error = %v, want ErrBadTrace", err)
	}
}
