package cmd

import (
	"errors"
	"testing"
)

func TestEvalAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    uint64
		wantErr bool
	}{
		{name: "decimal", input: "42", want: 42},
		{name: "hex", input: "0x40", want: 64},
		{name: "arithmetic", input: "0x40 + 8*2", want: 80},
		{name: "shift", input: "1 << 12", want: 4096},
		{name: "parenthesized", input: "(3 + 5) / 2", want: 4},
		{name: "negative", input: "-1", wantErr: true},
		{name: "fractional", input: "5 / 2.0", wantErr: true},
		{name: "not a number", input: `"x"`, wantErr: true},
		{name: "syntax error", input: "1 +", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := EvalAddress(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("EvalAddress(%q) = %d, want error", tt.input, got)
				}

				return
			}

			if err != nil {
				t.Fatalf("EvalAddress(%q) error: %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("EvalAddress(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvalInputs(t *testing.T) {
	t.Parallel()

	e := &Eval{Set: map[string]string{"INPUT": "2 + 3"}}

	inputs, err := e.inputs()
	if err != nil {
		t.Fatalf("inputs() error: %v", err)
	}

	if inputs["INPUT"] != 5 {
		t.Errorf(`inputs["INPUT"] = %d, want 5`, inputs["INPUT"])
	}

	// No bindings selects the implicit bind-to-address mode.
	e = &Eval{}

	inputs, err = e.inputs()
	if err != nil || inputs != nil {
		t.Errorf("inputs() = %v, %v, want nil, nil", inputs, err)
	}

	// A malformed binding is reported, not dropped.
	e = &Eval{Set: map[string]string{"INPUT": "oops("}}

	if _, err := e.inputs(); !errors.Is(err, ErrBadInput) {
		t.Errorf("inputs() error = %v, want ErrBadInput", err)
	}
}

func TestErrorFormatting(t *testing.T) {
	t.Parallel()

	base := NewError("read memory description")

	if got := base.Error(); got != "read memory description" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := base.Wrap(errors.New("no such file"))

	if got := wrapped.Error(); got != "read memory description: no such file" {
		t.Errorf("wrapped Error() = %q", got)
	}

	if !errors.Is(wrapped, wrapped.Unwrap()) {
		t.Error("Unwrap() chain broken")
	}
}
