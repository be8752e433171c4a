package lang

import (
	"context"
	"strings"
	"testing"
)

func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()

	sources := []string{
		`memory<16,2>{ bank { layout: [0:8] translation: NOOP } }`,
		`memory<16,2>{ bank { layout: (Range 0 16 1) translation: (RShift #x1) } }`,
		`memory<8,2>{
			bank { layout: [0:4] translation: NOOP }
			bank { layout: [4:8] translation: 100 }
		}`,
		`memory<8,1>{ bank { layout: [[0:4] [8:16:2]] translation:
			switch { INPUT < 4 && INPUT > 1 || INPUT == 9 -> [INPUT + 1; INPUT >> 1],
			         4 =/= INPUT -> 16 - INPUT,
			         -> NOOP }
		} }`,
		`memory<8,1>{ bank { layout: [0:8] translation:
			switch { !INPUT < 4 -> INPUT - 2, -> INPUT + 2 }
		} }`,
	}

	ctx := context.Background()

	for _, src := range sources {
		c, err := ParseComponent(ctx, src)
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}

		var first strings.Builder
		if err := c.Format(ctx, &first, 0); err != nil {
			t.Fatalf("format: %v", err)
		}

		again, err := ParseComponent(ctx, first.String())
		if err != nil {
			t.Fatalf("reparse %q: %v", first.String(), err)
		}

		var second strings.Builder
		if err := again.Format(ctx, &second, 0); err != nil {
			t.Fatalf("reformat: %v", err)
		}

		// Canonical output is a fixed point of format-then-parse.
		if first.String() != second.String() {
			t.Errorf("round trip diverged:\n  first:  %s\n  second: %s",
				first.String(), second.String())
		}
	}
}

func TestFormatIndented(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	c := mustParse(t, `memory<8,2>{
		bank { layout: [0:4] translation: NOOP }
		bank { layout: [4:8] translation: 100 }
	}`)

	var buf strings.Builder
	if err := c.Format(ctx, &buf, 2); err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	out := buf.String()

	if !strings.HasPrefix(out, "memory<8,2>{\n  bank {") {
		t.Errorf("unexpected indented header:\n%s", out)
	}

	// Indented output parses back to the same canonical form.
	if _, err := ParseComponent(ctx, out); err != nil {
		t.Errorf("reparse of indented output failed: %v", err)
	}
}

func TestFormatTranslationSpellings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		t    Translation
		want string
	}{
		{name: "noop", t: Primitive{Op: Noop}, want: "NOOP"},
		{name: "constant", t: Primitive{Op: Constant, Value: 7}, want: "7"},
		{name: "add", t: Primitive{Op: Add, Value: 16}, want: "INPUT + 16"},
		{name: "subpv", t: Primitive{Op: SubPV, Value: 16}, want: "16 - INPUT"},
		{name: "subvp", t: Primitive{Op: SubVP, Value: 16}, want: "INPUT - 16"},
		{name: "rshift", t: Primitive{Op: RShift, Value: 2}, want: "INPUT >> 2"},
		{
			name: "sequence",
			t: Sequence{Stages: []Primitive{
				{Op: Add, Value: 1},
				{Op: RShift, Value: 1},
			}},
			want: "[INPUT + 1; INPUT >> 1]",
		},
		{
			name: "switch",
			t: Switch{
				Cases: []SwitchCase{{
					Guard: Comparison{Side: InputOnLeft, Op: CmpLT, Value: 4},
					Body:  Primitive{Op: Noop},
				}},
				Default: Primitive{Op: Constant, Value: 9},
			},
			want: "switch { INPUT < 4 -> NOOP, -> 9 }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatTranslation(tt.t); got != tt.want {
				t.Errorf("FormatTranslation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatGuardSpellings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		g    BoolExpr
		want string
	}{
		{
			name: "input left",
			g:    Comparison{Side: InputOnLeft, Op: CmpNE, Value: 7},
			want: "INPUT != 7",
		},
		{
			name: "input right",
			g:    Comparison{Side: InputOnRight, Op: CmpLE, Value: 4},
			want: "4 <= INPUT",
		},
		{
			name: "negation parenthesized",
			g:    Not{X: Comparison{Side: InputOnLeft, Op: CmpLT, Value: 4}},
			want: "!(INPUT < 4)",
		},
		{
			name: "flat chain",
			g: Combine{
				First: Comparison{Side: InputOnLeft, Op: CmpLT, Value: 4},
				Rest: []CombineTerm{
					{Op: BoolAnd, X: Comparison{Side: InputOnLeft, Op: CmpGT, Value: 1}},
					{Op: BoolOr, X: Comparison{Side: InputOnLeft, Op: CmpEQ, Value: 9}},
				},
			},
			want: "INPUT < 4 && INPUT > 1 || INPUT == 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatGuard(tt.g); got != tt.want {
				t.Errorf("FormatGuard() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatJSON(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	c := mustParse(t,
		`memory<16,2>{ bank { layout: [0:8:2] translation: INPUT + 16 } }`)

	var buf strings.Builder
	if err := c.FormatJSON(ctx, &buf, 0); err != nil {
		t.Fatalf("FormatJSON() error: %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		`"params":[16,2]`,
		`"start":0`,
		`"stride":2`,
		`"INPUT + 16"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %s:\n%s", want, out)
		}
	}
}

func TestFormatYAML(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	c := mustParse(t,
		`memory<16,2>{ bank { layout: [0:8] translation: NOOP } }`)

	var buf strings.Builder
	if err := c.FormatYAML(ctx, &buf, 2); err != nil {
		t.Fatalf("FormatYAML() error: %v", err)
	}

	out := buf.String()

	for _, want := range []string{"params:", "banks:", "translation: NOOP"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintAST(t *testing.T) {
	t.Parallel()

	c := mustParse(t, `memory<8,1>{ bank { layout: [0:8] translation:
		switch { INPUT < 4 -> NOOP, -> INPUT - 4 }
	} }`)

	var buf strings.Builder
	c.Print(&buf)

	out := buf.String()

	for _, want := range []string{
		"Component<8,1>",
		"Bank 0",
		"Layout: [0:8]",
		"switch",
		"INPUT < 4 -> NOOP",
		"default -> INPUT - 4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("AST dump missing %q:\n%s", want, out)
		}
	}
}
