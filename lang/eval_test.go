package lang

import (
	"context"
	"errors"
	"testing"
)

func mustParse(t *testing.T, src string, opts ...Option) *Component {
	t.Helper()

	c, err := ParseComponent(context.Background(), src, opts...)
	if err != nil {
		t.Fatalf("ParseComponent(%q) error: %v", src, err)
	}

	return c
}

func TestTranslateSwitchFold(t *testing.T) {
	t.Parallel()

	c := mustParse(t, `memory<8,1>{ bank { layout: [0:8] translation:
		switch { INPUT < 4 -> INPUT + 0, -> INPUT - 4 }
	} }`)

	tests := []struct {
		addr uint64
		want uint64
	}{
		{0, 0},
		{2, 2},
		{3, 3},
		{4, 0},
		{6, 2},
		{7, 3},
	}

	for _, tt := range tests {
		got, err := c.Translate(tt.addr)
		if err != nil {
			t.Errorf("Translate(%d) error: %v", tt.addr, err)

			continue
		}

		if got != tt.want {
			t.Errorf("Translate(%d) = %d, want %d", tt.addr, got, tt.want)
		}
	}
}

func TestTranslateZ3Shift(t *testing.T) {
	t.Parallel()

	c := mustParse(t, `memory<16,2>{ bank {
		layout: (Range 0 16 1)
		translation: (RShift #x1)
	} }`)

	got, err := c.Translate(10)
	if err != nil {
		t.Fatalf("Translate(10) error: %v", err)
	}

	if got != 5 {
		t.Errorf("Translate(10) = %d, want 5", got)
	}
}

func TestTranslateBankSelection(t *testing.T) {
	t.Parallel()

	c := mustParse(t, `memory<8,2>{
		bank { layout: [0:4] translation: NOOP }
		bank { layout: [4:8] translation: 100 }
	}`)

	tests := []struct {
		addr uint64
		want uint64
	}{
		{1, 1},
		{3, 3},
		{4, 100},
		{5, 100},
		{7, 100},
	}

	for _, tt := range tests {
		got, err := c.Translate(tt.addr)
		if err != nil {
			t.Errorf("Translate(%d) error: %v", tt.addr, err)

			continue
		}

		if got != tt.want {
			t.Errorf("Translate(%d) = %d, want %d", tt.addr, got, tt.want)
		}
	}

	_, err := c.Translate(9)
	if !errors.Is(err, ErrNoBankMatch) {
		t.Errorf("Translate(9) error = %v, want ErrNoBankMatch", err)
	}
}

func TestTranslateBankPriority(t *testing.T) {
	t.Parallel()

	// Overlapping layouts: declaration order decides.
	c := mustParse(t, `memory<8,2>{
		bank { layout: [0:8] translation: 1 }
		bank { layout: [0:8] translation: 2 }
	}`)

	got, err := c.Translate(3)
	if err != nil {
		t.Fatalf("Translate(3) error: %v", err)
	}

	if got != 1 {
		t.Errorf("Translate(3) = %d, want first bank's 1", got)
	}
}

func TestTranslateSequenceThreading(t *testing.T) {
	t.Parallel()

	// Stages feed forward: (3 + 1) >> 1 = 2, not 3>>1.
	c := mustParse(t, `memory<8,1>{ bank {
		layout: [0:8]
		translation: [INPUT + 1; INPUT >> 1]
	} }`)

	got, err := c.Translate(3)
	if err != nil {
		t.Fatalf("Translate(3) error: %v", err)
	}

	if got != 2 {
		t.Errorf("Translate(3) = %d, want 2", got)
	}
}

func TestTranslateStridedLayout(t *testing.T) {
	t.Parallel()

	c := mustParse(t, `memory<16,1>{ bank {
		layout: [0:16:4]
		translation: NOOP
	} }`)

	for _, addr := range []uint64{0, 4, 8, 12} {
		if _, err := c.Translate(addr); err != nil {
			t.Errorf("Translate(%d) error: %v", addr, err)
		}
	}

	for _, addr := range []uint64{2, 5, 13, 16} {
		if _, err := c.Translate(addr); !errors.Is(err, ErrNoBankMatch) {
			t.Errorf("Translate(%d) error = %v, want ErrNoBankMatch",
				addr, err)
		}
	}
}

func TestTranslateFlatGuardPrecedence(t *testing.T) {
	t.Parallel()

	// Left-to-right fold: (a && b) || c, never a && (b || c).
	// At INPUT=5: (5<4 && 5>10) || 5==5 is true.
	// Right-grouped it would be 5<4 && (...) which is false.
	c := mustParse(t, `memory<8,1>{ bank { layout: [0:8] translation:
		switch { INPUT < 4 && INPUT > 10 || INPUT == 5 -> 1, -> 0 }
	} }`)

	got, err := c.Translate(5)
	if err != nil {
		t.Fatalf("Translate(5) error: %v", err)
	}

	if got != 1 {
		t.Errorf("Translate(5) = %d, want 1 via left-to-right fold", got)
	}

	got, err = c.Translate(3)
	if err != nil {
		t.Fatalf("Translate(3) error: %v", err)
	}

	if got != 0 {
		t.Errorf("Translate(3) = %d, want default 0", got)
	}
}

func TestTranslateFirstTrueGuardWins(t *testing.T) {
	t.Parallel()

	c := mustParse(t, `memory<8,1>{ bank { layout: [0:8] translation:
		switch { INPUT < 6 -> 1, INPUT < 4 -> 2, -> 3 }
	} }`)

	// Both guards hold at 2; the first must win.
	got, err := c.Translate(2)
	if err != nil {
		t.Fatalf("Translate(2) error: %v", err)
	}

	if got != 1 {
		t.Errorf("Translate(2) = %d, want 1", got)
	}
}

func TestTranslateWraparound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		addr uint64
		want uint64
	}{
		{
			name: "add wraps at width",
			src:  `memory<8,1>{ bank { layout: [0:255] translation: INPUT + 250 } }`,
			addr: 10,
			want: 4, // (10 + 250) mod 256
		},
		{
			name: "subtraction wraps below zero",
			src:  `memory<8,1>{ bank { layout: [0:255] translation: INPUT - 20 } }`,
			addr: 10,
			want: 246, // (10 - 20) mod 256
		},
		{
			name: "value minus input",
			src:  `memory<8,1>{ bank { layout: [0:255] translation: 20 - INPUT } }`,
			addr: 30,
			want: 246, // (20 - 30) mod 256
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := mustParse(t, tt.src, WithAddressWidth(8))

			got, err := c.Translate(tt.addr)
			if err != nil {
				t.Fatalf("Translate(%d) error: %v", tt.addr, err)
			}

			if got != tt.want {
				t.Errorf("Translate(%d) = %d, want %d", tt.addr, got, tt.want)
			}
		})
	}
}

func TestTranslateShiftBeyondWidth(t *testing.T) {
	t.Parallel()

	c := mustParse(t, `memory<8,1>{ bank { layout: [0:10] translation: INPUT >> 63 } }`)

	got, err := c.Translate(9)
	if err != nil {
		t.Fatalf("Translate(9) error: %v", err)
	}

	if got != 0 {
		t.Errorf("Translate(9) = %d, want 0", got)
	}
}

func TestTranslateWith(t *testing.T) {
	t.Parallel()

	c := mustParse(t, `memory<8,1>{ bank { layout: [0:8] translation:
		switch { INPUT < 4 -> 1, -> 0 }
	} }`)

	// Guard reads the bound input, not the address: address 7 with
	// INPUT=2 takes the guarded case.
	got, err := c.TranslateWith(7, Inputs{InputSymbol: 2})
	if err != nil {
		t.Fatalf("TranslateWith(7, INPUT=2) error: %v", err)
	}

	if got != 1 {
		t.Errorf("TranslateWith(7, INPUT=2) = %d, want 1", got)
	}

	// An absent binding is an error, not a silent false.
	_, err = c.TranslateWith(7, Inputs{})
	if !errors.Is(err, ErrMissingComparisonInput) {
		t.Errorf("TranslateWith(7, {}) error = %v, want ErrMissingComparisonInput",
			err)
	}
}

func TestTranslateWithMissingInputInChain(t *testing.T) {
	t.Parallel()

	// A missing binding surfaces from inside a combine chain, not just
	// from a lone comparison.
	c := mustParse(t, `memory<8,1>{ bank { layout: [0:8] translation:
		switch { 0 <= INPUT || INPUT == 5 -> 1, -> 0 }
	} }`)

	_, err := c.TranslateWith(3, nil)
	if !errors.Is(err, ErrMissingComparisonInput) {
		t.Errorf("TranslateWith(3, nil) error = %v, want ErrMissingComparisonInput",
			err)
	}
}

func TestTranslateGuardedOnly(t *testing.T) {
	t.Parallel()

	// Translate binds guards to the address itself.
	c := mustParse(t, `memory<8,1>{ bank { layout: [0:16] translation:
		switch { INPUT >= 8 -> INPUT - 8, -> NOOP }
	} }`)

	tests := []struct {
		addr uint64
		want uint64
	}{
		{3, 3},
		{8, 0},
		{12, 4},
	}

	for _, tt := range tests {
		got, err := c.Translate(tt.addr)
		if err != nil {
			t.Errorf("Translate(%d) error: %v", tt.addr, err)

			continue
		}

		if got != tt.want {
			t.Errorf("Translate(%d) = %d, want %d", tt.addr, got, tt.want)
		}
	}
}

func TestTranslateDeterministic(t *testing.T) {
	t.Parallel()

	c := mustParse(t, `memory<8,1>{ bank { layout: [0:256] translation:
		switch { INPUT < 128 -> [INPUT + 1; INPUT >> 1], -> 16 - INPUT }
	} }`, WithAddressWidth(16))

	for addr := uint64(0); addr < 256; addr++ {
		first, err := c.Translate(addr)
		if err != nil {
			t.Fatalf("Translate(%d) error: %v", addr, err)
		}

		again, err := c.Translate(addr)
		if err != nil {
			t.Fatalf("Translate(%d) repeat error: %v", addr, err)
		}

		if first != again {
			t.Fatalf("Translate(%d) = %d then %d", addr, first, again)
		}
	}
}

func BenchmarkTranslate(b *testing.B) {
	c, err := ParseComponent(context.Background(), `memory<16,2>{
		bank { layout: [0:4096:2] translation:
			switch { INPUT < 2048 -> [INPUT + 16; INPUT >> 1], -> INPUT - 2048 } }
		bank { layout: [1:4096:2] translation: (RShift 1) }
	}`)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; b.Loop(); i++ {
		_, _ = c.Translate(uint64(i) % 4096)
	}
}
