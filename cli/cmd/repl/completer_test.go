package repl

import "testing"

func TestCompleterComplete(t *testing.T) {
	t.Parallel()

	c := newCompleter()

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "exact", input: ":help", want: ":help ", ok: true},
		{name: "prefix", input: ":ba", want: ":banks ", ok: true},
		{name: "fuzzy", input: ":wd", want: ":width ", ok: true},
		{name: "no match", input: ":zzz", want: ":zzz", ok: false},
		{name: "not a command", input: "0x40", want: "0x40", ok: false},
		{name: "already has arg", input: ":load x", want: ":load x", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := c.complete(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("complete(%q) = %q, %v, want %q, %v",
					tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCompleterHint(t *testing.T) {
	t.Parallel()

	c := newCompleter()

	if hint := c.hint(":h"); hint == "" {
		t.Error("hint(\":h\") returned no candidates")
	}

	if hint := c.hint("42"); hint != "" {
		t.Errorf("hint(\"42\") = %q, want empty", hint)
	}

	if hint := c.hint(":"); hint != "" {
		t.Errorf("hint(\":\") = %q, want empty", hint)
	}
}
