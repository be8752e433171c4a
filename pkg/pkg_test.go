package pkg

import (
	"strings"
	"testing"
)

func TestSemVer(t *testing.T) {
	t.Parallel()

	v := SemVer()

	if v == "" {
		t.Fatal("SemVer() returned empty string")
	}

	if strings.TrimSpace(v) != v {
		t.Errorf("SemVer() = %q, contains surrounding whitespace", v)
	}

	if dots := strings.Count(v, "."); dots != 2 {
		t.Errorf("SemVer() = %q, want MAJOR.MINOR.PATCH", v)
	}
}
