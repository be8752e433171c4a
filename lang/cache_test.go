package lang

import (
	"context"
	"strings"
	"sync"
	"testing"
)

const cachedSource = `memory<16,2>{ bank { layout: [0:8] translation: NOOP } }`

func TestParseComponentCached(t *testing.T) {
	PurgeCache()

	ctx := context.Background()

	first, err := ParseComponentCached(ctx, cachedSource)
	if err != nil {
		t.Fatalf("first parse error: %v", err)
	}

	second, err := ParseComponentCached(ctx, cachedSource)
	if err != nil {
		t.Fatalf("second parse error: %v", err)
	}

	if first != second {
		t.Error("identical source did not hit the cache")
	}

	// A different address width is a different component.
	narrow, err := ParseComponentCached(ctx, cachedSource, WithAddressWidth(8))
	if err != nil {
		t.Fatalf("narrow parse error: %v", err)
	}

	if narrow == first {
		t.Error("differing widths shared a cache entry")
	}

	PurgeCache()

	third, err := ParseComponentCached(ctx, cachedSource)
	if err != nil {
		t.Fatalf("post-purge parse error: %v", err)
	}

	if third == first {
		t.Error("purge did not evict the cached component")
	}
}

func TestParseReader(t *testing.T) {
	PurgeCache()

	c, err := ParseReader(context.Background(), strings.NewReader(cachedSource))
	if err != nil {
		t.Fatalf("ParseReader() error: %v", err)
	}

	if len(c.Banks) != 1 {
		t.Errorf("banks = %d, want 1", len(c.Banks))
	}

	// Reading the same content again shares the parse.
	again, err := ParseReader(context.Background(), strings.NewReader(cachedSource))
	if err != nil {
		t.Fatalf("second ParseReader() error: %v", err)
	}

	if c != again {
		t.Error("identical reader content did not hit the cache")
	}
}

func TestParseComponentCachedConcurrent(t *testing.T) {
	PurgeCache()

	ctx := context.Background()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			c, err := ParseComponentCached(ctx, cachedSource)
			if err != nil {
				t.Errorf("concurrent parse error: %v", err)

				return
			}

			if _, err := c.Translate(3); err != nil {
				t.Errorf("concurrent translate error: %v", err)
			}
		}()
	}

	wg.Wait()
}
