package lang

import (
	"bytes"
	"context"
	"encoding/gob"
	"io"
	"log/slog"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// componentCache stores parsed components keyed by a content hash of
// (options, source). Components are immutable, so cache hits can be
// shared across goroutines without copying.
var componentCache sync.Map

// cacheKey hashes the source text together with the semantic options.
// The logger is deliberately excluded: it does not affect the parsed
// value.
func cacheKey(source string, o options) uint64 {
	var buf bytes.Buffer

	enc := gob.NewEncoder(&buf)
	_ = enc.Encode(o.width)

	buf.WriteString(source)

	return xxh3.Hash(buf.Bytes())
}

// ParseReader parses a memory description from an io.Reader. The
// reader is wrapped with asynchronous read-ahead, and the parsed
// component is cached by content hash for efficient repeated loads of
// the same description.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Component, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseComponentCached(ctx, string(data), opts...)
}

// ParseComponentCached is [ParseComponent] backed by the process-wide
// component cache.
func ParseComponentCached(
	ctx context.Context,
	s string,
	opts ...Option,
) (*Component, error) {
	o := makeOptions(opts...)
	key := cacheKey(s, o)

	if cached, ok := componentCache.Load(key); ok {
		c, ok := cached.(*Component)
		if ok {
			o.logger.TraceContext(ctx, "component cache hit",
				slog.Uint64("key", key))

			return c, nil
		}
	}

	c, err := ParseComponent(ctx, s, opts...)
	if err != nil {
		return nil, err
	}

	componentCache.Store(key, c)

	o.logger.TraceContext(ctx, "component cached",
		slog.Uint64("key", key),
		slog.Int("source_length", len(s)),
	)

	return c, nil
}

// PurgeCache discards all cached components.
func PurgeCache() {
	componentCache.Range(func(key, _ any) bool {
		componentCache.Delete(key)

		return true
	})
}
