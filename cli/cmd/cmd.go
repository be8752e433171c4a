package cmd

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/membank/membank/lang"
	"github.com/membank/membank/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given
// kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

// KongContextFrom retrieves the kong.Context stored in ctx, or nil.
func KongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSource opens the named file, or stdin when path is "-".
func openSource(path string) (io.ReadCloser, error) {
	if path == stdinSource {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, ErrReadSource.Wrap(err)
	}

	return file, nil
}

// ParseSource opens and parses a memory description from the named
// file or stdin. Parses are cached by content hash, so reloading an
// unchanged description is cheap.
func ParseSource(
	ctx context.Context,
	path string,
	width uint,
) (*lang.Component, error) {
	src, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return lang.ParseReader(ctx, bufio.NewReader(src),
		lang.WithAddressWidth(width),
		lang.WithLogger(log.Default()),
	)
}
