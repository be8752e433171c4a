package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrParse                  = NewError("syntax error")
	ErrLiteralOverflow        = NewError("numeric literal exceeds address width")
	ErrMalformedRange         = NewError("malformed range")
	ErrNoBankMatch            = NewError("no bank claims address")
	ErrMissingComparisonInput = NewError("missing comparison input")
	ErrReadInput              = NewError("failed to read input")
	ErrBadTrace               = NewError("malformed access trace")
	ErrVerifyMismatch         = NewError("translated slot does not hold requested address")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// Position locates a parse error within the source text.
type Position struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based, in runes
}

// SyntaxError is a parse failure with position, an expected-token
// description, and (when parsed from a string entry point) the source
// needed to render a caret snippet. It unwraps to [ErrParse] so
// errors.Is(err, ErrParse) holds.
type SyntaxError struct {
	Pos      Position
	Expected string // description of what the parser was looking for
	Source   string // original input, may be empty
	cause    *Error
}

// newSyntaxError builds a SyntaxError at pos expecting the given
// token description.
func newSyntaxError(pos Position, expected string) *SyntaxError {
	return &SyntaxError{
		Pos:      pos,
		Expected: expected,
		cause: ErrParse.With(
			slog.Int("line", pos.Line),
			slog.Int("column", pos.Column),
			slog.String("expected", expected),
		),
	}
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	var buf strings.Builder

	buf.WriteString("syntax error at line ")
	buf.WriteString(strconv.Itoa(e.Pos.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Pos.Column))

	if e.Source != "" {
		buf.WriteString(":\n")
		buf.WriteString(e.snippet())
		buf.WriteString("\texpected: ")
		buf.WriteString(e.Expected)
	} else {
		buf.WriteString(": expected ")
		buf.WriteString(e.Expected)
	}

	return buf.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *SyntaxError) Unwrap() error { return e.cause }

// LogValue implements slog.LogValuer.
func (e *SyntaxError) LogValue() slog.Value { return e.cause.LogValue() }

// snippet renders the offending source line with a caret marker.
func (e *SyntaxError) snippet() string {
	lines := strings.Split(e.Source, "\n")
	if e.Pos.Line < 1 || e.Pos.Line > len(lines) {
		return ""
	}

	line := lines[e.Pos.Line-1]
	num := strconv.Itoa(e.Pos.Line)

	var buf strings.Builder

	buf.WriteString("  ")
	buf.WriteString(num)
	buf.WriteString(" | ")
	buf.WriteString(line)
	buf.WriteRune('\n')

	// +5 accounts for: 2 leading spaces + " | " (3 chars)
	padding := strings.Repeat(" ", len(num)+5)
	if e.Pos.Column > 0 {
		padding += strings.Repeat(" ", e.Pos.Column-1)
	}

	buf.WriteString(padding + "^\n")

	return buf.String()
}

// attachSource fills in the source text on any SyntaxError in err's
// chain so string entry points can render caret snippets.
func attachSource(err error, source string) error {
	se := &SyntaxError{}
	if errors.As(err, &se) {
		se.Source = source
	}

	return err
}
