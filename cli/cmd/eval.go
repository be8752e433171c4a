package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/expr-lang/expr"

	"github.com/membank/membank/lang"
)

// Eval translates addresses through a memory description.
//
// Addresses are expressions, not just literals: "0x40 + bank*8" style
// arithmetic is evaluated before translation, so traces and offsets
// can be computed inline.
type Eval struct {
	Address []string `arg:"" help:"Address expression(s) to translate" name:"address"`

	File  string            `default:"-"        help:"Memory description file or '-' for stdin" short:"f"`
	Width uint              `default:"${width}" help:"Address width in bits"                    short:"w"`
	Set   map[string]string `help:"Bind a named guard input (NAME=EXPR)" name:"set"`
	Hex   bool              `help:"Print results in hexadecimal"         short:"x"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	component, err := ParseSource(ctx, e.File, e.Width)
	if err != nil {
		return err
	}

	inputs, err := e.inputs()
	if err != nil {
		return err
	}

	for _, source := range e.Address {
		addr, err := EvalAddress(source)
		if err != nil {
			return ErrBadAddress.Wrap(err).
				With(slog.String("expression", source))
		}

		var out uint64
		if inputs == nil {
			out, err = component.Translate(addr)
		} else {
			out, err = component.TranslateWith(addr, inputs)
		}

		if err != nil {
			return lang.WrapError(err).
				With(
					slog.String("command", "eval"),
					slog.Uint64("address", addr),
				)
		}

		if e.Hex {
			fmt.Printf("#x%x\n", out)
		} else {
			fmt.Println(out)
		}
	}

	return nil
}

// inputs evaluates the --set bindings into a guard input map.
// Returns nil when no bindings were given, selecting the implicit
// bind-to-address translation mode.
func (e *Eval) inputs() (lang.Inputs, error) {
	if len(e.Set) == 0 {
		return nil, nil
	}

	inputs := make(lang.Inputs, len(e.Set))

	for name, source := range e.Set {
		v, err := EvalAddress(source)
		if err != nil {
			return nil, ErrBadInput.Wrap(err).
				With(
					slog.String("name", name),
					slog.String("expression", source),
				)
		}

		inputs[name] = v
	}

	return inputs, nil
}

// EvalAddress compiles and runs an address expression, coercing the
// result to an unsigned address.
func EvalAddress(source string) (uint64, error) {
	program, err := expr.Compile(source)
	if err != nil {
		return 0, err
	}

	out, err := expr.Run(program, nil)
	if err != nil {
		return 0, err
	}

	switch v := out.(type) {
	case int:
		if v < 0 {
			return 0, fmt.Errorf("negative address %d", v)
		}

		return uint64(v), nil

	case int64:
		if v < 0 {
			return 0, fmt.Errorf("negative address %d", v)
		}

		return uint64(v), nil

	case uint64:
		return v, nil

	case float64:
		if v < 0 || v != math.Trunc(v) {
			return 0, fmt.Errorf("non-integral address %v", v)
		}

		return uint64(v), nil

	default:
		return 0, fmt.Errorf("expression yields %T, not an address", out)
	}
}
