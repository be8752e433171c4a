package lang

import (
	"log/slog"
)

// InputSymbol is the name of the symbolic input referenced by guard
// comparisons. The grammar defines exactly one symbol today; Inputs is
// keyed by name so the binding stays explicit at the call site.
const InputSymbol = "INPUT"

// Inputs supplies values for the symbols referenced by switch guards.
type Inputs map[string]uint64

// Translate maps addr through the component: the first bank whose
// layout contains addr is selected, and its translation program is
// evaluated with INPUT bound to addr — in guard comparisons as well
// as in translation arithmetic.
//
// Fails with [ErrNoBankMatch] when no bank claims addr.
func (c *Component) Translate(addr uint64) (uint64, error) {
	return c.translate(addr, func(string) (uint64, bool) {
		return addr, true
	})
}

// TranslateWith is the strict form of [Translate]: switch guards
// resolve their comparison operand from inputs instead of the address.
// A guard referencing a symbol absent from inputs fails with
// [ErrMissingComparisonInput]. Translation arithmetic still operates
// on the address being translated.
func (c *Component) TranslateWith(addr uint64, inputs Inputs) (uint64, error) {
	return c.translate(addr, func(sym string) (uint64, bool) {
		v, ok := inputs[sym]

		return v, ok
	})
}

// resolver looks up the value bound to a guard symbol.
type resolver func(sym string) (uint64, bool)

func (c *Component) translate(addr uint64, bind resolver) (uint64, error) {
	for i := range c.Banks {
		if !c.Banks[i].Layout.Contains(addr) {
			continue
		}

		out, err := evalTranslation(c.Banks[i].Translation, addr, bind, c.mask)
		if err != nil {
			return 0, err
		}

		c.logger.Trace("address translated",
			slog.Uint64("in", addr),
			slog.Uint64("out", out),
			slog.Int("bank", i),
		)

		return out, nil
	}

	return 0, ErrNoBankMatch.With(slog.Uint64("address", addr))
}

// evalTranslation evaluates a translation program on in, modulo the
// mask of the configured address width.
func evalTranslation(
	t Translation,
	in uint64,
	bind resolver,
	mask uint64,
) (uint64, error) {
	switch t := t.(type) {
	case Primitive:
		return t.apply(in, mask), nil

	case Sequence:
		// Stages thread the running value; INPUT is not rebound to
		// the original address between stages.
		v := in
		for _, stage := range t.Stages {
			v = stage.apply(v, mask)
		}

		return v, nil

	case Switch:
		for _, sc := range t.Cases {
			ok, err := evalBool(sc.Guard, bind)
			if err != nil {
				return 0, err
			}

			if ok {
				// First true guard wins; later guards are never
				// evaluated.
				return evalTranslation(sc.Body, in, bind, mask)
			}
		}

		return evalTranslation(t.Default, in, bind, mask)

	default:
		return 0, errInvalidNode
	}
}

var errInvalidNode = NewError("invalid translation node")

// apply computes the primitive's output for in. All arithmetic wraps
// modulo 2^W, matching address-bus wraparound: subtraction that would
// go negative wraps rather than erroring.
func (p Primitive) apply(in, mask uint64) uint64 {
	switch p.Op {
	case Noop:
		return in & mask
	case Constant:
		return p.Value & mask
	case Add:
		return (in + p.Value) & mask
	case SubPV:
		return (p.Value - in) & mask
	case SubVP:
		return (in - p.Value) & mask
	case RShift:
		if p.Value >= 64 {
			return 0
		}

		return (in >> p.Value) & mask
	default:
		return in & mask
	}
}

// evalBool evaluates a guard expression. Combine chains fold strictly
// left to right with no precedence between && and ||; every term is
// evaluated so missing-input failures surface deterministically.
func evalBool(e BoolExpr, bind resolver) (bool, error) {
	switch e := e.(type) {
	case Comparison:
		in, ok := bind(InputSymbol)
		if !ok {
			return false, ErrMissingComparisonInput.
				With(slog.String("symbol", InputSymbol))
		}

		if e.Side == InputOnLeft {
			return e.Op.compare(in, e.Value), nil
		}

		return e.Op.compare(e.Value, in), nil

	case Not:
		v, err := evalBool(e.X, bind)
		if err != nil {
			return false, err
		}

		return !v, nil

	case Combine:
		acc, err := evalBool(e.First, bind)
		if err != nil {
			return false, err
		}

		for _, term := range e.Rest {
			v, err := evalBool(term.X, bind)
			if err != nil {
				return false, err
			}

			if term.Op == BoolAnd {
				acc = acc && v
			} else {
				acc = acc || v
			}
		}

		return acc, nil

	default:
		return false, errInvalidNode
	}
}
