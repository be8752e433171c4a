package lang

import (
	"github.com/membank/membank/log"
)

// DefaultAddressWidth is the bit width used for numeric literals and
// translation arithmetic when no [WithAddressWidth] option is given.
// Users may modify this before parsing to change the default.
var DefaultAddressWidth uint = 64

// CmpOp is a comparison operator appearing in a switch guard.
type CmpOp int

const (
	CmpLE CmpOp = iota // <=
	CmpGE              // >=
	CmpEQ              // ==
	CmpNE              // !=
	CmpLT              // <
	CmpGT              // >
)

// String returns the compact spelling of the operator.
func (op CmpOp) String() string {
	switch op {
	case CmpLE:
		return "<="
	case CmpGE:
		return ">="
	case CmpEQ:
		return "=="
	case CmpNE:
		return "!="
	case CmpLT:
		return "<"
	case CmpGT:
		return ">"
	default:
		return "<invalid>"
	}
}

// compare applies the operator to a (left, right) operand pair.
func (op CmpOp) compare(left, right uint64) bool {
	switch op {
	case CmpLE:
		return left <= right
	case CmpGE:
		return left >= right
	case CmpEQ:
		return left == right
	case CmpNE:
		return left != right
	case CmpLT:
		return left < right
	case CmpGT:
		return left > right
	default:
		return false
	}
}

// Side records which operand of a comparison is the symbolic input.
type Side int

const (
	// InputOnLeft is a comparison of the form "INPUT op literal".
	InputOnLeft Side = iota
	// InputOnRight is a comparison of the form "literal op INPUT".
	InputOnRight
)

// BoolExpr is a guard expression: a comparison, a negation, or a flat
// left-to-right combination of terms.
type BoolExpr interface {
	boolExpr()
}

// Comparison tests the symbolic input against a literal.
type Comparison struct {
	Side  Side
	Op    CmpOp
	Value uint64
}

// Not negates its operand.
type Not struct {
	X BoolExpr
}

// BoolOp is a guard combinator.
type BoolOp int

const (
	BoolAnd BoolOp = iota // &&
	BoolOr                // ||
)

// String returns the surface spelling of the combinator.
func (op BoolOp) String() string {
	if op == BoolAnd {
		return "&&"
	}

	return "||"
}

// Combine is an ordered chain of guard terms folded strictly left to
// right. AND and OR share one precedence level: "a && b || c" means
// "(a && b) || c", never "a && (b || c)". The grammar is flat, so the
// chain is stored flat and never rebalanced.
type Combine struct {
	First BoolExpr
	Rest  []CombineTerm // at least one term
}

// CombineTerm is one step of a Combine chain: the operator that
// preceded the term, and the term itself.
type CombineTerm struct {
	Op BoolOp
	X  BoolExpr
}

func (Comparison) boolExpr() {}
func (Not) boolExpr()        {}
func (Combine) boolExpr()    {}

// PrimOp identifies an address-transform primitive.
type PrimOp int

const (
	// Noop passes the input through unchanged.
	Noop PrimOp = iota
	// Constant ignores the input and produces the held value.
	Constant
	// Add produces input + value.
	Add
	// SubPV produces value - input: the held value is the minuend.
	SubPV
	// SubVP produces input - value.
	SubVP
	// RShift produces input >> value.
	RShift
)

// String returns the Z3-form keyword for the primitive.
func (op PrimOp) String() string {
	switch op {
	case Noop:
		return "NOOP"
	case Constant:
		return "Constant"
	case Add:
		return "Add"
	case SubPV:
		return "SubPV"
	case SubVP:
		return "SubVP"
	case RShift:
		return "RShift"
	default:
		return "<invalid>"
	}
}

// Translation is an address-translation program: a bare primitive, a
// sequence of primitives, or a guarded switch. Switch bodies are
// restricted by the grammar to primitives and sequences.
type Translation interface {
	translation()
}

// Primitive is a single address transform with an optional argument.
// Noop carries no argument; Value is zero and unused for it.
type Primitive struct {
	Op    PrimOp
	Value uint64
}

// Sequence composes primitives left to right: each stage consumes the
// previous stage's output. INPUT is not rebound to the original
// address between stages.
type Sequence struct {
	Stages []Primitive // at least one
}

// SwitchCase pairs a guard with the body selected when the guard is
// the first to evaluate true.
type SwitchCase struct {
	Guard BoolExpr
	Body  Translation // Primitive or Sequence only
}

// Switch dispatches over ordered guarded cases with a mandatory
// default. Guards may overlap; declaration order decides.
type Switch struct {
	Cases   []SwitchCase // at least one
	Default Translation  // Primitive or Sequence only
}

func (Primitive) translation() {}
func (Sequence) translation()  {}
func (Switch) translation()    {}

// Range is a set of addresses claimed by a bank layout. With no
// stride (Stride == 0) it is the half-open interval [Start, End).
// With a stride it is {Start, Start+Stride, ...} below End.
type Range struct {
	Start  uint64
	End    uint64
	Stride uint64 // 0 means contiguous
}

// Contains reports whether addr is a member of the range.
func (r Range) Contains(addr uint64) bool {
	if addr < r.Start || addr >= r.End {
		return false
	}

	if r.Stride == 0 {
		return true
	}

	return (addr-r.Start)%r.Stride == 0
}

// Count returns the number of addresses the range claims.
func (r Range) Count() uint64 {
	span := r.End - r.Start
	if r.Stride == 0 {
		return span
	}

	return (span + r.Stride - 1) / r.Stride
}

// At returns the idx-th address of the range in ascending order.
// The second result is false when idx is out of bounds.
func (r Range) At(idx uint64) (uint64, bool) {
	if idx >= r.Count() {
		return 0, false
	}

	stride := r.Stride
	if stride == 0 {
		stride = 1
	}

	return r.Start + idx*stride, true
}

// Partition is the ordered set of ranges a bank claims.
type Partition []Range

// Contains reports whether any range of the partition claims addr.
func (p Partition) Contains(addr uint64) bool {
	for _, r := range p {
		if r.Contains(addr) {
			return true
		}
	}

	return false
}

// Count returns the total number of addresses across all ranges.
func (p Partition) Count() uint64 {
	var n uint64
	for _, r := range p {
		n += r.Count()
	}

	return n
}

// At returns the idx-th address of the partition, with ranges
// concatenated in declaration order.
func (p Partition) At(idx uint64) (uint64, bool) {
	for _, r := range p {
		n := r.Count()
		if idx < n {
			return r.At(idx)
		}

		idx -= n
	}

	return 0, false
}

// IndexOf returns the position of addr within the partition's
// concatenated address sequence, or false when no range claims it.
func (p Partition) IndexOf(addr uint64) (uint64, bool) {
	var base uint64

	for _, r := range p {
		if r.Contains(addr) {
			stride := r.Stride
			if stride == 0 {
				stride = 1
			}

			return base + (addr-r.Start)/stride, true
		}

		base += r.Count()
	}

	return 0, false
}

// Bank pairs an address-range layout with the translation applied to
// addresses the layout claims.
type Bank struct {
	Layout      Partition
	Translation Translation
}

// Component is the top-level memory description: one or more banks in
// priority order plus two caller-interpreted numeric parameters.
//
// A Component is immutable once parsed. It may be shared and
// translated through concurrently without synchronization.
type Component struct {
	// ParamA and ParamB are the two opaque parameters of the
	// "memory<A,B>" header. The grammar fixes their count but not
	// their meaning; interpretation belongs to the host application.
	ParamA uint64
	ParamB uint64

	Banks []Bank // at least one; declaration order is priority order

	width  uint
	mask   uint64
	logger log.Logger
}

// AddressWidth returns the bit width the component was parsed with.
func (c *Component) AddressWidth() uint { return c.width }

// maskFor returns the modulus mask for a w-bit address bus.
func maskFor(w uint) uint64 {
	if w == 0 || w >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << w) - 1
}
