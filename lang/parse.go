package lang

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/membank/membank/log"
)

// options holds parse configuration.
type options struct {
	width  uint
	logger log.Logger
}

// Option configures parsing behavior.
type Option func(*options)

// WithAddressWidth sets the bit width W used to bound numeric literals
// and to wrap translation arithmetic. Widths above 64 are clamped to 64.
func WithAddressWidth(w uint) Option {
	return func(o *options) {
		if w > 64 {
			w = 64
		}

		o.width = w
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// makeOptions applies defaults and the given options.
func makeOptions(opts ...Option) options {
	o := options{width: DefaultAddressWidth}
	for _, opt := range opts {
		opt(&o)
	}

	if o.width == 0 || o.width > 64 {
		o.width = 64
	}

	return o
}

// ParseComponent parses a complete memory description:
//
//	memory<16,2>{ bank { layout: [0:8] translation: NOOP } }
//
// Ranges, guards, and translations are accepted in either surface
// syntax. The returned Component is immutable and safe for concurrent
// use.
func ParseComponent(
	ctx context.Context,
	s string,
	opts ...Option,
) (*Component, error) {
	p := newParser(s, opts...)

	c, err := p.parseComponent()
	if err != nil {
		return nil, attachSource(err, s)
	}

	if err := p.expectEOF(); err != nil {
		return nil, attachSource(err, s)
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.Int("bank_count", len(c.Banks)),
		slog.Uint64("param_a", c.ParamA),
		slog.Uint64("param_b", c.ParamB),
	)

	return c, nil
}

// ParsePartition parses a standalone bank layout in either surface
// syntax: "(Range 0 16 1)", "[0:8]", or a bracketed list of ranges.
func ParsePartition(
	ctx context.Context,
	s string,
	opts ...Option,
) (Partition, error) {
	p := newParser(s, opts...)

	part, err := p.parsePartition()
	if err != nil {
		return nil, attachSource(err, s)
	}

	if err := p.expectEOF(); err != nil {
		return nil, attachSource(err, s)
	}

	p.logger.TraceContext(ctx, "partition parsed",
		slog.Int("range_count", len(part)))

	return part, nil
}

// ParseTranslation parses a standalone translation program in either
// surface syntax: a primitive, a "[p1; p2]" sequence, or a switch.
func ParseTranslation(
	ctx context.Context,
	s string,
	opts ...Option,
) (Translation, error) {
	p := newParser(s, opts...)

	t, err := p.parseTranslation()
	if err != nil {
		return nil, attachSource(err, s)
	}

	if err := p.expectEOF(); err != nil {
		return nil, attachSource(err, s)
	}

	p.logger.TraceContext(ctx, "translation parsed")

	return t, nil
}

// ParseGuard parses a standalone boolean guard expression.
func ParseGuard(
	ctx context.Context,
	s string,
	opts ...Option,
) (BoolExpr, error) {
	p := newParser(s, opts...)

	b, err := p.parseBoolExpr()
	if err != nil {
		return nil, attachSource(err, s)
	}

	if err := p.expectEOF(); err != nil {
		return nil, attachSource(err, s)
	}

	return b, nil
}

// parser holds the parser state.
type parser struct {
	input  []byte
	pos    int
	line   int
	col    int
	width  uint
	mask   uint64
	logger log.Logger
}

func newParser(s string, opts ...Option) *parser {
	o := makeOptions(opts...)

	return &parser{
		input:  []byte(s),
		pos:    0,
		line:   1,
		col:    1,
		width:  o.width,
		mask:   maskFor(o.width),
		logger: o.logger,
	}
}

// parseComponent parses: "memory" "<" NUM "," NUM ">" "{" bank+ "}".
func (p *parser) parseComponent() (*Component, error) {
	p.skipWhitespace()

	if !p.keyword("memory") {
		return nil, newSyntaxError(p.position(), `keyword "memory"`)
	}

	p.skipWhitespace()

	if !p.expect('<') {
		return nil, newSyntaxError(p.position(), `"<"`)
	}

	paramA, err := p.parseNum()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	if !p.expect(',') {
		return nil, newSyntaxError(p.position(), `","`)
	}

	paramB, err := p.parseNum()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	if !p.expect('>') {
		return nil, newSyntaxError(p.position(), `">"`)
	}

	p.skipWhitespace()

	if !p.expect('{') {
		return nil, newSyntaxError(p.position(), `"{"`)
	}

	banks := make([]Bank, 0, 1)

	for {
		p.skipWhitespace()

		if p.peek() == '}' {
			p.advance()

			break
		}

		if p.eof() {
			return nil, newSyntaxError(p.position(), `"bank" or "}"`)
		}

		bank, err := p.parseBank()
		if err != nil {
			return nil, err
		}

		banks = append(banks, bank)
	}

	if len(banks) == 0 {
		return nil, newSyntaxError(p.position(), "at least one bank")
	}

	return &Component{
		ParamA: paramA,
		ParamB: paramB,
		Banks:  banks,
		width:  p.width,
		mask:   p.mask,
		logger: p.logger,
	}, nil
}

// parseBank parses: "bank" "{" "layout:" partition "translation:"
// translation "}".
func (p *parser) parseBank() (Bank, error) {
	if !p.keyword("bank") {
		return Bank{}, newSyntaxError(p.position(), `keyword "bank"`)
	}

	p.skipWhitespace()

	if !p.expect('{') {
		return Bank{}, newSyntaxError(p.position(), `"{"`)
	}

	p.skipWhitespace()

	if !p.keyword("layout") {
		return Bank{}, newSyntaxError(p.position(), `"layout:"`)
	}

	p.skipWhitespace()

	if !p.expect(':') {
		return Bank{}, newSyntaxError(p.position(), `":"`)
	}

	layout, err := p.parsePartition()
	if err != nil {
		return Bank{}, err
	}

	p.skipWhitespace()

	if !p.keyword("translation") {
		return Bank{}, newSyntaxError(p.position(), `"translation:"`)
	}

	p.skipWhitespace()

	if !p.expect(':') {
		return Bank{}, newSyntaxError(p.position(), `":"`)
	}

	translation, err := p.parseTranslation()
	if err != nil {
		return Bank{}, err
	}

	p.skipWhitespace()

	if !p.expect('}') {
		return Bank{}, newSyntaxError(p.position(), `"}"`)
	}

	return Bank{Layout: layout, Translation: translation}, nil
}

// parsePartition parses a single range or a bracketed range list.
// The leading token disambiguates: "(" always opens a Z3 range, and
// "[" opens a range list when the next token opens a range itself.
func (p *parser) parsePartition() (Partition, error) {
	p.skipWhitespace()

	switch p.peek() {
	case '(':
		r, err := p.parseRangeZ3()
		if err != nil {
			return nil, err
		}

		return Partition{r}, nil

	case '[':
		if !p.bracketOpensList() {
			r, err := p.parseRangeCompact()
			if err != nil {
				return nil, err
			}

			return Partition{r}, nil
		}

		p.advance() // consume '['

		part := make(Partition, 0, 2)

		for {
			p.skipWhitespace()

			if p.peek() == ']' {
				p.advance()

				break
			}

			var (
				r   Range
				err error
			)

			switch p.peek() {
			case '(':
				r, err = p.parseRangeZ3()
			case '[':
				r, err = p.parseRangeCompact()
			default:
				return nil, newSyntaxError(p.position(), `range or "]"`)
			}

			if err != nil {
				return nil, err
			}

			part = append(part, r)
		}

		if len(part) == 0 {
			return nil, newSyntaxError(p.position(), "at least one range")
		}

		return part, nil

	default:
		return nil, newSyntaxError(p.position(), "range")
	}
}

// bracketOpensList looks past a '[' to decide between a range list
// ("[ [..] (..) ]") and a single compact range ("[0:8]").
func (p *parser) bracketOpensList() bool {
	i := p.pos + 1 // past '['
	for i < len(p.input) && unicode.IsSpace(rune(p.input[i])) {
		i++
	}

	if i >= len(p.input) {
		return false
	}

	return p.input[i] == '[' || p.input[i] == '('
}

// parseRangeZ3 parses: "(" "Range" NUM NUM NUM ")". The keyword is
// case-insensitive. The arguments denote (base, size, stride): the
// range is canonicalized as start=base, end=base+size. This argument
// correspondence is an explicit assumption of the Z3 surface form;
// it is isolated here and nowhere else.
func (p *parser) parseRangeZ3() (Range, error) {
	pos := p.position()

	if !p.expect('(') {
		return Range{}, newSyntaxError(pos, `"("`)
	}

	p.skipWhitespace()

	if !p.keywordFold("range") {
		return Range{}, newSyntaxError(p.position(), `keyword "Range"`)
	}

	base, err := p.parseNum()
	if err != nil {
		return Range{}, err
	}

	size, err := p.parseNum()
	if err != nil {
		return Range{}, err
	}

	stride, err := p.parseNum()
	if err != nil {
		return Range{}, err
	}

	p.skipWhitespace()

	if !p.expect(')') {
		return Range{}, newSyntaxError(p.position(), `")"`)
	}

	if stride == 0 {
		return Range{}, p.malformedRange(pos, "zero stride")
	}

	if size > ^uint64(0)-base {
		return Range{}, p.malformedRange(pos, "base+size overflows")
	}

	return Range{Start: base, End: base + size, Stride: stride}, nil
}

// parseRangeCompact parses: "[" NUM ":" NUM (":" NUM)? "]".
func (p *parser) parseRangeCompact() (Range, error) {
	pos := p.position()

	if !p.expect('[') {
		return Range{}, newSyntaxError(pos, `"["`)
	}

	start, err := p.parseNum()
	if err != nil {
		return Range{}, err
	}

	p.skipWhitespace()

	if !p.expect(':') {
		return Range{}, newSyntaxError(p.position(), `":"`)
	}

	end, err := p.parseNum()
	if err != nil {
		return Range{}, err
	}

	var stride uint64

	p.skipWhitespace()

	if p.peek() == ':' {
		p.advance()

		stride, err = p.parseNum()
		if err != nil {
			return Range{}, err
		}

		if stride == 0 {
			return Range{}, p.malformedRange(pos, "zero stride")
		}

		p.skipWhitespace()
	}

	if !p.expect(']') {
		return Range{}, newSyntaxError(p.position(), `"]"`)
	}

	if end < start {
		return Range{}, p.malformedRange(pos, "end precedes start")
	}

	return Range{Start: start, End: end, Stride: stride}, nil
}

func (p *parser) malformedRange(pos Position, reason string) *Error {
	return ErrMalformedRange.With(
		slog.Int("line", pos.Line),
		slog.Int("column", pos.Column),
		slog.String("reason", reason),
	)
}

// parseTranslation parses the top level of a translation program:
// switch, sequence, or bare terminal, tried in that order.
func (p *parser) parseTranslation() (Translation, error) {
	p.skipWhitespace()

	if p.peekKeyword("switch") {
		return p.parseSwitch()
	}

	return p.parseMidLevel()
}

// parseMidLevel parses a sequence or a bare terminal. Switches are
// excluded: the grammar does not nest switch inside switch bodies.
func (p *parser) parseMidLevel() (Translation, error) {
	p.skipWhitespace()

	if p.peek() == '[' {
		return p.parseSequence()
	}

	prim, err := p.parseTerminal()
	if err != nil {
		return nil, err
	}

	return prim, nil
}

// parseSequence parses: "[" terminal (";" terminal)* "]". Stages
// compose left to right.
func (p *parser) parseSequence() (Translation, error) {
	if !p.expect('[') {
		return nil, newSyntaxError(p.position(), `"["`)
	}

	stages := make([]Primitive, 0, 2)

	for {
		prim, err := p.parseTerminal()
		if err != nil {
			return nil, err
		}

		stages = append(stages, prim)

		p.skipWhitespace()

		if p.peek() == ';' {
			p.advance()

			continue
		}

		if !p.expect(']') {
			return nil, newSyntaxError(p.position(), `";" or "]"`)
		}

		break
	}

	return Sequence{Stages: stages}, nil
}

// z3Primitives maps Z3-form keywords to their primitive op. All take
// exactly one numeric argument.
var z3Primitives = map[string]PrimOp{
	"Constant": Constant,
	"Add":      Add,
	"SubPV":    SubPV,
	"SubVP":    SubVP,
	"RShift":   RShift,
}

// parseTerminal parses one translation primitive in either surface
// spelling.
func (p *parser) parseTerminal() (Primitive, error) {
	p.skipWhitespace()

	pos := p.position()

	// Z3 form: "(" keyword NUM ")"
	if p.peek() == '(' {
		p.advance()
		p.skipWhitespace()

		word := p.takeWord()

		op, ok := z3Primitives[word]
		if !ok {
			return Primitive{}, newSyntaxError(
				pos, `one of "Constant", "Add", "SubPV", "SubVP", "RShift"`)
		}

		v, err := p.parseNum()
		if err != nil {
			return Primitive{}, err
		}

		p.skipWhitespace()

		if !p.expect(')') {
			return Primitive{}, newSyntaxError(p.position(), `")"`)
		}

		return Primitive{Op: op, Value: v}, nil
	}

	if p.keyword("NOOP") {
		return Primitive{Op: Noop}, nil
	}

	// "INPUT" ("+" | "-" | ">>") NUM
	if p.keyword("INPUT") {
		p.skipWhitespace()

		switch {
		case p.peekN(2) == ">>":
			p.advance()
			p.advance()

			v, err := p.parseNum()
			if err != nil {
				return Primitive{}, err
			}

			return Primitive{Op: RShift, Value: v}, nil

		case p.peekN(2) == "->":
			// bare INPUT is not a terminal; NOOP spells identity
			return Primitive{}, newSyntaxError(
				p.position(), `"+", "-", or ">>" after INPUT`)

		case p.peek() == '+':
			p.advance()

			v, err := p.parseNum()
			if err != nil {
				return Primitive{}, err
			}

			return Primitive{Op: Add, Value: v}, nil

		case p.peek() == '-':
			p.advance()

			v, err := p.parseNum()
			if err != nil {
				return Primitive{}, err
			}

			return Primitive{Op: SubVP, Value: v}, nil

		default:
			return Primitive{}, newSyntaxError(
				p.position(), `"+", "-", or ">>" after INPUT`)
		}
	}

	// NUM, optionally followed by ("+" | "-") "INPUT"
	if isDigit(p.peek()) || p.peek() == '#' {
		v, err := p.parseNum()
		if err != nil {
			return Primitive{}, err
		}

		p.skipWhitespace()

		switch {
		case p.peek() == '+':
			p.advance()
			p.skipWhitespace()

			if !p.keyword("INPUT") {
				return Primitive{}, newSyntaxError(p.position(), `"INPUT"`)
			}

			return Primitive{Op: Add, Value: v}, nil

		case p.peek() == '-' && p.peekN(2) != "->":
			p.advance()
			p.skipWhitespace()

			if !p.keyword("INPUT") {
				return Primitive{}, newSyntaxError(p.position(), `"INPUT"`)
			}

			return Primitive{Op: SubPV, Value: v}, nil

		default:
			return Primitive{Op: Constant, Value: v}, nil
		}
	}

	return Primitive{}, newSyntaxError(pos, "translation primitive")
}

// parseSwitch parses:
//
//	"switch" "{" (guard "->" mid_level ",")+ "->" mid_level "}"
//
// One or more guarded cases followed by the mandatory guard-less
// default.
func (p *parser) parseSwitch() (Translation, error) {
	if !p.keyword("switch") {
		return nil, newSyntaxError(p.position(), `keyword "switch"`)
	}

	p.skipWhitespace()

	if !p.expect('{') {
		return nil, newSyntaxError(p.position(), `"{"`)
	}

	cases := make([]SwitchCase, 0, 2)

	for {
		p.skipWhitespace()

		if p.peekN(2) == "->" {
			// default case
			p.advance()
			p.advance()

			if len(cases) == 0 {
				return nil, newSyntaxError(
					p.position(), "at least one guarded case before default")
			}

			body, err := p.parseMidLevel()
			if err != nil {
				return nil, err
			}

			p.skipWhitespace()

			if !p.expect('}') {
				return nil, newSyntaxError(p.position(), `"}"`)
			}

			return Switch{Cases: cases, Default: body}, nil
		}

		guard, err := p.parseBoolExpr()
		if err != nil {
			return nil, err
		}

		p.skipWhitespace()

		if p.peekN(2) != "->" {
			return nil, newSyntaxError(p.position(), `"->"`)
		}

		p.advance()
		p.advance()

		body, err := p.parseMidLevel()
		if err != nil {
			return nil, err
		}

		p.skipWhitespace()

		if !p.expect(',') {
			return nil, newSyntaxError(p.position(), `"," after guarded case`)
		}

		cases = append(cases, SwitchCase{Guard: guard, Body: body})
	}
}

// parseBoolExpr parses: bool_term (("&&"|"||") bool_term)*. The chain
// is kept flat; AND and OR share one precedence level and fold left
// to right.
func (p *parser) parseBoolExpr() (BoolExpr, error) {
	first, err := p.parseBoolTerm()
	if err != nil {
		return nil, err
	}

	var rest []CombineTerm

	for {
		p.skipWhitespace()

		var op BoolOp

		switch p.peekN(2) {
		case "&&":
			op = BoolAnd
		case "||":
			op = BoolOr
		default:
			if len(rest) == 0 {
				return first, nil
			}

			return Combine{First: first, Rest: rest}, nil
		}

		p.advance()
		p.advance()

		term, err := p.parseBoolTerm()
		if err != nil {
			return nil, err
		}

		rest = append(rest, CombineTerm{Op: op, X: term})
	}
}

// parseBoolTerm parses: "!" bool_expr | "(" bool_expr ")" |
// comparison. A "!" negates the whole expression that follows it,
// mirroring the grammar's loose binding.
func (p *parser) parseBoolTerm() (BoolExpr, error) {
	p.skipWhitespace()

	if p.peek() == '!' && p.peekN(2) != "!=" {
		p.advance()

		x, err := p.parseBoolExpr()
		if err != nil {
			return nil, err
		}

		return Not{X: x}, nil
	}

	if p.peek() == '(' {
		p.advance()

		x, err := p.parseBoolExpr()
		if err != nil {
			return nil, err
		}

		p.skipWhitespace()

		if !p.expect(')') {
			return nil, newSyntaxError(p.position(), `")"`)
		}

		return x, nil
	}

	return p.parseComparison()
}

// parseComparison parses: ("INPUT" cmpop NUM) | (NUM cmpop "INPUT").
func (p *parser) parseComparison() (BoolExpr, error) {
	p.skipWhitespace()

	pos := p.position()

	if p.keyword("INPUT") {
		op, err := p.parseCmpOp()
		if err != nil {
			return nil, err
		}

		v, err := p.parseNum()
		if err != nil {
			return nil, err
		}

		return Comparison{Side: InputOnLeft, Op: op, Value: v}, nil
	}

	if isDigit(p.peek()) || p.peek() == '#' {
		v, err := p.parseNum()
		if err != nil {
			return nil, err
		}

		op, err := p.parseCmpOp()
		if err != nil {
			return nil, err
		}

		p.skipWhitespace()

		if !p.keyword("INPUT") {
			return nil, newSyntaxError(p.position(), `"INPUT"`)
		}

		return Comparison{Side: InputOnRight, Op: op, Value: v}, nil
	}

	return nil, newSyntaxError(pos, "comparison")
}

// cmpSpellings lists operator spellings longest-prefix first so that
// "<=" wins over "<" and "=/=" over "==".
var cmpSpellings = []struct {
	text string
	op   CmpOp
}{
	{"=/=", CmpNE},
	{"<=", CmpLE},
	{">=", CmpGE},
	{"==", CmpEQ},
	{"!=", CmpNE},
	{"<", CmpLT},
	{">", CmpGT},
}

// parseCmpOp parses a comparison operator token.
func (p *parser) parseCmpOp() (CmpOp, error) {
	p.skipWhitespace()

	for _, s := range cmpSpellings {
		if p.peekN(len(s.text)) == s.text {
			for range len(s.text) {
				p.advance()
			}

			return s.op, nil
		}
	}

	return 0, newSyntaxError(p.position(), "comparison operator")
}

// parseNum parses a decimal or "#x"-prefixed hex literal, bounded to
// the configured address width.
func (p *parser) parseNum() (uint64, error) {
	p.skipWhitespace()

	pos := p.position()

	base := 10

	if p.peek() == '#' {
		if p.peekN(2) != "#x" {
			return 0, newSyntaxError(pos, `"#x" hex literal`)
		}

		p.advance()
		p.advance()

		base = 16
	}

	start := p.pos

	for !p.eof() && isDigitInBase(p.peek(), base) {
		p.advance()
	}

	if p.pos == start {
		return 0, newSyntaxError(pos, "numeric literal")
	}

	text := string(p.input[start:p.pos])

	v, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, p.literalOverflow(pos, text)
		}

		return 0, newSyntaxError(pos, "numeric literal")
	}

	if v > p.mask {
		return 0, p.literalOverflow(pos, text)
	}

	return v, nil
}

func (p *parser) literalOverflow(pos Position, text string) *Error {
	return ErrLiteralOverflow.With(
		slog.Int("line", pos.Line),
		slog.Int("column", pos.Column),
		slog.String("literal", text),
		slog.Uint64("width", uint64(p.width)),
	)
}

// Helper methods

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}

	r, _ := utf8.DecodeRune(p.input[p.pos:])

	return r
}

func (p *parser) peekN(n int) string {
	if p.pos+n > len(p.input) {
		return string(p.input[p.pos:])
	}

	return string(p.input[p.pos : p.pos+n])
}

func (p *parser) advance() {
	if p.eof() {
		return
	}

	r, size := utf8.DecodeRune(p.input[p.pos:])

	p.pos += size
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
}

func (p *parser) expect(ch rune) bool {
	if p.peek() == ch {
		p.advance()

		return true
	}

	return false
}

// expectEOF fails unless only whitespace remains.
func (p *parser) expectEOF() error {
	p.skipWhitespace()

	if !p.eof() {
		return newSyntaxError(p.position(), "end of input")
	}

	return nil
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) position() Position {
	return Position{
		Offset: p.pos,
		Line:   p.line,
		Column: p.col,
	}
}

func (p *parser) skipWhitespace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.advance()
	}
}

// keyword consumes kw if the input starts with it and the next rune
// does not extend it into a longer word.
func (p *parser) keyword(kw string) bool {
	if !p.hasKeyword(kw, false) {
		return false
	}

	for range len(kw) {
		p.advance()
	}

	return true
}

// keywordFold is keyword with ASCII case-insensitive matching.
func (p *parser) keywordFold(kw string) bool {
	if !p.hasKeyword(kw, true) {
		return false
	}

	for range len(kw) {
		p.advance()
	}

	return true
}

// peekKeyword reports whether kw begins at the cursor without
// consuming it.
func (p *parser) peekKeyword(kw string) bool {
	return p.hasKeyword(kw, false)
}

func (p *parser) hasKeyword(kw string, fold bool) bool {
	if p.pos+len(kw) > len(p.input) {
		return false
	}

	have := string(p.input[p.pos : p.pos+len(kw)])
	if fold {
		if !strings.EqualFold(have, kw) {
			return false
		}
	} else if have != kw {
		return false
	}

	// Reject prefixes of longer words ("translations", "INPUTS", ...).
	if p.pos+len(kw) < len(p.input) {
		next := rune(p.input[p.pos+len(kw)])
		if isWordRune(next) {
			return false
		}
	}

	return true
}

// takeWord consumes and returns a run of word runes.
func (p *parser) takeWord() string {
	start := p.pos
	for !p.eof() && isWordRune(p.peek()) {
		p.advance()
	}

	return string(p.input[start:p.pos])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDigitInBase(r rune, base int) bool {
	if base == 16 {
		return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	}

	return isDigit(r)
}
