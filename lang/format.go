package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes the component in canonical compact syntax to the
// writer. Numbers are rendered in decimal regardless of the spelling
// they were parsed from; reparsing the output yields an equal
// component.
func (c *Component) Format(_ context.Context, w io.Writer, indent int) error {
	var buf strings.Builder

	buf.WriteString("memory<")
	buf.WriteString(strconv.FormatUint(c.ParamA, 10))
	buf.WriteString(",")
	buf.WriteString(strconv.FormatUint(c.ParamB, 10))
	buf.WriteString(">{")

	for _, bank := range c.Banks {
		if indent > 0 {
			buf.WriteString("\n")
			buf.WriteString(strings.Repeat(" ", indent))
		} else {
			buf.WriteString(" ")
		}

		formatBank(&buf, bank)
	}

	if indent > 0 {
		buf.WriteString("\n}")
	} else {
		buf.WriteString(" }")
	}

	_, err := fmt.Fprintln(w, buf.String())

	return err
}

// FormatJSON writes the component as JSON to the writer.
func (c *Component) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(c, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(c)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes the component as YAML to the writer.
func (c *Component) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, c.ToMap(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}

// Print writes an indented AST dump of the component to the writer.
func (c *Component) Print(w io.Writer) {
	put := func(depth int, s string) {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), s)
	}

	put(0, fmt.Sprintf("Component<%d,%d>", c.ParamA, c.ParamB))

	for i, bank := range c.Banks {
		put(1, fmt.Sprintf("Bank %d", i))
		put(2, "Layout: "+FormatPartition(bank.Layout))
		printTranslation(w, bank.Translation, 2)
	}
}

func printTranslation(w io.Writer, t Translation, depth int) {
	put := func(d int, s string) {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", d), s)
	}

	switch t := t.(type) {
	case Primitive:
		put(depth, "Translation: "+formatPrimitive(t))

	case Sequence:
		put(depth, "Translation: sequence")

		for _, stage := range t.Stages {
			put(depth+1, formatPrimitive(stage))
		}

	case Switch:
		put(depth, "Translation: switch")

		for _, sc := range t.Cases {
			put(depth+1, FormatGuard(sc.Guard)+" -> "+formatMidLevel(sc.Body))
		}

		put(depth+1, "default -> "+formatMidLevel(t.Default))
	}
}

// FormatPartition renders a partition in compact syntax.
func FormatPartition(p Partition) string {
	if len(p) == 1 {
		return formatRange(p[0])
	}

	parts := make([]string, len(p))
	for i, r := range p {
		parts[i] = formatRange(r)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func formatRange(r Range) string {
	var buf strings.Builder

	buf.WriteString("[")
	buf.WriteString(strconv.FormatUint(r.Start, 10))
	buf.WriteString(":")
	buf.WriteString(strconv.FormatUint(r.End, 10))

	if r.Stride != 0 {
		buf.WriteString(":")
		buf.WriteString(strconv.FormatUint(r.Stride, 10))
	}

	buf.WriteString("]")

	return buf.String()
}

// FormatTranslation renders a translation program in compact syntax.
func FormatTranslation(t Translation) string {
	switch t := t.(type) {
	case Switch:
		var buf strings.Builder

		buf.WriteString("switch { ")

		for _, sc := range t.Cases {
			buf.WriteString(FormatGuard(sc.Guard))
			buf.WriteString(" -> ")
			buf.WriteString(formatMidLevel(sc.Body))
			buf.WriteString(", ")
		}

		buf.WriteString("-> ")
		buf.WriteString(formatMidLevel(t.Default))
		buf.WriteString(" }")

		return buf.String()

	default:
		return formatMidLevel(t)
	}
}

func formatMidLevel(t Translation) string {
	switch t := t.(type) {
	case Primitive:
		return formatPrimitive(t)

	case Sequence:
		parts := make([]string, len(t.Stages))
		for i, stage := range t.Stages {
			parts[i] = formatPrimitive(stage)
		}

		return "[" + strings.Join(parts, "; ") + "]"

	default:
		return "<invalid>"
	}
}

func formatPrimitive(p Primitive) string {
	v := strconv.FormatUint(p.Value, 10)

	switch p.Op {
	case Noop:
		return "NOOP"
	case Constant:
		return v
	case Add:
		return "INPUT + " + v
	case SubPV:
		return v + " - INPUT"
	case SubVP:
		return "INPUT - " + v
	case RShift:
		return "INPUT >> " + v
	default:
		return "<invalid>"
	}
}

// FormatGuard renders a guard expression in compact syntax. Nested
// non-comparison terms are parenthesized so the flat left-to-right
// reading of the output matches the tree being printed.
func FormatGuard(e BoolExpr) string {
	switch e := e.(type) {
	case Comparison:
		v := strconv.FormatUint(e.Value, 10)
		if e.Side == InputOnLeft {
			return "INPUT " + e.Op.String() + " " + v
		}

		return v + " " + e.Op.String() + " INPUT"

	case Not:
		return "!(" + FormatGuard(e.X) + ")"

	case Combine:
		var buf strings.Builder

		buf.WriteString(formatGuardTerm(e.First))

		for _, term := range e.Rest {
			buf.WriteString(" ")
			buf.WriteString(term.Op.String())
			buf.WriteString(" ")
			buf.WriteString(formatGuardTerm(term.X))
		}

		return buf.String()

	default:
		return "<invalid>"
	}
}

func formatGuardTerm(e BoolExpr) string {
	if _, ok := e.(Combine); ok {
		return "(" + FormatGuard(e) + ")"
	}

	return FormatGuard(e)
}

func formatBank(buf *strings.Builder, bank Bank) {
	buf.WriteString("bank { layout: ")
	buf.WriteString(FormatPartition(bank.Layout))
	buf.WriteString(" translation: ")
	buf.WriteString(FormatTranslation(bank.Translation))
	buf.WriteString(" }")
}
