package blcvm

import (
	"fmt"

	"github.com/moneytech/blcvm/ascii"
)

// token classes for the tree printer's color theme, the same role
// FormatToken plays in the teacher's parser tree printer.
type token int

const (
	tokNone token = iota
	tokVar
	tokBinder
	tokLiteral
	tokStream
)

func plainFormat(s string, _ token) string { return s }

func colorFormat(s string, t token) string {
	switch t {
	case tokVar:
		return ascii.Color(ascii.DefaultTheme.Operand, "%s", s)
	case tokBinder:
		return ascii.Color(ascii.DefaultTheme.Operator, "%s", s)
	case tokLiteral:
		return ascii.Color(ascii.DefaultTheme.Literal, "%s", s)
	case tokStream:
		return ascii.Color(ascii.DefaultTheme.Span, "%s", s)
	default:
		return s
	}
}

// Dump renders ref as a box-drawing tree of its source-term shape
// (Var/Lambda/Call only — forced runtime values like Proc or Wrap
// aren't part of the printable grammar, mirroring Encode's scope).
// color selects ANSI highlighting, the way HighlightPrettyString does
// for the teacher's parse trees.
func (m *Machine) Dump(ref Ref, color bool) string {
	format := plainFormat
	if color {
		format = colorFormat
	}
	tp := newTreePrinter(format)
	m.dumpTerm(tp, ref)
	return tp.output.String()
}

func (m *Machine) dumpTerm(tp *treePrinter[token], ref Ref) {
	c := m.Arena.Cell(ref)
	switch c.tag {
	case TagVar:
		tp.write(tp.format(fmt.Sprintf("Var(%d)", c.idx), tokVar))
	case TagLambda:
		tp.writel(tp.format("Lambda", tokBinder))
		tp.pwrite("└── ")
		tp.indent("    ")
		m.dumpTerm(tp, c.body)
		tp.unindent()
	case TagCall:
		tp.writel(tp.format("Call", tokBinder))
		tp.pwrite("├── ")
		tp.indent("│   ")
		m.dumpTerm(tp, c.fun)
		tp.unindent()
		tp.write("\n")
		tp.pwrite("└── ")
		tp.indent("    ")
		m.dumpTerm(tp, c.arg)
		tp.unindent()
	default:
		tp.write(tp.format(fmt.Sprintf("<%s>", c.tag), tokLiteral))
	}
}

// Show renders a reduced value for human consumption: Church booleans
// print as true/false; a value that is still an unforced Integer,
// String or Input cell prints as `<stream:N>`, N being its ToInt
// decoding (a String is not decoded as text); any other Proc, including
// a list or numeral built by the library, prints as `<function>`;
// anything else falls back to its tag name.
func (m *Machine) Show(ref Ref) string {
	v := m.Eval(ref)
	c := m.Arena.Cell(v)
	switch c.tag {
	case TagProc:
		if m.IsTrue(v) {
			return "true"
		}
		if probeFalse(m, v) {
			return "false"
		}
		return "<function>"
	case TagInteger, TagString, TagInput:
		return fmt.Sprintf("<stream:%d>", m.ToInt(v))
	default:
		return fmt.Sprintf("<%s>", c.tag)
	}
}

// probeFalse mirrors IsTrue's trick for the complementary case,
// needed because Show can't assume v is a boolean just because it
// reduced to a Proc (any closure looks the same from the outside).
func probeFalse(m *Machine, v Ref) bool {
	a := m.Arena
	sentinelTrue := a.proc(a.Var(0), NIL)
	sentinelFalse := a.proc(a.Var(0), NIL)
	r := a.eval(a.Call(a.Call(v, sentinelTrue), sentinelFalse), NIL, a.terminalCont())
	return r == sentinelFalse
}
