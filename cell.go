package blcvm

import "os"

// Ref is an index into an Arena's cell table. NIL denotes absence.
type Ref int32

// NIL is the null reference: "no cell".
const NIL Ref = -1

// Tag discriminates the union of fields a Cell carries.
type Tag uint8

const (
	TagVar Tag = iota
	TagLambda
	TagCall
	TagProc
	TagWrap
	TagMemoize
	TagCont
	TagInput
	TagString
	TagInteger

	// tagFrame is an internal, non-observable cons cell used to
	// represent evaluation environments (Proc.stack chains). It is
	// never returned as a reduction result; Equal compares it
	// structurally when it compares two Procs' stacks. See
	// SPEC_FULL.md section 3.
	tagFrame
)

func (t Tag) String() string {
	switch t {
	case TagVar:
		return "Var"
	case TagLambda:
		return "Lambda"
	case TagCall:
		return "Call"
	case TagProc:
		return "Proc"
	case TagWrap:
		return "Wrap"
	case TagMemoize:
		return "Memoize"
	case TagCont:
		return "Cont"
	case TagInput:
		return "Input"
	case TagString:
		return "String"
	case TagInteger:
		return "Integer"
	case tagFrame:
		return "frame"
	default:
		return "unknown"
	}
}

// Cell is the flat tagged-union runtime value. Only the fields that
// belong to the active tag are meaningful; this mirrors the teacher's
// multi-purpose `frame` struct (vm_stack.go) rather than a Go interface
// per tag, because the arena stores cells by value in one contiguous
// slice.
type Cell struct {
	tag Tag

	// idx is used by TagVar: the De Bruijn index.
	idx int

	// body is used by TagLambda: the abstraction's body.
	body Ref

	// fun, arg are used by TagCall: the applied function and argument.
	fun, arg Ref

	// block, stack are used by TagProc: the closure's code and
	// captured environment (a tagFrame chain, or NIL).
	block, stack Ref

	// unwrap, context, cache are used by TagWrap: the suspended
	// expression, its environment, and the memoization slot. cache
	// equal to the Wrap cell's own Ref means "not yet forced".
	unwrap, context, cache Ref

	// value, target are used by TagMemoize: the placeholder
	// operand (never set by memoize, so it keeps the zero Ref, and
	// never read by eval) and the Wrap cell whose cache should
	// receive the forthcoming result.
	value, target Ref

	// k is used by TagCont: the next frame in the continuation chain.
	k Ref

	// head, tail are used by tagFrame: the innermost bound Wrap ref
	// and the rest of the environment chain (NIL at the bottom).
	head, tail Ref

	// file, used are used by TagInput: the open byte source and a
	// cache of the already-materialized pair(head, rest) or false.
	file *os.File
	used Ref

	// buf, pos are used by TagString: the backing buffer and the
	// read cursor into it. used caches the materialized pair/false
	// the same way TagInput does.
	buf []byte
	pos int

	// n is used by TagInteger: the remaining value to be peeled
	// one bit at a time, little-endian.
	n uint64
}

func (c *Cell) String() string { return c.tag.String() }
