package blcvm

// Equal performs pure structural comparison of two cell graphs exactly
// as built, per spec.md section 4.6 ("equality does not evaluate; it
// compares graphs as built") and the original's `eq()`
// (original_source/src/x.c:615-647): no reduction happens here at all.
// A caller that wants to compare the *values* two terms reduce to must
// call Machine.Eval on each side itself before calling Equal.
func (m *Machine) Equal(x, y Ref) bool {
	return m.equal(x, y)
}

func (m *Machine) equal(x, y Ref) bool {
	if x == y {
		return true
	}
	if x == NIL || y == NIL {
		return false
	}
	a := m.Arena
	cx, cy := a.Cell(x), a.Cell(y)
	if cx.tag != cy.tag {
		return false
	}
	switch cx.tag {
	case TagVar:
		return cx.idx == cy.idx
	case TagLambda:
		return m.equal(cx.body, cy.body)
	case TagCall:
		return m.equal(cx.fun, cy.fun) && m.equal(cx.arg, cy.arg)
	case TagProc:
		return m.equal(cx.block, cy.block) && m.equal(cx.stack, cy.stack)
	case TagWrap:
		return m.equal(cx.unwrap, cy.unwrap) && m.equal(cx.context, cy.context)
	case TagMemoize:
		return m.equal(cx.value, cy.value) && m.equal(cx.target, cy.target)
	case TagCont:
		return m.equal(cx.k, cy.k)
	case tagFrame:
		return m.equal(cx.head, cy.head) && m.equal(cx.tail, cy.tail)
	case TagInteger:
		return cx.n == cy.n
	case TagString:
		return string(cx.buf[cx.pos:]) == string(cy.buf[cy.pos:])
	case TagInput:
		return cx.file == cy.file
	default:
		fatal(UnreachableTag, "equal: unexpected tag %s", cx.tag)
		panic("unreachable")
	}
}
