package blcvm

// forceInput, forceString and forceInteger implement spec.md section
// 4.5's three lazy producers. Each is invoked from eval's trampoline
// when a stream cell is in a non-terminal reduction position, and
// returns the unevaluated `pair(head, tail)` or `false` term for the
// loop to keep reducing — the same shape a Church list unfolds into,
// so first/rest/empty and anything built on them (map, add, ...) work
// on a stream without caring that it's lazy.
//
// The same cell can be forced more than once. Input and String cells
// record their first result in `used` and hand that back on every later
// force, so a file is read at most once per position. Integer cells
// need no cache: peeling a bit off n is pure.
//
// The freshly built tail stream cell is held on the root stack while
// the rest of the result is allocated, so a collection triggered
// mid-construction can't reclaim it.

func (a *Arena) forceInput(cell Ref) Ref {
	c := &a.cells[cell]
	if c.used != cell {
		return c.used
	}
	var buf [1]byte
	n, err := c.file.Read(buf[:])
	if n == 0 || err != nil {
		c.used = a.falseTerm
		return a.falseTerm
	}
	next := a.alloc(TagInput)
	defer a.roots.Hold(next)()
	a.cells[next].file = c.file
	a.cells[next].used = next
	byteRef := a.NewIntegerStream(uint64(buf[0]))
	result := a.Call(a.Call(a.pairTerm, byteRef), next)
	a.cells[cell].used = result
	return result
}

func (a *Arena) forceString(cell Ref) Ref {
	c := &a.cells[cell]
	if c.used != cell {
		return c.used
	}
	if c.pos >= len(c.buf) {
		c.used = a.falseTerm
		return a.falseTerm
	}
	next := a.alloc(TagString)
	defer a.roots.Hold(next)()
	a.cells[next].buf = c.buf
	a.cells[next].pos = c.pos + 1
	a.cells[next].used = next
	byteRef := a.NewIntegerStream(uint64(c.buf[c.pos]))
	result := a.Call(a.Call(a.pairTerm, byteRef), next)
	a.cells[cell].used = result
	return result
}

func (a *Arena) forceInteger(cell Ref) Ref {
	c := &a.cells[cell]
	if c.n == 0 {
		return a.falseTerm
	}
	bit := c.n&1 == 1
	rest := a.NewIntegerStream(c.n >> 1)
	defer a.roots.Hold(rest)()
	bitRef := a.falseTerm
	if bit {
		bitRef = a.trueTerm
	}
	return a.Call(a.Call(a.pairTerm, bitRef), rest)
}
