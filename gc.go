package blcvm

// collect runs one mark-sweep cycle: reset marks, trace every root
// (the explicit Registers stack plus the persistent globals) and mark
// everything transitively reachable, then sweep by replacing `used`
// with the freshly computed `marks`. Per spec.md section 4.1, a second
// allocation failure right after this is reported as OOM by the caller.
func (a *Arena) collect() {
	for i := range a.marks {
		a.marks[i] = false
	}

	a.roots.each(func(ref Ref) { a.mark(ref) })
	for _, ref := range a.globals {
		a.mark(ref)
	}

	copy(a.used, a.marks)
	a.scan = 0

	if a.verbose {
		live := 0
		for _, m := range a.marks {
			if m {
				live++
			}
		}
		logVerbose("gc: swept, %d/%d cells live", live, len(a.cells))
	}
}

// mark recurses through the structural children of ref's tag, exactly
// following the table in spec.md section 4.1. Integers have no heap
// children; Input and String streams keep their cached `used` result
// alive.
func (a *Arena) mark(ref Ref) {
	if ref == NIL || a.marks[ref] {
		return
	}
	a.marks[ref] = true

	c := &a.cells[ref]
	switch c.tag {
	case TagVar:
		// no children
	case TagLambda:
		a.mark(c.body)
	case TagCall:
		a.mark(c.fun)
		a.mark(c.arg)
	case TagProc:
		a.mark(c.block)
		a.mark(c.stack)
	case TagWrap:
		a.mark(c.unwrap)
		a.mark(c.context)
		a.mark(c.cache)
	case TagMemoize:
		a.mark(c.value)
		a.mark(c.target)
	case TagCont:
		a.mark(c.k)
	case tagFrame:
		a.mark(c.head)
		a.mark(c.tail)
	case TagInput:
		a.mark(c.used)
	case TagString:
		a.mark(c.used)
	case TagInteger:
		// no children
	default:
		fatal(UnreachableTag, "mark: unknown tag %d", c.tag)
	}
}
