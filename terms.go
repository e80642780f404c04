package blcvm

import "os"

// Var constructs a De Bruijn variable reference. It never allocates
// more than the one cell, so there is no intermediate value to root.
func (a *Arena) Var(idx int) Ref {
	ref := a.alloc(TagVar)
	a.cells[ref].idx = idx
	return ref
}

// Lambda constructs an abstraction over body. Per the root discipline
// in spec.md section 4.1, Lambda holds body as a root across its own
// allocation, like every other constructor here, so a collection
// triggered by that allocation can't reclaim it first.
func (a *Arena) Lambda(body Ref) Ref {
	defer a.roots.Hold(body)()
	ref := a.alloc(TagLambda)
	a.cells[ref].body = body
	return ref
}

// Call constructs an application. fun and arg must both be reachable
// when Call is invoked; Call pushes fun and arg as roots before the
// single allocation it performs so a GC triggered by that allocation
// can't reclaim them out from under the writes that follow.
func (a *Arena) Call(fun, arg Ref) Ref {
	defer a.roots.Hold(fun)()
	defer a.roots.Hold(arg)()
	ref := a.alloc(TagCall)
	a.cells[ref].fun = fun
	a.cells[ref].arg = arg
	return ref
}

// proc builds a closure: an evaluated Lambda body paired with the
// environment frame it captures.
func (a *Arena) proc(block, stack Ref) Ref {
	defer a.roots.Hold(block)()
	defer a.roots.Hold(stack)()
	ref := a.alloc(TagProc)
	a.cells[ref].block = block
	a.cells[ref].stack = stack
	return ref
}

// wrap builds a suspended thunk. cache is initialized to the thunk's
// own Ref, the sentinel meaning "not yet forced" (spec.md section 3).
func (a *Arena) wrap(unwrap, context Ref) Ref {
	defer a.roots.Hold(unwrap)()
	defer a.roots.Hold(context)()
	ref := a.alloc(TagWrap)
	a.cells[ref].unwrap = unwrap
	a.cells[ref].context = context
	a.cells[ref].cache = ref
	return ref
}

// store writes value into target's cache, the single point where a
// Wrap transitions from unforced to forced. Per spec.md section 9,
// once set it must never be overwritten.
func (a *Arena) store(target, value Ref) {
	c := &a.cells[target]
	if c.tag != TagWrap {
		fatal(UnreachableTag, "store: target is not a Wrap (%s)", c.tag)
	}
	if c.cache != target {
		fatal(UnreachableTag, "store: target already forced")
	}
	c.cache = value
}

func (a *Arena) memoize(target Ref) Ref {
	defer a.roots.Hold(target)()
	ref := a.alloc(TagMemoize)
	a.cells[ref].target = target
	return ref
}

func (a *Arena) cont(k Ref) Ref {
	if k != NIL {
		defer a.roots.Hold(k)()
	}
	ref := a.alloc(TagCont)
	a.cells[ref].k = k
	return ref
}

// frame pushes head (a Wrap ref) onto the environment chain tail,
// implementing Proc.stack as a native cons list per the resolved
// Open Question in SPEC_FULL.md section 3.
func (a *Arena) frame(head, tail Ref) Ref {
	defer a.roots.Hold(head)()
	if tail != NIL {
		defer a.roots.Hold(tail)()
	}
	ref := a.alloc(tagFrame)
	a.cells[ref].head = head
	a.cells[ref].tail = tail
	return ref
}

// frameAt walks k steps down an environment chain and returns the Wrap
// ref bound at that position, or NIL if the chain has k or fewer
// entries (the caller re-emits the Var as a free variable in that case).
func (a *Arena) frameAt(env Ref, k int) Ref {
	for k > 0 {
		if env == NIL {
			return NIL
		}
		env = a.cells[env].tail
		k--
	}
	if env == NIL {
		return NIL
	}
	return a.cells[env].head
}

func (a *Arena) frameLen(env Ref) int {
	n := 0
	for env != NIL {
		n++
		env = a.cells[env].tail
	}
	return n
}

// NewInputStream wraps an *os.File as a lazy byte source cell.
func (a *Arena) NewInputStream(f *os.File) Ref {
	ref := a.alloc(TagInput)
	a.cells[ref].file = f
	a.cells[ref].used = ref
	return ref
}

// NewStringStream wraps a byte slice as a lazy byte source cell.
func (a *Arena) NewStringStream(buf []byte) Ref {
	ref := a.alloc(TagString)
	a.cells[ref].buf = buf
	a.cells[ref].used = ref
	return ref
}

// NewIntegerStream builds a lazy little-endian bit producer for n.
func (a *Arena) NewIntegerStream(n uint64) Ref {
	ref := a.alloc(TagInteger)
	a.cells[ref].n = n
	return ref
}
