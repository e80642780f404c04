package blcvm

// Registers is the explicit GC root stack: a bounded array of live cell
// references. Every intermediate cell a constructor holds between two
// potential allocations must be pushed here, or it can be reclaimed
// mid-construction — the single most load-bearing discipline in the
// system (spec.md section 4.1). Shaped after the teacher's `stack`
// type in vm_stack.go: a thin slice wrapper with push/pop and nothing
// else, allocated up front at a fixed capacity and never grown past it,
// so a runaway caller hits RootStackOverflow instead of an unbounded heap.
type Registers struct {
	refs []Ref
	cap  int
}

func newRegisters(capacity int) *Registers {
	return &Registers{refs: make([]Ref, 0, capacity), cap: capacity}
}

// Push records ref as a root and returns it unchanged, so callers can
// thread it inline: `x := roots.Push(a.Lambda(body))`.
func (r *Registers) Push(ref Ref) Ref {
	if len(r.refs) >= r.cap {
		fatal(RootStackOverflow, "more than %d simultaneous roots", r.cap)
	}
	r.refs = append(r.refs, ref)
	return ref
}

// Pop drops the top n roots, in LIFO order.
func (r *Registers) Pop(n int) {
	if n > len(r.refs) {
		fatal(RootStackOverflow, "popped %d roots with only %d on the stack", n, len(r.refs))
	}
	r.refs = r.refs[:len(r.refs)-n]
}

func (r *Registers) Len() int { return len(r.refs) }

// Hold pushes ref and returns a closure that pops exactly one root,
// giving constructors an RAII-like `defer roots.Hold(x)()` alternative
// to manual Push/Pop(1) pairs when the nesting is irregular.
func (r *Registers) Hold(ref Ref) func() {
	r.Push(ref)
	return func() { r.Pop(1) }
}

func (r *Registers) each(fn func(Ref)) {
	for _, ref := range r.refs {
		fn(ref)
	}
}
