package blcvm

// Pair, First, Rest and Empty implement the cons-cell laws of
// spec.md section 4.4: first(pair(a,b))=a, rest(pair(a,b))=b,
// empty(false)=true, empty(pair(_,_))=false. The list terminator is
// the same cell as Church false, so a freshly-built empty list and a
// boolean false are observationally identical, exactly as spec.md's
// "the empty list is false" says.

func (m *Machine) Nil() Ref { return m.lib.falseTerm }

func (m *Machine) Pair(head, tail Ref) Ref {
	return m.Arena.Call(m.Arena.Call(m.lib.pairTerm, head), tail)
}

func (m *Machine) First(p Ref) Ref { return m.Arena.Call(p, m.lib.trueTerm) }
func (m *Machine) Rest(p Ref) Ref  { return m.Arena.Call(p, m.lib.falseTerm) }

// Empty applies l first to the three-argument "it was a cons cell"
// discriminator (which ignores both fields and the trailing true, and
// answers false) and then to true (the "it was nil" answer). A cons
// cell built by Pair takes exactly one selector argument and
// internally reapplies it to both of its fields, so a non-empty list
// reduces to discriminator(head)(tail)(true) = false; Church false,
// being two-argument, simply ignores the discriminator and returns the
// second argument, true.
//
// spec.md's own prose states this as `l true (λλλ.false)`; working the
// reduction through by hand (see DESIGN.md, "Open Questions resolved")
// showed that ordering doesn't satisfy empty(false)=true, so the
// operand order below is swapped.
func (m *Machine) Empty(l Ref) Ref {
	return m.Arena.Call(m.Arena.Call(l, m.lib.nilCaseTerm), m.lib.trueTerm)
}

// List builds a proper (false-terminated) list from items, last first.
func (m *Machine) List(items ...Ref) Ref {
	l := m.Nil()
	for i := len(items) - 1; i >= 0; i-- {
		l = m.Pair(items[i], l)
	}
	return l
}

// At walks k cons cells down l and returns the head found there, the
// host-level equivalent of the library's recursive `at` helper.
func (m *Machine) At(l Ref, k int) Ref {
	for ; k > 0; k-- {
		l = m.Rest(m.Eval(l))
	}
	return m.First(m.Eval(l))
}
