package blcvm

// initArith builds add/sub/mul/even/odd/shl/shr as Y-recursive terms
// operating on little-endian bit lists, and the numeral/string
// equality combinators built on top of a generic eqList. Grounded on
// spec.md section 4.4's numeral laws; add/sub use a textbook
// full-adder/full-subtractor per recursive step rather than the more
// compact but harder-to-verify closed forms original_source sketches.
func initArith(a *Arena, lib *library) {
	pairOf := func(h, t Ref) Ref { return a.Call(a.Call(lib.pairTerm, h), t) }
	firstOf := func(p Ref) Ref { return a.Call(p, lib.trueTerm) }
	restOf := func(p Ref) Ref { return a.Call(p, lib.falseTerm) }
	emptyOf := func(l Ref) Ref { return a.Call(a.Call(l, lib.nilCaseTerm), lib.trueTerm) }
	notOf := func(x Ref) Ref { return a.Call(lib.notTerm, x) }
	andOf := func(x, y Ref) Ref { return a.Call(a.Call(lib.andTerm, x), y) }
	orOf := func(x, y Ref) Ref { return a.Call(a.Call(lib.orTerm, x), y) }
	xorOf := func(x, y Ref) Ref { return a.Call(a.Call(lib.xorTerm, x), y) }
	y := func(body Ref) Ref { return a.Call(lib.yTerm, body) }

	// even l = if(empty(l), true, not(first(l)))
	lib.evenTerm = a.addGlobal(a.Lambda(a.If(emptyOf(a.Var(0)), lib.trueTerm, notOf(firstOf(a.Var(0))))))
	// odd l = if(empty(l), false, first(l))
	lib.oddTerm = a.addGlobal(a.Lambda(a.If(emptyOf(a.Var(0)), lib.falseTerm, firstOf(a.Var(0)))))
	// shl l = pair(false, l)
	lib.shlTerm = a.addGlobal(a.Lambda(pairOf(lib.falseTerm, a.Var(0))))
	// shr l = if(empty(l), l, rest(l))
	lib.shrTerm = a.addGlobal(a.Lambda(a.If(emptyOf(a.Var(0)), a.Var(0), restOf(a.Var(0)))))

	// add a b = Y(λself.λa.λb.λc.
	//              if(empty(a) and empty(b) and not(c), false,
	//                 pair(abit xor bbit xor c, self(arest, brest, (abit&bbit)|(c&(abit xor bbit))))))(a)(b)(false)
	// inside the recursive step: c=0, b=1, a=2, self=3
	addStep := a.Lambda(a.Lambda(a.Lambda(a.Lambda( // self, a, b, c
		func() Ref {
			abit := a.If(emptyOf(a.Var(2)), lib.falseTerm, firstOf(a.Var(2)))
			bbit := a.If(emptyOf(a.Var(1)), lib.falseTerm, firstOf(a.Var(1)))
			arest := a.If(emptyOf(a.Var(2)), a.Var(2), restOf(a.Var(2)))
			brest := a.If(emptyOf(a.Var(1)), a.Var(1), restOf(a.Var(1)))
			sumBit := xorOf(xorOf(abit, bbit), a.Var(0))
			carryBit := orOf(andOf(abit, bbit), andOf(a.Var(0), xorOf(abit, bbit)))
			done := andOf(emptyOf(a.Var(2)), andOf(emptyOf(a.Var(1)), notOf(a.Var(0))))
			return a.If(done, lib.falseTerm,
				pairOf(sumBit, a.Call(a.Call(a.Call(a.Var(3), arest), brest), carryBit)),
			)
		}(),
	))))
	lib.addTerm = a.addGlobal(a.Lambda(a.Lambda( // a, b
		a.Call(a.Call(a.Call(y(addStep), a.Var(1)), a.Var(0)), lib.falseTerm),
	)))

	// sub a b = Y(λself.λa.λb.λc.
	//              if(empty(a) and empty(b), false,
	//                 pair(abit xor bbit xor c, self(arest, brest, (not(abit)&bbit)|(not(abit)&c)|(bbit&c)))))(a)(b)(false)
	// assumes a >= b (spec.md section 4.4's stated precondition); same index layout as add.
	subStep := a.Lambda(a.Lambda(a.Lambda(a.Lambda( // self, a, b, c
		func() Ref {
			abit := a.If(emptyOf(a.Var(2)), lib.falseTerm, firstOf(a.Var(2)))
			bbit := a.If(emptyOf(a.Var(1)), lib.falseTerm, firstOf(a.Var(1)))
			arest := a.If(emptyOf(a.Var(2)), a.Var(2), restOf(a.Var(2)))
			brest := a.If(emptyOf(a.Var(1)), a.Var(1), restOf(a.Var(1)))
			diffBit := xorOf(xorOf(abit, bbit), a.Var(0))
			notA := notOf(abit)
			borrowBit := orOf(orOf(andOf(notA, bbit), andOf(notA, a.Var(0))), andOf(bbit, a.Var(0)))
			done := andOf(emptyOf(a.Var(2)), emptyOf(a.Var(1)))
			return a.If(done, lib.falseTerm,
				pairOf(diffBit, a.Call(a.Call(a.Call(a.Var(3), arest), brest), borrowBit)),
			)
		}(),
	))))
	lib.subTerm = a.addGlobal(a.Lambda(a.Lambda( // a, b
		a.Call(a.Call(a.Call(y(subStep), a.Var(1)), a.Var(0)), lib.falseTerm),
	)))

	// mul a b = Y(λself.λb.λa. if(empty(a), false,
	//              if(first(a), add(b, shl(self(b)(rest(a)))), shl(self(b)(rest(a))))))(b)(a)
	// inside the recursive step: a=0, b=1, self=2
	mulStep := a.Lambda(a.Lambda(a.Lambda( // self, b, a
		func() Ref {
			recur := a.Call(a.Call(a.Var(2), a.Var(1)), restOf(a.Var(0)))
			doubled := pairOf(lib.falseTerm, recur)
			withAdd := a.Call(a.Call(lib.addTerm, a.Var(1)), doubled)
			return a.If(emptyOf(a.Var(0)), lib.falseTerm,
				a.If(firstOf(a.Var(0)), withAdd, doubled),
			)
		}(),
	)))
	lib.mulTerm = a.addGlobal(a.Lambda(a.Lambda( // a, b
		a.Call(a.Call(y(mulStep), a.Var(0)), a.Var(1)),
	)))

	lib.eqNumTerm = a.addGlobal(buildEqList(a, lib, lib.eqBoolTerm))
	lib.eqStrTerm = a.addGlobal(buildEqList(a, lib, lib.eqNumTerm))
}

// buildEqList returns a closed 2-argument term comparing two lists
// element-by-element with elemEq, stopping as soon as either list
// runs out (spec.md's equality combinators, section 4.6).
func buildEqList(a *Arena, lib *library, elemEq Ref) Ref {
	firstOf := func(p Ref) Ref { return a.Call(p, lib.trueTerm) }
	restOf := func(p Ref) Ref { return a.Call(p, lib.falseTerm) }
	emptyOf := func(l Ref) Ref { return a.Call(a.Call(l, lib.nilCaseTerm), lib.trueTerm) }

	// inside: ys=0, xs=1, self=2
	step := a.Lambda(a.Lambda(a.Lambda( // self, xs, ys
		a.If(emptyOf(a.Var(1)), emptyOf(a.Var(0)),
			a.If(emptyOf(a.Var(0)), lib.falseTerm,
				a.Call(a.Call(lib.andTerm,
					a.Call(a.Call(elemEq, firstOf(a.Var(1))), firstOf(a.Var(0))),
				), a.Call(a.Call(a.Var(2), restOf(a.Var(1))), restOf(a.Var(0)))),
			),
		),
	)))
	return a.Call(lib.yTerm, step)
}

func (m *Machine) Even(n Ref) Ref { return m.Arena.Call(m.lib.evenTerm, n) }
func (m *Machine) Odd(n Ref) Ref  { return m.Arena.Call(m.lib.oddTerm, n) }
func (m *Machine) Shl(n Ref) Ref  { return m.Arena.Call(m.lib.shlTerm, n) }
func (m *Machine) Shr(n Ref) Ref  { return m.Arena.Call(m.lib.shrTerm, n) }
func (m *Machine) Add(x, y Ref) Ref {
	return m.Arena.Call(m.Arena.Call(m.lib.addTerm, x), y)
}
func (m *Machine) Sub(x, y Ref) Ref {
	return m.Arena.Call(m.Arena.Call(m.lib.subTerm, x), y)
}
func (m *Machine) Mul(x, y Ref) Ref {
	return m.Arena.Call(m.Arena.Call(m.lib.mulTerm, x), y)
}
func (m *Machine) EqNum(x, y Ref) Ref {
	return m.Arena.Call(m.Arena.Call(m.lib.eqNumTerm, x), y)
}
func (m *Machine) EqStr(x, y Ref) Ref {
	return m.Arena.Call(m.Arena.Call(m.lib.eqStrTerm, x), y)
}

// FromInt wraps n as a lazy little-endian bit producer.
func (m *Machine) FromInt(n uint64) Ref { return m.Arena.NewIntegerStream(n) }

// FromStr wraps s as a lazy byte producer.
func (m *Machine) FromStr(s []byte) Ref { return m.Arena.NewStringStream(s) }

// IsTrue drives one reduction to tell a forced Church boolean apart
// from false by observation: apply it to two cells it cannot have
// seen before and check which one comes back unchanged. Church true
// and false never copy their arguments, so identity is preserved
// through the reduction.
func (m *Machine) IsTrue(b Ref) bool {
	a := m.Arena
	// Sentinels must already be in weak head normal form (here, bare
	// Procs with an unused body) so the evaluator hands the selected
	// one back by reference instead of re-reducing it as a free
	// variable, which would allocate a fresh, unequal cell.
	sentinelTrue := a.proc(a.Var(0), NIL)
	sentinelFalse := a.proc(a.Var(0), NIL)
	r := a.eval(a.Call(a.Call(b, sentinelTrue), sentinelFalse), NIL, a.terminalCont())
	return r == sentinelTrue
}

// decodeBits reads a little-endian bit list (or an Integer/Input/
// String stream, which the evaluator forces into the same pair/false
// shape on demand) into a host uint64, per spec.md section 4.5's
// numeral convention. Values wider than 64 bits are truncated.
func (m *Machine) decodeBits(l Ref) uint64 {
	var n uint64
	var shift uint
	cur := l
	for shift < 64 {
		if m.IsTrue(m.Empty(cur)) {
			break
		}
		if m.IsTrue(m.First(cur)) {
			n |= 1 << shift
		}
		shift++
		cur = m.Eval(m.Rest(cur))
	}
	return n
}

// ToInt decodes l as a single numeral.
func (m *Machine) ToInt(l Ref) uint64 { return m.decodeBits(l) }

// ToStr decodes l as a list of byte-sized numerals.
func (m *Machine) ToStr(l Ref) []byte {
	var buf []byte
	cur := m.Eval(l)
	for !m.IsTrue(m.Empty(cur)) {
		buf = append(buf, byte(m.decodeBits(m.First(cur))))
		cur = m.Eval(m.Rest(cur))
	}
	return buf
}
