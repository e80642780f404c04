package blcvm

// initLists builds the list-processing combinators of spec.md section
// 4.4 (map, foldleft, concat, select_if, member, lookup, keys; inject is
// built per call by Machine.Inject below) as closed terms, the recursive
// ones via Y, grounded on the same "self as leading
// parameter" shape used throughout original_source/src/x.c's
// recursive definitions.
//
// Each combinator below is built as `Lambda(outerParams...)` wrapping
// `Y(Lambda(self).Lambda(recursionParams...).body)`; De Bruijn indices
// inside body count outward starting at the innermost recursion
// parameter, then self, then the outer params in reverse declaration
// order (each Lambda nests one level deeper than the ones written
// before it).
func initLists(a *Arena, lib *library) {
	pairOf := func(h, t Ref) Ref { return a.Call(a.Call(lib.pairTerm, h), t) }
	firstOf := func(p Ref) Ref { return a.Call(p, lib.trueTerm) }
	restOf := func(p Ref) Ref { return a.Call(p, lib.falseTerm) }
	emptyOf := func(l Ref) Ref { return a.Call(a.Call(l, lib.nilCaseTerm), lib.trueTerm) }

	y := func(body Ref) Ref { return a.Call(lib.yTerm, body) }

	// map f l = Y(λself.λl. if(empty(l), false, pair(f(first(l)), self(rest(l)))))(l)
	// inside: l=0, self=1, f=2
	lib.mapTerm = a.addGlobal(a.Lambda( // f
		y(a.Lambda(a.Lambda( // self, l
			a.If(emptyOf(a.Var(0)), lib.falseTerm,
				pairOf(a.Call(a.Var(2), firstOf(a.Var(0))), a.Call(a.Var(1), restOf(a.Var(0)))),
			),
		))),
	))

	// foldleft f acc l = Y(λself.λacc.λl. if(empty(l), acc, self(f(acc,first(l)), rest(l))))(acc)(l)
	// inside: l=0, acc=1, self=2, f=3
	lib.foldLeftTerm = a.addGlobal(a.Lambda( // f
		y(a.Lambda(a.Lambda(a.Lambda( // self, acc, l
			a.If(emptyOf(a.Var(0)), a.Var(1),
				a.Call(a.Call(a.Var(2), a.Call(a.Call(a.Var(3), a.Var(1)), firstOf(a.Var(0)))), restOf(a.Var(0))),
			),
		)))),
	))

	// concat xs ys = Y(λself.λxs. if(empty(xs), ys, pair(first(xs), self(rest(xs)))))(xs)
	// outer: xs=1, ys=0 (at the BODY level, before descending into y's lambdas)
	// inside y's lambdas: innerXs=0, self=1, ys=2 (xs=3, unused inside)
	lib.concatTerm = a.addGlobal(a.Lambda(a.Lambda( // xs, ys
		a.Call(y(a.Lambda(a.Lambda( // self, innerXs
			a.If(emptyOf(a.Var(0)), a.Var(2),
				pairOf(firstOf(a.Var(0)), a.Call(a.Var(1), restOf(a.Var(0)))),
			),
		))), a.Var(1)),
	)))

	// select_if p l = Y(λself.λl. if(empty(l), false,
	//                    if(p(first(l)), pair(first(l), self(rest(l))), self(rest(l)))))(l)
	// inside: l=0, self=1, p=2
	lib.selectIfTerm = a.addGlobal(a.Lambda( // p
		y(a.Lambda(a.Lambda( // self, l
			a.If(emptyOf(a.Var(0)), lib.falseTerm,
				a.If(a.Call(a.Var(2), firstOf(a.Var(0))),
					pairOf(firstOf(a.Var(0)), a.Call(a.Var(1), restOf(a.Var(0)))),
					a.Call(a.Var(1), restOf(a.Var(0))),
				),
			),
		))),
	))

	// member eq x l = Y(λself.λl. if(empty(l), false,
	//                    if(eq(first(l),x), true, self(rest(l)))))(l)
	// outer: eq=1, x=0 (at BODY level)
	// inside y's lambdas: l=0, self=1, x=2, eq=3
	lib.memberTerm = a.addGlobal(a.Lambda(a.Lambda( // eq, x
		y(a.Lambda(a.Lambda( // self, l
			a.If(emptyOf(a.Var(0)), lib.falseTerm,
				a.If(a.Call(a.Call(a.Var(3), firstOf(a.Var(0))), a.Var(2)),
					lib.trueTerm,
					a.Call(a.Var(1), restOf(a.Var(0))),
				),
			),
		))),
	)))

	// lookup eq l default k = Y(λself.λl.λk. if(empty(l), default(k),
	//                    if(eq(first(first(l)),k), rest(first(l)), self(rest(l),k))))(l)(k)
	// outer (at BODY level): k=0, default=1, l=2, eq=3
	// inside y's lambdas: k2=0, l2=1, self=2, k=3, default=4, l=5, eq=6
	lib.lookupTerm = a.addGlobal(a.Lambda(a.Lambda(a.Lambda(a.Lambda( // eq, l, default, k
		a.Call(a.Call(
			y(a.Lambda(a.Lambda(a.Lambda( // self, l2, k2
				a.If(emptyOf(a.Var(1)), a.Call(a.Var(4), a.Var(0)),
					a.If(a.Call(a.Call(a.Var(6), firstOf(firstOf(a.Var(1)))), a.Var(0)),
						restOf(firstOf(a.Var(1))),
						a.Call(a.Call(a.Var(2), restOf(a.Var(1))), a.Var(0)),
					),
				),
			)))), a.Var(2)), a.Var(0),
		),
	)))))

	// keys alist = map(first, alist)
	lib.keysTerm = a.addGlobal(a.Lambda( // alist
		a.Call(a.Call(lib.mapTerm, a.Lambda(firstOf(a.Var(0)))), a.Var(0)),
	))
}

func (m *Machine) Map(f, l Ref) Ref {
	return m.Arena.Call(m.Arena.Call(m.lib.mapTerm, f), l)
}
func (m *Machine) FoldLeft(f, acc, l Ref) Ref {
	return m.Arena.Call(m.Arena.Call(m.Arena.Call(m.lib.foldLeftTerm, f), acc), l)
}
func (m *Machine) Concat(xs, ys Ref) Ref {
	return m.Arena.Call(m.Arena.Call(m.lib.concatTerm, xs), ys)
}
func (m *Machine) SelectIf(p, l Ref) Ref {
	return m.Arena.Call(m.Arena.Call(m.lib.selectIfTerm, p), l)
}
func (m *Machine) Member(eq, x, l Ref) Ref {
	return m.Arena.Call(m.Arena.Call(m.Arena.Call(m.lib.memberTerm, eq), x), l)
}
func (m *Machine) Lookup(eq, l, def, k Ref) Ref {
	return m.Arena.Call(m.Arena.Call(m.Arena.Call(m.Arena.Call(m.lib.lookupTerm, eq), l), def), k)
}
func (m *Machine) Keys(alist Ref) Ref {
	return m.Arena.Call(m.lib.keysTerm, alist)
}

// Inject is fold-right: inject f acc l = Y(λself.λcur. if(empty(cur), acc, f(first(cur), self(rest(cur)))))(l).
// Built per call (not as a persistent library global) since it closes
// over the caller's own acc/f values rather than library constants;
// cur=0, self=1 inside the recursive body.
func (m *Machine) Inject(f, acc, l Ref) Ref {
	a := m.Arena
	step := a.Lambda(a.Lambda( // self, cur
		a.If(a.Call(a.Call(a.Var(0), m.lib.nilCaseTerm), m.lib.trueTerm), acc,
			a.Call(a.Call(f, a.Call(a.Var(0), m.lib.trueTerm)), a.Call(a.Var(1), a.Call(a.Var(0), m.lib.falseTerm))),
		),
	))
	return a.Call(a.Call(m.lib.yTerm, step), l)
}

// Last returns first(l) when rest(l) is empty, recursing on rest(l)
// otherwise; cur=0, self=1 inside the recursive body.
func (m *Machine) Last(l Ref) Ref {
	a := m.Arena
	step := a.Lambda(a.Lambda( // self, cur
		a.If(a.Call(a.Call(a.Call(a.Var(0), m.lib.falseTerm), m.lib.nilCaseTerm), m.lib.trueTerm),
			a.Call(a.Var(0), m.lib.trueTerm),
			a.Call(a.Var(1), a.Call(a.Var(0), m.lib.falseTerm)),
		),
	))
	return a.Call(a.Call(m.lib.yTerm, step), l)
}
