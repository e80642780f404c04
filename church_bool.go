package blcvm

// library holds the persistent singleton cells the Church-encoded
// standard library is built from, the way the original C
// implementation keeps `pair_`, `eq_bool_`, `recursive_`, ... as
// process-global cell indices built once at start-up. Here they live
// on the Machine instead of in package globals so a program can run
// more than one independent Machine (spec.md section 5).
type library struct {
	trueTerm, falseTerm Ref
	pairTerm            Ref
	yTerm               Ref
	nilCaseTerm         Ref // λh.λt.λ_. false, the Scott-style "it's a cons" discriminator used by Empty

	eqBoolTerm Ref
	eqNumTerm  Ref
	eqStrTerm  Ref

	notTerm, andTerm, orTerm, xorTerm Ref

	addTerm, subTerm, mulTerm          Ref
	evenTerm, oddTerm, shlTerm, shrTerm Ref

	mapTerm, foldLeftTerm, concatTerm, selectIfTerm, memberTerm Ref
	lookupTerm, keysTerm                                        Ref

	replTerm                                                     Ref
	replNL, replSpace, replTab, replEquals                       Ref
	replEOFMsg, replEqMsg                                        Ref
}

// newLibrary builds every standard-library combinator once and roots
// each one as a GC global, mirroring how the original bootstraps
// `pair_`, `t_`, `f_`, `recursive_` at start-up before any user program
// runs (original_source/src/x.c).
func newLibrary(a *Arena) library {
	var lib library

	lib.trueTerm = a.addGlobal(a.Lambda(a.Lambda(a.Var(1))))
	lib.falseTerm = a.addGlobal(a.Lambda(a.Lambda(a.Var(0))))
	lib.nilCaseTerm = a.addGlobal(a.Lambda(a.Lambda(a.Lambda(lib.falseTerm))))

	// pair a b = λs. s a b  (spec.md section 4.4)
	lib.pairTerm = a.addGlobal(a.Lambda(a.Lambda(a.Lambda(
		a.Call(a.Call(a.Var(0), a.Var(2)), a.Var(1)),
	))))

	// Y = λf. (λx. f (x x)) (λx. f (x x))
	innerApp := a.Lambda(a.Call(a.Var(1), a.Call(a.Var(0), a.Var(0))))
	lib.yTerm = a.addGlobal(a.Lambda(a.Call(innerApp, innerApp)))

	lib.notTerm = a.addGlobal(a.Lambda(a.If(a.Var(0), lib.falseTerm, lib.trueTerm)))
	lib.andTerm = a.addGlobal(a.Lambda(a.Lambda(a.If(a.Var(1), a.Var(0), lib.falseTerm))))
	lib.orTerm = a.addGlobal(a.Lambda(a.Lambda(a.If(a.Var(1), lib.trueTerm, a.Var(0)))))
	lib.xorTerm = a.addGlobal(a.Lambda(a.Lambda(a.If(a.Var(1), a.Call(lib.notTerm, a.Var(0)), a.Var(0)))))

	lib.eqBoolTerm = a.addGlobal(a.Lambda(a.Lambda(a.If(a.Var(1), a.Var(0), a.Call(lib.notTerm, a.Var(0))))))

	initLists(a, &lib)
	initArith(a, &lib)
	initRepl(a, &lib)

	a.pairTerm = lib.pairTerm
	a.falseTerm = lib.falseTerm
	a.trueTerm = lib.trueTerm

	return lib
}

// True, False return the two Church boolean cells.
func (m *Machine) True() Ref  { return m.lib.trueTerm }
func (m *Machine) False() Ref { return m.lib.falseTerm }

// If builds the term `(c t) e`, which reduces to t when c is True and
// e when c is False (spec.md section 4.4's "if" law).
func (a *Arena) If(c, t, e Ref) Ref {
	return a.Call(a.Call(c, t), e)
}

func (m *Machine) Not(b Ref) Ref { return m.Arena.Call(m.lib.notTerm, b) }
func (m *Machine) And(a, b Ref) Ref {
	return m.Arena.Call(m.Arena.Call(m.lib.andTerm, a), b)
}
func (m *Machine) Or(a, b Ref) Ref {
	return m.Arena.Call(m.Arena.Call(m.lib.orTerm, a), b)
}
func (m *Machine) Xor(a, b Ref) Ref {
	return m.Arena.Call(m.Arena.Call(m.lib.xorTerm, a), b)
}
func (m *Machine) EqBool(a, b Ref) Ref {
	return m.Arena.Call(m.Arena.Call(m.lib.eqBoolTerm, a), b)
}
