package blcvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// identity = λx.x
func identity(a *Arena) Ref { return a.Lambda(a.Var(0)) }

func TestEval_IdentityAppliedToItself(t *testing.T) {
	m := NewDefaultMachine()
	a := m.Arena

	id := identity(a)
	expr := a.Call(id, id)

	result := m.Eval(expr)
	assert.Equal(t, TagProc, a.Tag(result))
}

func TestEval_ConstFunctionIgnoresSecondArg(t *testing.T) {
	m := NewDefaultMachine()
	a := m.Arena

	// const = λx.λy.x
	konst := a.Lambda(a.Lambda(a.Var(1)))
	applied := a.Call(a.Call(konst, m.True()), m.False())

	assert.True(t, m.IsTrue(m.Eval(applied)))
}

func TestEval_IsLazyInUnusedArguments(t *testing.T) {
	m := NewDefaultMachine()
	a := m.Arena

	// const(true) applied to an argument that would loop forever if forced:
	// omega = (λx.x x)(λx.x x), never evaluated because const discards it.
	omegaInner := a.Lambda(a.Call(a.Var(0), a.Var(0)))
	omega := a.Call(omegaInner, omegaInner)

	konst := a.Lambda(a.Lambda(a.Var(1)))
	applied := a.Call(a.Call(konst, m.True()), omega)

	assert.True(t, m.IsTrue(m.Eval(applied)))
}

func TestEval_TerminalContinuationReturnsProcUnchanged(t *testing.T) {
	a := NewArena(NewConfig())
	id := identity(a)
	proc := a.proc(a.cells[id].body, NIL)

	result := a.eval(proc, NIL, a.terminalCont())
	assert.Equal(t, proc, result)
}
