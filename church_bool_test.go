package blcvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooleans_IfLaw(t *testing.T) {
	m := NewDefaultMachine()
	a := m.Arena

	assert.True(t, m.IsTrue(m.Eval(a.If(m.True(), m.True(), m.False()))))
	assert.False(t, m.IsTrue(m.Eval(a.If(m.False(), m.True(), m.False()))))
}

func TestBooleans_Combinators(t *testing.T) {
	m := NewDefaultMachine()

	tests := []struct {
		name string
		term Ref
		want bool
	}{
		{"not(true)=false", m.Not(m.True()), false},
		{"not(false)=true", m.Not(m.False()), true},
		{"true and true=true", m.And(m.True(), m.True()), true},
		{"true and false=false", m.And(m.True(), m.False()), false},
		{"false or true=true", m.Or(m.False(), m.True()), true},
		{"false or false=false", m.Or(m.False(), m.False()), false},
		{"true xor true=false", m.Xor(m.True(), m.True()), false},
		{"true xor false=true", m.Xor(m.True(), m.False()), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.IsTrue(m.Eval(tt.term)))
		})
	}
}

func TestBooleans_EqBool(t *testing.T) {
	m := NewDefaultMachine()

	assert.True(t, m.IsTrue(m.Eval(m.EqBool(m.True(), m.True()))))
	assert.True(t, m.IsTrue(m.Eval(m.EqBool(m.False(), m.False()))))
	assert.False(t, m.IsTrue(m.Eval(m.EqBool(m.True(), m.False()))))
}

func TestRecursive_ListLengthViaY(t *testing.T) {
	m := NewDefaultMachine()
	a := m.Arena

	// Verify Y produces a genuine fixed point by building a recursive
	// list-length walk: length(l) = if(empty(l), 0, 1 + length(rest(l))).
	three := m.List(m.True(), m.True(), m.True())

	// length-is-three check: walk the list down with Y until empty.
	step := a.Lambda(a.Lambda( // self, l
		a.If(m.Empty(a.Var(0)), m.FromInt(0),
			a.Call(a.Call(m.lib.addTerm, m.FromInt(1)), a.Call(a.Var(1), m.Rest(a.Var(0)))),
		),
	))
	length := a.Call(m.Recursive(step), three)
	assert.EqualValues(t, 3, m.ToInt(m.Eval(length)))
}
