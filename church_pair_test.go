package blcvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPair_FirstAndRestLaws(t *testing.T) {
	m := NewDefaultMachine()

	p := m.Pair(m.FromInt(7), m.FromInt(9))
	assert.EqualValues(t, 7, m.ToInt(m.Eval(m.First(p))))
	assert.EqualValues(t, 9, m.ToInt(m.Eval(m.Rest(p))))
}

func TestEmpty_SatisfiesBothStatedLaws(t *testing.T) {
	m := NewDefaultMachine()

	t.Run("empty(false)=true", func(t *testing.T) {
		assert.True(t, m.IsTrue(m.Eval(m.Empty(m.Nil()))))
	})
	t.Run("empty(pair(_,_))=false", func(t *testing.T) {
		p := m.Pair(m.FromInt(1), m.Nil())
		assert.False(t, m.IsTrue(m.Eval(m.Empty(p))))
	})
}

func TestList_BuildAndWalk(t *testing.T) {
	m := NewDefaultMachine()

	l := m.List(m.FromInt(1), m.FromInt(2), m.FromInt(3))
	require.False(t, m.IsTrue(m.Eval(m.Empty(l))))

	assert.EqualValues(t, 1, m.ToInt(m.At(l, 0)))
	assert.EqualValues(t, 2, m.ToInt(m.At(l, 1)))
	assert.EqualValues(t, 3, m.ToInt(m.At(l, 2)))

	tail := m.Rest(m.Rest(m.Rest(l)))
	assert.True(t, m.IsTrue(m.Eval(m.Empty(tail))))
}

func TestLast_OfWorkedExample(t *testing.T) {
	// spec.md's own worked example: last([false,true]) = true.
	m := NewDefaultMachine()
	l := m.List(m.False(), m.True())
	assert.True(t, m.IsTrue(m.Eval(m.Last(l))))
}
