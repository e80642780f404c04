package blcvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_AppliesFunctionToEachElement(t *testing.T) {
	m := NewDefaultMachine()
	a := m.Arena

	notFn := a.Lambda(m.Not(a.Var(0)))
	l := m.List(m.True(), m.False(), m.True())
	mapped := m.Eval(m.Map(notFn, l))

	assert.False(t, m.IsTrue(m.At(mapped, 0)))
	assert.True(t, m.IsTrue(m.At(mapped, 1)))
	assert.False(t, m.IsTrue(m.At(mapped, 2)))
}

func TestFoldLeft_SumsANumericList(t *testing.T) {
	m := NewDefaultMachine()
	a := m.Arena

	addFn := a.Lambda(a.Lambda(m.Add(a.Var(1), a.Var(0)))) // acc, x
	l := m.List(m.FromInt(1), m.FromInt(2), m.FromInt(3), m.FromInt(4))

	total := m.FoldLeft(addFn, m.FromInt(0), l)
	assert.EqualValues(t, 10, m.ToInt(m.Eval(total)))
}

func TestConcat_JoinsTwoLists(t *testing.T) {
	m := NewDefaultMachine()

	xs := m.List(m.FromInt(1), m.FromInt(2))
	ys := m.List(m.FromInt(3), m.FromInt(4))
	joined := m.Eval(m.Concat(xs, ys))

	for i, want := range []uint64{1, 2, 3, 4} {
		assert.EqualValues(t, want, m.ToInt(m.At(joined, i)))
	}
}

func TestSelectIf_FiltersAList(t *testing.T) {
	m := NewDefaultMachine()
	a := m.Arena

	isOdd := a.Lambda(m.Odd(a.Var(0)))
	l := m.List(m.FromInt(1), m.FromInt(2), m.FromInt(3), m.FromInt(4), m.FromInt(5))
	odds := m.Eval(m.SelectIf(isOdd, l))

	assert.EqualValues(t, 1, m.ToInt(m.At(odds, 0)))
	assert.EqualValues(t, 3, m.ToInt(m.At(odds, 1)))
	assert.EqualValues(t, 5, m.ToInt(m.At(odds, 2)))
	assert.True(t, m.IsTrue(m.Empty(m.Rest(m.Rest(m.Rest(odds))))))
}

func TestMember_FindsAndMisses(t *testing.T) {
	m := NewDefaultMachine()

	l := m.List(m.FromInt(1), m.FromInt(2), m.FromInt(3))
	assert.True(t, m.IsTrue(m.Eval(m.Member(m.lib.eqNumTerm, m.FromInt(2), l))))
	assert.False(t, m.IsTrue(m.Eval(m.Member(m.lib.eqNumTerm, m.FromInt(9), l))))
}

func TestLookupAndKeys_OverAnAssociationList(t *testing.T) {
	m := NewDefaultMachine()
	a := m.Arena

	alist := m.List(
		m.Pair(m.FromInt(1), m.FromInt(100)),
		m.Pair(m.FromInt(2), m.FromInt(200)),
	)
	missing := a.Lambda(m.FromInt(0)) // default(k) = 0, ignoring k

	found := m.Lookup(m.lib.eqNumTerm, alist, missing, m.FromInt(2))
	assert.EqualValues(t, 200, m.ToInt(m.Eval(found)))

	keys := m.Eval(m.Keys(alist))
	assert.EqualValues(t, 1, m.ToInt(m.At(keys, 0)))
	assert.EqualValues(t, 2, m.ToInt(m.At(keys, 1)))
}

func TestLookup_MissingKeyCallsDefault(t *testing.T) {
	m := NewDefaultMachine()
	a := m.Arena

	alist := m.List(m.Pair(m.FromInt(1), m.FromInt(100)))
	// default(k) = k, so a miss on key 9 should yield 9 itself.
	echoKey := a.Lambda(a.Var(0))

	missed := m.Lookup(m.lib.eqNumTerm, alist, echoKey, m.FromInt(9))
	assert.EqualValues(t, 9, m.ToInt(m.Eval(missed)))
}

func TestInject_FoldsRightOverAList(t *testing.T) {
	m := NewDefaultMachine()
	a := m.Arena

	consFn := a.Lambda(a.Lambda(m.Pair(a.Var(1), a.Var(0)))) // x, acc
	l := m.List(m.FromInt(1), m.FromInt(2), m.FromInt(3))

	rebuilt := m.Eval(m.Inject(consFn, m.Nil(), l))
	assert.EqualValues(t, 1, m.ToInt(m.At(rebuilt, 0)))
	assert.EqualValues(t, 2, m.ToInt(m.At(rebuilt, 1)))
	assert.EqualValues(t, 3, m.ToInt(m.At(rebuilt, 2)))
}
