package blcvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumerals_RoundTripThroughFromIntToInt(t *testing.T) {
	m := NewDefaultMachine()

	for _, n := range []uint64{0, 1, 2, 42, 255, 1023} {
		got := m.ToInt(m.Eval(m.FromInt(n)))
		assert.EqualValues(t, n, got)
	}
}

func TestNumerals_EvenOdd(t *testing.T) {
	m := NewDefaultMachine()

	assert.True(t, m.IsTrue(m.Eval(m.Even(m.FromInt(4)))))
	assert.False(t, m.IsTrue(m.Eval(m.Even(m.FromInt(5)))))
	assert.True(t, m.IsTrue(m.Eval(m.Odd(m.FromInt(5)))))
	assert.False(t, m.IsTrue(m.Eval(m.Odd(m.FromInt(4)))))
}

func TestNumerals_ShiftLeftAndRight(t *testing.T) {
	m := NewDefaultMachine()

	shifted := m.Eval(m.Shl(m.FromInt(5))) // 101 -> 1010
	assert.EqualValues(t, 10, m.ToInt(shifted))

	back := m.Eval(m.Shr(shifted))
	assert.EqualValues(t, 5, m.ToInt(back))
}

func TestNumerals_Add(t *testing.T) {
	m := NewDefaultMachine()

	tests := []struct{ a, b, want uint64 }{
		{0, 0, 0},
		{2, 3, 5},
		{255, 1, 256},
		{100, 200, 300},
	}
	for _, tt := range tests {
		sum := m.Eval(m.Add(m.FromInt(tt.a), m.FromInt(tt.b)))
		assert.EqualValues(t, tt.want, m.ToInt(sum))
	}
}

func TestNumerals_Sub(t *testing.T) {
	m := NewDefaultMachine()

	tests := []struct{ a, b, want uint64 }{
		{5, 3, 2},
		{10, 10, 0},
		{300, 100, 200},
	}
	for _, tt := range tests {
		diff := m.Eval(m.Sub(m.FromInt(tt.a), m.FromInt(tt.b)))
		assert.EqualValues(t, tt.want, m.ToInt(diff))
	}
}

func TestNumerals_Mul(t *testing.T) {
	m := NewDefaultMachine()

	tests := []struct{ a, b, want uint64 }{
		{0, 9, 0},
		{6, 7, 42},
		{12, 12, 144},
	}
	for _, tt := range tests {
		product := m.Eval(m.Mul(m.FromInt(tt.a), m.FromInt(tt.b)))
		assert.EqualValues(t, tt.want, m.ToInt(product))
	}
}

func TestNumerals_EqNum(t *testing.T) {
	m := NewDefaultMachine()

	assert.True(t, m.IsTrue(m.Eval(m.EqNum(m.FromInt(7), m.FromInt(7)))))
	assert.False(t, m.IsTrue(m.Eval(m.EqNum(m.FromInt(7), m.FromInt(8)))))
}

func TestStrings_RoundTripAndEqStr(t *testing.T) {
	m := NewDefaultMachine()

	s := []byte("hi")
	decoded := m.ToStr(m.Eval(m.FromStr(s)))
	assert.Equal(t, s, decoded)

	assert.True(t, m.IsTrue(m.Eval(m.EqStr(m.FromStr([]byte("ab")), m.FromStr([]byte("ab"))))))
	assert.False(t, m.IsTrue(m.Eval(m.EqStr(m.FromStr([]byte("ab")), m.FromStr([]byte("ac"))))))
}
