package blcvm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLines feeds a fixed sequence of lines, then returns an error,
// standing in for a *readline.Instance without pulling readline into
// this package's tests.
type fakeLines struct {
	lines []string
	pos   int
}

func (f *fakeLines) Readline() (string, error) {
	if f.pos >= len(f.lines) {
		return "", errors.New("EOF")
	}
	line := f.lines[f.pos]
	f.pos++
	return line, nil
}

// TestReplSkeleton_MatchesOriginalScenarios reproduces
// original_source/src/x.c's own assertions against its `repl` local
// verbatim (its "// REPL" block, asserting on call(repl, from_str(...))),
// driven here directly over a String source rather than through an
// interactive line reader.
func TestReplSkeleton_MatchesOriginalScenarios(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty input", "", ""},
		{"unterminated digits hit EOF", "12", "Unexpected EOF\n"},
		{"single terminated line", "123\n", "123\n"},
		{"tabs and spaces are skipped", "1\t2 3\n", "123\n"},
		{"equals sign aborts immediately", "= 1\n", "Unexpected '='\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewDefaultMachine()
			result := m.ReplSkeleton(m.FromStr([]byte(tc.input)))
			assert.Equal(t, tc.want, string(m.ToStr(result)))
		})
	}
}

// TestRepl_Run drives the skeleton the way cmd/blcvm does: over an
// interactive line source where every accepted line is newline
// terminated (Enter), rather than a raw byte source that can end
// mid-line. Each Readline call's line reaches the skeleton as its own
// write to the pipe, so output for an earlier completed line is
// flushed to Out before a later Readline call is even made.
func TestRepl_Run(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  string
	}{
		{"no input at all", nil, ""},
		{"one line", []string{"123"}, "123\n"},
		{"whitespace inside a line is skipped", []string{"1\t2 3"}, "123\n"},
		{"equals sign aborts", []string{"= 1"}, "Unexpected '='\n"},
		{"two lines flush independently", []string{"12", "3"}, "12\n3\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewDefaultMachine()
			var out bytes.Buffer
			repl := NewRepl(m, NIL, &out)

			require.NoError(t, repl.Run(&fakeLines{lines: tc.lines}))
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestRepl_Run_WithWrappingProgram(t *testing.T) {
	// A program applied to the skeleton's echoed output exercises
	// Repl.Program being threaded through; identity just passes it on.
	m := NewDefaultMachine()
	identity := m.Arena.Lambda(m.Arena.Var(0))

	var out bytes.Buffer
	repl := NewRepl(m, identity, &out)

	require.NoError(t, repl.Run(&fakeLines{lines: []string{"7"}}))
	assert.Equal(t, "7\n", out.String())
}
