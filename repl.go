package blcvm

import (
	"io"
	"os"
)

// LineReader is the minimal shape Repl needs from a line editor; a
// *readline.Instance satisfies it without this package importing
// readline. Repl owns nothing about terminal handling (readline,
// prompts) — that's cmd/blcvm's job, mirroring the teacher's split
// between its bufio-based interactive loop in cmd/langlang/main.go and
// the parser/VM package it drives.
type LineReader interface {
	Readline() (string, error)
}

// Repl drives the REPL-skeleton term (church_repl.go) over one
// continuous lazy byte stream fed from an interactive line source,
// instead of re-parsing each line as an independent top-level program
// — the architecture original_source/src/x.c's `repl` local uses,
// applying one Y-recursive term to a single input list rather than
// restarting a fresh evaluation per line.
type Repl struct {
	Machine *Machine
	Program Ref // NIL to drive the skeleton's own echoed output directly
	Out     io.Writer
}

func NewRepl(m *Machine, program Ref, out io.Writer) *Repl {
	return &Repl{Machine: m, Program: program, Out: out}
}

// Run reads lines from lr until it returns an error (io.EOF or an
// interrupt), feeding each one, newline-terminated, into a pipe backing
// a single Arena.NewInputStream. That stream is threaded through the
// REPL skeleton (and, if set, wrapped by Program) and driven to Out via
// Output, so output is written as it's produced rather than only once
// the whole session ends: concat's laziness (church_list.go) means a
// completed line's bytes reach Out as soon as a trailing newline closes
// it out, while later lines are still blocked on the next Readline.
func (r *Repl) Run(lr LineReader) error {
	pr, pw, err := os.Pipe()
	if err != nil {
		return err
	}

	go func() {
		defer pw.Close()
		for {
			line, err := lr.Readline()
			if err != nil { // io.EOF or readline.ErrInterrupt
				return
			}
			if _, err := pw.WriteString(line + "\n"); err != nil {
				return
			}
		}
	}()
	defer pr.Close()

	m := r.Machine
	stream := m.Arena.NewInputStream(pr)
	target := m.ReplSkeleton(stream)
	if r.Program != NIL {
		target = m.Arena.Call(r.Program, target)
	}
	return m.Output(target, r.Out)
}
