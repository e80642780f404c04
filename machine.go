package blcvm

import "log"

// Machine bundles an Arena with the persistent library singletons built
// on top of it (booleans, the pair and Y combinators, the list and
// arithmetic combinators, the REPL term) so a program only has to construct one value to
// get a working evaluator, the way the teacher's Bytecode bundles the
// compiled program with everything newVirtualMachine needs (vm.go).
type Machine struct {
	Arena *Arena

	lib library
}

// NewMachine builds a Machine from cfg (see NewConfig for defaults)
// and wires up the Church-encoded standard library.
func NewMachine(cfg *Config) *Machine {
	m := &Machine{Arena: NewArena(cfg)}
	m.lib = newLibrary(m.Arena)
	return m
}

// NewDefaultMachine is a convenience constructor for callers (tests,
// the CLI) that don't need to tune arena sizing.
func NewDefaultMachine() *Machine {
	return NewMachine(NewConfig())
}

func logVerbose(format string, args ...any) {
	log.Printf(format, args...)
}
