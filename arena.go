package blcvm

// Arena is the fixed-capacity pool of tagged cells described in
// spec.md section 4.1: allocation is first-fit over a flat array, and
// running out triggers a mark-sweep before declaring OOM. Cells are
// never compacted, so a Ref is stable for the lifetime of the value it
// names.
type Arena struct {
	cells []Cell

	// used tracks which cells are currently allocated. marks is the
	// scratch reachability bitmap a collection recomputes from
	// scratch each time it runs; sweeping is just used = marks.
	used  []bool
	marks []bool

	// scan is where the next first-fit allocation resumes looking,
	// so a long run of allocate/collect/allocate doesn't re-scan
	// cells it already knows are live from the start every time.
	scan int

	roots   *Registers
	globals []Ref

	// pairTerm/falseTerm are the library's cons and nil cells, copied
	// here (by newLibrary) so the lazy stream forcers in io_stream.go
	// can build pair/false results directly without the Arena needing
	// to know about the library struct that owns them.
	pairTerm, falseTerm, trueTerm Ref

	verbose bool
}

// NewArena builds an Arena sized per cfg's "arena.cells"/"arena.registers".
func NewArena(cfg *Config) *Arena {
	n := cfg.GetInt("arena.cells")
	return &Arena{
		cells:   make([]Cell, n),
		used:    make([]bool, n),
		marks:   make([]bool, n),
		roots:   newRegisters(cfg.GetInt("arena.registers")),
		verbose: cfg.GetBool("gc.verbose"),
	}
}

func (a *Arena) Cell(ref Ref) *Cell {
	if ref == NIL {
		fatal(UnreachableTag, "dereferenced NIL")
	}
	return &a.cells[ref]
}

func (a *Arena) Tag(ref Ref) Tag {
	if ref == NIL {
		fatal(UnreachableTag, "NIL has no tag")
	}
	return a.cells[ref].tag
}

// Roots exposes the explicit GC root stack so constructors across
// files (terms.go, church_*.go, eval.go) can Push/Pop intermediate
// results around allocations.
func (a *Arena) Roots() *Registers { return a.roots }

// addGlobal marks ref as a persistent root: library singletons (pair_,
// true/false, Y, ...) that must survive every collection regardless of
// what is currently on the transient root stack.
func (a *Arena) addGlobal(ref Ref) Ref {
	a.globals = append(a.globals, ref)
	return ref
}

// alloc returns a fresh cell of the given tag, running a collection if
// the arena is full and reporting OOM if that doesn't free anything.
func (a *Arena) alloc(tag Tag) Ref {
	if ref, ok := a.firstFit(); ok {
		a.cells[ref] = Cell{tag: tag}
		a.used[ref] = true
		return ref
	}

	a.collect()

	if ref, ok := a.firstFit(); ok {
		a.cells[ref] = Cell{tag: tag}
		a.used[ref] = true
		return ref
	}

	fatal(OOM, "arena exhausted after sweep (%d cells)", len(a.cells))
	panic("unreachable")
}

func (a *Arena) firstFit() (Ref, bool) {
	n := len(a.cells)
	for i := 0; i < n; i++ {
		idx := (a.scan + i) % n
		if !a.used[idx] {
			a.scan = (idx + 1) % n
			return Ref(idx), true
		}
	}
	return NIL, false
}
