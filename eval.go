package blcvm

// Eval reduces expr to weak head normal form under an empty top-level
// environment, the entry point spec.md section 4.3 describes. The
// host call stack never grows with the size of the reduction: the
// loop below is the trampolined CPS evaluator, replacing recursion
// with an explicit Cont/Memoize chain built out of ordinary cells, the
// way the original C implementation's mature variant does (see
// SPEC_FULL.md section 3 for the one representational deviation, in
// how environments are chained).
func (m *Machine) Eval(expr Ref) Ref {
	return m.Arena.eval(expr, NIL, m.Arena.terminalCont())
}

// terminalCont builds `Cont(Var(0))`, the sentinel continuation whose
// presence at the bottom of the chain means "the loop is done, return
// the current cell verbatim" (spec.md section 4.3, obligation 3).
func (a *Arena) terminalCont() Ref {
	return a.cont(a.Var(0))
}

func (a *Arena) isTerminal(cc Ref) bool {
	k := a.cells[cc].k
	return a.cells[k].tag == TagVar
}

// pushApply records that, once `cell` reduces to a Proc, its next
// pending obligation is to receive argWrap as its newest bound
// variable. Mirrors the original's `cont(call(cc, call(var(0), arg)))`
// encoding: the new Cont.k is a Call cell whose fun is the previous
// Cont (read back, never evaluated) and whose arg is itself a Call
// tagging the payload as "apply" (as opposed to TagMemoize, which
// tags the "write back a forced thunk" obligation).
func (a *Arena) pushApply(cc, argWrap Ref) Ref {
	marker := a.Call(a.Var(0), argWrap)
	return a.cont(a.Call(cc, marker))
}

func (a *Arena) pushMemo(cc, target Ref) Ref {
	marker := a.memoize(target)
	return a.cont(a.Call(cc, marker))
}

// popFrame inspects the top of cc (which must not be terminal) and
// returns whichever of the two payloads it carries.
func (a *Arena) popFrame(cc Ref) (prev Ref, isMemo bool, wrappedArg Ref, target Ref) {
	frame := &a.cells[a.cells[cc].k] // the Call built by pushApply/pushMemo
	prev = frame.fun
	payload := &a.cells[frame.arg]
	if payload.tag == TagMemoize {
		return prev, true, NIL, payload.target
	}
	// payload is the Call(Var(0), wrappedArg) apply marker.
	return prev, false, payload.arg, NIL
}

// eval is the trampoline itself: a loop over (cell, env, cc) with no
// recursive call back into itself anywhere in its body.
func (a *Arena) eval(cell, env, cc Ref) Ref {
	for {
		switch a.Tag(cell) {
		case TagVar:
			idx := a.cells[cell].idx
			w := a.frameAt(env, idx)
			if w == NIL {
				cell = a.Var(idx - a.frameLen(env))
				continue
			}
			cell = w
			continue

		case TagLambda:
			cell = a.proc(a.cells[cell].body, env)
			continue

		case TagCall:
			wrapped := a.wrap(a.cells[cell].arg, env)
			cc = a.pushApply(cc, wrapped)
			cell = a.cells[cell].fun
			continue

		case TagWrap:
			c := &a.cells[cell]
			if c.cache != cell {
				env = c.context
				cell = c.cache
				continue
			}
			cc = a.pushMemo(cc, cell)
			env = c.context
			cell = c.unwrap
			continue

		case TagProc:
			if a.isTerminal(cc) {
				return cell
			}
			prev, isMemo, wrappedArg, target := a.popFrame(cc)
			if isMemo {
				a.store(target, cell)
				cc = prev
				continue
			}
			env = a.frame(wrappedArg, a.cells[cell].stack)
			block := a.cells[cell].block
			cc = prev
			cell = block
			continue

		case TagInput:
			if a.isTerminal(cc) {
				return cell
			}
			cell = a.forceInput(cell)
			continue

		case TagString:
			if a.isTerminal(cc) {
				return cell
			}
			cell = a.forceString(cell)
			continue

		case TagInteger:
			if a.isTerminal(cc) {
				return cell
			}
			cell = a.forceInteger(cell)
			continue

		default:
			fatal(UnreachableTag, "eval: unexpected tag %s in reduction position", a.Tag(cell))
			panic("unreachable")
		}
	}
}
