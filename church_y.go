package blcvm

// Y returns the fixed-point combinator cell built once in newLibrary.
func (m *Machine) Y() Ref { return m.lib.yTerm }

// Recursive builds a self-referential term out of body, where body is
// expected to be shaped `λself. λ...rest. ...` and `self` stands for
// the whole recursive value. Unlike the original C's `recursive()`
// (original_source/src/x.c), this doesn't add the extra eta-wrapping
// layer used there to defer evaluation under a strict calling
// convention: this evaluator is already call-by-need, so a direct
// application of Y to body is itself lazy enough (documented as a
// resolved simplification in DESIGN.md).
func (m *Machine) Recursive(body Ref) Ref {
	return m.Arena.Call(m.lib.yTerm, body)
}
