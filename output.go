package blcvm

import "io"

// Output drives l, a lazy byte list, writing each decoded byte to w as
// it is produced. Grounded on original_source/src/x.c's output(): a
// loop of eval/empty/first/rest that forces exactly one more byte per
// iteration, so a caller backed by a pipe or terminal sees bytes as
// the evaluator produces them rather than waiting for the whole list.
func (m *Machine) Output(l Ref, w io.Writer) error {
	cur := m.Eval(l)
	for !m.IsTrue(m.Empty(cur)) {
		if _, err := w.Write([]byte{byte(m.decodeBits(m.First(cur)))}); err != nil {
			return err
		}
		cur = m.Eval(m.Rest(cur))
	}
	return nil
}
