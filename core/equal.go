// File: equal.go
// Role: Structural equality between transducers.
// Determinism:
//   - Arc order is significant; no normalization is applied.

package core

import "github.com/elliotfiske/cmu-lextool-sub001/semiring"

// Equal reports whether a and b are structurally identical: same semiring,
// start, symbol tables and, per state, the same final weight and the same
// ordered arc list. Weights are compared exactly.
// Complexity: O(V + E + |symbols|)
func Equal(a, b Reader) bool {
	return equal(a, b, func(x, y float32) bool { return x == y })
}

// ApproxEqual is Equal with weights compared up to delta.
// Infinite weights only match the same infinity.
func ApproxEqual(a, b Reader, delta float64) bool {
	return equal(a, b, func(x, y float32) bool { return semiring.ApproxEqual(x, y, delta) })
}

func equal(a, b Reader, same func(x, y float32) bool) bool {
	// 1) Header
	if a.Semiring().Name() != b.Semiring().Name() ||
		a.Start() != b.Start() ||
		a.NumStates() != b.NumStates() {
		return false
	}
	if !a.InputSymbols().Equal(b.InputSymbols()) || !a.OutputSymbols().Equal(b.OutputSymbols()) {
		return false
	}

	// 2) States in id order
	n := a.NumStates()
	var s StateID
	for s = 0; s < StateID(n); s++ {
		if !same(a.Final(s), b.Final(s)) {
			return false
		}
		k := a.NumArcs(s)
		if k != b.NumArcs(s) {
			return false
		}
		for i := 0; i < k; i++ {
			x, y := a.Arc(s, i), b.Arc(s, i)
			if x.ILabel != y.ILabel || x.OLabel != y.OLabel || x.Next != y.Next || !same(x.Weight, y.Weight) {
				return false
			}
		}
	}

	return true
}
