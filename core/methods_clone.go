// File: methods_clone.go
// Role: Deep copies of any Reader into a fresh mutable Fst.

package core

// Clone returns a mutable deep copy of r: states, arcs, start, symbol tables
// and semiring. The result shares nothing with r.
// Complexity: O(V + E)
func Clone(r Reader) *Fst {
	out := CloneEmpty(r)
	n := r.NumStates()
	var s StateID
	for s = 0; s < StateID(n); s++ {
		k := r.NumArcs(s)
		if k == 0 {
			continue
		}
		arcs := make([]Arc, k)
		for i := 0; i < k; i++ {
			arcs[i] = r.Arc(s, i)
		}
		out.states[s].arcs = arcs
	}

	return out
}

// CloneEmpty copies states, final weights, start and symbol tables of r, but no arcs.
// Complexity: O(V)
func CloneEmpty(r Reader) *Fst {
	n := r.NumStates()
	out := New(r.Semiring(),
		WithCapacity(n),
		WithInputSymbols(r.InputSymbols().Copy()),
		WithOutputSymbols(r.OutputSymbols().Copy()),
	)
	out.states = out.states[:n]
	var s StateID
	for s = 0; s < StateID(n); s++ {
		out.states[s] = state{final: r.Final(s)}
	}
	out.start = r.Start()

	return out
}
