// File: methods_arcs.go
// Role: Arc lifecycle and arc-level queries: AddArc, DeleteArcs, SortArcs,
//       NumArcsTotal, IsAcceptor.

package core

import (
	"fmt"
	"sort"
)

// AddArc appends a to the arc list of s.
//
// Errors:
//   - ErrStateNotFound if s or a.Next does not exist.
//   - ErrBadWeight if a.Weight is not a semiring member.
//
// Complexity: O(1) amortized.
func (f *Fst) AddArc(s StateID, a Arc) error {
	if !f.HasState(s) {
		return fmt.Errorf("%w: source %d", ErrStateNotFound, s)
	}
	if !f.HasState(a.Next) {
		return fmt.Errorf("%w: arc %d→%d", ErrStateNotFound, s, a.Next)
	}
	if !f.sr.IsMember(a.Weight) {
		return fmt.Errorf("%w: arc %d→%d weight %v", ErrBadWeight, s, a.Next, a.Weight)
	}
	f.states[s].arcs = append(f.states[s].arcs, a)

	return nil
}

// DeleteArcs removes every arc leaving s.
// Complexity: O(1)
func (f *Fst) DeleteArcs(s StateID) error {
	if !f.HasState(s) {
		return fmt.Errorf("%w: %d", ErrStateNotFound, s)
	}
	f.states[s].arcs = nil

	return nil
}

// SortArcs stably sorts the arcs of every state with less.
// Complexity: O(E log d) where d is the maximum out-degree.
func (f *Fst) SortArcs(less func(a, b Arc) bool) {
	for s := range f.states {
		arcs := f.states[s].arcs
		sort.SliceStable(arcs, func(i, j int) bool { return less(arcs[i], arcs[j]) })
	}
}

// NumArcsTotal returns the number of arcs in r.
// Complexity: O(V)
func NumArcsTotal(r Reader) int {
	total := 0
	n := r.NumStates()
	for s := 0; s < n; s++ {
		total += r.NumArcs(StateID(s))
	}

	return total
}

// IsAcceptor reports whether every arc of r has ILabel == OLabel.
// Complexity: O(E)
func IsAcceptor(r Reader) bool {
	n := r.NumStates()
	for s := 0; s < n; s++ {
		k := r.NumArcs(StateID(s))
		for i := 0; i < k; i++ {
			if a := r.Arc(StateID(s), i); a.ILabel != a.OLabel {
				return false
			}
		}
	}

	return true
}
