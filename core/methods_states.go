// File: methods_states.go
// Role: State lifecycle: AddState, SetStart, SetFinal, DeleteStates and the
//       HasState/IsFinal queries.
// Determinism:
//   - AddState hands out ids in insertion order.
//   - DeleteStates renumbers survivors preserving their relative order.

package core

import "fmt"

// AddState appends a non-final state and returns its id.
// Complexity: O(1) amortized.
func (f *Fst) AddState() StateID {
	f.states = append(f.states, state{final: f.sr.Zero()})
	return StateID(len(f.states) - 1)
}

// HasState reports whether s is a valid state id.
func (f *Fst) HasState(s StateID) bool {
	return s >= 0 && int(s) < len(f.states)
}

// SetStart makes s the start state.
// Complexity: O(1)
func (f *Fst) SetStart(s StateID) error {
	if !f.HasState(s) {
		return fmt.Errorf("%w: start %d", ErrStateNotFound, s)
	}
	f.start = s

	return nil
}

// SetFinal sets the final weight of s; Semiring().Zero() makes it non-final.
// Complexity: O(1)
func (f *Fst) SetFinal(s StateID, w float32) error {
	if !f.HasState(s) {
		return fmt.Errorf("%w: %d", ErrStateNotFound, s)
	}
	if !f.sr.IsMember(w) {
		return fmt.Errorf("%w: final weight %v of state %d", ErrBadWeight, w, s)
	}
	f.states[s].final = w

	return nil
}

// DeleteStates removes the given states together with every arc entering or
// leaving them. Survivors are renumbered densely in their original order.
// The start state becomes NoState if it is deleted.
//
// Steps:
//  1. Validate ids and mark the doomed states.
//  2. Build old→new id map for survivors.
//  3. Compact the state slice and rewrite arc targets, dropping arcs into deleted states.
//
// Complexity: O(V + E)
func (f *Fst) DeleteStates(ids []StateID) error {
	// 1) Validate
	doomed := make([]bool, len(f.states))
	for _, s := range ids {
		if !f.HasState(s) {
			return fmt.Errorf("%w: %d", ErrStateNotFound, s)
		}
		doomed[s] = true
	}

	// 2) Renumbering map
	remap := make([]StateID, len(f.states))
	next := StateID(0)
	for s := range f.states {
		if doomed[s] {
			remap[s] = NoState
			continue
		}
		remap[s] = next
		next++
	}

	// 3) Compact
	kept := f.states[:0]
	for s := range f.states {
		if doomed[s] {
			continue
		}
		st := f.states[s]
		arcs := st.arcs[:0]
		for _, a := range st.arcs {
			if remap[a.Next] == NoState {
				continue
			}
			a.Next = remap[a.Next]
			arcs = append(arcs, a)
		}
		st.arcs = arcs
		kept = append(kept, st)
	}
	// Clear the tail so dropped arc slices can be collected.
	for i := len(kept); i < len(f.states); i++ {
		f.states[i] = state{}
	}
	f.states = kept
	if f.start != NoState {
		f.start = remap[f.start]
	}

	return nil
}

// IsFinal reports whether s is final in r.
func IsFinal(r Reader, s StateID) bool {
	return r.Final(s) != r.Semiring().Zero()
}

// CheckStart returns ErrNoStart unless r has a valid start state.
func CheckStart(r Reader) error {
	s := r.Start()
	if s == NoState {
		return ErrNoStart
	}
	if s < 0 || int(s) >= r.NumStates() {
		return fmt.Errorf("%w: start %d", ErrStateNotFound, s)
	}

	return nil
}
