// Package core defines the weighted finite-state transducer data model:
// arcs, states, symbol tables, the mutable Fst and its read-only Frozen form.
//
// A transducer T = (Q, s, F, E) over a semiring K is stored as a dense,
// index-addressed slice of states. State ids are 0..NumStates()-1 and are
// assigned by AddState in insertion order. Each state owns:
//
//   - a final weight (== K.Zero() iff the state is not final)
//   - an ordered list of outgoing arcs (ILabel, OLabel, Weight, Next)
//
// Arc order is significant: iteration, sorting stability and structural
// equality all observe it.
//
// Two concrete types share the Reader capability:
//
//   - *Fst     mutable; AddState, AddArc, SetStart, SetFinal, DeleteArcs,
//     DeleteStates, symbol-table setters. Owned by one builder at a time,
//     no internal locking.
//   - *Frozen  immutable snapshot produced by Freeze; arcs live in one
//     contiguous slice with per-state offsets. It has no mutating methods,
//     so mutation attempts are rejected at compile time, and it is safe for
//     concurrent readers.
//
// Label 0 is reserved for epsilon. SymbolTable is an explicit bijection
// between symbol strings and labels that always binds "<eps>" to 0.
//
// Errors:
//
//	ErrStateNotFound    - a state id outside 0..NumStates()-1.
//	ErrNoStart          - the transducer has no start state.
//	ErrBadWeight        - a weight that is not a member of the semiring.
//	ErrFrozen           - a mutable view was requested for a Frozen transducer.
//	ErrSymbolConflict   - Put would break the symbol bijection.
//	ErrEpsilonReserved  - Put would rebind "<eps>" or label 0.
//	ErrBadSymbolID      - a negative label.
package core
