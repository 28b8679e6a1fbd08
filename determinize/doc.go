// Package determinize implements weighted subset construction for acceptors.
//
// Every result state is a superstate: a list of (old state, residual weight)
// pairs ordered by old state id. Starting from {(start, One())}, each
// superstate is expanded once, in breadth-first order:
//
//   - labels are visited in order of first appearance across the members' arcs;
//   - for label l, w' = ⊕ residual ⊗ w over all member arcs labeled l;
//   - the successor holds, per destination d, (d, (One ⊘ w') ⊗ ⊕ residual ⊗ w);
//   - exactly one arc l:l/w' leaves the superstate per label;
//   - the final weight is ⊕ residual ⊗ final(old) over the members.
//
// Superstates are identified by their member ids plus residuals quantized to
// Options.Delta, so residuals that differ only by float rounding collapse.
//
// Not every weighted automaton is determinizable; WithMaxStates bounds the
// construction and reports ErrStateLimit instead of running forever.
//
// Errors:
//
//   - ErrNotAcceptor if any arc has ILabel != OLabel.
//   - ErrStateLimit  if more than Options.MaxStates superstates are created.
//   - core.ErrNoStart if the input has no start state.
package determinize
