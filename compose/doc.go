// Package compose implements weighted composition of two transducers.
//
// Compose(A, B) matches A's output labels against B's input labels. A state
// of the result is a triple (stateA, stateB, filter) where filter is the state
// of a 3-state epsilon filter automaton:
//
//	state \ move   Match   AEps   BEps   BothEps
//	None           None    AEps   BEps   None
//	AEps           None    AEps   -      -
//	BEps           None    -      BEps   -
//
// AEps moves A along an arc with epsilon output while B stays put, BEps moves
// B along an arc with epsilon input while A stays put, BothEps moves both
// along an epsilon pair. Blocking mixed epsilon sequences leaves exactly one
// path per matched epsilon transition.
//
// Result states are numbered in breadth-first discovery order. For each
// state, arcs are emitted per A arc in order (the A-only epsilon move, then
// the epsilon pairs, or the label matches in B's arc order) and finally the
// B-only epsilon moves. The composed arc of (iA:oA/wA, iB:oB/wB) is
// iA:oB/Times(wA, wB); the final weight is Times(finalA, finalB).
//
// Dead states are removed with connect.Connect unless WithoutConnect is given.
//
// Preconditions:
//
//   - B is sorted by input label (see arcsort.ILabel); violations yield ErrUnsortedInput.
//   - Both operands are bound to the requested semiring.
//
// Complexity: O(V_A·V_B·3 · d_A·log d_B) in the worst case.
package compose
