// Package connect removes the dead states of a transducer.
//
// A state is kept iff it is accessible (reachable from the start) and
// co-accessible (some final state is reachable from it). Survivors are
// renumbered densely in their original id order, so arc order and the
// relative numbering of the result are deterministic.
//
// Both reachability sets are roaring bitmaps over state ids; the traversals
// are breadth-first with an explicit slice queue.
//
// A transducer without a start state, or whose start is not co-accessible,
// connects to the empty transducer (no states, start core.NoState).
//
// Complexity: O(V + E) time, O(V + E) space for the reverse adjacency.
package connect
