// Package reverse builds the reversal of a weighted transducer.
//
// For an input with n states the result has n+1 states:
//
//   - states 0..n-1 mirror the input states;
//   - state n is a new super-start with an epsilon arc, weighted by the final
//     weight, to every final input state (ascending id);
//   - every arc s1 -i:o/w-> s2 becomes s2 -i:o/Reverse(w)-> s1, appended in
//     (source state, arc index) order of the input;
//   - the old start is the only final state, with weight One().
//
// Symbol tables are copied unchanged. The input is not modified.
//
// Errors:
//
//   - core.ErrNoStart if the input has no start state.
//
// Complexity: O(V + E).
package reverse
