// Package rmepsilon removes epsilon:epsilon arcs from a transducer.
//
// For every state s, the epsilon closure of s (states reachable over arcs
// with epsilon on both sides, with their ⊕-distances d) is computed by the
// generic relaxation of package shortestpath. The result state s then gets
//
//   - every non-epsilon arc q -i:o/w-> t of a closure member q, as s -i:o/d(q)⊗w-> t,
//     in closure order then arc order;
//   - the final weight ⊕ d(q) ⊗ final(q) over the closure.
//
// Arcs with only one epsilon side are kept as ordinary arcs. States left
// unreachable are removed by connect.Connect unless WithoutConnect is given.
//
// Complexity: O(V·(V + E)) in the worst case (one closure per state).
package rmepsilon
