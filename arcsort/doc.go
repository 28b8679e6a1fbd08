// Package arcsort orders the outgoing arcs of every state of a transducer.
//
// Composition does an ordered lookup on the arcs of its right operand, so the
// right operand must be sorted by input label first. Sorting is stable (ties
// keep their original relative order) and idempotent.
//
// Comparators:
//
//	ILabel  input label, then output label
//	OLabel  output label, then input label
//
// Functions:
//
//	Sort(r, cmp)         sorted mutable copy of any Reader
//	SortInPlace(r, cmp)  sorts a mutable transducer; ErrFrozen for a Frozen
//	IsSorted(r, cmp)     reports whether every state is already sorted
//
// Complexity: O(E log d), d = maximum out-degree.
package arcsort
