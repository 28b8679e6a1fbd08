// Package shortestpath computes semiring shortest distances and extracts the
// n best accepting paths of a weighted transducer.
//
// Distances use the generic single-source relaxation (Mohri 2002): a FIFO
// queue of states, each holding the weight added since it was last dequeued.
// It works for any semiring whose ⊕ converges on the input's cycles; two
// distances are equal once they differ by at most Options.Delta.
//
//	Closure(r, s, keep)       sparse distances from s over the arcs keep accepts
//	Distance(r, s, keep)      the same, dense over all states
//	ShortestDistance(r, rev)  from the start, or (rev) to the final states
//
// NShortestPaths ranks path prefixes best-first by prefix ⊗ distance-to-final
// under the semiring's NaturalLess, ties going to the earlier-queued prefix.
// Each state is expanded at most n times; with keepTies a state is also
// expanded for prefixes tied with its n-th expansion, and every accepting
// path tied with the n-th best is returned. The selected paths are laid out
// as a prefix tree rooted at state 0.
//
// Complexity:
//
//   - Distance: O(V + E) per relaxation round; acyclic and tropical inputs need few rounds.
//   - NShortestPaths: O(n·(V + E)·log(n·E)) plus one reverse distance computation.
package shortestpath
