// Package semiring defines the weight algebras that parameterize every
// transducer in this module.
//
// A semiring (K, ⊕, ⊗, 0̄, 1̄) supplies:
//
//   - Plus (⊕): combines the weights of alternative paths.
//   - Times (⊗): accumulates weights along a path.
//   - Zero (0̄): identity of ⊕, annihilator of ⊗; marks non-final states.
//   - One (1̄): identity of ⊗.
//
// Operations that factor weights (determinization, weight pushing) also need
// Divide, and path-ranking algorithms need NaturalLess, the order induced by
// ⊕ (a < b iff a ⊕ b == a and a != b).
//
// Provided algebras (all over float32):
//
//	Tropical     (min, +, +Inf, 0)      shortest path / Viterbi
//	Log          (-log(e^-a+e^-b), +, +Inf, 0)   forward probabilities in -log space
//	Probability  (+, ×, 0, 1)           raw probabilities
//
// Every semiring has a stable Name used as its persisted tag; ByName resolves it back.
package semiring
