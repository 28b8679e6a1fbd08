package semiring

import (
	"math"

	"github.com/elliotfiske/cmu-lextool-sub001/internal/mathutil"
)

// LogSemiring is (-log(e^-a + e^-b), +, +Inf, 0) over negated natural logs.
type LogSemiring struct{}

// Name implements Semiring.
func (LogSemiring) Name() string { return LogName }

// Zero implements Semiring.
func (LogSemiring) Zero() float32 { return posInf }

// One implements Semiring.
func (LogSemiring) One() float32 { return 0 }

// Plus returns -log(exp(-a) + exp(-b)).
func (s LogSemiring) Plus(a, b float32) float32 {
	if !s.IsMember(a) || !s.IsMember(b) {
		return negInf
	}

	return float32(mathutil.NegLogAdd(float64(a), float64(b)))
}

// Times returns a + b.
func (s LogSemiring) Times(a, b float32) float32 {
	if !s.IsMember(a) || !s.IsMember(b) {
		return negInf
	}

	return a + b
}

// Divide returns a - b. Dividing by Zero is undefined and yields -Inf.
func (s LogSemiring) Divide(a, b float32) float32 {
	if !s.IsMember(a) || !s.IsMember(b) || b == posInf {
		return negInf
	}
	if a == posInf {
		return posInf
	}

	return a - b
}

// Reverse implements Semiring.
func (LogSemiring) Reverse(w float32) float32 { return w }

// IsMember rejects NaN and -Inf.
func (LogSemiring) IsMember(w float32) bool {
	return !math.IsNaN(float64(w)) && w != negInf
}

// NaturalLess orders by cost: a is better than b iff a < b.
// ⊕ is not idempotent here, so the induced order is replaced by the
// order of the underlying costs.
func (LogSemiring) NaturalLess(a, b float32) bool { return a < b }
