package semiring

import "math"

// ProbabilitySemiring is (+, ×, 0, 1) over non-negative reals.
type ProbabilitySemiring struct{}

// Name implements Semiring.
func (ProbabilitySemiring) Name() string { return ProbabilityName }

// Zero implements Semiring.
func (ProbabilitySemiring) Zero() float32 { return 0 }

// One implements Semiring.
func (ProbabilitySemiring) One() float32 { return 1 }

// Plus returns a + b.
func (ProbabilitySemiring) Plus(a, b float32) float32 { return a + b }

// Times returns a × b.
func (ProbabilitySemiring) Times(a, b float32) float32 { return a * b }

// Divide returns a / b; dividing by zero yields NaN.
func (ProbabilitySemiring) Divide(a, b float32) float32 {
	if b == 0 {
		return float32(math.NaN())
	}

	return a / b
}

// Reverse implements Semiring.
func (ProbabilitySemiring) Reverse(w float32) float32 { return w }

// IsMember accepts finite and infinite non-negative values.
func (ProbabilitySemiring) IsMember(w float32) bool {
	return !math.IsNaN(float64(w)) && w >= 0
}

// NaturalLess ranks more probable weights first.
func (ProbabilitySemiring) NaturalLess(a, b float32) bool { return a > b }
