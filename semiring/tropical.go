package semiring

import "math"

// TropicalSemiring is (min, +, +Inf, 0). Weights are costs; lower is better.
type TropicalSemiring struct{}

var posInf = float32(math.Inf(1))
var negInf = float32(math.Inf(-1))

// Name implements Semiring.
func (TropicalSemiring) Name() string { return TropicalName }

// Zero implements Semiring.
func (TropicalSemiring) Zero() float32 { return posInf }

// One implements Semiring.
func (TropicalSemiring) One() float32 { return 0 }

// Plus returns min(a, b).
func (s TropicalSemiring) Plus(a, b float32) float32 {
	if !s.IsMember(a) || !s.IsMember(b) {
		return negInf
	}
	if a < b {
		return a
	}

	return b
}

// Times returns a + b.
func (s TropicalSemiring) Times(a, b float32) float32 {
	if !s.IsMember(a) || !s.IsMember(b) {
		return negInf
	}

	return a + b
}

// Divide returns a - b. Dividing by Zero is undefined and yields -Inf.
func (s TropicalSemiring) Divide(a, b float32) float32 {
	if !s.IsMember(a) || !s.IsMember(b) || b == posInf {
		return negInf
	}
	if a == posInf {
		return posInf
	}

	return a - b
}

// Reverse implements Semiring.
func (TropicalSemiring) Reverse(w float32) float32 { return w }

// IsMember rejects NaN and -Inf.
func (TropicalSemiring) IsMember(w float32) bool {
	return !math.IsNaN(float64(w)) && w != negInf
}

// NaturalLess reports a < b.
func (s TropicalSemiring) NaturalLess(a, b float32) bool { return naturalLess(s, a, b) }
