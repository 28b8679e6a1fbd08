// Package mathutil holds small numeric helpers shared by the semirings.
package mathutil

import "math"

// NegLogAdd returns -log(exp(-a) + exp(-b)) in a numerically stable way.
// Weights are negated natural logs, so +Inf plays the role of log(0).
// Uses a threshold-based early exit to skip exp/log1p when the larger value
// contributes less than float32 precision.
func NegLogAdd(a, b float64) float64 {
	if math.IsInf(a, 1) {
		return b
	}
	if math.IsInf(b, 1) {
		return a
	}
	if a > b {
		a, b = b, a
	}
	d := b - a
	if d > 36.0 {
		return a
	}
	return a - math.Log1p(math.Exp(-d))
}

// NegLogSub returns -log(exp(-a) - exp(-b)), assuming a < b.
// Returns +Inf when the difference is not positive.
func NegLogSub(a, b float64) float64 {
	if math.IsInf(b, 1) {
		return a
	}
	if a >= b {
		return math.Inf(1)
	}
	return a - math.Log1p(-math.Exp(a-b))
}
