package semiring

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknown indicates that no semiring is registered under the requested name.
var ErrUnknown = errors.New("semiring: unknown semiring")

// Semiring is a weight algebra over float32 scalars.
// Implementations are stateless values and safe for concurrent use.
type Semiring interface {
	// Name returns the stable tag persisted with a transducer.
	Name() string

	// Zero returns the additive identity; a state is final iff its weight != Zero().
	Zero() float32

	// One returns the multiplicative identity.
	One() float32

	// Plus combines weights of alternative paths.
	Plus(a, b float32) float32

	// Times extends a path weight by another weight.
	Times(a, b float32) float32

	// Divide returns a ⊘ b, the left residual used by weight factoring.
	Divide(a, b float32) float32

	// Reverse returns the weight in the reversed semiring.
	// For the commutative scalar algebras here it is the identity.
	Reverse(w float32) float32

	// IsMember reports whether w is a valid element of the algebra.
	IsMember(w float32) bool

	// NaturalLess reports whether a is strictly better than b.
	NaturalLess(a, b float32) bool
}

// Names of the built-in semirings.
const (
	TropicalName    = "tropical"
	LogName         = "log"
	ProbabilityName = "probability"
)

// Built-in semiring instances.
var (
	Tropical    Semiring = TropicalSemiring{}
	Log         Semiring = LogSemiring{}
	Probability Semiring = ProbabilitySemiring{}
)

// ByName returns the built-in semiring registered under name.
func ByName(name string) (Semiring, error) {
	switch name {
	case TropicalName:
		return Tropical, nil
	case LogName:
		return Log, nil
	case ProbabilityName:
		return Probability, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// naturalLess implements the ⊕-induced order shared by idempotent-ish algebras.
func naturalLess(s Semiring, a, b float32) bool {
	return s.Plus(a, b) == a && a != b
}

// ApproxEqual reports whether a and b differ by at most delta.
// Infinite weights only match the same infinity.
func ApproxEqual(a, b float32, delta float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(float64(a), 0) || math.IsInf(float64(b), 0) {
		return false
	}

	return math.Abs(float64(a)-float64(b)) <= delta
}
