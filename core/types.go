package core

import (
	"errors"

	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
)

// Sentinel errors for core transducer operations.
var (
	// ErrStateNotFound indicates an operation referenced a non-existent state id.
	ErrStateNotFound = errors.New("core: state not found")

	// ErrDuplicateState indicates that a state id was defined twice.
	ErrDuplicateState = errors.New("core: duplicate state id")

	// ErrNoStart indicates that the transducer has no start state.
	ErrNoStart = errors.New("core: start state is undefined")

	// ErrBadWeight indicates a weight that is not a member of the bound semiring.
	ErrBadWeight = errors.New("core: weight is not a semiring member")

	// ErrFrozen indicates that a mutable view was requested for a frozen transducer.
	ErrFrozen = errors.New("core: transducer is frozen")

	// ErrSemiringMismatch indicates that two operands are bound to different semirings.
	ErrSemiringMismatch = errors.New("core: semiring mismatch")
)

// StateID identifies a state within one transducer.
type StateID int

// NoState is the start id of a transducer without a start state.
const NoState StateID = -1

// Epsilon is the reserved "no symbol" label.
const Epsilon = 0

// Arc is one labeled, weighted transition to Next.
type Arc struct {
	// ILabel is the input label; Epsilon consumes nothing.
	ILabel int

	// OLabel is the output label; Epsilon emits nothing.
	OLabel int

	// Weight is a member of the owning transducer's semiring.
	Weight float32

	// Next is the destination state.
	Next StateID
}

// Reader is the read-only capability shared by *Fst and *Frozen.
// State arguments must be in 0..NumStates()-1.
type Reader interface {
	// Semiring returns the weight algebra bound to the transducer.
	Semiring() semiring.Semiring

	// Start returns the start state, or NoState.
	Start() StateID

	// NumStates returns the number of states.
	NumStates() int

	// Final returns the final weight of s (Semiring().Zero() if not final).
	Final(s StateID) float32

	// NumArcs returns the number of arcs leaving s.
	NumArcs(s StateID) int

	// Arc returns the i-th arc leaving s.
	Arc(s StateID, i int) Arc

	// InputSymbols returns the input symbol table, or nil.
	InputSymbols() *SymbolTable

	// OutputSymbols returns the output symbol table, or nil.
	OutputSymbols() *SymbolTable
}
