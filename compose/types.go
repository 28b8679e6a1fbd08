package compose

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/elliotfiske/cmu-lextool-sub001/internal/logging"
)

// ErrUnsortedInput indicates that the right operand is not sorted by input label.
var ErrUnsortedInput = errors.New("compose: right operand is not sorted by input label")

// Filter is the state of the epsilon filter automaton.
type Filter uint8

const (
	// FilterNone admits every move.
	FilterNone Filter = iota
	// FilterAEps follows an A-only epsilon move; B may not move alone.
	FilterAEps
	// FilterBEps follows a B-only epsilon move; A may not move alone.
	FilterBEps
)

// String implements fmt.Stringer.
func (f Filter) String() string {
	switch f {
	case FilterNone:
		return "none"
	case FilterAEps:
		return "a-eps"
	case FilterBEps:
		return "b-eps"
	}

	return fmt.Sprintf("Filter(%d)", uint8(f))
}

// Move is the kind of step taken by a composed arc.
type Move uint8

const (
	// MoveMatch pairs a non-epsilon A output with an equal B input.
	MoveMatch Move = iota
	// MoveAEps advances A on an epsilon output; B stays.
	MoveAEps
	// MoveBEps advances B on an epsilon input; A stays.
	MoveBEps
	// MoveBothEps advances A on an epsilon output and B on an epsilon input.
	MoveBothEps
)

const numMoves = 4

// noFilter marks a blocked transition.
const noFilter Filter = 0xff

// filterTable[state][move] is the next filter state, or noFilter.
var filterTable = [...][numMoves]Filter{
	FilterNone: {MoveMatch: FilterNone, MoveAEps: FilterAEps, MoveBEps: FilterBEps, MoveBothEps: FilterNone},
	FilterAEps: {MoveMatch: FilterNone, MoveAEps: FilterAEps, MoveBEps: noFilter, MoveBothEps: noFilter},
	FilterBEps: {MoveMatch: FilterNone, MoveAEps: noFilter, MoveBEps: FilterBEps, MoveBothEps: noFilter},
}

// Next returns the filter state after m and whether m is admitted at all.
func (f Filter) Next(m Move) (Filter, bool) {
	if int(f) >= len(filterTable) || m >= numMoves {
		return noFilter, false
	}
	next := filterTable[f][m]

	return next, next != noFilter
}

// Option configures Compose.
type Option func(*Options)

// Options holds the Compose configuration.
type Options struct {
	// Connect prunes dead states from the result. Default true.
	Connect bool

	Logger logrus.FieldLogger
}

// WithoutConnect keeps every discovered composed state, dead or not.
func WithoutConnect() Option {
	return func(o *Options) { o.Connect = false }
}

// WithLogger sets the logger receiving progress and completion entries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns connected output and a discarding logger.
func DefaultOptions() Options {
	return Options{Connect: true, Logger: logging.Discard()}
}
