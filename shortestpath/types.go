package shortestpath

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/internal/logging"
)

// Sentinel errors for shortest-path computations.
var (
	// ErrBadN indicates a non-positive path count.
	ErrBadN = errors.New("shortestpath: n must be positive")

	// ErrPathLimit indicates that keepTies found more tied paths than Options.MaxPaths.
	ErrPathLimit = errors.New("shortestpath: path limit exceeded")
)

// DefaultDelta is the convergence threshold of the distance relaxation.
const DefaultDelta = 1.0 / 1024

// ArcFilter selects the arcs a distance computation may follow.
type ArcFilter func(a core.Arc) bool

// AnyArc follows every arc.
func AnyArc(core.Arc) bool { return true }

// EpsilonArc follows arcs with epsilon on both sides.
func EpsilonArc(a core.Arc) bool {
	return a.ILabel == core.Epsilon && a.OLabel == core.Epsilon
}

// Option configures the computations of this package.
type Option func(*Options)

// Options holds the shortest-path configuration.
type Options struct {
	// Delta is the relaxation convergence threshold.
	Delta float64

	// MaxPaths bounds the number of returned paths when keepTies admits more than n.
	// 0 means unbounded; zero-weight cycles then never terminate.
	MaxPaths int

	Logger logrus.FieldLogger
}

// WithDelta sets the relaxation convergence threshold (ignored unless positive).
func WithDelta(d float64) Option {
	return func(o *Options) {
		if d > 0 {
			o.Delta = d
		}
	}
}

// WithMaxPaths fails NShortestPaths with ErrPathLimit once more than m paths are tied in.
func WithMaxPaths(m int) Option {
	return func(o *Options) {
		if m > 0 {
			o.MaxPaths = m
		}
	}
}

// WithLogger sets the logger receiving progress and completion entries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns DefaultDelta, no path limit and a discarding logger.
func DefaultOptions() Options {
	return Options{Delta: DefaultDelta, Logger: logging.Discard()}
}
