package determinize

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/elliotfiske/cmu-lextool-sub001/internal/logging"
)

// Sentinel errors for Determinize.
var (
	// ErrNotAcceptor indicates an arc whose input and output labels differ.
	ErrNotAcceptor = errors.New("determinize: input is not an acceptor")

	// ErrStateLimit indicates that the construction exceeded Options.MaxStates.
	ErrStateLimit = errors.New("determinize: state limit exceeded")
)

// DefaultDelta is the residual quantization step used to key superstates.
const DefaultDelta = 1.0 / 1024

// Option configures Determinize.
type Option func(*Options)

// Options holds the Determinize configuration.
type Options struct {
	// MaxStates bounds the number of result states; 0 means unbounded.
	MaxStates int

	// Delta is the quantization step for residual weights in superstate keys.
	Delta float64

	Logger logrus.FieldLogger
}

// WithMaxStates fails the construction once more than n states exist.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxStates = n
		}
	}
}

// WithDelta sets the residual quantization step (ignored unless positive).
func WithDelta(d float64) Option {
	return func(o *Options) {
		if d > 0 {
			o.Delta = d
		}
	}
}

// WithLogger sets the logger receiving progress and completion entries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns an unbounded construction with DefaultDelta.
func DefaultOptions() Options {
	return Options{Delta: DefaultDelta, Logger: logging.Discard()}
}
