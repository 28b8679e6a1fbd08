package project

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/internal/logging"
)

// Direction selects which side of the labels is kept.
type Direction int

const (
	// Input keeps input labels.
	Input Direction = iota
	// Output keeps output labels.
	Output
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	}

	return fmt.Sprintf("Direction(%d)", int(d))
}

// Option configures Project.
type Option func(*Options)

// Options holds the Project configuration.
type Options struct {
	Logger logrus.FieldLogger
}

// WithLogger sets the logger receiving the completion entry.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: logging.Discard()}
}

// Project returns the acceptor obtained by keeping the dir side of r's labels.
func Project(r core.Reader, dir Direction, opts ...Option) *core.Fst {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	started := time.Now()

	out := core.CloneEmpty(r)
	keep := r.InputSymbols()
	if dir == Output {
		keep = r.OutputSymbols()
	}
	out.SetInputSymbols(keep.Copy())
	out.SetOutputSymbols(keep.Copy())

	n := out.NumStates()
	var s core.StateID
	for s = 0; s < core.StateID(n); s++ {
		k := r.NumArcs(s)
		for i := 0; i < k; i++ {
			a := r.Arc(s, i)
			if dir == Input {
				a.OLabel = a.ILabel
			} else {
				a.ILabel = a.OLabel
			}
			// Targets and weights come from a valid transducer; AddArc cannot fail.
			_ = out.AddArc(s, a)
		}
	}
	logging.Done(cfg.Logger, "project."+dir.String(), out, started)

	return out
}
