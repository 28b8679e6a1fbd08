package reverse

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/internal/logging"
)

// Option configures Reverse.
type Option func(*Options)

// Options holds the Reverse configuration.
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

// Reverse returns the reversal of r.
//
// Steps:
//  1. Mirror the n input states as non-final states and add the super-start n.
//  2. Re-append every arc backwards, visiting sources and arcs in input order.
//  3. Link the super-start to the input's final states and finalize the old start.
func Reverse(r core.Reader, opts ...Option) (*core.Fst, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := core.CheckStart(r); err != nil {
		return nil, err
	}
	started := time.Now()
	sr := r.Semiring()

	// 1) States
	n := r.NumStates()
	out := core.New(sr,
		core.WithCapacity(n+1),
		core.WithInputSymbols(r.InputSymbols().Copy()),
		core.WithOutputSymbols(r.OutputSymbols().Copy()),
	)
	for i := 0; i <= n; i++ {
		out.AddState()
	}
	super := core.StateID(n)

	// 2) Reversed arcs. Ids and weights come from a valid transducer, so AddArc cannot fail.
	var s core.StateID
	for s = 0; s < core.StateID(n); s++ {
		k := r.NumArcs(s)
		for i := 0; i < k; i++ {
			a := r.Arc(s, i)
			_ = out.AddArc(a.Next, core.Arc{
				ILabel: a.ILabel,
				OLabel: a.OLabel,
				Weight: sr.Reverse(a.Weight),
				Next:   s,
			})
		}
	}

	// 3) Super-start and the single final state
	for s = 0; s < core.StateID(n); s++ {
		if !core.IsFinal(r, s) {
			continue
		}
		_ = out.AddArc(super, core.Arc{
			ILabel: core.Epsilon,
			OLabel: core.Epsilon,
			Weight: sr.Reverse(r.Final(s)),
			Next:   s,
		})
	}
	_ = out.SetStart(super)
	_ = out.SetFinal(r.Start(), sr.One())

	logging.Done(cfg.Logger, "reverse", out, started)

	return out, nil
}
