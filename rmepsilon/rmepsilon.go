package rmepsilon

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/elliotfiske/cmu-lextool-sub001/connect"
	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/internal/logging"
	"github.com/elliotfiske/cmu-lextool-sub001/shortestpath"
)

// Option configures RmEpsilon.
type Option func(*Options)

// Options holds the RmEpsilon configuration.
type Options struct {
	// Delta is the closure relaxation convergence threshold.
	Delta float64

	// Connect prunes states left unreachable. Default true.
	Connect bool

	Logger logrus.FieldLogger
}

// WithDelta sets the closure convergence threshold (ignored unless positive).
func WithDelta(d float64) Option {
	return func(o *Options) {
		if d > 0 {
			o.Delta = d
		}
	}
}

// WithoutConnect keeps states that become unreachable.
func WithoutConnect() Option {
	return func(o *Options) { o.Connect = false }
}

// WithLogger sets the logger receiving the completion entry.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns shortestpath.DefaultDelta, connected output and a discarding logger.
func DefaultOptions() Options {
	return Options{Delta: shortestpath.DefaultDelta, Connect: true, Logger: logging.Discard()}
}

// RmEpsilon returns an equivalent transducer of r without epsilon:epsilon arcs.
func RmEpsilon(r core.Reader, opts ...Option) *core.Fst {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	started := time.Now()
	sr := r.Semiring()

	out := core.CloneEmpty(r)
	n := r.NumStates()
	var s core.StateID
	for s = 0; s < core.StateID(n); s++ {
		order, dist := shortestpath.Closure(r, s, shortestpath.EpsilonArc, shortestpath.WithDelta(cfg.Delta))
		final := sr.Zero()
		for _, q := range order {
			d := dist[q]
			final = sr.Plus(final, sr.Times(d, r.Final(q)))
			k := r.NumArcs(q)
			for i := 0; i < k; i++ {
				a := r.Arc(q, i)
				if shortestpath.EpsilonArc(a) {
					continue
				}
				a.Weight = sr.Times(d, a.Weight)
				// Targets come from r and weights are products of members; AddArc cannot fail.
				_ = out.AddArc(s, a)
			}
		}
		_ = out.SetFinal(s, final)
	}

	if cfg.Connect {
		out = connect.Connect(out, connect.WithLogger(cfg.Logger))
	}
	logging.Done(cfg.Logger, "rmepsilon", out, started)

	return out
}
