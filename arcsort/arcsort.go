package arcsort

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/internal/logging"
)

// Compare reports whether a sorts strictly before b.
type Compare func(a, b core.Arc) bool

// ILabel orders arcs by input label, then output label.
func ILabel(a, b core.Arc) bool {
	if a.ILabel != b.ILabel {
		return a.ILabel < b.ILabel
	}

	return a.OLabel < b.OLabel
}

// OLabel orders arcs by output label, then input label.
func OLabel(a, b core.Arc) bool {
	if a.OLabel != b.OLabel {
		return a.OLabel < b.OLabel
	}

	return a.ILabel < b.ILabel
}

// Option configures Sort.
type Option func(*Options)

// Options holds the Sort configuration.
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

// Sort returns a copy of r whose arcs are stably sorted by cmp.
// The input is not modified.
func Sort(r core.Reader, cmp Compare, opts ...Option) *core.Fst {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	started := time.Now()

	out := core.Clone(r)
	out.SortArcs(cmp)
	logging.Done(cfg.Logger, "arcsort", out, started)

	return out
}

// SortInPlace stably sorts the arcs of r by cmp.
// It returns core.ErrFrozen when r is not a mutable transducer.
func SortInPlace(r core.Reader, cmp Compare) error {
	f, err := core.AsMutable(r)
	if err != nil {
		return err
	}
	f.SortArcs(cmp)

	return nil
}

// IsSorted reports whether every arc list of r is ordered by cmp.
// Complexity: O(E)
func IsSorted(r core.Reader, cmp Compare) bool {
	n := r.NumStates()
	var s core.StateID
	for s = 0; s < core.StateID(n); s++ {
		k := r.NumArcs(s)
		for i := 1; i < k; i++ {
			if cmp(r.Arc(s, i), r.Arc(s, i-1)) {
				return false
			}
		}
	}

	return true
}
