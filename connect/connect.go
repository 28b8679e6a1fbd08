package connect

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/sirupsen/logrus"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/internal/logging"
)

// Option configures Connect.
type Option func(*Options)

// Options holds the Connect configuration.
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

// walker is a breadth-first traversal over state ids.
type walker struct {
	queue   []core.StateID
	visited *roaring.Bitmap
}

func newWalker(n int) *walker {
	return &walker{
		queue:   make([]core.StateID, 0, n),
		visited: roaring.New(),
	}
}

// enqueue marks s visited and schedules it, unless already seen.
func (w *walker) enqueue(s core.StateID) {
	if w.visited.CheckedAdd(uint32(s)) {
		w.queue = append(w.queue, s)
	}
}

// run drains the queue, expanding every dequeued state with next.
func (w *walker) run(next func(s core.StateID, visit func(core.StateID))) *roaring.Bitmap {
	for len(w.queue) > 0 {
		s := w.queue[0]
		w.queue = w.queue[1:]
		next(s, w.enqueue)
	}

	return w.visited
}

// Accessible returns the states reachable from the start of r.
// It is empty when r has no start state.
func Accessible(r core.Reader) *roaring.Bitmap {
	w := newWalker(r.NumStates())
	if core.CheckStart(r) != nil {
		return w.visited
	}
	w.enqueue(r.Start())

	return w.run(func(s core.StateID, visit func(core.StateID)) {
		k := r.NumArcs(s)
		for i := 0; i < k; i++ {
			visit(r.Arc(s, i).Next)
		}
	})
}

// Coaccessible returns the states from which a final state of r is reachable.
func Coaccessible(r core.Reader) *roaring.Bitmap {
	n := r.NumStates()

	// 1) Reverse adjacency, predecessors listed in (source, arc index) order.
	preds := make([][]core.StateID, n)
	var s core.StateID
	for s = 0; s < core.StateID(n); s++ {
		k := r.NumArcs(s)
		for i := 0; i < k; i++ {
			t := r.Arc(s, i).Next
			preds[t] = append(preds[t], s)
		}
	}

	// 2) Seed with every final state and walk backwards.
	w := newWalker(n)
	for s = 0; s < core.StateID(n); s++ {
		if core.IsFinal(r, s) {
			w.enqueue(s)
		}
	}

	return w.run(func(s core.StateID, visit func(core.StateID)) {
		for _, p := range preds[s] {
			visit(p)
		}
	})
}

// Connect returns a copy of r restricted to its accessible and co-accessible states.
//
// Steps:
//  1. Compute both reachability sets and intersect them.
//  2. Clone r and delete every state outside the intersection.
func Connect(r core.Reader, opts ...Option) *core.Fst {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	started := time.Now()

	// 1) Live states
	live := roaring.And(Accessible(r), Coaccessible(r))

	// 2) Prune
	out := core.Clone(r)
	n := r.NumStates()
	dead := make([]core.StateID, 0, n-int(live.GetCardinality()))
	var s core.StateID
	for s = 0; s < core.StateID(n); s++ {
		if !live.Contains(uint32(s)) {
			dead = append(dead, s)
		}
	}
	// Ids were produced from r itself; DeleteStates cannot fail.
	_ = out.DeleteStates(dead)

	cfg.Logger.WithFields(logrus.Fields{
		"op":      "connect",
		"removed": len(dead),
	}).Trace("dead states pruned")
	logging.Done(cfg.Logger, "connect", out, started)

	return out
}
