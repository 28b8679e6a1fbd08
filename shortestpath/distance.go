package shortestpath

import (
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/sirupsen/logrus"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/internal/logging"
	"github.com/elliotfiske/cmu-lextool-sub001/reverse"
	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
)

// relaxer holds the state of one single-source relaxation.
type relaxer struct {
	r     core.Reader
	sr    semiring.Semiring
	keep  ArcFilter
	delta float64

	order  []core.StateID // states in first-reached order
	dist   map[core.StateID]float32
	resid  map[core.StateID]float32
	queue  []core.StateID
	queued *roaring.Bitmap
}

// get returns the current value of m at s, Zero when absent.
func (x *relaxer) get(m map[core.StateID]float32, s core.StateID) float32 {
	if w, ok := m[s]; ok {
		return w
	}

	return x.sr.Zero()
}

// push schedules s unless it is already queued.
func (x *relaxer) push(s core.StateID) {
	if x.queued.CheckedAdd(uint32(s)) {
		x.queue = append(x.queue, s)
	}
}

// run relaxes from source until no distance changes by more than delta.
//
// Steps:
//  1. d[source] = r[source] = One; queue = {source}.
//  2. Pop q, take R = r[q] and reset r[q] to Zero.
//  3. For each kept arc q -w-> t: if d[t] ⊕ R⊗w moves d[t], store it, add R⊗w to r[t] and queue t.
func (x *relaxer) run(source core.StateID) {
	// 1) Seed
	x.dist[source] = x.sr.One()
	x.resid[source] = x.sr.One()
	x.order = append(x.order, source)
	x.push(source)

	for len(x.queue) > 0 {
		// 2) Dequeue
		q := x.queue[0]
		x.queue = x.queue[1:]
		x.queued.Remove(uint32(q))
		rq := x.get(x.resid, q)
		x.resid[q] = x.sr.Zero()

		// 3) Relax
		k := x.r.NumArcs(q)
		for i := 0; i < k; i++ {
			a := x.r.Arc(q, i)
			if !x.keep(a) {
				continue
			}
			w := x.sr.Times(rq, a.Weight)
			old, seen := x.dist[a.Next]
			if !seen {
				old = x.sr.Zero()
				x.order = append(x.order, a.Next)
			}
			nd := x.sr.Plus(old, w)
			if seen && semiring.ApproxEqual(old, nd, x.delta) {
				continue
			}
			x.dist[a.Next] = nd
			x.resid[a.Next] = x.sr.Plus(x.get(x.resid, a.Next), w)
			x.push(a.Next)
		}
	}
}

// Closure returns the states reachable from source over arcs accepted by
// keep, in first-reached order, with their ⊕-distances from source.
// source itself is always first, at distance One (plus any cycles back to it).
// Only Delta is read from opts: Closure runs once per state inside epsilon
// removal and does not log.
func Closure(r core.Reader, source core.StateID, keep ArcFilter, opts ...Option) ([]core.StateID, map[core.StateID]float32) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return closure(r, source, keep, cfg.Delta)
}

func closure(r core.Reader, source core.StateID, keep ArcFilter, delta float64) ([]core.StateID, map[core.StateID]float32) {
	x := &relaxer{
		r:      r,
		sr:     r.Semiring(),
		keep:   keep,
		delta:  delta,
		dist:   make(map[core.StateID]float32),
		resid:  make(map[core.StateID]float32),
		queued: roaring.New(),
	}
	x.run(source)

	return x.order, x.dist
}

// distance is Distance without validation or logging.
func distance(r core.Reader, source core.StateID, keep ArcFilter, delta float64) []float32 {
	_, dist := closure(r, source, keep, delta)
	out := zeros(r, r.NumStates())
	for s, w := range dist {
		out[s] = w
	}

	return out
}

// logDistances reports a completed distance computation at Debug.
func logDistances(l logrus.FieldLogger, op string, d []float32, zero float32, started time.Time) {
	if !logging.Enabled(l, logrus.DebugLevel) {
		return
	}
	reached := 0
	for _, w := range d {
		if w != zero {
			reached++
		}
	}
	l.WithFields(logrus.Fields{
		"op":      op,
		"states":  len(d),
		"reached": reached,
		"elapsed": time.Since(started),
	}).Debug("operation completed")
}

// Distance returns, for every state of r, the ⊕ of the weights of all paths
// from source over arcs accepted by keep (Zero when unreachable).
func Distance(r core.Reader, source core.StateID, keep ArcFilter, opts ...Option) ([]float32, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	n := r.NumStates()
	if source < 0 || int(source) >= n {
		return nil, fmt.Errorf("%w: source %d", core.ErrStateNotFound, source)
	}
	started := time.Now()
	out := distance(r, source, keep, cfg.Delta)
	logDistances(cfg.Logger, "distance", out, r.Semiring().Zero(), started)

	return out, nil
}

// ShortestDistance returns the ⊕-distance from the start to every state, or,
// when rev is set, from every state to the final states (final weights included).
// A transducer without a start state yields all Zero forward and is still
// measured backwards.
func ShortestDistance(r core.Reader, rev bool, opts ...Option) ([]float32, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	started := time.Now()
	d, err := shortestDistance(r, rev, cfg.Delta)
	if err != nil {
		return nil, err
	}
	logDistances(cfg.Logger, "shortestdistance", d, r.Semiring().Zero(), started)

	return d, nil
}

func shortestDistance(r core.Reader, rev bool, delta float64) ([]float32, error) {
	n := r.NumStates()
	if !rev {
		if r.Start() == core.NoState {
			return zeros(r, n), nil
		}
		return distance(r, r.Start(), AnyArc, delta), nil
	}

	// Distances to the final states are forward distances in the reversal,
	// measured from its super-start; reversal needs some start, so borrow one.
	src := core.Reader(r)
	if r.Start() == core.NoState {
		if n == 0 {
			return []float32{}, nil
		}
		f := core.Clone(r)
		_ = f.SetStart(0)
		src = f
	}
	rr, err := reverse.Reverse(src)
	if err != nil {
		return nil, err
	}

	return distance(rr, core.StateID(n), AnyArc, delta)[:n], nil
}

func zeros(r core.Reader, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = r.Semiring().Zero()
	}

	return out
}
