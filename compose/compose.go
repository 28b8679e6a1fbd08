package compose

import (
	"fmt"
	"sort"
	"time"

	"github.com/elliotfiske/cmu-lextool-sub001/arcsort"
	"github.com/elliotfiske/cmu-lextool-sub001/connect"
	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/internal/logging"
	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
)

// tuple identifies one composed state.
type tuple struct {
	a, b core.StateID
	f    Filter
}

// composer holds the mutable state of a single Compose call.
type composer struct {
	a, b  core.Reader
	sr    semiring.Semiring
	out   *core.Fst
	ids   map[tuple]core.StateID
	queue []tuple
}

// byInput orders arcs by input label only.
func byInput(x, y core.Arc) bool { return x.ILabel < y.ILabel }

// Compose returns the composition of a and b over sr.
//
// Preconditions and validation (in order):
//  1. Both operands are bound to sr (core.ErrSemiringMismatch).
//  2. Both operands have a start state (core.ErrNoStart).
//  3. b is sorted by input label (ErrUnsortedInput).
func Compose(a, b core.Reader, sr semiring.Semiring, opts ...Option) (*core.Fst, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Semiring
	if a.Semiring().Name() != sr.Name() || b.Semiring().Name() != sr.Name() {
		return nil, fmt.Errorf("%w: compose over %s of %s and %s",
			core.ErrSemiringMismatch, sr.Name(), a.Semiring().Name(), b.Semiring().Name())
	}
	// 2) Start states
	if err := core.CheckStart(a); err != nil {
		return nil, fmt.Errorf("compose: left operand: %w", err)
	}
	if err := core.CheckStart(b); err != nil {
		return nil, fmt.Errorf("compose: right operand: %w", err)
	}
	// 3) Sortedness
	if !arcsort.IsSorted(b, byInput) {
		return nil, ErrUnsortedInput
	}
	started := time.Now()

	c := &composer{
		a:  a,
		b:  b,
		sr: sr,
		out: core.New(sr,
			core.WithInputSymbols(a.InputSymbols().Copy()),
			core.WithOutputSymbols(b.OutputSymbols().Copy()),
		),
		ids: make(map[tuple]core.StateID),
	}
	start := c.state(tuple{a: a.Start(), b: b.Start(), f: FilterNone})
	_ = c.out.SetStart(start)
	for len(c.queue) > 0 {
		t := c.queue[0]
		c.queue = c.queue[1:]
		c.expand(t)
	}
	cfg.Logger.WithField("discovered", c.out.NumStates()).Debug("compose: product built")

	out := c.out
	if cfg.Connect {
		out = connect.Connect(out, connect.WithLogger(cfg.Logger))
	}
	logging.Done(cfg.Logger, "compose", out, started)

	return out, nil
}

// state returns the id of t, creating and scheduling it on first sight.
func (c *composer) state(t tuple) core.StateID {
	if id, ok := c.ids[t]; ok {
		return id
	}
	id := c.out.AddState()
	c.ids[t] = id
	c.queue = append(c.queue, t)

	return id
}

// emit adds the composed arc i:o/w from the state of src to the state of dst.
// Weights are products of member weights, so AddArc cannot fail.
func (c *composer) emit(src tuple, m Move, i, o int, w float32, next tuple) {
	f, ok := src.f.Next(m)
	if !ok {
		return
	}
	next.f = f
	from := c.ids[src]
	to := c.state(next)
	_ = c.out.AddArc(from, core.Arc{ILabel: i, OLabel: o, Weight: w, Next: to})
}

// matches returns the index range of b arcs at s whose input label is l.
func (c *composer) matches(s core.StateID, l int) (lo, hi int) {
	k := c.b.NumArcs(s)
	lo = sort.Search(k, func(i int) bool { return c.b.Arc(s, i).ILabel >= l })
	hi = lo
	for hi < k && c.b.Arc(s, hi).ILabel == l {
		hi++
	}

	return lo, hi
}

// expand sets the final weight of t and emits all of its admitted arcs.
func (c *composer) expand(t tuple) {
	id := c.ids[t]
	// Final weights are members of sr; SetFinal cannot fail.
	_ = c.out.SetFinal(id, c.sr.Times(c.a.Final(t.a), c.b.Final(t.b)))

	epsLo, epsHi := c.matches(t.b, core.Epsilon)

	// 1) Per A arc, in order.
	ka := c.a.NumArcs(t.a)
	for i := 0; i < ka; i++ {
		x := c.a.Arc(t.a, i)
		if x.OLabel == core.Epsilon {
			// A-only epsilon move, then epsilon pairs.
			c.emit(t, MoveAEps, x.ILabel, core.Epsilon, x.Weight, tuple{a: x.Next, b: t.b})
			for j := epsLo; j < epsHi; j++ {
				y := c.b.Arc(t.b, j)
				c.emit(t, MoveBothEps, x.ILabel, y.OLabel, c.sr.Times(x.Weight, y.Weight), tuple{a: x.Next, b: y.Next})
			}
			continue
		}
		lo, hi := c.matches(t.b, x.OLabel)
		for j := lo; j < hi; j++ {
			y := c.b.Arc(t.b, j)
			c.emit(t, MoveMatch, x.ILabel, y.OLabel, c.sr.Times(x.Weight, y.Weight), tuple{a: x.Next, b: y.Next})
		}
	}

	// 2) B-only epsilon moves.
	for j := epsLo; j < epsHi; j++ {
		y := c.b.Arc(t.b, j)
		c.emit(t, MoveBEps, core.Epsilon, y.OLabel, y.Weight, tuple{a: t.a, b: y.Next})
	}
}
