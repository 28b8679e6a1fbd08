package determinize

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/internal/logging"
	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
)

// element is one member of a superstate.
type element struct {
	state    core.StateID
	residual float32
}

// subset is a superstate, members ordered by state id.
type subset []element

// pending accumulates the successor of one label while a superstate is expanded.
type pending struct {
	label int
	// weight is ⊕ residual ⊗ w over the label's arcs.
	weight float32
	// accum holds the same sum per destination, before factoring.
	accum map[core.StateID]float32
	order []core.StateID
}

// determinizer holds the mutable state of one Determinize call.
type determinizer struct {
	in    core.Reader
	sr    semiring.Semiring
	cfg   Options
	out   *core.Fst
	ids   map[string]core.StateID
	sets  []subset // indexed by result state id
	queue []core.StateID
	key   []byte
}

// Determinize returns a deterministic acceptor equivalent to r.
//
// Steps:
//  1. Validate: r has a start state and is an acceptor.
//  2. Seed the start superstate {(start, One())}.
//  3. Expand superstates breadth-first until none is pending.
func Determinize(r core.Reader, opts ...Option) (*core.Fst, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate
	if err := core.CheckStart(r); err != nil {
		return nil, err
	}
	if !core.IsAcceptor(r) {
		return nil, ErrNotAcceptor
	}
	started := time.Now()

	// 2) Seed
	d := &determinizer{
		in:  r,
		sr:  r.Semiring(),
		cfg: cfg,
		out: core.New(r.Semiring(),
			core.WithInputSymbols(r.InputSymbols().Copy()),
			core.WithOutputSymbols(r.OutputSymbols().Copy()),
		),
		ids: make(map[string]core.StateID),
	}
	start, err := d.state(subset{{state: r.Start(), residual: d.sr.One()}})
	if err != nil {
		return nil, err
	}
	_ = d.out.SetStart(start)

	// 3) Expand
	for len(d.queue) > 0 {
		s := d.queue[0]
		d.queue = d.queue[1:]
		if err = d.expand(s); err != nil {
			cfg.Logger.WithField("states", d.out.NumStates()).Warn("determinize: aborted")
			return nil, err
		}
	}
	logging.Done(cfg.Logger, "determinize", d.out, started)

	return d.out, nil
}

// quantize maps w onto the Delta grid; infinities keep their bit pattern.
func (d *determinizer) quantize(w float32) uint64 {
	if math.IsInf(float64(w), 0) {
		return uint64(math.Float32bits(w)) | 1<<63
	}

	return uint64(int64(math.Round(float64(w) / d.cfg.Delta)))
}

// state returns the id of set, creating and scheduling it on first sight.
func (d *determinizer) state(set subset) (core.StateID, error) {
	d.key = d.key[:0]
	for _, e := range set {
		d.key = binary.LittleEndian.AppendUint32(d.key, uint32(e.state))
		d.key = binary.LittleEndian.AppendUint64(d.key, d.quantize(e.residual))
	}
	if id, ok := d.ids[string(d.key)]; ok {
		return id, nil
	}
	if d.cfg.MaxStates > 0 && d.out.NumStates() >= d.cfg.MaxStates {
		return core.NoState, fmt.Errorf("%w: %d", ErrStateLimit, d.cfg.MaxStates)
	}
	id := d.out.AddState()
	d.ids[string(d.key)] = id
	d.sets = append(d.sets, set)
	d.queue = append(d.queue, id)

	return id, nil
}

// expand emits the final weight and the outgoing arcs of result state s.
func (d *determinizer) expand(s core.StateID) error {
	set := d.sets[s]
	sr := d.sr

	// 1) Final weight and per-label accumulation in first-appearance order.
	final := sr.Zero()
	var labels []*pending
	byLabel := make(map[int]*pending)
	for _, e := range set {
		final = sr.Plus(final, sr.Times(e.residual, d.in.Final(e.state)))
		k := d.in.NumArcs(e.state)
		for i := 0; i < k; i++ {
			a := d.in.Arc(e.state, i)
			p, ok := byLabel[a.ILabel]
			if !ok {
				p = &pending{label: a.ILabel, weight: sr.Zero(), accum: make(map[core.StateID]float32)}
				byLabel[a.ILabel] = p
				labels = append(labels, p)
			}
			w := sr.Times(e.residual, a.Weight)
			p.weight = sr.Plus(p.weight, w)
			acc, seen := p.accum[a.Next]
			if !seen {
				acc = sr.Zero()
				p.order = append(p.order, a.Next)
			}
			p.accum[a.Next] = sr.Plus(acc, w)
		}
	}
	if err := d.out.SetFinal(s, final); err != nil {
		return err
	}

	// 2) One arc per label towards the factored successor.
	for _, p := range labels {
		if p.weight == sr.Zero() {
			continue
		}
		inv := sr.Divide(sr.One(), p.weight)
		next := make(subset, 0, len(p.order))
		for _, t := range p.order {
			if p.accum[t] == sr.Zero() {
				continue
			}
			next = append(next, element{state: t, residual: sr.Times(inv, p.accum[t])})
		}
		sort.Slice(next, func(i, j int) bool { return next[i].state < next[j].state })

		to, err := d.state(next)
		if err != nil {
			return err
		}
		if err = d.out.AddArc(s, core.Arc{ILabel: p.label, OLabel: p.label, Weight: p.weight, Next: to}); err != nil {
			return err
		}
	}

	return nil
}
