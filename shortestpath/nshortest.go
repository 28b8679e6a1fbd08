package shortestpath

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/internal/logging"
	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
)

// prefix is one node of the search tree: a path from the start to state.
type prefix struct {
	state  core.StateID
	weight float32
	parent int // index into runner.prefixes, -1 for the root
	arc    int // arc index at the parent's state
}

// item is a queued prefix, or with complete set, a finished accepting path.
type item struct {
	prio     float32
	seq      int
	node     int
	complete bool
}

// itemPQ orders items by NaturalLess on prio, then by seq.
type itemPQ struct {
	items []*item
	sr    semiring.Semiring
}

// Len returns the number of queued items.
func (pq itemPQ) Len() int { return len(pq.items) }

// Less prefers the better priority; equal priorities keep queue order.
func (pq itemPQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if pq.sr.NaturalLess(a.prio, b.prio) {
		return true
	}
	if pq.sr.NaturalLess(b.prio, a.prio) {
		return false
	}

	return a.seq < b.seq
}

// Swap swaps two items.
func (pq itemPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends x, which must be an *item.
func (pq *itemPQ) Push(x interface{}) { pq.items = append(pq.items, x.(*item)) }

// Pop removes and returns the last item.
func (pq *itemPQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[:n-1]

	return it
}

// runner holds the mutable state of one NShortestPaths call.
type runner struct {
	r        core.Reader
	sr       semiring.Semiring
	n        int
	keepTies bool
	cfg      Options

	toFinal  []float32 // ⊕-distance from each state to the final states
	prefixes []prefix
	pq       itemPQ
	seq      int
	expanded []int     // expansions per state
	nthPrio  []float32 // priority of the n-th expansion per state
	paths    []int     // completed prefixes in acceptance order
	nth      float32   // weight of the n-th accepted path
}

// NShortestPaths returns the n best accepting paths of r as a prefix tree.
// With keepTies every path tied with the n-th best is returned as well.
//
// Steps:
//  1. Validate n and compute the distance of every state to the final states.
//  2. Pop prefixes best-first, expanding each state at most n times (plus ties).
//  3. Accept completed paths in pop order until n (and their ties) are found.
//  4. Lay the accepted paths out as a tree, sharing common prefixes.
//
// An input without a start state or without accepting paths yields a
// transducer with no states.
func NShortestPaths(r core.Reader, n int, keepTies bool, opts ...Option) (*core.Fst, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate and measure
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadN, n)
	}
	started := time.Now()
	x := &runner{
		r:        r,
		sr:       r.Semiring(),
		n:        n,
		keepTies: keepTies,
		cfg:      cfg,
		pq:       itemPQ{sr: r.Semiring()},
		expanded: make([]int, r.NumStates()),
		nthPrio:  make([]float32, r.NumStates()),
	}
	if core.CheckStart(r) == nil {
		d, err := shortestDistance(r, true, cfg.Delta)
		if err != nil {
			return nil, err
		}
		x.toFinal = d

		// 2-3) Search
		if err = x.search(); err != nil {
			return nil, err
		}
	}

	// 4) Layout
	out := x.build()
	cfg.Logger.WithField("paths", len(x.paths)).Debug("shortestpath: paths selected")
	logging.Done(cfg.Logger, "nshortestpaths", out, started)

	return out, nil
}

// push queues the prefix at index node with priority prio.
func (x *runner) push(node int, prio float32, complete bool) {
	heap.Push(&x.pq, &item{prio: prio, seq: x.seq, node: node, complete: complete})
	x.seq++
}

// search runs the best-first loop and fills x.paths.
func (x *runner) search() error {
	start := x.r.Start()
	if x.toFinal[start] == x.sr.Zero() {
		return nil
	}
	x.prefixes = append(x.prefixes, prefix{state: start, weight: x.sr.One(), parent: -1})
	x.push(0, x.toFinal[start], false)

	limit := x.cfg.MaxPaths
	if limit > 0 && limit < x.n {
		limit = x.n
	}
	for x.pq.Len() > 0 {
		it := heap.Pop(&x.pq).(*item)
		if len(x.paths) >= x.n && (!x.keepTies || x.sr.NaturalLess(x.nth, it.prio)) {
			break
		}
		if !it.complete {
			x.expand(it)
			continue
		}
		x.paths = append(x.paths, it.node)
		if len(x.paths) == x.n {
			x.nth = it.prio
		}
		if limit > 0 && len(x.paths) > limit {
			return fmt.Errorf("%w: more than %d paths", ErrPathLimit, limit)
		}
	}

	return nil
}

// expand queues the completion of a prefix and all of its live extensions.
func (x *runner) expand(it *item) {
	p := x.prefixes[it.node]
	q := p.state

	// 1) Expansion cap, relaxed for prefixes tied with the n-th one.
	x.expanded[q]++
	c := x.expanded[q]
	if c > x.n && (!x.keepTies || x.sr.NaturalLess(x.nthPrio[q], it.prio)) {
		return
	}
	if c == x.n {
		x.nthPrio[q] = it.prio
	}

	// 2) Completion
	if core.IsFinal(x.r, q) {
		x.push(it.node, x.sr.Times(p.weight, x.r.Final(q)), true)
	}

	// 3) Extensions towards states that can still reach a final state.
	k := x.r.NumArcs(q)
	for i := 0; i < k; i++ {
		a := x.r.Arc(q, i)
		rest := x.toFinal[a.Next]
		if rest == x.sr.Zero() {
			continue
		}
		w := x.sr.Times(p.weight, a.Weight)
		x.prefixes = append(x.prefixes, prefix{state: a.Next, weight: w, parent: it.node, arc: i})
		x.push(len(x.prefixes)-1, x.sr.Times(w, rest), false)
	}
}

// build lays the accepted paths out as a tree, numbering states in
// first-creation order while walking the paths in acceptance order.
func (x *runner) build() *core.Fst {
	out := core.New(x.r.Semiring(),
		core.WithInputSymbols(x.r.InputSymbols().Copy()),
		core.WithOutputSymbols(x.r.OutputSymbols().Copy()),
	)
	ids := make(map[int]core.StateID, len(x.paths))
	var chain []int
	for _, leaf := range x.paths {
		chain = chain[:0]
		for node := leaf; node >= 0; node = x.prefixes[node].parent {
			chain = append(chain, node)
		}
		for i := len(chain) - 1; i >= 0; i-- {
			node := chain[i]
			if _, ok := ids[node]; ok {
				continue
			}
			id := out.AddState()
			ids[node] = id
			p := x.prefixes[node]
			if p.parent < 0 {
				_ = out.SetStart(id)
				continue
			}
			a := x.r.Arc(x.prefixes[p.parent].state, p.arc)
			a.Next = id
			// Copied from a valid input; AddArc cannot fail.
			_ = out.AddArc(ids[p.parent], a)
		}
		_ = out.SetFinal(ids[leaf], x.r.Final(x.prefixes[leaf].state))
	}

	return out
}
