package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
)

type arc struct {
	from  core.StateID
	label int
	w     float32
	to    core.StateID
}

func acceptor(t testing.TB, sr semiring.Semiring, n int, finals map[core.StateID]float32, arcs []arc) *core.Fst {
	t.Helper()
	f := core.New(sr)
	for i := 0; i < n; i++ {
		f.AddState()
	}
	if n > 0 {
		require.NoError(t, f.SetStart(0))
	}
	for s, w := range finals {
		require.NoError(t, f.SetFinal(s, w))
	}
	for _, a := range arcs {
		require.NoError(t, f.AddArc(a.from, core.Arc{ILabel: a.label, OLabel: a.label, Weight: a.w, Next: a.to}))
	}

	return f
}

type path struct {
	labels []int
	weight float32
}

// paths enumerates the accepting paths of an acyclic r depth-first, in arc order.
func paths(r core.Reader) []path {
	var out []path
	if r.Start() == core.NoState {
		return out
	}
	sr := r.Semiring()
	var walk func(s core.StateID, labels []int, w float32)
	walk = func(s core.StateID, labels []int, w float32) {
		if core.IsFinal(r, s) {
			out = append(out, path{labels: append([]int(nil), labels...), weight: sr.Times(w, r.Final(s))})
		}
		for i := 0; i < r.NumArcs(s); i++ {
			a := r.Arc(s, i)
			walk(a.Next, append(labels, a.ILabel), sr.Times(w, a.Weight))
		}
	}
	walk(r.Start(), nil, sr.One())

	return out
}
