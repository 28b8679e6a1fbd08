// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
)

// Common labels used across core tests.
const (
	LabelA = 1
	LabelB = 2
	LabelC = 3
)

// buildTriangle returns 0 -a:b/1-> 1 -b:c/2-> 2 (final 0.5), 0 -c:c/5-> 2.
func buildTriangle(t testing.TB) *core.Fst {
	t.Helper()
	f := core.New(semiring.Tropical)
	s0, s1, s2 := f.AddState(), f.AddState(), f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.SetFinal(s2, 0.5))
	require.NoError(t, f.AddArc(s0, core.Arc{ILabel: LabelA, OLabel: LabelB, Weight: 1, Next: s1}))
	require.NoError(t, f.AddArc(s1, core.Arc{ILabel: LabelB, OLabel: LabelC, Weight: 2, Next: s2}))
	require.NoError(t, f.AddArc(s0, core.Arc{ILabel: LabelC, OLabel: LabelC, Weight: 5, Next: s2}))

	return f
}

// arcsOf lists the arcs of s for compact assertions.
func arcsOf(r core.Reader, s core.StateID) []core.Arc {
	out := make([]core.Arc, r.NumArcs(s))
	for i := range out {
		out[i] = r.Arc(s, i)
	}

	return out
}
