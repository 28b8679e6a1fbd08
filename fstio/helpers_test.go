package fstio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
)

// sample is a 4-state transducer with symbol tables, a cycle, an epsilon
// arc, non-trivial weights and a start state other than 0.
func sample(t testing.TB) *core.Fst {
	t.Helper()
	isyms := core.NewSymbolTable()
	for _, s := range []string{"a", "b", "c"} {
		isyms.Add(s)
	}
	osyms := core.NewSymbolTable()
	for _, s := range []string{"x", "y"} {
		osyms.Add(s)
	}
	f := core.New(semiring.Tropical, core.WithInputSymbols(isyms), core.WithOutputSymbols(osyms))
	for i := 0; i < 4; i++ {
		f.AddState()
	}
	require.NoError(t, f.SetStart(1))
	require.NoError(t, f.SetFinal(3, 0.25))
	require.NoError(t, f.SetFinal(0, 0))
	require.NoError(t, f.AddArc(1, core.Arc{ILabel: 1, OLabel: 2, Weight: 0.5, Next: 2}))
	require.NoError(t, f.AddArc(1, core.Arc{ILabel: 3, OLabel: 0, Weight: 1.5, Next: 0}))
	require.NoError(t, f.AddArc(2, core.Arc{ILabel: 0, OLabel: 1, Weight: 0, Next: 3}))
	require.NoError(t, f.AddArc(2, core.Arc{ILabel: 2, OLabel: 2, Weight: 2.75, Next: 1}))
	require.NoError(t, f.AddArc(0, core.Arc{ILabel: 1, OLabel: 1, Weight: 3, Next: 3}))

	return f
}
