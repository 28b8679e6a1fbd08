package project_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/project"
	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
)

type labeled struct {
	from, to core.StateID
	in, out  string
	w        float32
}

func symbols(names ...string) *core.SymbolTable {
	st := core.NewSymbolTable()
	for _, n := range names {
		st.Add(n)
	}

	return st
}

// build creates a 4-state transducer 0..3 with start 0 and final 3 (weight 2).
func build(t testing.TB, isyms, osyms *core.SymbolTable, arcs []labeled) *core.Fst {
	t.Helper()
	f := core.New(semiring.Tropical, core.WithInputSymbols(isyms), core.WithOutputSymbols(osyms))
	for i := 0; i < 4; i++ {
		f.AddState()
	}
	require.NoError(t, f.SetStart(0))
	require.NoError(t, f.SetFinal(3, 2))
	for _, a := range arcs {
		in, ok := isyms.Find(a.in)
		require.True(t, ok, a.in)
		out, ok := osyms.Find(a.out)
		require.True(t, ok, a.out)
		require.NoError(t, f.AddArc(a.from, core.Arc{ILabel: in, OLabel: out, Weight: a.w, Next: a.to}))
	}

	return f
}

func source(t testing.TB) *core.Fst {
	return build(t, symbols("a", "b", "c"), symbols("x", "y", "z", "w"), []labeled{
		{0, 1, "a", "x", 1},
		{0, 2, "b", "y", 3},
		{1, 3, "c", "z", 2.5},
		{2, 3, "a", "w", 0.5},
		{1, 1, "b", core.EpsilonSymbol, 4},
	})
}

func TestProject_Input(t *testing.T) {
	in := symbols("a", "b", "c")
	want := build(t, in, in.Copy(), []labeled{
		{0, 1, "a", "a", 1},
		{0, 2, "b", "b", 3},
		{1, 3, "c", "c", 2.5},
		{2, 3, "a", "a", 0.5},
		{1, 1, "b", "b", 4},
	})

	got := project.Project(source(t), project.Input)
	assert.True(t, core.Equal(want, got))
	assert.True(t, core.IsAcceptor(got))
	assert.True(t, got.InputSymbols().Equal(got.OutputSymbols()))
}

func TestProject_Output(t *testing.T) {
	out := symbols("x", "y", "z", "w")
	want := build(t, out, out.Copy(), []labeled{
		{0, 1, "x", "x", 1},
		{0, 2, "y", "y", 3},
		{1, 3, "z", "z", 2.5},
		{2, 3, "w", "w", 0.5},
		{1, 1, core.EpsilonSymbol, core.EpsilonSymbol, 4},
	})

	got := project.Project(source(t), project.Output)
	assert.True(t, core.Equal(want, got))
	assert.True(t, got.InputSymbols().Equal(got.OutputSymbols()))
}

func TestProject_Distinct(t *testing.T) {
	src := source(t)
	in := project.Project(src, project.Input)
	out := project.Project(src, project.Output)

	assert.False(t, core.Equal(in, out))
	assert.False(t, core.Equal(src, in))
	assert.True(t, core.Equal(source(t), src), "input must not be modified")
}

func TestProject_TablesAreIndependent(t *testing.T) {
	got := project.Project(source(t), project.Input)
	got.InputSymbols().Add("only-input")

	_, ok := got.OutputSymbols().Find("only-input")
	assert.False(t, ok)
}

func TestProject_NoSymbols(t *testing.T) {
	f := core.New(semiring.Tropical)
	s := f.AddState()
	require.NoError(t, f.AddArc(s, core.Arc{ILabel: 1, OLabel: 2, Next: s}))

	got := project.Project(f, project.Output)
	assert.Nil(t, got.InputSymbols())
	assert.Equal(t, core.Arc{ILabel: 2, OLabel: 2, Next: s}, got.Arc(s, 0))
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "input", project.Input.String())
	assert.Equal(t, "output", project.Output.String())
	assert.Equal(t, "Direction(7)", project.Direction(7).String())
}
