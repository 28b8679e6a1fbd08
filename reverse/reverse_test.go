package reverse_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/reverse"
	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
)

type arc struct {
	from core.StateID
	core.Arc
}

func build(t testing.TB, n int, start core.StateID, finals map[core.StateID]float32, arcs []arc) *core.Fst {
	t.Helper()
	f := core.New(semiring.Tropical)
	for i := 0; i < n; i++ {
		f.AddState()
	}
	require.NoError(t, f.SetStart(start))
	for s, w := range finals {
		require.NoError(t, f.SetFinal(s, w))
	}
	for _, a := range arcs {
		require.NoError(t, f.AddArc(a.from, a.Arc))
	}

	return f
}

// example: 0 -a/1-> 1 -b/2-> 2(final 0.5), 0 -c/3-> 2, 1 -d/4-> 3(final 1.5), 2 -e/0.25-> 1
func example(t testing.TB) *core.Fst {
	return build(t, 4, 0, map[core.StateID]float32{2: 0.5, 3: 1.5}, []arc{
		{0, core.Arc{ILabel: 1, OLabel: 1, Weight: 1, Next: 1}},
		{0, core.Arc{ILabel: 3, OLabel: 6, Weight: 3, Next: 2}},
		{1, core.Arc{ILabel: 2, OLabel: 2, Weight: 2, Next: 2}},
		{1, core.Arc{ILabel: 4, OLabel: 7, Weight: 4, Next: 3}},
		{2, core.Arc{ILabel: 5, OLabel: 5, Weight: 0.25, Next: 1}},
	})
}

func TestReverse_Fixture(t *testing.T) {
	want := build(t, 5, 4, map[core.StateID]float32{0: 0}, []arc{
		// arcs of input state 0
		{1, core.Arc{ILabel: 1, OLabel: 1, Weight: 1, Next: 0}},
		{2, core.Arc{ILabel: 3, OLabel: 6, Weight: 3, Next: 0}},
		// arcs of input state 1
		{2, core.Arc{ILabel: 2, OLabel: 2, Weight: 2, Next: 1}},
		{3, core.Arc{ILabel: 4, OLabel: 7, Weight: 4, Next: 1}},
		// arcs of input state 2
		{1, core.Arc{ILabel: 5, OLabel: 5, Weight: 0.25, Next: 2}},
		// super-start
		{4, core.Arc{ILabel: core.Epsilon, OLabel: core.Epsilon, Weight: 0.5, Next: 2}},
		{4, core.Arc{ILabel: core.Epsilon, OLabel: core.Epsilon, Weight: 1.5, Next: 3}},
	})

	got, err := reverse.Reverse(example(t))
	require.NoError(t, err)
	assert.True(t, core.Equal(want, got))
}

func TestReverse_DoesNotModifyInput(t *testing.T) {
	src := example(t)
	_, err := reverse.Reverse(src)
	require.NoError(t, err)
	assert.True(t, core.Equal(example(t), src))
}

func TestReverse_Frozen(t *testing.T) {
	a, err := reverse.Reverse(example(t))
	require.NoError(t, err)
	b, err := reverse.Reverse(core.Freeze(example(t)))
	require.NoError(t, err)
	assert.True(t, core.Equal(a, b))
}

func TestReverse_SymbolTablesCopied(t *testing.T) {
	src := example(t)
	isyms := core.NewSymbolTable()
	isyms.Add("a")
	src.SetInputSymbols(isyms)

	got, err := reverse.Reverse(src)
	require.NoError(t, err)
	assert.True(t, isyms.Equal(got.InputSymbols()))
	assert.Nil(t, got.OutputSymbols())
	got.InputSymbols().Add("b")
	assert.Equal(t, 2, isyms.Len())
}

func TestReverse_StartIsFinal(t *testing.T) {
	src := build(t, 1, 0, map[core.StateID]float32{0: 2}, []arc{
		{0, core.Arc{ILabel: 1, OLabel: 1, Weight: 1, Next: 0}},
	})
	want := build(t, 2, 1, map[core.StateID]float32{0: 0}, []arc{
		{0, core.Arc{ILabel: 1, OLabel: 1, Weight: 1, Next: 0}},
		{1, core.Arc{Weight: 2, Next: 0}},
	})

	got, err := reverse.Reverse(src)
	require.NoError(t, err)
	assert.True(t, core.Equal(want, got))
}

func TestReverse_NoStart(t *testing.T) {
	f := core.New(semiring.Tropical)
	f.AddState()

	got, err := reverse.Reverse(f)
	assert.ErrorIs(t, err, core.ErrNoStart)
	assert.Nil(t, got)
}

func TestReverse_Logs(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := reverse.Reverse(example(t), reverse.WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "reverse", hook.LastEntry().Data["op"])
	assert.Equal(t, 5, hook.LastEntry().Data["states"])
	assert.Equal(t, 7, hook.LastEntry().Data["arcs"])
}
