package determinize_test

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/determinize"
	"github.com/elliotfiske/cmu-lextool-sub001/fstio"
	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
)

const (
	la = iota + 1
	lb
	lc
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
	require.NoError(t, f.SetStart(0))
	for s, w := range finals {
		require.NoError(t, f.SetFinal(s, w))
	}
	for _, a := range arcs {
		require.NoError(t, f.AddArc(a.from, core.Arc{ILabel: a.label, OLabel: a.label, Weight: a.w, Next: a.to}))
	}

	return f
}

// 0 -a/1-> 1 -c/4-> 3
// 0 -a/2-> 2 -c/3-> 3
// 0 -b/3-> 2
func nondeterministic(t testing.TB) *core.Fst {
	return acceptor(t, semiring.Tropical, 4, map[core.StateID]float32{3: 0}, []arc{
		{0, la, 1, 1},
		{0, la, 2, 2},
		{0, lb, 3, 2},
		{1, lc, 4, 3},
		{2, lc, 3, 3},
	})
}

func TestDeterminize_Tropical(t *testing.T) {
	// {(0,0)} -a/1-> {(1,0),(2,1)} -c/4-> {(3,0)}
	// {(0,0)} -b/3-> {(2,0)}       -c/3-> {(3,0)}
	want := acceptor(t, semiring.Tropical, 4, map[core.StateID]float32{3: 0}, []arc{
		{0, la, 1, 1},
		{0, lb, 3, 2},
		{1, lc, 4, 3},
		{2, lc, 3, 3},
	})

	got, err := determinize.Determinize(nondeterministic(t))
	require.NoError(t, err)
	assert.True(t, core.Equal(want, got))
}

func TestDeterminize_ResidualReachesFinal(t *testing.T) {
	src := acceptor(t, semiring.Tropical, 3, map[core.StateID]float32{1: 2, 2: 0}, []arc{
		{0, la, 1, 1},
		{0, la, 3, 2},
	})
	want := acceptor(t, semiring.Tropical, 2, map[core.StateID]float32{1: 2}, []arc{
		{0, la, 1, 1},
	})

	got, err := determinize.Determinize(src)
	require.NoError(t, err)
	assert.True(t, core.Equal(want, got))
}

func TestDeterminize_Log(t *testing.T) {
	src := acceptor(t, semiring.Log, 3, map[core.StateID]float32{1: 0, 2: 0}, []arc{
		{0, la, 1, 1},
		{0, la, 1, 2},
	})
	want := acceptor(t, semiring.Log, 2, map[core.StateID]float32{1: 0}, []arc{
		{0, la, float32(1 - math.Ln2), 1},
	})

	got, err := determinize.Determinize(src)
	require.NoError(t, err)
	assert.True(t, core.ApproxEqual(want, got, 1e-5))
}

func TestDeterminize_AlreadyDeterministic(t *testing.T) {
	src := acceptor(t, semiring.Tropical, 3, map[core.StateID]float32{2: 1.5}, []arc{
		{0, la, 1, 1},
		{0, lb, 2, 2},
		{1, lc, 0.5, 2},
	})

	got, err := determinize.Determinize(src)
	require.NoError(t, err)
	assert.True(t, core.Equal(src, got))
}

func TestDeterminize_Idempotent(t *testing.T) {
	once, err := determinize.Determinize(nondeterministic(t))
	require.NoError(t, err)
	twice, err := determinize.Determinize(once)
	require.NoError(t, err)
	assert.True(t, core.Equal(once, twice))
}

func TestDeterminize_NotAcceptor(t *testing.T) {
	f := nondeterministic(t)
	require.NoError(t, f.AddArc(0, core.Arc{ILabel: la, OLabel: lb, Next: 1}))

	got, err := determinize.Determinize(f)
	assert.ErrorIs(t, err, determinize.ErrNotAcceptor)
	assert.Nil(t, got)
}

func TestDeterminize_NoStart(t *testing.T) {
	_, err := determinize.Determinize(core.New(semiring.Tropical))
	assert.ErrorIs(t, err, core.ErrNoStart)
}

func TestDeterminize_StateLimit(t *testing.T) {
	// The residual of state 2 grows by 2 on every a, so no finite result exists.
	src := acceptor(t, semiring.Tropical, 3, map[core.StateID]float32{1: 0, 2: 0}, []arc{
		{0, la, 1, 1},
		{0, la, 2, 2},
		{1, la, 1, 1},
		{2, la, 3, 2},
	})

	got, err := determinize.Determinize(src, determinize.WithMaxStates(10))
	assert.ErrorIs(t, err, determinize.ErrStateLimit)
	assert.Nil(t, got)
}

func TestDeterminize_KeepsSymbols(t *testing.T) {
	src := nondeterministic(t)
	syms := core.NewSymbolTable()
	syms.Add("a")
	src.SetInputSymbols(syms)
	src.SetOutputSymbols(syms.Copy())

	got, err := determinize.Determinize(core.Freeze(src))
	require.NoError(t, err)
	assert.True(t, syms.Equal(got.InputSymbols()))
	assert.True(t, syms.Equal(got.OutputSymbols()))
}

// readFixture parses an AT&T text file from testdata over the shared symbols.
func readFixture(t testing.TB, name string) *core.Fst {
	t.Helper()
	sf, err := os.Open("testdata/openfst.syms")
	require.NoError(t, err)
	defer sf.Close()
	syms, err := fstio.ReadSymbols(sf)
	require.NoError(t, err)

	fh, err := os.Open("testdata/" + name)
	require.NoError(t, err)
	defer fh.Close()
	f, err := fstio.ReadText(fh, semiring.Tropical, fstio.WithInputSymbols(syms), fstio.WithOutputSymbols(syms))
	require.NoError(t, err)

	return f
}

func TestDeterminize_PublishedFixture(t *testing.T) {
	// The two a-branches merge into {(1,0),(2,1)}; b loops on it at the
	// smaller cost and the residual 1 reappears on the d exit (1+6).
	got, err := determinize.Determinize(readFixture(t, "openfst.txt"))
	require.NoError(t, err)
	assert.True(t, core.Equal(readFixture(t, "openfst_det.txt"), got))
}
