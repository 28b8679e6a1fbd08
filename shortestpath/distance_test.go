package shortestpath_test

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
	"github.com/elliotfiske/cmu-lextool-sub001/shortestpath"
)

var inf = float32(math.Inf(1))

// 0 -1-> 1 -2-> 3(final 1)
// 0 -4-> 2 -0.5-> 3
// 1 -1-> 2
// 4 (unreachable) -1-> 3
func diamond(t testing.TB, sr semiring.Semiring) *core.Fst {
	return acceptor(t, sr, 5, map[core.StateID]float32{3: 1}, []arc{
		{0, 1, 1, 1},
		{0, 2, 4, 2},
		{1, 3, 2, 3},
		{1, 4, 1, 2},
		{2, 5, 0.5, 3},
		{4, 6, 1, 3},
	})
}

func TestShortestDistance_Forward(t *testing.T) {
	d, err := shortestpath.ShortestDistance(diamond(t, semiring.Tropical), false)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 2, 2.5, inf}, d)
}

func TestShortestDistance_Reverse(t *testing.T) {
	d, err := shortestpath.ShortestDistance(diamond(t, semiring.Tropical), true)
	require.NoError(t, err)
	assert.Equal(t, []float32{3.5, 2.5, 1.5, 1, 2}, d)
}

func TestShortestDistance_Log(t *testing.T) {
	// Two parallel arcs of cost 1 sum to 1 - ln 2.
	f := acceptor(t, semiring.Log, 2, map[core.StateID]float32{1: 0}, []arc{
		{0, 1, 1, 1},
		{0, 2, 1, 1},
	})
	d, err := shortestpath.ShortestDistance(f, false)
	require.NoError(t, err)
	assert.InDelta(t, 1-math.Ln2, d[1], 1e-6)

	d, err = shortestpath.ShortestDistance(f, true)
	require.NoError(t, err)
	assert.InDelta(t, 1-math.Ln2, d[0], 1e-6)
}

func TestShortestDistance_LogCycle(t *testing.T) {
	// A self-loop of probability 1/2 doubles the mass: d = -ln 2.
	half := float32(math.Ln2)
	f := acceptor(t, semiring.Log, 1, map[core.StateID]float32{0: 0}, []arc{
		{0, 1, half, 0},
	})
	d, err := shortestpath.ShortestDistance(f, false, shortestpath.WithDelta(1e-6))
	require.NoError(t, err)
	assert.InDelta(t, -math.Ln2, d[0], 1e-4)
}

func TestShortestDistance_NoStart(t *testing.T) {
	f := diamond(t, semiring.Tropical)
	g := core.New(semiring.Tropical)
	for i := 0; i < f.NumStates(); i++ {
		g.AddState()
	}
	require.NoError(t, g.SetFinal(1, 0))

	d, err := shortestpath.ShortestDistance(g, false)
	require.NoError(t, err)
	assert.Equal(t, []float32{inf, inf, inf, inf, inf}, d)

	d, err = shortestpath.ShortestDistance(g, true)
	require.NoError(t, err)
	assert.Equal(t, []float32{inf, 0, inf, inf, inf}, d)
}

func TestClosure_Epsilon(t *testing.T) {
	f := acceptor(t, semiring.Tropical, 4, nil, []arc{
		{0, core.Epsilon, 1, 1},
		{1, core.Epsilon, 2, 2},
		{0, 7, 1, 3},
		{2, core.Epsilon, 1, 0},
	})
	order, dist := shortestpath.Closure(f, 0, shortestpath.EpsilonArc)
	assert.Equal(t, []core.StateID{0, 1, 2}, order)
	assert.Equal(t, map[core.StateID]float32{0: 0, 1: 1, 2: 3}, dist)
}

func TestDistance_BadSource(t *testing.T) {
	_, err := shortestpath.Distance(diamond(t, semiring.Tropical), 9, shortestpath.AnyArc)
	assert.ErrorIs(t, err, core.ErrStateNotFound)
}

func TestShortestDistance_Logs(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	f := diamond(t, semiring.Tropical)

	_, err := shortestpath.ShortestDistance(f, false, shortestpath.WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, hook.AllEntries(), 1)
	e := hook.LastEntry()
	assert.Equal(t, "shortestdistance", e.Data["op"])
	assert.Equal(t, 5, e.Data["states"])
	assert.Equal(t, 4, e.Data["reached"])

	hook.Reset()
	_, err = shortestpath.Distance(f, 4, shortestpath.AnyArc, shortestpath.WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "distance", hook.LastEntry().Data["op"])
	assert.Equal(t, 2, hook.LastEntry().Data["reached"])

	hook.Reset()
	logger.SetLevel(logrus.InfoLevel)
	_, err = shortestpath.ShortestDistance(f, true, shortestpath.WithLogger(logger))
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}
