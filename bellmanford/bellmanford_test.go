package bellmanford_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olekrav/wayfind/bellmanford"
	"github.com/olekrav/wayfind/core"
	"github.com/olekrav/wayfind/dijkstra"
	"github.com/olekrav/wayfind/route"
)

func TestRun_MissingSource(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	_, err = bellmanford.Run(g)
	assert.ErrorIs(t, err, bellmanford.ErrNoSource)
}

func TestRun_NilGraph(t *testing.T) {
	_, err := bellmanford.Run(nil, bellmanford.Source(0))
	assert.ErrorIs(t, err, bellmanford.ErrNilGraph)
}

func TestRun_SourceOutOfRange(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	_, err = bellmanford.Run(g, bellmanford.Source(-3))
	assert.ErrorIs(t, err, bellmanford.ErrVertexNotFound)
}

func TestRun_NegativeEdgesWithoutCycle(t *testing.T) {
	// Directed: 0→1(4), 0→2(2), 1→2(-3), 2→3(2), 1→3(5).
	// The detour 0→1→2 (cost 1) beats the direct 0→2 (cost 2).
	g, err := core.NewGraph(4, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 2, 2))
	require.NoError(t, g.AddEdge(1, 2, -3))
	require.NoError(t, g.AddEdge(2, 3, 2))
	require.NoError(t, g.AddEdge(1, 3, 5))

	res, err := bellmanford.Run(g, bellmanford.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 4, 1, 3}, res.Dist)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

func TestRun_NegativeCycleDetected(t *testing.T) {
	// 0→1(1), 1→2(3), 2→0(-5): total -1, reachable from 0.
	g, err := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 3))
	require.NoError(t, g.AddEdge(2, 0, -5))

	_, err = bellmanford.Run(g, bellmanford.Source(0))
	assert.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestRun_UnreachableNegativeCycleIsHarmless(t *testing.T) {
	// The cycle 2⇄3 sums to -2 but nothing connects 0 to it.
	g, err := core.NewGraph(4, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 2, -3))

	res, err := bellmanford.Run(g, bellmanford.Source(0))
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Dist[1])
	assert.True(t, math.IsInf(res.Dist[2], 1))
	assert.Equal(t, route.NoPredecessor, res.Prev[2])
}

func TestRun_UndirectedNegativeEdgeIsANegativeCycle(t *testing.T) {
	// An undirected negative edge relaxes both ways forever: u→v→u < 0.
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, -1))

	_, err = bellmanford.Run(g, bellmanford.Source(0))
	assert.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestRun_EarlyTerminationOnChain(t *testing.T) {
	// A directed chain converges in one effective pass; the pass counter
	// must stop well short of V-1 once a pass makes no change.
	g, err := core.NewGraph(6, core.WithDirected(true))
	require.NoError(t, err)
	for v := 1; v < 6; v++ {
		require.NoError(t, g.AddEdge(v-1, v, 1))
	}

	res, err := bellmanford.Run(g, bellmanford.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5}, res.Dist)
	// Arcs relax in insertion order along the chain, so pass 1 settles
	// everything and pass 2 confirms quiescence.
	assert.Equal(t, 2, res.Passes)
}

func TestRun_PassHookStopsRun(t *testing.T) {
	g, err := core.NewGraph(5, core.WithDirected(true))
	require.NoError(t, err)
	// Insertion order forces one extra pass per hop: 4←3, 3←2, 2←1, 1←0.
	require.NoError(t, g.AddEdge(3, 4, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(0, 1, 1))

	var calls []int
	_, err = bellmanford.Run(g, bellmanford.Source(0), bellmanford.WithPassHook(func(pass int) bool {
		calls = append(calls, pass)
		return pass < 2
	}))
	assert.ErrorIs(t, err, bellmanford.ErrStopped)
	assert.Equal(t, []int{1, 2}, calls)
}

func TestRun_AgreesWithDijkstraOnNonNegativeGraph(t *testing.T) {
	// On all-non-negative weights the two engines must produce identical
	// distance tables from every source.
	g, err := core.NewGraph(40)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(11))
	for v := 1; v < 40; v++ {
		require.NoError(t, g.AddEdge(v-1, v, 1+r.Float64()*9))
	}
	for i := 0; i < 120; i++ {
		u, v := r.Intn(40), r.Intn(40)
		if u == v {
			continue
		}
		_ = g.AddEdge(u, v, 1+r.Float64()*99)
	}

	for src := 0; src < 40; src += 7 {
		bf, err := bellmanford.Run(g, bellmanford.Source(src))
		require.NoError(t, err)
		dj, err := dijkstra.Run(g, dijkstra.Source(src))
		require.NoError(t, err)
		assert.Equal(t, dj.Dist, bf.Dist, "source %d", src)
	}
}

func TestRun_RerunsAreIdentical(t *testing.T) {
	g, err := core.NewGraph(4, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 2, 2))
	require.NoError(t, g.AddEdge(1, 2, -3))
	require.NoError(t, g.AddEdge(2, 3, 2))

	first, err := bellmanford.Run(g, bellmanford.Source(0))
	require.NoError(t, err)
	second, err := bellmanford.Run(g, bellmanford.Source(0))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
