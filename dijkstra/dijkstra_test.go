package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodpath/core"
	"github.com/katalvlaran/floodpath/dijkstra"
)

func graph(t *testing.T, n int, edges ...core.Edge) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(n, edges, core.WithMultiEdges())
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := graph(t, 2, core.Edge{U: 0, V: 1, Weight: 1})

	_, _, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrNoSource)

	// A missing source has priority over a nil graph.
	_, _, err = dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrNoSource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source(0))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(5))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.ShortestPath(g, 0, 9)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Distances and paths
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	// 0-1 (1), 1-2 (2), 0-2 (5).
	g := graph(t, 3,
		core.Edge{U: 0, V: 1, Weight: 1},
		core.Edge{U: 1, V: 2, Weight: 2},
		core.Edge{U: 0, V: 2, Weight: 5},
	)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, []float64{0, 1, 3}, dist)

	d, path, err := dijkstra.ShortestPath(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)
	assert.Equal(t, []int{0, 1}, path)
}

func TestDijkstra_ParallelEdgesPickCheaper(t *testing.T) {
	g := graph(t, 2,
		core.Edge{U: 0, V: 1, Weight: 4},
		core.Edge{U: 0, V: 1, Weight: 1.5},
		core.Edge{U: 0, V: 1, Weight: 1.5},
	)
	d, path, err := dijkstra.ShortestPath(g, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.5, d)
	assert.Equal(t, []int{1}, path, "ties keep the lowest edge ID")
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := graph(t, 3, core.Edge{U: 0, V: 1, Weight: 1})
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist[2], 1))
	assert.Equal(t, -1, prev[2])
	assert.Equal(t, -1, prev[0])

	d, path, err := dijkstra.ShortestPath(g, 0, 2)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
	assert.Nil(t, path)
}

// ------------------------------------------------------------------------
// 3. Filters and thresholds
// ------------------------------------------------------------------------

func TestDijkstra_EdgeFilters(t *testing.T) {
	// Short road floods sometimes; long road never does.
	g := graph(t, 4,
		core.Edge{U: 0, V: 1, Weight: 1},
		core.Edge{U: 1, V: 3, Weight: 1, Probability: 0.5},
		core.Edge{U: 0, V: 2, Weight: 4},
		core.Edge{U: 2, V: 3, Weight: 4},
	)

	opt, path, err := dijkstra.ShortestPath(g, 0, 3, dijkstra.WithEdgeFilter(dijkstra.AllEdges))
	require.NoError(t, err)
	assert.Equal(t, 2.0, opt)
	assert.Equal(t, []int{0, 1}, path)

	pess, path, err := dijkstra.ShortestPath(g, 0, 3, dijkstra.WithEdgeFilter(dijkstra.DeterministicOnly))
	require.NoError(t, err)
	assert.Equal(t, 8.0, pess)
	assert.Equal(t, []int{2, 3}, path)
}

func TestDijkstra_InfEdgeThresholdAndMaxDistance(t *testing.T) {
	g := graph(t, 4,
		core.Edge{U: 0, V: 1, Weight: 1},
		core.Edge{U: 1, V: 2, Weight: 10},
		core.Edge{U: 2, V: 3, Weight: 1},
	)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(10))
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist[1])
	assert.True(t, math.IsInf(dist[2], 1))

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(5))
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist[1])
	assert.True(t, math.IsInf(dist[2], 1), "beyond the cap")
}
