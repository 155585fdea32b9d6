package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/floodpath/belief"
	"github.com/katalvlaran/floodpath/bfs"
	"github.com/katalvlaran/floodpath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newModel builds a model over n vertices from (u, v, w, p) tuples.
func newModel(t testing.TB, n, start, target int, edges ...core.Edge) *belief.Model {
	t.Helper()
	g, err := core.FromEdges(n, edges, core.WithMultiEdges())
	require.NoError(t, err)
	m, err := belief.NewModel(g, start, target)
	require.NoError(t, err)

	return m
}

// diamond: two routes 0-1-3 and 0-2-3, each with one uncertain edge.
func diamond(t testing.TB) *belief.Model {
	return newModel(t, 4, 0, 3,
		core.Edge{U: 0, V: 1, Weight: 1},
		core.Edge{U: 1, V: 3, Weight: 1, Probability: 0.5},
		core.Edge{U: 0, V: 2, Weight: 2},
		core.Edge{U: 2, V: 3, Weight: 2, Probability: 0.1},
	)
}

func orderStrings(bs []belief.Belief) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.String()
	}
	return out
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil)
	require.ErrorIs(t, err, bfs.ErrModelNil)

	_, err = bfs.BFS(diamond(t), bfs.WithMaxBeliefs(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleUncertainEdge covers the two-vertex toy graph.
func TestBFS_SingleUncertainEdge(t *testing.T) {
	m := newModel(t, 2, 0, 1, core.Edge{U: 0, V: 1, Weight: 10, Probability: 0.5})

	res, err := bfs.BFS(m)
	require.NoError(t, err)
	assert.Equal(t, []string{"(0 U)", "(0 F)", "(1 C)"}, orderStrings(res.Order))
	assert.Equal(t, 1, res.Terminals)
	assert.Equal(t, 1, res.Depth[belief.New(1, []belief.Knowledge{belief.Clear})])
}

// TestBFS_StartIsTarget yields only the start belief.
func TestBFS_StartIsTarget(t *testing.T) {
	m := newModel(t, 2, 1, 1, core.Edge{U: 0, V: 1, Weight: 1, Probability: 0.5})

	res, err := bfs.BFS(m)
	require.NoError(t, err)
	assert.Equal(t, []string{"(1 U)"}, orderStrings(res.Order))
	assert.Equal(t, 1, res.Terminals)
}

// TestBFS_DiamondOrder pins the reproducible visit sequence.
func TestBFS_DiamondOrder(t *testing.T) {
	res, err := bfs.BFS(diamond(t))
	require.NoError(t, err)

	want := []string{
		"(0 U U)", "(1 U U)", "(2 U U)", "(1 F U)", "(3 C U)", "(2 U F)", "(3 U C)",
		"(0 F U)", "(0 U F)", "(2 F U)", "(1 U F)", "(2 F F)", "(3 F C)", "(1 F F)",
		"(3 C F)", "(0 F F)",
	}
	assert.Equal(t, want, orderStrings(res.Order))
	assert.Equal(t, want, orderStrings(res.Beliefs()))
	assert.Equal(t, 4, res.Terminals)
	assert.Less(t, res.Len(), 4*9, "strict subset of |V|·3^k")
}

// TestBFS_ClosedUnderTransitions checks that every successor of every
// non-terminal reachable belief is itself reachable.
func TestBFS_ClosedUnderTransitions(t *testing.T) {
	m := diamond(t)
	res, err := bfs.BFS(m)
	require.NoError(t, err)

	seen := make(map[belief.Belief]bool, res.Len())
	for _, b := range res.Order {
		assert.False(t, seen[b], "duplicate %v", b)
		seen[b] = true
	}
	for _, b := range res.Order {
		if m.IsTerminal(b) {
			continue
		}
		for _, a := range m.LegalActions(b) {
			outs, err := m.Transitions(b, a)
			require.NoError(t, err)
			for _, o := range outs {
				assert.True(t, res.Contains(o.Next), "%v -%d-> %v missing", b, a, o.Next)
			}
		}
	}
}

// TestBFS_TerminalNotExpanded ensures nothing past the target is explored.
func TestBFS_TerminalNotExpanded(t *testing.T) {
	// 0 - 1(target) - 2: vertex 2 lies beyond the target.
	m := newModel(t, 3, 0, 1,
		core.Edge{U: 0, V: 1, Weight: 1},
		core.Edge{U: 1, V: 2, Weight: 1, Probability: 0.3},
	)
	res, err := bfs.BFS(m)
	require.NoError(t, err)
	for _, b := range res.Order {
		assert.NotEqual(t, 2, b.Position())
		assert.Equal(t, belief.Unknown, b.Knowledge(0))
	}
}

// TestBFS_PathTo reconstructs a belief chain.
func TestBFS_PathTo(t *testing.T) {
	res, err := bfs.BFS(diamond(t))
	require.NoError(t, err)

	dest := belief.New(3, []belief.Knowledge{belief.Flooded, belief.Clear})
	path, err := res.PathTo(dest)
	require.NoError(t, err)
	assert.Equal(t, "(0 U U)", path[0].String())
	assert.Equal(t, dest, path[len(path)-1])
	assert.Len(t, path, res.Depth[dest]+1)

	_, err = res.PathTo(belief.New(3, []belief.Knowledge{belief.Flooded, belief.Flooded}))
	require.Error(t, err)
}

// TestBFS_MaxBeliefs enforces the safety cap.
func TestBFS_MaxBeliefs(t *testing.T) {
	_, err := bfs.BFS(diamond(t), bfs.WithMaxBeliefs(5))
	require.ErrorIs(t, err, bfs.ErrBeliefLimit)

	res, err := bfs.BFS(diamond(t), bfs.WithMaxBeliefs(16))
	require.NoError(t, err)
	assert.Equal(t, 16, res.Len())
}

// TestBFS_Hooks asserts hook order and error propagation.
func TestBFS_Hooks(t *testing.T) {
	m := newModel(t, 2, 0, 1, core.Edge{U: 0, V: 1, Weight: 10, Probability: 0.5})

	var enq, vis []string
	_, err := bfs.BFS(m,
		bfs.WithOnEnqueue(func(b belief.Belief, d int) { enq = append(enq, b.String()) }),
		bfs.WithOnVisit(func(b belief.Belief, d int) error {
			vis = append(vis, b.String())
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"(0 U)", "(0 F)", "(1 C)"}, enq)
	assert.Equal(t, enq, vis)

	boom := errors.New("boom")
	_, err = bfs.BFS(m, bfs.WithOnVisit(func(belief.Belief, int) error { return boom }))
	require.ErrorIs(t, err, boom)
}

// TestBFS_Cancellation stops on a cancelled context.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(diamond(t), bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
