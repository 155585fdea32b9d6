package bfs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodpath/belief"
	"github.com/katalvlaran/floodpath/core"
)

// rejecting serves a real model but fails every transition from failAt.
type rejecting struct {
	*belief.Model
	failAt int
}

func (r rejecting) Transitions(b belief.Belief, edge int) ([]belief.Outcome, error) {
	if b.Position() == r.failAt {
		return nil, fmt.Errorf("%w: edge %d rejected", belief.ErrIllegalAction, edge)
	}
	return r.Model.Transitions(b, edge)
}

// TestWalk_TransitionErrorKeepsChain checks that both the walker's sentinel
// and the model's error stay reachable through errors.Is.
func TestWalk_TransitionErrorKeepsChain(t *testing.T) {
	g, err := core.FromEdges(3, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 1, Probability: 0.5},
	})
	require.NoError(t, err)
	m, err := belief.NewModel(g, 0, 2)
	require.NoError(t, err)

	res, err := walk(rejecting{Model: m, failAt: 1}, DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransitions)
	assert.ErrorIs(t, err, belief.ErrIllegalAction)
	assert.Contains(t, err.Error(), "(1 U)")
	assert.Equal(t, 2, res.Len(), "start and its successor were visited")
}
