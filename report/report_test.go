package report_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodpath/belief"
	"github.com/katalvlaran/floodpath/core"
	"github.com/katalvlaran/floodpath/planner"
	"github.com/katalvlaran/floodpath/report"
	"github.com/katalvlaran/floodpath/simulate"
	"github.com/katalvlaran/floodpath/valueiter"
)

// solve plans on 0-1 (w1, p.2), 1-3 (w1, p.3), 0-2 (w5), 2-3 (w5).
func solve(t testing.TB) *planner.Solution {
	t.Helper()
	g, err := core.FromEdges(4, []core.Edge{
		{U: 0, V: 1, Weight: 1, Probability: 0.2},
		{U: 1, V: 3, Weight: 1, Probability: 0.3},
		{U: 0, V: 2, Weight: 5},
		{U: 2, V: 3, Weight: 5},
	})
	require.NoError(t, err)
	sol, err := planner.Plan(context.Background(), g, 0, 3,
		planner.WithSolverOptions(valueiter.WithDiscount(1)))
	require.NoError(t, err)

	return sol
}

func TestBelief(t *testing.T) {
	sol := solve(t)
	b := belief.New(1, []belief.Knowledge{belief.Clear, belief.Flooded})

	var buf bytes.Buffer
	require.NoError(t, report.Belief(&buf, sol.Model, b, false))
	want := "Position: 1\n" +
		"Belief about edges:\n" +
		"  Edge 0: CLEAR\n" +
		"  Edge 1: FLOODED\n" +
		"  Edge 2: DETERMINISTIC (assumed clear)\n" +
		"  Edge 3: DETERMINISTIC (assumed clear)\n"
	assert.Equal(t, want, buf.String())
}

func TestBelief_Colour(t *testing.T) {
	sol := solve(t)
	var plain, coloured bytes.Buffer
	require.NoError(t, report.Belief(&plain, sol.Model, sol.Model.Start(), false))
	require.NoError(t, report.Belief(&coloured, sol.Model, sol.Model.Start(), true))

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, coloured.String(), "\x1b[")
	assert.Contains(t, coloured.String(), "UNKNOWN")
}

func TestValues(t *testing.T) {
	sol := solve(t)
	var buf bytes.Buffer
	require.NoError(t, report.Values(&buf, sol, false))
	out := buf.String()

	assert.Contains(t, out, "Beliefs: 15 explored")
	assert.Contains(t, out, "converged")
	assert.Contains(t, out, "Bounds: optimistic 2.000, pessimistic 10.000")
	assert.Contains(t, out, "Expected cost from start: 6.440")
	assert.Contains(t, out, "(0 U U) ->    6.440  attempt e0")
	assert.Contains(t, out, "(3 C C) ->    0.000\n")
	assert.Contains(t, out, "First attempt: edge 0 (0 <-> 1)")

	buf.Reset()
	require.NoError(t, report.Plan(&buf, sol, false))
	assert.NotContains(t, buf.String(), "Belief State Values")
}

func TestTrial(t *testing.T) {
	sol := solve(t)
	tr, err := simulate.Simulate(sol.Model, sol.Policy(),
		simulate.WithGroundTruth([]bool{false, true, false, false}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Trial(&buf, sol.Model, tr, false))
	out := buf.String()

	assert.Contains(t, out, "Simulation 1")
	assert.Contains(t, out, "  Edge 1: FLOODED\n")
	assert.Contains(t, out, "Chosen action: traverse edge 0 (0 <-> 1), cost 1")
	assert.Contains(t, out, "Observation: Edge 1 is FLOODED -> stay at 1")
	assert.Contains(t, out, "Reached target vertex: 3")
	assert.Equal(t, len(tr.Steps), strings.Count(out, "Chosen action"))
}

func TestTrial_NoAction(t *testing.T) {
	g, err := core.FromEdges(2, []core.Edge{{U: 0, V: 1, Weight: 3, Probability: 0.5}})
	require.NoError(t, err)
	sol, err := planner.Plan(context.Background(), g, 0, 1)
	require.NoError(t, err)
	tr, err := simulate.Simulate(sol.Model, sol.Policy(), simulate.WithGroundTruth([]bool{true}))
	require.NoError(t, err)
	require.Equal(t, simulate.StatusNoAction, tr.Status)

	var buf bytes.Buffer
	require.NoError(t, report.Trial(&buf, sol.Model, tr, false))
	assert.Contains(t, buf.String(), "No available action, stopping.")
	assert.Contains(t, buf.String(), "Total cost: 3")
}

func TestSummary(t *testing.T) {
	s := simulate.Summary{
		Trials:    4,
		ByStatus:  map[simulate.Status]int{simulate.StatusReachedTarget: 3, simulate.StatusNoAction: 1},
		MeanCost:  4,
		MinCost:   2,
		MaxCost:   7,
		MeanSteps: 2.5,
	}
	var buf bytes.Buffer
	require.NoError(t, report.Summary(&buf, s, false))
	out := buf.String()
	assert.Contains(t, out, "reached target: 75.0%")
	assert.Contains(t, out, "Outcomes: reached_target=3 no_action=1")
	assert.Contains(t, out, "mean 4.000, min 2, max 7")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPrinter_StickyError(t *testing.T) {
	sol := solve(t)
	p := report.NewPrinter(failWriter{}, false)
	p.Values(sol)
	p.Summary(simulate.Summary{})
	assert.EqualError(t, p.Err(), "disk full")
}

func TestCharts(t *testing.T) {
	sol := solve(t)
	trials, err := simulate.Run(context.Background(), sol.Model, sol.Policy(), 5, simulate.WithSeed(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.ConvergenceChart(&buf, sol.Result.History))
	assert.Contains(t, buf.String(), "Value iteration convergence")

	buf.Reset()
	require.NoError(t, report.CostChart(&buf, trials))
	assert.Contains(t, buf.String(), "Trial cost")

	buf.Reset()
	require.NoError(t, report.Dashboard(&buf, sol.Result.History, trials))
	assert.Contains(t, buf.String(), "Value iteration convergence")
	assert.Contains(t, buf.String(), "Trial cost")

	assert.ErrorIs(t, report.ConvergenceChart(&buf, nil), report.ErrNoData)
	assert.ErrorIs(t, report.CostChart(&buf, nil), report.ErrNoData)
	assert.ErrorIs(t, report.Dashboard(&buf, nil, nil), report.ErrNoData)
}
