package planner_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/floodpath/core"
	"github.com/katalvlaran/floodpath/planner"
	"github.com/katalvlaran/floodpath/valueiter"
)

// ExamplePlan compares a risky two-hop route with a safe detour.
func ExamplePlan() {
	g, _ := core.FromEdges(4, []core.Edge{
		{U: 0, V: 1, Weight: 1, Probability: 0.2},
		{U: 1, V: 3, Weight: 1, Probability: 0.3},
		{U: 0, V: 2, Weight: 5},
		{U: 2, V: 3, Weight: 5},
	})
	sol, err := planner.Plan(context.Background(), g, 0, 3,
		planner.WithSolverOptions(valueiter.WithDiscount(1)))
	if err != nil {
		fmt.Println(err)
		return
	}
	v, _ := sol.ExpectedCost()
	a, _ := sol.Policy().Action(sol.Model.Start())
	fmt.Printf("expected %.2f in [%.0f, %.0f], first attempt e%d\n",
		v, sol.Bounds.Optimistic, sol.Bounds.Pessimistic, a)
	// Output:
	// expected 6.44 in [2, 10], first attempt e0
}
