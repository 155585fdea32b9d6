package valueiter_test

import (
	"fmt"

	"github.com/katalvlaran/floodpath/belief"
	"github.com/katalvlaran/floodpath/bfs"
	"github.com/katalvlaran/floodpath/core"
	"github.com/katalvlaran/floodpath/valueiter"
)

// ExampleSolve plans across a single road that floods half the time.
func ExampleSolve() {
	g, _ := core.FromEdges(2, []core.Edge{{U: 0, V: 1, Weight: 10, Probability: 0.5}})
	m, _ := belief.NewModel(g, 0, 1)
	reach, _ := bfs.BFS(m)

	res, err := valueiter.Solve(m, reach.Order, valueiter.WithDiscount(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	v, _ := res.Value(m.Start())
	a, _ := res.Policy.Action(m.Start())
	fmt.Printf("V=%.1f attempt=e%d converged=%v\n", v, a, res.Converged)
	// Output: V=10.0 attempt=e0 converged=true
}
