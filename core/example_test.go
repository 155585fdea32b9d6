package core_test

import (
	"fmt"

	"github.com/katalvlaran/floodpath/core"
)

// ExampleGraph demonstrates basic creation and queries.
func ExampleGraph() {
	// 1) Three junctions, two road segments; the second may flood.
	g, _ := core.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 4, 0)
	_, _ = g.AddEdge(1, 2, 2.5, 0.3)

	// 2) Inspect the catalog.
	for _, e := range g.Edges() {
		fmt.Printf("e%d %d-%d w=%.1f p=%.1f deterministic=%v\n",
			e.ID, e.U, e.V, e.Weight, e.Probability, e.Deterministic())
	}
	nbrs, _ := g.Neighbors(1)
	fmt.Println("neighbors of 1:", nbrs)
	fmt.Println("uncertain:", g.UncertainEdges())

	// Output:
	// e0 0-1 w=4.0 p=0.0 deterministic=true
	// e1 1-2 w=2.5 p=0.3 deterministic=false
	// neighbors of 1: [0 2]
	// uncertain: [1]
}
