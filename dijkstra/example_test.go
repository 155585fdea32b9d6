package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/floodpath/core"
	"github.com/katalvlaran/floodpath/dijkstra"
)

// ExampleShortestPath brackets a trip with its best and worst worlds.
func ExampleShortestPath() {
	g, _ := core.FromEdges(4, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 3, Weight: 1, Probability: 0.5},
		{U: 0, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 2, Probability: 0.1},
	})

	best, path, _ := dijkstra.ShortestPath(g, 0, 3)
	fmt.Printf("all clear: %.0f via %v\n", best, path)

	worst, _, _ := dijkstra.ShortestPath(g, 0, 3, dijkstra.WithEdgeFilter(dijkstra.DeterministicOnly))
	fmt.Printf("all flooded: %v\n", worst)
	// Output:
	// all clear: 2 via [0 1]
	// all flooded: +Inf
}
