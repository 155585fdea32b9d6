package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/floodpath/belief"
	"github.com/katalvlaran/floodpath/bfs"
	"github.com/katalvlaran/floodpath/core"
)

// ExampleBFS shows the reachable beliefs of a two-route network where only
// the short route may flood.
func ExampleBFS() {
	//   e0: 0-1 w=1 p=0.4 (may flood)
	//   e1: 0-1 w=3 p=0   (always open)
	g, _ := core.NewGraph(2, core.WithMultiEdges())
	_, _ = g.AddEdge(0, 1, 1, 0.4)
	_, _ = g.AddEdge(0, 1, 3, 0)

	m, _ := belief.NewModel(g, 0, 1)
	res, err := bfs.BFS(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, b := range res.Order {
		fmt.Println(b, "depth", res.Depth[b], "terminal", m.IsTerminal(b))
	}
	// Output:
	// (0 U) depth 0 terminal false
	// (0 F) depth 1 terminal false
	// (1 C) depth 1 terminal true
	// (1 U) depth 1 terminal true
	// (1 F) depth 2 terminal true
}
