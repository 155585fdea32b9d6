package valueiter_test

import (
	"testing"

	"github.com/katalvlaran/floodpath/bfs"
	"github.com/katalvlaran/floodpath/core"
	"github.com/katalvlaran/floodpath/valueiter"
)

// BenchmarkSolve_Ladder compares sweep modes on a ladder of floodable rungs.
func BenchmarkSolve_Ladder(b *testing.B) {
	const rungs = 6
	var edges []core.Edge
	for i := 0; i < rungs; i++ {
		top, bottom := 2*i, 2*i+1
		edges = append(edges, core.Edge{U: top, V: bottom, Weight: 1, Probability: 0.3})
		if i+1 < rungs {
			edges = append(edges,
				core.Edge{U: top, V: top + 2, Weight: 1},
				core.Edge{U: bottom, V: bottom + 2, Weight: 1},
			)
		}
	}
	m := newModel(b, 2*rungs, 0, 2*rungs-1, edges...)
	reach, err := bfs.BFS(m)
	if err != nil {
		b.Fatal(err)
	}

	for _, workers := range []int{1, 4} {
		b.Run(map[int]string{1: "gauss-seidel", 4: "jacobi-4"}[workers], func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = valueiter.Solve(m, reach.Order, valueiter.WithWorkers(workers))
			}
		})
	}
}
