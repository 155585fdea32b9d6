// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/floodpath/core"
)

// BenchmarkAddEdge measures appending edges to a multigraph star.
func BenchmarkAddEdge(b *testing.B) {
	g, _ := core.NewGraph(1024, core.WithMultiEdges())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(0, 1+i%1023, 1, 0.2)
	}
}

// BenchmarkIncident measures the copy cost of an incidence query.
func BenchmarkIncident(b *testing.B) {
	g, _ := core.NewGraph(256)
	for v := 1; v < 256; v++ {
		_, _ = g.AddEdge(0, v, 1, 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Incident(0)
	}
}
