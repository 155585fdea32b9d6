// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing constructors and read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

import "fmt"

// FromEdges builds a Graph over n vertices and adds the given edges in order.
// Edge.ID fields of the input are ignored; IDs are reassigned by insertion
// order, so edges[i] becomes edge i.
//
// Errors: any error returned by NewGraph or AddEdge, wrapped with the index
// of the offending edge.
//
// Complexity: O(n + len(edges) * maxDeg).
func FromEdges(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	g, err := NewGraph(n, opts...)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if _, err = g.AddEdge(e.U, e.V, e.Weight, e.Probability); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}

// VertexCount returns n. Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// HasVertex reports whether v lies in [0, n). Complexity: O(1).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Multigraph reports whether parallel edges are permitted by policy.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Stats produces a read-only snapshot of catalog sizes.
// Complexity: O(E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Vertices:    g.n,
		Edges:       len(g.edges),
		AllowsMulti: g.allowMulti,
	}
	for _, e := range g.edges {
		if e.Deterministic() {
			stats.Deterministic++
		} else {
			stats.Uncertain++
		}
	}

	return stats
}
