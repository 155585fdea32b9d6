// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edge/Edges/EdgeCount/UncertainEdges.
// Determinism:
//   - Edge IDs are assigned 0, 1, 2, ... in insertion order.
//   - Edges() and UncertainEdges() return ascending edge IDs.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends an undirected edge u-v and returns its ID.
//
// Steps:
//  1. Validate endpoints, loop, weight and probability.
//  2. Lock mu, check the multi-edge constraint.
//  3. Append to the catalog and to both incidence lists.
//
// Complexity: O(deg(u)) for the multi-edge check, O(1) amortized otherwise.
func (g *Graph) AddEdge(u, v int, weight, probability float64) (int, error) {
	// 1) Input validation
	if u < 0 || u >= g.n {
		return -1, fmt.Errorf("%w: u=%d n=%d", ErrVertexOutOfRange, u, g.n)
	}
	if v < 0 || v >= g.n {
		return -1, fmt.Errorf("%w: v=%d n=%d", ErrVertexOutOfRange, v, g.n)
	}
	if u == v {
		return -1, fmt.Errorf("%w: %d-%d", ErrLoopNotAllowed, u, v)
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return -1, fmt.Errorf("%w: %d-%d weight=%v", ErrBadWeight, u, v, weight)
	}
	if !(probability >= 0 && probability <= 1) { // also rejects NaN
		return -1, fmt.Errorf("%w: %d-%d p=%v", ErrBadProbability, u, v, probability)
	}

	// 2) Insert edge under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti {
		for _, eid := range g.incident[u] {
			if g.edges[eid].Incident(v) {
				return -1, fmt.Errorf("%w: %d-%d", ErrMultiEdgeNotAllowed, u, v)
			}
		}
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, U: u, V: v, Weight: weight, Probability: probability})
	g.incident[u] = append(g.incident[u], id)
	g.incident[v] = append(g.incident[v], id)

	return id, nil
}

// Edge returns a copy of the edge with the given ID.
func (g *Graph) Edge(id int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: id=%d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// Edges returns a copy of the edge catalog in ascending ID order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// UncertainEdges returns the IDs of all edges with Probability > 0, ascending.
// This ordering is the uncertain-edge index used by knowledge vectors.
func (g *Graph) UncertainEdges() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	for _, e := range g.edges {
		if !e.Deterministic() {
			out = append(out, e.ID)
		}
	}

	return out
}
