// File: methods_clone.go
// Role: Deep copy of a Graph.

package core

// Clone returns a deep copy of g. Edge IDs are preserved.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		allowMulti: g.allowMulti,
		n:          g.n,
		edges:      make([]Edge, len(g.edges)),
		incident:   make([][]int, g.n),
	}
	copy(c.edges, g.edges)
	for v, ids := range g.incident {
		c.incident[v] = append([]int(nil), ids...)
	}

	return c
}
