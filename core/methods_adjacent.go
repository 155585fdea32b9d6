// File: methods_adjacent.go
// Role: Neighborhood APIs (Incident, Neighbors).
// Determinism:
//   - Incident() returns edge IDs ascending.
//   - Neighbors() returns unique vertex ids ascending.

package core

import (
	"fmt"
	"sort"
)

// Incident returns the IDs of all edges touching v, ascending.
// The returned slice is a copy and may be modified by the caller.
//
// Errors:
//   - ErrVertexOutOfRange: if v is not in [0, n).
//
// Complexity: O(deg(v)).
func (g *Graph) Incident(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, fmt.Errorf("%w: v=%d n=%d", ErrVertexOutOfRange, v, g.n)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.incident[v]))
	copy(out, g.incident[v])

	return out, nil
}

// Neighbors returns the unique set of vertices adjacent to v, ascending.
//
// Complexity: O(d log d) where d = deg(v).
func (g *Graph) Neighbors(v int) ([]int, error) {
	ids, err := g.Incident(v)
	if err != nil {
		return nil, err
	}

	g.mu.RLock()
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, eid := range ids {
		w, _ := g.edges[eid].Other(v)
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	g.mu.RUnlock()

	sort.Ints(out)

	return out, nil
}
