// Package dijkstra implements Dijkstra's shortest-path algorithm on flood
// networks.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - An edge is skipped if the filter rejects it or its weight is ≥ InfEdgeThreshold.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Parallel edges are fine: each is relaxed on its own, so the cheaper one wins.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/floodpath/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all vertices of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance, +Inf if unreachable.
//   - prev: if ReturnPath, prev[v] is the ID of the edge entering v on one
//     shortest path, -1 for the source and unreachable vertices; nil otherwise.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be a vertex of g (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) ([]float64, []int, error) {
	cfg := DefaultOptions(-1)
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source < 0 {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}

	edges := g.Edges()
	for _, e := range edges {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d (%d-%d) weight=%v", ErrNegativeWeight, e.ID, e.U, e.V, e.Weight)
		}
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		edges:   edges,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the distance from src to dst and the edge IDs of one
// shortest path, in travel order. An unreachable dst yields +Inf and a nil
// path without error.
func ShortestPath(g *core.Graph, src, dst int, opts ...Option) (float64, []int, error) {
	if g != nil && !g.HasVertex(dst) {
		return 0, nil, fmt.Errorf("%w: destination %d", ErrVertexNotFound, dst)
	}
	opts = append(opts, Source(src), WithReturnPath())
	dist, prev, err := Dijkstra(g, opts...)
	if err != nil {
		return 0, nil, err
	}
	if math.IsInf(dist[dst], 1) {
		return dist[dst], nil, nil
	}

	var path []int
	for v := dst; v != src; {
		id := prev[v]
		e, err := g.Edge(id)
		if err != nil {
			return 0, nil, fmt.Errorf("dijkstra: broken predecessor chain at %d: %w", v, err)
		}
		path = append(path, id)
		v, _ = e.Other(v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return dist[dst], path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within Dijkstra.
	edges   []core.Edge // Snapshot of g's edges, indexed by ID.
	options Options     // Configuration options (Source, thresholds, etc.).
	dist    []float64   // dist[v]: current best distance from Source.
	prev    []int       // prev[v]: edge entering v on the best path.
	visited []bool      // Tracks if a vertex's distance is finalized.
	pq      nodePQ      // Min-heap of *nodeItem for lazy priority queue.
}

// init sets up initial distances and predecessors, and pushes Source=0 into the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = -1
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the vertex with the minimum distance from the
// source and relaxes its incident edges, until the heap is empty or the
// smallest distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Stale heap entry.
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge incident to u and attempts to improve distances
// to its other endpoint.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) error {
	incident, err := r.g.Incident(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get edges of %d: %w", u, err)
	}

	for _, id := range incident {
		e := r.edges[id]
		if !r.options.Filter(e) || e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		v, _ := e.Other(u)

		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict comparison: the first (lowest-ID) edge keeps ties.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = id
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   int     // vertex
	dist float64 // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
// When a shorter distance to v is found we push a new item; the outdated
// entry remains and is ignored when popped (checked via visited[v]).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
