// Package dijkstra provides single-source shortest paths over a flood network
// (core.Graph) with non-negative float weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Edge filters decide which edges exist for a query; flood probabilities
//     are otherwise ignored.
//
// Use in floodpath:
//
//	The planner brackets the expected cost of the optimal policy with two
//	deterministic shortest paths from start to target:
//
//	  optimistic  = ShortestPath(g, s, t, WithEdgeFilter(AllEdges))
//	  pessimistic = ShortestPath(g, s, t, WithEdgeFilter(DeterministicOnly))
//
//	If the optimistic distance is +Inf no world connects s and t.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist []float64, prev []int, err error)
//	func ShortestPath(g *core.Graph, src, dst int, opts ...Option) (float64, []int, error)
//
//	  - Source(int):               required for Dijkstra, the starting vertex.
//	  - WithReturnPath():          return predecessor edge IDs; otherwise prev == nil.
//	  - WithMaxDistance(float64):  explore only vertices with distance ≤ the cap.
//	  - WithInfEdgeThreshold(w):   skip any edge whose weight ≥ w.
//	  - WithEdgeFilter(f):         skip edges for which f returns false.
//
// Thread safety:
//
//   - Dijkstra takes the graph's read lock through its accessors and keeps
//     no shared state, so concurrent queries on one graph are safe.
package dijkstra
