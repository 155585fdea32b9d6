// Package core provides the thread-safe, in-memory flood network consumed by
// the belief model, the shortest-path bounds and the generators.
//
// The Graph G = (V,E) has a fixed vertex set V = {0, ..., n-1} and an
// append-only catalog of undirected edges. Every edge carries:
//
//   - Weight      – the cost paid for each traversal attempt (>= 0, finite)
//   - Probability – the independent chance that the edge is flooded, in [0, 1]
//
// Edges with Probability == 0 are deterministic; all others are uncertain and
// are indexed, in ascending edge ID order, by knowledge vectors in package belief.
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(u,v) → ErrMultiEdgeNotAllowed.
//
// Self-loops are always rejected: an agent attempting a loop would pay the
// weight and learn nothing it could act on.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int, opts ...GraphOption) (*Graph, error)            // O(n)
//	FromEdges(n int, edges []Edge, opts ...GraphOption) (*Graph, error)
//	AddEdge(u, v int, weight, p float64) (edgeID int, err error)    // O(1)†
//
//	// Query
//	Edge(id int) (Edge, error)             // O(1)
//	Edges() []Edge                         // O(E), ascending ID
//	UncertainEdges() []int                 // O(E), ascending ID
//	Incident(v int) ([]int, error)         // O(deg v), ascending ID
//	Neighbors(v int) ([]int, error)        // O(d·log d), unique, sorted
//	VertexCount() int / EdgeCount() int    // O(1)
//	Stats() GraphStats                     // O(E)
//	Clone() *Graph                         // O(V+E)
//
// † O(deg u) when multi-edges are disabled (duplicate check).
//
// Errors:
//
//	ErrNoVertices          – n < 1
//	ErrVertexOutOfRange    – vertex outside [0, n)
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – negative, NaN or infinite weight
//	ErrBadProbability      – probability outside [0, 1]
//	ErrLoopNotAllowed      – u == v
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
