// Package core defines the flood network: a fixed set of integer vertices
// 0..n-1 joined by undirected edges that carry a traversal weight and an
// independent flood probability.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrNoVertices          - graph constructed with n < 1.
//	ErrVertexOutOfRange    - vertex id outside [0, n).
//	ErrEdgeNotFound        - requested edge id does not exist.
//	ErrBadWeight           - weight is negative, NaN or infinite.
//	ErrBadProbability      - flood probability outside [0, 1] or NaN.
//	ErrLoopNotAllowed      - self-loop u == v.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNoVertices indicates a graph was requested with fewer than one vertex.
	ErrNoVertices = errors.New("core: graph needs at least one vertex")

	// ErrVertexOutOfRange indicates an operation referenced a vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrBadProbability indicates a flood probability outside [0, 1].
	ErrBadProbability = errors.New("core: flood probability out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected road segment between U and V.
//
// ID is the insertion index of the edge and never changes. Probability is the
// chance that the segment is flooded; it is independent of every other edge
// and of time. An edge with Probability == 0 is deterministic.
type Edge struct {
	// ID uniquely identifies this edge in the Graph (0, 1, 2, ...).
	ID int

	// U and V are the endpoints. Order carries no meaning.
	U, V int

	// Weight is the cost paid for every traversal attempt.
	Weight float64

	// Probability is the flood probability in [0, 1].
	Probability float64
}

// Deterministic reports whether the edge can never be flooded.
func (e Edge) Deterministic() bool { return e.Probability == 0 }

// Incident reports whether v is one of the endpoints.
func (e Edge) Incident(v int) bool { return e.U == v || e.V == v }

// Other returns the endpoint opposite to v. ok is false when v is not an endpoint.
func (e Edge) Other(v int) (other int, ok bool) {
	switch v {
	case e.U:
		return e.V, true
	case e.V:
		return e.U, true
	default:
		return 0, false
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
// Each parallel edge keeps its own ID, weight and probability.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the in-memory flood network.
//
// The vertex set is fixed at construction. Edges are append-only, so an edge
// ID doubles as an index into the catalog. mu guards edges and incidence.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowMulti bool

	// Storage
	n        int     // vertex count
	edges    []Edge  // edge ID -> Edge
	incident [][]int // vertex -> incident edge IDs, ascending
}

// NewGraph creates a Graph over vertices 0..n-1 with no edges.
// By default, parallel edges are rejected.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 1 {
		return nil, ErrNoVertices
	}
	g := &Graph{
		n:        n,
		incident: make([][]int, n),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	Vertices      int
	Edges         int
	Uncertain     int
	Deterministic int
	AllowsMulti   bool
}
