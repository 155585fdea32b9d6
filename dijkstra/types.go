// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on flood networks.
//
// Distances are float64 edge-weight sums; unreachable vertices are +Inf.
// An edge filter selects which edges exist for a query, which is how the
// planner asks "what if every uncertain edge were clear" (optimistic bound)
// and "what if every uncertain edge were flooded" (pessimistic bound).
//
// Options:
//
//	– Source:           starting vertex (required, must be in range).
//	– ReturnPath:       if true, return the predecessor-edge slice.
//	– MaxDistance:      optional cap on distances to explore.
//	– InfEdgeThreshold: edges with weight >= this threshold are impassable.
//	– EdgeFilter:       edges for which the filter returns false are skipped.
//
// Errors (sentinel):
//
//	– ErrNoSource        if Source was never set.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or destination is out of range.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panics in the option).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panics in the option).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/floodpath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was supplied.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a vertex is outside the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// EdgeFilter reports whether an edge may be traversed in a query.
type EdgeFilter func(e core.Edge) bool

// AllEdges admits every edge: uncertain edges are assumed clear.
func AllEdges(core.Edge) bool { return true }

// DeterministicOnly admits only edges that can never flood: every uncertain
// edge is assumed flooded.
func DeterministicOnly(e core.Edge) bool { return e.Deterministic() }

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex (required; -1 means unset).
// ReturnPath       – if true, return the predecessor-edge slice; otherwise nil.
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
//
// Filter           – edge admission predicate; default AllEdges.
type Options struct {
	Source           int        // The source vertex
	ReturnPath       bool       // Whether to return the predecessor slice
	MaxDistance      float64    // Maximum distance to explore
	InfEdgeThreshold float64    // Weight threshold above which edges are non-traversable
	Filter           EdgeFilter // Which edges exist for this query
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex. Must be called.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
// If not set, the predecessor slice is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Zero or negative values panic with
// ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithEdgeFilter restricts the query to edges accepted by f. A nil f is
// ignored.
func WithEdgeFilter(f EdgeFilter) Option {
	return func(o *Options) {
		if f != nil {
			o.Filter = f
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults for
// the given source vertex.
//
// Defaults:
//   - Source:           <as passed> (validated in Dijkstra).
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf.
//   - InfEdgeThreshold: +Inf.
//   - Filter:           AllEdges.
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Filter:           AllEdges,
	}
}
