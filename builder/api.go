// SPDX-License-Identifier: MIT
// Package: floodpath/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, con). Resolves cfg, runs con, then core.FromEdges.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed ⇒ identical networks, edge IDs included.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/floodpath/core"
)

// Constructor produces a flood network description: a vertex count and an
// ordered edge list. Edge order fixes edge IDs in the built graph.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Draw weights and flood probabilities only through cfg.edge.
//   - Preserve determinism for the same config.
type Constructor func(cfg builderConfig) (n int, edges []core.Edge, err error)

// BuildGraph resolves the builder configuration from bopts, runs con and
// materialises the result as a core.Graph with graph options gopts.
// Constructor errors are wrapped with "BuildGraph: %w".
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Constructor: see each factory.
//   - Materialising: O(V + E·deg).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, con Constructor) (*core.Graph, error) {
	if con == nil {
		return nil, fmt.Errorf("BuildGraph: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	n, edges, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	g, err := core.FromEdges(n, edges, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Vertices are 0..n-1. Each factory emits edges in a stable, documented
// order; every edge passes through cfg.edge, which draws its weight and
// decides whether it may flood.

// Path builds a simple path P_n (n ≥ 2): 0-1-...-(n-1).
// Complexity: O(n).
//func Path(n int) Constructor

// Cycle builds a simple cycle C_n (n ≥ 3).
// Complexity: O(n).
//func Cycle(n int) Constructor

// Grid builds an R×C 4-neighborhood grid; vertex r·C+c is cell (r,c).
// Complexity: O(R·C).
//func Grid(rows, cols int) Constructor

// Ladder builds two parallel roads joined by rungs (rungs ≥ 1).
// Complexity: O(rungs).
//func Ladder(rungs int) Constructor

// RandomSparse builds an Erdős–Rényi-like network; requires a seeded rng
// when 0 < p < 1.
// Complexity: O(n²) pair checks.
//func RandomSparse(n int, p float64) Constructor
