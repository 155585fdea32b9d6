// SPDX-License-Identifier: MIT
// Package: floodpath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i-(i+1) for i=0..n-2, then the closing edge (n-1)-0.
//
// Complexity: O(n) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/floodpath/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n: two routes
// between any pair of vertices, so a single flooded edge never strands
// the agent.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (int, []core.Edge, error) {
		if n < minCycleNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if cfg.stochastic() && cfg.rng == nil {
			return 0, nil, fmt.Errorf("%s: flood fraction %g: %w", methodCycle, cfg.floodFraction, ErrNeedRandSource)
		}

		edges := make([]core.Edge, 0, n)
		for i := 0; i+1 < n; i++ {
			edges = append(edges, cfg.edge(i, i+1))
		}
		edges = append(edges, cfg.edge(n-1, 0))

		return n, edges, nil
	}
}
