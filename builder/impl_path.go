// SPDX-License-Identifier: MIT
// Package: floodpath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1)-i for i=1..n-1 in increasing order; edge i-1 joins i-1 and i.
//   - Flood assignment needs an RNG when the flood fraction is in (0,1).
//
// Complexity:
//   - Time: O(n).
//   - Space: O(n) for the edge list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/floodpath/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(cfg builderConfig) (int, []core.Edge, error) {
		if n < minPathNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if cfg.stochastic() && cfg.rng == nil {
			return 0, nil, fmt.Errorf("%s: flood fraction %g: %w", methodPath, cfg.floodFraction, ErrNeedRandSource)
		}

		edges := make([]core.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, cfg.edge(i-1, i))
		}

		return n, edges, nil
	}
}
