// SPDX-License-Identifier: MIT
// Package: floodpath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator over unordered pairs {i,j}, i<j: include
//     each pair independently with probability p.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(E) for the edge list.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (j>i). The pair draw
//     precedes that edge's attribute draws.

package builder

import (
	"fmt"

	"github.com/katalvlaran/floodpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like
// network over n vertices with independent pair probability p. The result
// may be disconnected; the planner reports that as an unreachable target.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (int, []core.Edge, error) {
		if n < minRandomSparseVertices {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return 0, nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		needRNG := (p > probMin && p < probMax) || cfg.stochastic()
		if needRNG && cfg.rng == nil {
			return 0, nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		var edges []core.Edge
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == probMax
				if p > probMin && p < probMax {
					include = cfg.rng.Float64() < p
				}
				if include {
					edges = append(edges, cfg.edge(i, j))
				}
			}
		}

		return n, edges, nil
	}
}
