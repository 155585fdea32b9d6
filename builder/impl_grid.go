// SPDX-License-Identifier: MIT
// Package: floodpath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Vertex r·cols+c is cell (r,c) (row-major).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1, rows·cols ≥ 2 (else ErrTooFewVertices).
//   • For each (r,c) in row-major order emit Right then Bottom if present.
//
// Complexity:
//   • Time: O(rows·cols).
//   • Space: O(rows·cols) for the edge list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/floodpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (int, []core.Edge, error) {
		if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
			return 0, nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d, at least 2 cells): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if cfg.stochastic() && cfg.rng == nil {
			return 0, nil, fmt.Errorf("%s: flood fraction %g: %w", methodGrid, cfg.floodFraction, ErrNeedRandSource)
		}

		id := func(r, c int) int { return r*cols + c }
		edges := make([]core.Edge, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					edges = append(edges, cfg.edge(id(r, c), id(r, c+1)))
				}
				if r+1 < rows {
					edges = append(edges, cfg.edge(id(r, c), id(r+1, c)))
				}
			}
		}

		return rows * cols, edges, nil
	}
}
