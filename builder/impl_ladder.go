// SPDX-License-Identifier: MIT
// Package: floodpath/builder
//
// impl_ladder.go - implementation of Ladder(rungs) constructor.
//
// Canonical model:
//   • Two parallel roads: top vertices 2i, bottom vertices 2i+1, i=0..rungs-1.
//   • Rung i joins 2i-2i+1; rails join 2i-2i+2 and 2i+1-2i+3.
//
// Contract:
//   • rungs ≥ 1 (else ErrTooFewVertices).
//   • Per i emit the rung, then the top rail, then the bottom rail.
//   • LadderRungs keeps rails deterministic; only rungs may flood.
//
// Complexity: O(rungs) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/floodpath/core"
)

const (
	methodLadder = "Ladder"
	minRungs     = 1
)

// Ladder returns a Constructor for a ladder with the given number of rungs.
func Ladder(rungs int) Constructor {
	return ladder(rungs, false)
}

// LadderRungs is Ladder where only the rungs go through the flood
// assignment; rails are always deterministic. Starting at vertex 0 and
// targeting 2·rungs-1, every crossing is a gamble.
func LadderRungs(rungs int) Constructor {
	return ladder(rungs, true)
}

func ladder(rungs int, railsDry bool) Constructor {
	return func(cfg builderConfig) (int, []core.Edge, error) {
		if rungs < minRungs {
			return 0, nil, fmt.Errorf("%s: rungs=%d < min=%d: %w", methodLadder, rungs, minRungs, ErrTooFewVertices)
		}
		if cfg.stochastic() && cfg.rng == nil {
			return 0, nil, fmt.Errorf("%s: flood fraction %g: %w", methodLadder, cfg.floodFraction, ErrNeedRandSource)
		}

		rail := cfg.edge
		if railsDry {
			rail = func(u, v int) core.Edge {
				e := cfg.edge(u, v)
				e.Probability = 0
				return e
			}
		}

		edges := make([]core.Edge, 0, 3*rungs)
		for i := 0; i < rungs; i++ {
			top, bottom := 2*i, 2*i+1
			edges = append(edges, cfg.edge(top, bottom))
			if i+1 < rungs {
				edges = append(edges, rail(top, top+2), rail(bottom, bottom+2))
			}
		}

		return 2 * rungs, edges, nil
	}
}
