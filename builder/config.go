// SPDX-License-Identifier: MIT
// Package: floodpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng           = nil                       (pure/deterministic unless seeded)
//   • weightFn      = DefaultWeightFn           (every edge weighs 1)
//   • floodFraction = 0                         (every edge deterministic)
//   • floodFn       = ConstantProbabilityFn(0.5)
//
// Draw order per edge (fixed, part of the determinism contract):
//   weight, then the "may flood" draw (only when 0 < floodFraction < 1),
//   then the flood probability (only for uncertain edges).

package builder

import (
	"math/rand"

	"github.com/katalvlaran/floodpath/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Share of edges that may flood, in [0,1].
	floodFraction float64
	// Flood probability generator for uncertain edges.
	floodFn ProbabilityFn
}

// defaultFloodProbability is used for uncertain edges unless WithFlooding
// supplies a generator.
const defaultFloodProbability = 0.5

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		floodFn:  ConstantProbabilityFn(defaultFloodProbability),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// stochastic reports whether the flood assignment needs an RNG.
func (c builderConfig) stochastic() bool {
	return c.floodFraction > 0 && c.floodFraction < 1
}

// edge draws the attributes of edge u-v following the documented draw order.
func (c builderConfig) edge(u, v int) core.Edge {
	e := core.Edge{U: u, V: v, Weight: c.weightFn(c.rng)}

	uncertain := c.floodFraction >= 1
	if c.stochastic() {
		uncertain = c.rng.Float64() < c.floodFraction
	}
	if uncertain {
		e.Probability = c.floodFn(c.rng)
	}

	return e
}
