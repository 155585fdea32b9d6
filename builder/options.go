// SPDX-License-Identifier: MIT
// Package: floodpath/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithFlooding marks a share of edges as uncertain and draws their flood
// probability from fn. fraction 1 makes every edge uncertain; values
// strictly between 0 and 1 require an RNG (WithSeed). A nil fn keeps the
// current generator. Panics if fraction is outside [0,1].
func WithFlooding(fraction float64, fn ProbabilityFn) BuilderOption {
	if fraction < 0 || fraction > 1 {
		panic(fmt.Sprintf("builder: WithFlooding(fraction=%g) outside [0,1]", fraction))
	}
	return func(c *builderConfig) {
		c.floodFraction = fraction
		if fn != nil {
			c.floodFn = fn
		}
	}
}
