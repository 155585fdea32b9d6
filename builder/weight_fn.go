// Package builder provides internal helper functions and types
// for configuring edge-weight and flood-probability distributions.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// If rng is nil, yields DefaultEdgeWeight to maintain deterministic fallback.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntegerWeightFn returns a WeightFn sampling integers uniformly in
// [min, max]. Handy for readable generated configs. Panics if min < 0 or
// max < min. If rng is nil, yields min.
func IntegerWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntegerWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// ProbabilityFn produces a flood probability in [0,1].
type ProbabilityFn func(rng *rand.Rand) float64

// ConstantProbabilityFn always returns p. Panics if p is outside [0,1].
func ConstantProbabilityFn(p float64) ProbabilityFn {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("ConstantProbabilityFn: p must be in [0,1], got %g", p))
	}
	return func(_ *rand.Rand) float64 {
		return p
	}
}

// UniformProbabilityFn samples uniformly in [min, max) ⊆ [0,1]. Panics on
// an empty or out-of-range interval. If rng is nil, yields min.
func UniformProbabilityFn(min, max float64) ProbabilityFn {
	if min < 0 || max > 1 || max < min {
		panic(fmt.Sprintf("UniformProbabilityFn: require 0 ≤ min ≤ max ≤ 1, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}
