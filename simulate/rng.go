// Package simulate - deterministic random streams for ground-truth sampling.
//
// Determinism: the same base seed yields identical worlds on every platform
// and for every worker count, because each trial's seed depends only on the
// base seed and the trial index.
//
// Concurrency: *rand.Rand is not goroutine-safe; every trial owns its own.
package simulate

import "math/rand"

// defaultSeed replaces a zero seed so the zero value stays reproducible.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 means defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// trialSeed mixes the base seed with a trial index (SplitMix64 finalizer),
// so neighbouring trials get uncorrelated streams.
//
// Complexity: O(1).
func trialSeed(base int64, trial uint64) int64 {
	if base == 0 {
		base = defaultSeed
	}
	x := uint64(base) ^ (trial + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		return defaultSeed
	}
	return int64(x)
}
