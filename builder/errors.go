// SPDX-License-Identifier: MIT
// Package: floodpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices, then ErrInvalidProbability, then ErrNeedRandSource,
//   then ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, rungs)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or flood
// assignment requires a non-nil *rand.Rand (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the produced description could not be
// materialised as a core.Graph.
var ErrConstructFailed = errors.New("builder: construction failed")
