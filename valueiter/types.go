// Package valueiter defines configuration options, sentinel errors and
// result types for value iteration over a reachable belief set.
package valueiter

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/floodpath/belief"
	"github.com/katalvlaran/floodpath/metrics"
)

// Sentinel errors returned by Solve.
var (
	// ErrModelNil indicates that a nil *belief.Model was passed.
	ErrModelNil = errors.New("valueiter: model is nil")

	// ErrNoBeliefs indicates an empty belief set.
	ErrNoBeliefs = errors.New("valueiter: belief set is empty")

	// ErrDuplicateBelief indicates the same belief appears twice in the set.
	ErrDuplicateBelief = errors.New("valueiter: duplicate belief")

	// ErrUnknownBelief indicates a transition leads outside the belief set,
	// i.e. the set is not closed under the model's transitions.
	ErrUnknownBelief = errors.New("valueiter: successor outside the belief set")

	// ErrBadDiscount indicates a discount outside (0, 1].
	ErrBadDiscount = errors.New("valueiter: discount must be in (0, 1]")

	// ErrBadEpsilon indicates a non-positive convergence threshold.
	ErrBadEpsilon = errors.New("valueiter: epsilon must be positive")

	// ErrBadMaxIterations indicates an iteration cap below one.
	ErrBadMaxIterations = errors.New("valueiter: max iterations must be >= 1")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("valueiter: workers must be >= 0")
)

// Defaults match the planner's documented configuration.
const (
	DefaultDiscount      = 0.95
	DefaultEpsilon       = 1e-6
	DefaultMaxIterations = 500
)

// Options configures Solve.
//
// Discount      – γ in (0, 1]; future cost is scaled by γ per attempt.
// Epsilon       – stop when a full sweep changes no value by ε or more.
// MaxIterations – sweep cap; hitting it returns a best-effort result.
// Workers       – ≤ 1 runs in-place (Gauss-Seidel) sweeps; > 1 runs
//
//	synchronous (Jacobi) sweeps split across that many goroutines.
type Options struct {
	Ctx           context.Context
	Discount      float64
	Epsilon       float64
	MaxIterations int
	Workers       int
	Logger        *zap.Logger
	Recorder      metrics.Recorder

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns Options initialized with the package defaults:
//   - Discount:      0.95
//   - Epsilon:       1e-6
//   - MaxIterations: 500
//   - Workers:       1 (Gauss-Seidel)
//   - Logger:        zap.NewNop()
//   - Recorder:      metrics.Nop{}
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Discount:      DefaultDiscount,
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		Workers:       1,
		Logger:        zap.NewNop(),
		Recorder:      metrics.Nop{},
	}
}

// WithContext sets a custom context; it is checked once per sweep.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDiscount sets γ. Values outside (0, 1] surface as ErrBadDiscount.
func WithDiscount(gamma float64) Option {
	return func(o *Options) {
		if !(gamma > 0 && gamma <= 1) {
			o.err = fmt.Errorf("%w: got %v", ErrBadDiscount, gamma)
			return
		}
		o.Discount = gamma
	}
}

// WithEpsilon sets the convergence threshold. Non-positive values surface
// as ErrBadEpsilon.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) {
			o.err = fmt.Errorf("%w: got %v", ErrBadEpsilon, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithMaxIterations sets the sweep cap. Values below one surface as
// ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxIterations, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithWorkers selects the sweep mode; see Options.Workers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the logger for sweep and summary events.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder sets the metrics sink.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// Policy maps a belief to the edge ID to attempt next. It is defined only
// for non-terminal beliefs with a route to the target.
type Policy map[belief.Belief]int

// Action returns the chosen edge for b; ok is false when b has no entry.
func (p Policy) Action(b belief.Belief) (edge int, ok bool) {
	edge, ok = p[b]
	return edge, ok
}

// Result is the output of Solve. It is read-only once returned and may be
// shared by any number of simulations.
//
// Values      – V(b) for every belief of the input set. Terminal beliefs
//
//	are 0. Beliefs without a route to the target hold the cost of
//	wandering under γ < 1 and 0 under γ = 1; Value reports them
//	as absent either way.
//
// Policy      – argmin action per live non-terminal belief.
// Iterations  – sweeps performed.
// Converged   – true iff the last sweep's delta was below ε.
// Delta       – the last sweep's max absolute change.
// History     – delta of every sweep, in order.
// Live        – beliefs with a route to the target (terminals included).
type Result struct {
	Values     map[belief.Belief]float64
	Policy     Policy
	Iterations int
	Converged  bool
	Delta      float64
	History    []float64
	Live       int

	target int
}

// Value returns the cost-to-go of b. ok is false when b is outside the set
// or has no route to the target, so callers never read a placeholder.
func (r *Result) Value(b belief.Belief) (v float64, ok bool) {
	v, in := r.Values[b]
	if !in {
		return 0, false
	}
	if b.Position() == r.target {
		return 0, true
	}
	if _, has := r.Policy[b]; !has {
		return 0, false
	}

	return v, true
}
