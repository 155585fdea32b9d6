// Package simulate defines options, sentinel errors and trace types for
// replaying a policy against sampled ground truth.
package simulate

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/floodpath/belief"
	"github.com/katalvlaran/floodpath/metrics"
)

// Sentinel errors.
var (
	// ErrModelNil indicates a nil *belief.Model.
	ErrModelNil = errors.New("simulate: model is nil")

	// ErrPolicyNil indicates a nil Policy.
	ErrPolicyNil = errors.New("simulate: policy is nil")

	// ErrBadMaxSteps indicates a step cap below one.
	ErrBadMaxSteps = errors.New("simulate: max steps must be >= 1")

	// ErrBadTrials indicates a trial count below one.
	ErrBadTrials = errors.New("simulate: trials must be >= 1")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("simulate: workers must be >= 0")

	// ErrGroundTruthSize indicates a fixed ground truth whose length is not
	// the model's edge count, that floods a deterministic edge, or that
	// clears an edge flooded with probability 1.
	ErrGroundTruthSize = errors.New("simulate: ground truth does not match the edge list")
)

// Policy is anything that maps a belief to the edge to attempt.
// valueiter.Policy satisfies it.
type Policy interface {
	Action(b belief.Belief) (edge int, ok bool)
}

// Status is the terminal state of one episode.
type Status uint8

const (
	// StatusReachedTarget: the agent stands on the target.
	StatusReachedTarget Status = iota
	// StatusStepLimitExceeded: MaxSteps attempts were made without arriving.
	StatusStepLimitExceeded
	// StatusNoAction: the policy has no entry for the current belief.
	StatusNoAction
)

// String returns the snake_case name used in logs and metrics labels.
func (s Status) String() string {
	switch s {
	case StatusReachedTarget:
		return "reached_target"
	case StatusStepLimitExceeded:
		return "step_limit_exceeded"
	case StatusNoAction:
		return "no_action"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Step is one attempted traversal.
type Step struct {
	Belief  belief.Belief // before the attempt
	Edge    int
	Flooded bool
	Cost    float64
	Next    belief.Belief // after the observation
}

// Trial is the full record of one episode.
type Trial struct {
	ID          uuid.UUID
	Index       int
	Seed        int64
	GroundTruth []bool // indexed by edge ID; deterministic edges are false
	Steps       []Step
	Status      Status
	Final       belief.Belief
	TotalCost   float64
}

// Reached reports whether the episode ended on the target.
func (t *Trial) Reached() bool { return t.Status == StatusReachedTarget }

// Options configures Simulate and Run.
type Options struct {
	Seed        int64
	MaxSteps    int // 0 means 3·|V|·(k+1)
	GroundTruth []bool
	Workers     int
	Logger      *zap.Logger
	Recorder    metrics.Recorder

	err error
}

// Option is a functional option for Simulate and Run.
type Option func(*Options)

// DefaultOptions returns seed 0 (the fixed default stream), the derived
// step cap, sampled ground truth, one worker and no-op logging/metrics.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Logger:   zap.NewNop(),
		Recorder: metrics.Nop{},
	}
}

// WithSeed sets the base seed. Zero selects a fixed default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithMaxSteps caps the attempts per episode.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxSteps, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithGroundTruth fixes the world instead of sampling it. The slice is
// indexed by edge ID and copied per trial.
func WithGroundTruth(flooded []bool) Option {
	return func(o *Options) {
		o.GroundTruth = append([]bool(nil), flooded...)
	}
}

// WithWorkers sets the number of goroutines Run uses.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the logger for per-trial events.
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

// Summary aggregates a batch of trials. Cost statistics cover reached
// trials only and are zero when none reached.
type Summary struct {
	Trials    int
	ByStatus  map[Status]int
	MeanCost  float64
	MinCost   float64
	MaxCost   float64
	MeanSteps float64
}

// ReachRate is the fraction of trials that reached the target.
func (s Summary) ReachRate() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.ByStatus[StatusReachedTarget]) / float64(s.Trials)
}
