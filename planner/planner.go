package planner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/floodpath/belief"
	"github.com/katalvlaran/floodpath/bfs"
	"github.com/katalvlaran/floodpath/core"
	"github.com/katalvlaran/floodpath/dijkstra"
	"github.com/katalvlaran/floodpath/metrics"
	"github.com/katalvlaran/floodpath/valueiter"
)

var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("planner: graph is nil")

	// ErrTargetUnreachable indicates no route joins start and target even
	// with every uncertain edge clear. Returned only under
	// WithRequireReachable.
	ErrTargetUnreachable = errors.New("planner: target unreachable")

	// ErrBadMaxBeliefs indicates a negative belief cap.
	ErrBadMaxBeliefs = errors.New("planner: max beliefs must be >= 0")
)

// Bounds brackets the expected cost with deterministic shortest paths.
type Bounds struct {
	Optimistic  float64
	Pessimistic float64
}

// Solution is the output of Plan.
type Solution struct {
	RunID   uuid.UUID
	Model   *belief.Model
	Beliefs []belief.Belief // reachable set in exploration order
	Result  *valueiter.Result
	Bounds  Bounds
}

// ExpectedCost returns V(start). ok is false when the start belief has no
// route to the target under any realization the model can observe.
func (s *Solution) ExpectedCost() (float64, bool) {
	return s.Result.Value(s.Model.Start())
}

// Policy returns the solved policy.
func (s *Solution) Policy() valueiter.Policy { return s.Result.Policy }

// Reachable reports whether some realization of the floods lets start
// reach target, i.e. whether the optimistic bound is finite.
func (s *Solution) Reachable() bool { return !math.IsInf(s.Bounds.Optimistic, 1) }

// Options configures Plan.
type Options struct {
	Logger     *zap.Logger
	Recorder   metrics.Recorder
	MaxBeliefs int // 0 means no cap
	Solver     []valueiter.Option

	// RequireReachable turns an unreachable target into ErrTargetUnreachable
	// instead of a solution without a policy.
	RequireReachable bool

	err error
}

// Option is a functional option for Plan.
type Option func(*Options)

// WithLogger sets the logger passed down to every stage.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder sets the metrics sink passed down to every stage.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// WithMaxBeliefs caps exploration; see bfs.WithMaxBeliefs.
func WithMaxBeliefs(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxBeliefs, n)
			return
		}
		o.MaxBeliefs = n
	}
}

// WithRequireReachable makes Plan fail fast with ErrTargetUnreachable when
// no route joins start and target even with every uncertain edge clear.
func WithRequireReachable() Option {
	return func(o *Options) {
		o.RequireReachable = true
	}
}

// WithSolverOptions appends options for valueiter.Solve. Context, logger
// and recorder are supplied by Plan and may be overridden here.
func WithSolverOptions(opts ...valueiter.Option) Option {
	return func(o *Options) {
		o.Solver = append(o.Solver, opts...)
	}
}

// Plan solves the flood network g for the given start and target.
func Plan(ctx context.Context, g *core.Graph, start, target int, opts ...Option) (*Solution, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := Options{Logger: zap.NewNop(), Recorder: metrics.Nop{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	model, err := belief.NewModel(g, start, target)
	if err != nil {
		return nil, err
	}

	sol := &Solution{RunID: uuid.New(), Model: model}
	log := cfg.Logger.With(zap.String("run_id", sol.RunID.String()))
	started := time.Now()

	if sol.Bounds, err = bounds(g, start, target); err != nil {
		return nil, err
	}
	if !sol.Reachable() {
		if cfg.RequireReachable {
			return nil, fmt.Errorf("%w: %d -> %d", ErrTargetUnreachable, start, target)
		}
		log.Warn("target unreachable under every flood realization",
			zap.Int("start", start), zap.Int("target", target))
	}

	explored, err := bfs.BFS(model, bfs.WithContext(ctx), bfs.WithMaxBeliefs(cfg.MaxBeliefs))
	if err != nil {
		return nil, fmt.Errorf("planner: explore: %w", err)
	}
	sol.Beliefs = explored.Beliefs()
	cfg.Recorder.BeliefsExplored(len(sol.Beliefs))
	log.Debug("beliefs explored",
		zap.Int("beliefs", len(sol.Beliefs)),
		zap.Int("terminals", explored.Terminals),
		zap.Int("uncertain_edges", len(model.Uncertain())),
	)

	solverOpts := append([]valueiter.Option{
		valueiter.WithContext(ctx),
		valueiter.WithLogger(log),
		valueiter.WithRecorder(cfg.Recorder),
	}, cfg.Solver...)
	if sol.Result, err = valueiter.Solve(model, sol.Beliefs, solverOpts...); err != nil {
		return nil, fmt.Errorf("planner: solve: %w", err)
	}

	v, ok := sol.ExpectedCost()
	log.Info("plan ready",
		zap.Float64("expected_cost", v),
		zap.Bool("start_solvable", ok),
		zap.Float64("optimistic", sol.Bounds.Optimistic),
		zap.Float64("pessimistic", sol.Bounds.Pessimistic),
		zap.Duration("elapsed", time.Since(started)),
	)

	return sol, nil
}

// bounds runs the two deterministic shortest-path queries.
func bounds(g *core.Graph, start, target int) (Bounds, error) {
	canClear := dijkstra.WithEdgeFilter(func(e core.Edge) bool { return e.Probability < 1 })
	opt, _, err := dijkstra.ShortestPath(g, start, target, canClear)
	if err != nil {
		return Bounds{}, fmt.Errorf("planner: optimistic bound: %w", err)
	}
	pes, _, err := dijkstra.ShortestPath(g, start, target, dijkstra.WithEdgeFilter(dijkstra.DeterministicOnly))
	if err != nil {
		return Bounds{}, fmt.Errorf("planner: pessimistic bound: %w", err)
	}

	return Bounds{Optimistic: opt, Pessimistic: pes}, nil
}
