// Package simulate replays a policy in a hidden world: the flood status of
// every uncertain edge is sampled once per episode, then the agent follows
// the policy, paying each attempted edge's weight and updating its belief
// through belief.Model.Observe, the same rule the solver planned with.
package simulate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/floodpath/belief"
)

// Simulate runs one episode. The world is sampled from Options.Seed unless
// WithGroundTruth fixes it; the same seed always yields the same trace.
//
// The episode ends with StatusReachedTarget, StatusNoAction when the policy
// has no entry for the current belief, or StatusStepLimitExceeded after
// MaxSteps attempts. A policy entry naming an edge that cannot be attempted
// returns belief.ErrIllegalAction.
func Simulate(m *belief.Model, policy Policy, opts ...Option) (*Trial, error) {
	cfg, err := resolve(m, policy, opts)
	if err != nil {
		return nil, err
	}

	return episode(m, policy, cfg, 0, cfg.Seed)
}

// Run executes trials independent episodes on up to Options.Workers
// goroutines. Trial i is seeded from the base seed and i alone, so the
// returned slice (ordered by index) does not depend on the worker count.
func Run(ctx context.Context, m *belief.Model, policy Policy, trials int, opts ...Option) ([]*Trial, error) {
	cfg, err := resolve(m, policy, opts)
	if err != nil {
		return nil, err
	}
	if trials < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadTrials, trials)
	}

	out := make([]*Trial, trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for i := 0; i < trials; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t, err := episode(m, policy, cfg, i, trialSeed(cfg.Seed, uint64(i)))
			if err != nil {
				return fmt.Errorf("simulate: trial %d: %w", i, err)
			}
			out[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// resolve applies options and validates inputs shared by Simulate and Run.
func resolve(m *belief.Model, policy Policy, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	if m == nil {
		return cfg, ErrModelNil
	}
	if policy == nil {
		return cfg, ErrPolicyNil
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = DefaultMaxSteps(m)
	}
	if cfg.GroundTruth != nil {
		if err := checkGroundTruth(m, cfg.GroundTruth); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// DefaultMaxSteps is 3·|V|·(k+1) for k uncertain edges: generous enough for
// any solvable instance to reach the target.
func DefaultMaxSteps(m *belief.Model) int {
	return 3 * m.Vertices() * (len(m.Uncertain()) + 1)
}

func checkGroundTruth(m *belief.Model, truth []bool) error {
	edges := m.Edges()
	if len(truth) != len(edges) {
		return fmt.Errorf("%w: got %d entries for %d edges", ErrGroundTruthSize, len(truth), len(edges))
	}
	for _, e := range edges {
		if truth[e.ID] && e.Deterministic() {
			return fmt.Errorf("%w: deterministic edge %d marked flooded", ErrGroundTruthSize, e.ID)
		}
		if !truth[e.ID] && e.Probability >= 1 {
			return fmt.Errorf("%w: always-flooded edge %d marked clear", ErrGroundTruthSize, e.ID)
		}
	}

	return nil
}

// sampleGroundTruth draws one Float64 per uncertain edge, in ascending edge
// ID order; an edge is flooded when the draw falls below its probability.
func sampleGroundTruth(m *belief.Model, seed int64) []bool {
	rng := rngFromSeed(seed)
	truth := make([]bool, len(m.Edges()))
	for _, id := range m.Uncertain() {
		e, _ := m.Edge(id)
		truth[id] = rng.Float64() < e.Probability
	}

	return truth
}

// episode runs a single trial to completion.
func episode(m *belief.Model, policy Policy, cfg Options, index int, seed int64) (*Trial, error) {
	truth := cfg.GroundTruth
	if truth == nil {
		truth = sampleGroundTruth(m, seed)
	} else {
		truth = append([]bool(nil), truth...)
	}

	t := &Trial{
		ID:          uuid.New(),
		Index:       index,
		Seed:        seed,
		GroundTruth: truth,
	}
	b := m.Start()
	for {
		if m.IsTerminal(b) {
			t.Status = StatusReachedTarget
			break
		}
		if len(t.Steps) >= cfg.MaxSteps {
			t.Status = StatusStepLimitExceeded
			break
		}
		a, ok := policy.Action(b)
		if !ok {
			t.Status = StatusNoAction
			break
		}
		e, ok := m.Edge(a)
		if !ok {
			return nil, fmt.Errorf("%w: policy names edge %d at %v", belief.ErrIllegalAction, a, b)
		}
		next, err := m.Observe(b, a, truth[a])
		if err != nil {
			return nil, fmt.Errorf("at %v: %w", b, err)
		}
		t.TotalCost += e.Weight
		t.Steps = append(t.Steps, Step{Belief: b, Edge: a, Flooded: truth[a], Cost: e.Weight, Next: next})
		b = next
	}
	t.Final = b

	cfg.Recorder.Trial(t.Status.String(), len(t.Steps), t.TotalCost)
	cfg.Logger.Debug("trial finished",
		zap.Stringer("trial_id", t.ID),
		zap.Int("index", index),
		zap.Int64("seed", seed),
		zap.Stringer("status", t.Status),
		zap.Int("steps", len(t.Steps)),
		zap.Float64("cost", t.TotalCost),
	)

	return t, nil
}

// Summarize aggregates trials; nil entries are skipped.
func Summarize(trials []*Trial) Summary {
	s := Summary{ByStatus: make(map[Status]int)}
	var reached, steps int
	for _, t := range trials {
		if t == nil {
			continue
		}
		s.Trials++
		s.ByStatus[t.Status]++
		steps += len(t.Steps)
		if !t.Reached() {
			continue
		}
		if reached == 0 || t.TotalCost < s.MinCost {
			s.MinCost = t.TotalCost
		}
		if reached == 0 || t.TotalCost > s.MaxCost {
			s.MaxCost = t.TotalCost
		}
		s.MeanCost += t.TotalCost
		reached++
	}
	if reached > 0 {
		s.MeanCost /= float64(reached)
	}
	if s.Trials > 0 {
		s.MeanSteps = float64(steps) / float64(s.Trials)
	}

	return s
}
