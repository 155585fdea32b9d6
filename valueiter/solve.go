// Package valueiter computes the minimum expected cost-to-go and an optimal
// policy over a reachable belief set by repeated Bellman backups:
//
//	Q(b,a) = Σ_o p_o · (cost_o + γ · V(next_o))
//	V(b)   = min_a Q(b,a)
//
// Notes on implementation choices:
//
//   - Transitions are compiled once into index form before sweeping, so a
//     sweep never touches the model or hashes a belief.
//   - Beliefs with no route to a terminal belief are found by a backward
//     walk from the terminals. They never get a policy entry. Under γ < 1
//     they are backed up like any other belief with a legal action; under
//     γ = 1 their cost grows without bound, so they stay at V = 0.
//   - Ties go to the first action, in LegalActions order, that reaches the
//     strict minimum.
//   - Workers ≤ 1: in-place (Gauss-Seidel) sweeps in belief-set order.
//     Workers > 1: synchronous (Jacobi) sweeps; every worker reads the
//     previous sweep and writes its own slice of the next.
package valueiter

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/floodpath/belief"
)

// outcome is one compiled transition: probability, cost and successor index.
type outcome struct {
	p    float64
	cost float64
	next int
}

// action is one compiled legal action.
type action struct {
	edge int
	outs []outcome
}

// node is one compiled belief.
type node struct {
	b        belief.Belief
	terminal bool
	live     bool
	actions  []action
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	opts   Options
	nodes  []node
	values []float64
	policy []int // chosen edge per node, -1 if none
	log    *zap.Logger
}

// Solve runs value iteration over beliefs, which must be closed under the
// model's transitions (bfs.BFS output is). The sweep order is the order of
// beliefs.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrModelNil).
//  2. Options must be valid (ErrBadDiscount, ErrBadEpsilon, ...).
//  3. beliefs must be non-empty (ErrNoBeliefs) and free of duplicates
//     (ErrDuplicateBelief).
//  4. Every successor must be in beliefs (ErrUnknownBelief).
//
// Exhausting MaxIterations is not an error: the best result so far is
// returned with Converged == false.
func Solve(m *belief.Model, beliefs []belief.Belief, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrModelNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if len(beliefs) == 0 {
		return nil, ErrNoBeliefs
	}

	nodes, err := compile(m, beliefs)
	if err != nil {
		return nil, err
	}
	live := markLive(nodes)

	r := &runner{
		opts:   cfg,
		nodes:  nodes,
		values: make([]float64, len(nodes)),
		policy: make([]int, len(nodes)),
		log:    cfg.Logger.With(zap.Int("beliefs", len(nodes)), zap.Int("live", live)),
	}
	for i := range r.policy {
		r.policy[i] = -1
	}

	res, err := r.run()
	if err != nil {
		return nil, err
	}
	res.Live = live
	res.target = m.Target()

	return res, nil
}

// compile indexes beliefs and resolves every legal transition to indices.
func compile(m *belief.Model, beliefs []belief.Belief) ([]node, error) {
	index := make(map[belief.Belief]int, len(beliefs))
	for i, b := range beliefs {
		if _, dup := index[b]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateBelief, b)
		}
		index[b] = i
	}

	nodes := make([]node, len(beliefs))
	for i, b := range beliefs {
		nodes[i] = node{b: b, terminal: m.IsTerminal(b)}
		if nodes[i].terminal {
			continue
		}
		for _, a := range m.LegalActions(b) {
			trans, err := m.Transitions(b, a)
			if err != nil {
				return nil, fmt.Errorf("valueiter: %v action %d: %w", b, a, err)
			}
			if len(trans) == 0 {
				continue
			}
			act := action{edge: a, outs: make([]outcome, len(trans))}
			for k, t := range trans {
				j, ok := index[t.Next]
				if !ok {
					return nil, fmt.Errorf("%w: %v -%d-> %v", ErrUnknownBelief, b, a, t.Next)
				}
				act.outs[k] = outcome{p: t.Probability, cost: t.Cost, next: j}
			}
			nodes[i].actions = append(nodes[i].actions, act)
		}
	}

	return nodes, nil
}

// markLive flags every node from which some terminal node is reachable
// through positive-probability outcomes, and returns how many there are.
func markLive(nodes []node) int {
	preds := make([][]int, len(nodes))
	for i := range nodes {
		for _, a := range nodes[i].actions {
			for _, o := range a.outs {
				preds[o.next] = append(preds[o.next], i)
			}
		}
	}

	var queue []int
	for i := range nodes {
		if nodes[i].terminal {
			nodes[i].live = true
			queue = append(queue, i)
		}
	}
	count := len(queue)
	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]
		for _, i := range preds[j] {
			if !nodes[i].live {
				nodes[i].live = true
				count++
				queue = append(queue, i)
			}
		}
	}

	return count
}

// run performs sweeps until convergence, the cap, or cancellation.
func (r *runner) run() (*Result, error) {
	started := time.Now()
	res := &Result{History: make([]float64, 0, 16)}

	for it := 0; it < r.opts.MaxIterations; it++ {
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		var (
			delta float64
			err   error
		)
		if r.opts.Workers > 1 {
			delta, err = r.jacobiSweep()
			if err != nil {
				return nil, err
			}
		} else {
			delta = r.gaussSeidelSweep()
		}

		res.Iterations = it + 1
		res.Delta = delta
		res.History = append(res.History, delta)
		r.opts.Recorder.SolverSweep(delta)
		r.log.Debug("sweep", zap.Int("iteration", res.Iterations), zap.Float64("delta", delta))

		if delta < r.opts.Epsilon {
			res.Converged = true
			break
		}
	}

	res.Values = make(map[belief.Belief]float64, len(r.nodes))
	res.Policy = make(Policy)
	for i := range r.nodes {
		res.Values[r.nodes[i].b] = r.values[i]
		if r.policy[i] >= 0 {
			res.Policy[r.nodes[i].b] = r.policy[i]
		}
	}

	r.opts.Recorder.SolverDone(res.Iterations, res.Converged)
	fields := []zap.Field{
		zap.Int("iterations", res.Iterations),
		zap.Bool("converged", res.Converged),
		zap.Float64("delta", res.Delta),
		zap.Int("policy_entries", len(res.Policy)),
		zap.Duration("elapsed", time.Since(started)),
	}
	if res.Converged {
		r.log.Info("value iteration converged", fields...)
	} else {
		r.log.Warn("value iteration hit the iteration cap", fields...)
	}

	return res, nil
}

// backup evaluates every action of node i against values and returns the
// minimum Q and its edge; edge is -1 when the node has no usable action.
func (r *runner) backup(i int, values []float64) (best float64, edge int) {
	best, edge = math.Inf(1), -1
	gamma := r.opts.Discount
	for _, a := range r.nodes[i].actions {
		q := 0.0
		for _, o := range a.outs {
			q += o.p * (o.cost + gamma*values[o.next])
		}
		if q < best {
			best, edge = q, a.edge
		}
	}

	return best, edge
}

// gaussSeidelSweep updates values in place, in node order.
func (r *runner) gaussSeidelSweep() float64 {
	delta := 0.0
	for i := range r.nodes {
		if d, ok := r.update(i, r.values, r.values); ok && d > delta {
			delta = d
		}
	}

	return delta
}

// jacobiSweep computes the next value vector from a frozen copy of the
// current one, splitting nodes into contiguous chunks across workers.
func (r *runner) jacobiSweep() (float64, error) {
	prev := append([]float64(nil), r.values...)
	workers := r.opts.Workers
	if workers > len(r.nodes) {
		workers = len(r.nodes)
	}
	chunk := (len(r.nodes) + workers - 1) / workers
	deltas := make([]float64, workers)

	g, ctx := errgroup.WithContext(r.opts.Ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(r.nodes) {
			hi = len(r.nodes)
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				if d, ok := r.update(i, prev, r.values); ok && d > deltas[w] {
					deltas[w] = d
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	delta := 0.0
	for _, d := range deltas {
		if d > delta {
			delta = d
		}
	}

	return delta, nil
}

// update applies the Bellman backup to node i, reading from src and writing
// to dst. It returns the absolute change and whether the node was updated.
func (r *runner) update(i int, src, dst []float64) (float64, bool) {
	n := &r.nodes[i]
	if n.terminal {
		dst[i] = 0
		r.policy[i] = -1
		return 0, false
	}
	if !n.live && r.opts.Discount >= 1 {
		return 0, false
	}
	best, edge := r.backup(i, src)
	if edge < 0 {
		return 0, false // no legal action: V unchanged, no policy entry
	}
	d := math.Abs(src[i] - best)
	dst[i] = best
	if n.live {
		r.policy[i] = edge
	}

	return d, true
}
