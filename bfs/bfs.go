// Package bfs enumerates exactly the beliefs that can occur when an agent
// starts from a model's start belief, by breadth-first search over the
// belief-transition graph.
//
// An arc b → b' exists when some legal action from b has an outcome b'.
// Terminal beliefs are recorded but never expanded.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/floodpath/belief"
)

// queueItem pairs a belief with its BFS depth.
type queueItem struct {
	b     belief.Belief
	depth int
}

// space is the part of *belief.Model the walker reads.
type space interface {
	Start() belief.Belief
	IsTerminal(b belief.Belief) bool
	LegalActions(b belief.Belief) []int
	Transitions(b belief.Belief, edge int) ([]belief.Outcome, error)
}

// walker encapsulates mutable BFS state.
type walker struct {
	model space
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS explores the beliefs reachable from m.Start(), applying any number of
// functional Options.
// Returns ErrModelNil for a nil model, ErrOptionViolation for bad options,
// ErrBeliefLimit when MaxBeliefs is exceeded, ErrTransitions (wrapping the
// model's own error) when the model rejects one of its legal actions, ctx
// errors, or any hook error.
func BFS(m *belief.Model, opts ...Option) (*BFSResult, error) {
	if m == nil {
		return nil, ErrModelNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return walk(m, o)
}

// walk runs the traversal over any belief space.
func walk(m space, o BFSOptions) (*BFSResult, error) {
	w := &walker{
		model: m,
		opts:  o,
		ctx:   o.Ctx,
		res: &BFSResult{
			Depth:  make(map[belief.Belief]int),
			Parent: make(map[belief.Belief]belief.Belief),
		},
	}

	// Seed queue with the start belief (no parent)
	start := m.Start()
	w.res.Depth[start] = 0
	w.opts.OnEnqueue(start, 0)
	w.queue = append(w.queue, queueItem{b: start})

	// Main loop
	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if w.model.IsTerminal(item.b) {
			w.res.Terminals++
			continue // absorbing: nothing past the target matters
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the belief in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.b)
	if err := w.opts.OnVisit(item.b, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.b, err)
	}
	return nil
}

// expand enqueues every unseen outcome of every legal action, in action
// order then outcome order, so the visit sequence is reproducible.
func (w *walker) expand(item queueItem) error {
	for _, a := range w.model.LegalActions(item.b) {
		outs, err := w.model.Transitions(item.b, a)
		if err != nil {
			return fmt.Errorf("%w: %v action %d: %w", ErrTransitions, item.b, a, err)
		}
		for _, o := range outs {
			if _, seen := w.res.Depth[o.Next]; seen {
				continue
			}
			if w.opts.MaxBeliefs > 0 && len(w.res.Depth) >= w.opts.MaxBeliefs {
				return fmt.Errorf("%w: more than %d beliefs", ErrBeliefLimit, w.opts.MaxBeliefs)
			}
			d := item.depth + 1
			w.res.Depth[o.Next] = d
			w.res.Parent[o.Next] = item.b
			w.opts.OnEnqueue(o.Next, d)
			w.queue = append(w.queue, queueItem{b: o.Next, depth: d})
		}
	}
	return nil
}
