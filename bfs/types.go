// Package bfs provides tunable options and error definitions
// for breadth-first exploration of a belief space.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/floodpath/belief"
)

// Sentinel errors for BFS execution.
var (
	// ErrModelNil is returned if a nil model pointer is passed.
	ErrModelNil = errors.New("bfs: model is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrBeliefLimit is returned when the reachable set outgrows MaxBeliefs.
	ErrBeliefLimit = errors.New("bfs: belief limit exceeded")

	// ErrTransitions is returned when expanding a belief fails.
	ErrTransitions = errors.New("bfs: transition expansion error")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative limit), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a belief is first discovered.
	// Receives the belief and its depth (attempts) from the start.
	OnEnqueue func(b belief.Belief, depth int)

	// OnVisit is called when visiting a belief. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(b belief.Belief, depth int) error

	// MaxBeliefs, if > 0, caps the size of the reachable set.
	// A value of 0 explicitly disables the cap.
	MaxBeliefs int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no belief cap (MaxBeliefs == 0)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:        context.Background(),
		OnEnqueue:  func(belief.Belief, int) {},
		OnVisit:    func(belief.Belief, int) error { return nil },
		MaxBeliefs: 0,
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(b belief.Belief, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(b belief.Belief, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxBeliefs aborts exploration once more than n beliefs are discovered.
//
//	n > 0: cap at n beliefs
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxBeliefs(n int) Option {
	return func(o *BFSOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxBeliefs cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxBeliefs = n
		}
	}
}

// BFSResult holds the outcome of a belief-space traversal:
//   - Order: beliefs visited, in visit sequence (the reachable set).
//   - Depth: map from belief to the number of attempts needed to reach it.
//   - Parent: map from belief to its predecessor in the BFS tree.
//   - Terminals: number of terminal beliefs in Order.
type BFSResult struct {
	Order     []belief.Belief
	Depth     map[belief.Belief]int
	Parent    map[belief.Belief]belief.Belief
	Terminals int
}

// Contains reports whether b is reachable from the start belief.
func (r *BFSResult) Contains(b belief.Belief) bool {
	_, ok := r.Depth[b]
	return ok
}

// Beliefs returns a copy of the reachable set in visit order, the form
// valueiter.Solve expects.
func (r *BFSResult) Beliefs() []belief.Belief {
	return append([]belief.Belief(nil), r.Order...)
}

// Len returns the size of the reachable set.
func (r *BFSResult) Len() int { return len(r.Order) }

// PathTo reconstructs a shortest belief chain from the start to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest belief.Belief) ([]belief.Belief, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []belief.Belief{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
