// Package bfs provides breadth-first exploration of the belief space of a
// belief.Model, returning exactly the beliefs that can ever occur from the
// start belief.
//
// What
//
//   - Start from m.Start() = (start vertex, all Unknown).
//   - Follow every outcome of every legal action (belief.Model.Transitions).
//   - Record terminal beliefs but never expand them.
//   - Returns a BFSResult containing:
//   - Order: visit sequence (the reachable set)
//   - Depth: map from belief → number of attempts from the start
//   - Parent: map from belief → its predecessor in the BFS tree
//   - Terminals: how many reachable beliefs sit on the target
//
// Why
//
//	The full belief space has |V| × 3^k elements for k uncertain edges. Most
//	of those combinations are unreachable along any real trajectory: an agent
//	only learns about edges it has stood next to. Exploring from the start
//	belief keeps value iteration proportional to what actually matters, and
//	the set is closed under transitions, so every successor a solver needs
//	is present.
//
// Determinism
//
//	LegalActions returns edge IDs ascending and Transitions returns the
//	flooded outcome before the clear one; BFS enqueues in that order, so the
//	visit sequence is fully reproducible.
//
// Complexity (B = reachable beliefs, d = max degree)
//
//   - Time:   O(B · d)
//   - Memory: O(B)
//
// Usage
//
//	res, err := bfs.BFS(model,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxBeliefs(1_000_000),
//	    bfs.WithOnVisit(func(b belief.Belief, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrModelNil         if the model pointer is nil.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxBeliefs).
//   - ErrBeliefLimit      if the reachable set outgrows MaxBeliefs.
//   - ErrTransitions      if the model rejects one of its own legal actions.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx errors.
package bfs
