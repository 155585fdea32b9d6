// Package planner wires the belief model, the reachability explorer and the
// value-iteration solver into a single call.
//
// Plan builds the model, enumerates the reachable beliefs, solves for the
// optimal policy and brackets the answer with two deterministic shortest
// paths computed by package dijkstra:
//
//	Optimistic  – every uncertain edge clear (edges with p = 1 excluded).
//	Pessimistic – every uncertain edge flooded; +Inf when that disconnects
//	              start from target.
//
// With discount 1 and a finite pessimistic bound the expected cost lies in
// [Optimistic, Pessimistic]. When the optimistic graph itself cannot join
// start and target the solution has no policy entry for the start belief,
// ExpectedCost reports ok == false and Reachable is false; with
// WithRequireReachable, Plan fails with ErrTargetUnreachable instead.
//
// Every run carries a random UUID that tags its log lines.
package planner
