// Package valueiter solves the belief-space MDP produced by belief.Model and
// bfs.BFS: it returns the minimum expected cost-to-go V(b) for every
// reachable belief and the action that attains it.
//
// What
//
//   - Input: a model and a belief set closed under its transitions.
//   - Output: Result with Values, Policy, Iterations, Converged, Delta and
//     the per-sweep delta History.
//
// Bellman backup
//
//	Q(b,a) = Σ_o p_o · (cost_o + γ · V(next_o))
//	V(b)   = min_a Q(b,a),   V(terminal) = 0
//
// Each attempt charges the edge weight whether or not the edge turns out to
// be flooded, so a flooded attempt costs time and returns the agent to the
// same vertex with strictly more knowledge.
//
// Sweeps
//
//	Workers ≤ 1 updates values in place (Gauss-Seidel). Workers > 1 computes
//	each sweep from a frozen copy of the previous one (Jacobi) and fans the
//	belief set out over an errgroup. Results agree within ε.
//
// Unreachable target
//
//	A belief from which no outcome chain reaches the target has no policy
//	entry and Result.Value reports ok == false for it. Under γ < 1 it is
//	still backed up, so its neighbours see the discounted cost of wandering;
//	under γ = 1 it stays at V = 0.
//
// Complexity
//
//   - Compile: O(B · A · O) where A ≤ deg(v) and O ≤ 2.
//   - Each sweep: the same bound, with no hashing.
//   - Memory: O(B · A).
//
// Example
//
//	res, _ := bfs.BFS(m)
//	vi, err := valueiter.Solve(m, res.Order,
//	    valueiter.WithDiscount(1),
//	    valueiter.WithWorkers(4),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, _ := vi.Value(m.Start())
package valueiter
