// Package floodpath plans routes over networks whose roads may be flooded.
//
// A flood network is an undirected weighted graph in which some edges are
// uncertain: each is flooded with a known probability, fixed for the whole
// journey, and the traveller only learns its state by attempting it. Every
// attempt costs the edge weight; a flooded attempt leaves the traveller in
// place. Planning happens in belief space (position plus what is known
// about each uncertain edge), solved by value iteration.
//
// Packages, leaf first:
//
//	core/      – flood network: int vertices, edges with weight and flood probability
//	builder/   – deterministic generators: path, cycle, grid, ladder, random sparse
//	dijkstra/  – shortest paths with edge filters (optimistic / pessimistic bounds)
//	belief/    – beliefs, legal actions, the observation rule, transitions
//	bfs/       – reachable belief set from the start belief
//	valueiter/ – Bellman sweeps (Gauss-Seidel or parallel Jacobi), optimal policy
//	simulate/  – seeded replay of a policy against sampled ground truth
//	planner/   – model + exploration + solve + bounds in one call
//	metrics/   – Prometheus collectors behind a Recorder interface
//	config/    – YAML network/planner configuration with env overrides
//	report/    – text renderings and HTML charts
//	cmd/floodpath – CLI: solve, simulate, generate
//
// Quick example (toy network, one uncertain edge):
//
//	g, _ := core.FromEdges(2, []core.Edge{{U: 0, V: 1, Weight: 10, Probability: 0.5}})
//	sol, _ := planner.Plan(ctx, g, 0, 1)
//	v, _ := sol.ExpectedCost()
//
//	go get github.com/katalvlaran/floodpath
package floodpath
