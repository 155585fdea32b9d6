// Package belief defines the state space of the flood-navigation planning
// problem: beliefs, the legal actions from each belief, and the stochastic
// transition function with its costs.
//
// What
//
//   - Knowledge: closed enum Unknown / Flooded / Clear for one uncertain edge.
//   - Belief: immutable (position, knowledge vector) value, usable as a map key.
//   - Model: LegalActions, Transitions, Observe and IsTerminal over a core.Graph.
//
// Transition semantics
//
// Attempting an edge always costs its weight. A deterministic or known-clear
// edge moves the agent with probability 1. An unknown edge with flood
// probability p splits into two outcomes:
//
//	p     : flooded – agent stays, entry becomes Flooded
//	1 - p : clear   – agent crosses, entry becomes Clear
//
// Known-flooded edges are never legal. Asking for their transitions returns
// ErrIllegalAction: the policy must never propose them.
//
// Invariants
//
//   - Knowledge vectors always have length k = number of uncertain edges.
//   - An entry that left Unknown never changes again (Belief.With panics with
//     ErrInformationLoss otherwise).
//   - A belief is terminal iff its position is the target.
//
// Determinism
//
//	LegalActions returns edge IDs ascending. Solvers rely on this order to
//	break ties reproducibly.
package belief
