// Package builder generates flood networks deterministically: fixtures for
// tests and benchmarks, and the networks behind `floodpath generate`.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, con): resolve options, run one Constructor,
//     materialise a *core.Graph.
//   - Topologies (Constructor factories):
//     – Path, Cycle, Grid, Ladder, LadderRungs, RandomSparse.
//   - Configuration primitives (BuilderOption):
//     – WithSeed / WithRand:  seeded RNG for every stochastic draw.
//     – WithWeightFn:         edge weights (DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntegerWeightFn).
//     – WithFlooding:         share of edges that may flood and their flood
//     probability (ConstantProbabilityFn, UniformProbabilityFn).
//
// Guarantees:
//
//   - Determinism: the same constructor, options and seed give the same
//     edges, in the same order, hence the same edge IDs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with method context.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{
//	        builder.WithSeed(7),
//	        builder.WithFlooding(0.3, builder.UniformProbabilityFn(0.1, 0.6)),
//	    },
//	    builder.Grid(3, 3),
//	)
package builder
