package builder_test

import (
	"fmt"

	"github.com/katalvlaran/floodpath/builder"
)

// ExampleBuildGraph builds a ladder whose rungs may flood.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithFlooding(1, builder.ConstantProbabilityFn(0.3))},
		builder.LadderRungs(3),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("e%d %d-%d p=%.1f\n", e.ID, e.U, e.V, e.Probability)
	}
	// Output:
	// e0 0-1 p=0.3
	// e1 0-2 p=0.0
	// e2 1-3 p=0.0
	// e3 2-3 p=0.3
	// e4 2-4 p=0.0
	// e5 3-5 p=0.0
	// e6 4-5 p=0.3
}
