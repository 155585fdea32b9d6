package config_test

import (
	"fmt"

	"github.com/katalvlaran/floodpath/config"
)

func ExampleParseEdge() {
	e, _ := config.ParseEdge("1,3,2,0,0.25")
	fmt.Println(e.U, e.V, e.Weight, e.Probability)
	fmt.Println(config.FormatEdge(e))
	// Output:
	// 1 3 2 0.25
	// 1,3,2,0.25
}
