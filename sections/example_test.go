package sections_test

import (
	"fmt"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/sections"
)

// ExampleDetect trims a map down to its largest island.
func ExampleDetect() {
	g := core.NewGraph(core.WithSymmetric[string]())
	_ = g.AddEdge("dock", "market", 1)
	_ = g.AddEdge("market", "keep", 2)
	_ = g.AddEdge("cave", "grotto", 1)

	res, _ := sections.Detect(g, sections.WithTrim(), sections.WithLogger(quietLogger()))
	fmt.Println(g.Vertices())
	fmt.Println(res.Removed)
	// Output:
	// [dock market keep]
	// [cave grotto]
}
