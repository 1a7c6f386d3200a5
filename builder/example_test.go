package builder_test

import (
	"fmt"

	"github.com/katalvlaran/chromatic/builder"
)

// ExampleBuildGraph composes a triangle and a 3-vertex star into one graph.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, builder.Cycle(3), builder.Star(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.VertexCount(), g.Edges())
	// Output:
	// 6 [{0 1} {0 2} {1 2} {3 4} {3 5}]
}
