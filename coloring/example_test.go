package coloring_test

import (
	"fmt"

	"github.com/katalvlaran/chromatic/coloring"
	"github.com/katalvlaran/chromatic/core"
)

// ExampleNew colors a star with its center at vertex 0.
func ExampleNew() {
	g := core.NewGraph(5)
	for leaf := 1; leaf < 5; leaf++ {
		_ = g.AddEdge(0, leaf)
	}

	for _, k := range []coloring.Kind{coloring.KindFirstFit, coloring.KindWelshPowell} {
		s, _ := coloring.New(k)
		c, _ := s.Color(g)
		fmt.Println(s.Name(), c.Count, c.Colors)
	}
	// Output:
	// ff 2 [1 2 2 2 2]
	// wp 2 [1 2 2 2 2]
}

// ExampleTwoColor reports an odd cycle.
func ExampleTwoColor() {
	g := core.NewGraph(3)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 0)

	_, err := coloring.TwoColor(g)
	fmt.Println(err)
	// Output:
	// coloring: graph is not bipartite: edge (1,2) closes an odd cycle
}
