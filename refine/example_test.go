package refine_test

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
	"github.com/katalvlaran/chromatic/refine"
)

// ExamplePossiblyIsomorphic separates a triangle from a 3-vertex path and
// accepts two labelings of the 4-cycle.
func ExamplePossiblyIsomorphic() {
	triangle := core.NewGraph(3)
	_ = triangle.AddEdge(0, 1)
	_ = triangle.AddEdge(1, 2)
	_ = triangle.AddEdge(2, 0)

	path := core.NewGraph(3)
	_ = path.AddEdge(0, 1)
	_ = path.AddEdge(1, 2)

	ok, _ := refine.PossiblyIsomorphic(triangle, path)
	fmt.Println("triangle vs path:", ok)

	c1, _ := core.FromAdjacency([][]int{{1, 3}, {0, 2}, {1, 3}, {0, 2}})
	c2, _ := core.FromAdjacency([][]int{{2, 3}, {2, 3}, {0, 1}, {0, 1}})
	ok, _ = refine.PossiblyIsomorphic(c1, c2)
	fmt.Println("4-cycle vs 4-cycle:", ok)
	// Output:
	// triangle vs path: false
	// 4-cycle vs 4-cycle: true
}

// ExampleRefine prints the stable classes of a 5-vertex path.
func ExampleRefine() {
	g := core.NewGraph(5)
	for i := 0; i < 4; i++ {
		_ = g.AddEdge(i, i+1)
	}
	res, _ := refine.Refine(g)
	fmt.Println(res.Colors, res.Rounds, res.History)
	// Output:
	// [0 1 2 1 0] 2 [2 3 3]
}
