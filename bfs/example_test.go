package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/chromatic/bfs"
	"github.com/katalvlaran/chromatic/core"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid with ids r*3+c.
func ExampleBFS() {
	g := core.NewGraph(9)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if c+1 < 3 {
				_ = g.AddEdge(r*3+c, r*3+c+1)
			}
			if r+1 < 3 {
				_ = g.AddEdge(r*3+c, (r+1)*3+c)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 1 2 3 2 3 4]
}

// ExampleComponents splits a graph with an isolated vertex.
func ExampleComponents() {
	g := core.NewGraph(4)
	_ = g.AddEdge(0, 2)
	_ = g.AddEdge(2, 3)

	comps, _ := bfs.Components(g)
	fmt.Println(len(comps), comps)
	// Output:
	// 2 [[0 2 3] [1]]
}
