package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/chromatic/matrix"
)

// ExampleAdjacencyToGraph converts the 4-cycle's adjacency matrix.
func ExampleAdjacencyToGraph() {
	b, _ := matrix.ParseRows([]string{
		"0101",
		"1010",
		"0101",
		"1010",
	})
	g, err := matrix.AdjacencyToGraph(b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.AdjacencyList())
	// Output:
	// [[1 3] [0 2] [1 3] [0 2]]
}
