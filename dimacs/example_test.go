package dimacs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/chromatic/dimacs"
)

// ExampleParse loads a triangle with one out-of-range edge.
func ExampleParse() {
	src := `c triangle
p edge 3 4
e 1 2
e 2 3
e 3 1
e 3 9
`
	in, err := dimacs.Parse(strings.NewReader(src), "triangle")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(in.Graph.VertexCount(), in.Graph.EdgeCount())
	for _, w := range in.Warnings {
		fmt.Println(w)
	}
	// Output:
	// 3 3
	// line 6: range: edge (3,9) outside 1..3, skipped
	// line 6: count: read 3 edges, header declares 4
}
