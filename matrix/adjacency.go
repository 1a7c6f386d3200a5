// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

// AdjacencyToGraph converts a square symmetric 0/1 matrix with a zero
// diagonal into a Graph with one vertex per row.
//
// Validation order: ErrNonSquare, then ErrNonZeroDiagonal, then ErrAsymmetry,
// each reported for the first offending cell in row-major order.
func AdjacencyToGraph(b *Binary) (*core.Graph, error) {
	if b.r != b.c {
		return nil, fmt.Errorf("%w: %d×%d", ErrNonSquare, b.r, b.c)
	}
	n := b.r
	for i := 0; i < n; i++ {
		if b.at(i, i) != 0 {
			return nil, fmt.Errorf("%w: row %d", ErrNonZeroDiagonal, i)
		}
	}
	g := core.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if b.at(i, j) != b.at(j, i) {
				return nil, fmt.Errorf("%w: (%d,%d)", ErrAsymmetry, i, j)
			}
			if b.at(i, j) == 1 {
				if err := g.AddEdge(i, j); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// FromGraph returns the adjacency matrix of g.
func FromGraph(g *core.Graph) (*Binary, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	b := &Binary{r: n, c: n, data: make([]uint8, n*n)}
	for _, e := range g.Edges() {
		b.data[e.U*n+e.V] = 1
		b.data[e.V*n+e.U] = 1
	}

	return b, nil
}
