// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

// IncidenceToGraph converts an n×m vertex-by-edge matrix into a Graph on
// n vertices. Each column must contain exactly two ones; an all-zero column
// is skipped. Two columns naming the same pair give ErrDuplicateEdge.
func IncidenceToGraph(b *Binary) (*core.Graph, error) {
	g := core.NewGraph(b.r)
	for j := 0; j < b.c; j++ {
		ends := make([]int, 0, 2)
		for i := 0; i < b.r; i++ {
			if b.at(i, j) == 1 {
				ends = append(ends, i)
			}
		}
		switch len(ends) {
		case 0:
			continue
		case 2:
		default:
			return nil, fmt.Errorf("%w: column %d has %d", ErrBadIncidenceColumn, j, len(ends))
		}
		if g.HasEdge(ends[0], ends[1]) {
			return nil, fmt.Errorf("%w: column %d (%d,%d)", ErrDuplicateEdge, j, ends[0], ends[1])
		}
		if err := g.AddEdge(ends[0], ends[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// IncidenceFromGraph returns the |V|×|E| incidence matrix of g with columns
// in g.Edges() order.
func IncidenceFromGraph(g *core.Graph) (*Binary, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	edges := g.Edges()
	b := &Binary{r: g.VertexCount(), c: len(edges)}
	b.data = make([]uint8, b.r*b.c)
	for j, e := range edges {
		b.data[e.U*b.c+j] = 1
		b.data[e.V*b.c+j] = 1
	}

	return b, nil
}
