package coloring

import (
	"fmt"

	"github.com/katalvlaran/chromatic/bfs"
	"github.com/katalvlaran/chromatic/core"
)

// TwoColor returns an exact 2-coloring of a bipartite graph: each component
// is searched breadth-first from its lowest id, even layers get color 1 and
// odd layers color 2. Graphs without edges use color 1 only. Returns
// ErrNotBipartite, naming one offending edge, when an odd cycle exists.
func TwoColor(g *core.Graph, opts ...Option) (*Coloring, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)
	trees, err := bfs.Forest(g)
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	c := &Coloring{Colors: make([]int, n), Order: make([]int, 0, n)}
	for _, t := range trees {
		for _, v := range t.Order {
			col := t.Depth[v]%2 + 1
			c.Colors[v] = col
			c.Order = append(c.Order, v)
			if col > c.Count {
				c.Count = col
			}
			if o.OnAssign != nil {
				o.OnAssign(v, col)
			}
		}
	}
	for _, e := range g.Edges() {
		if c.Colors[e.U] == c.Colors[e.V] {
			return nil, fmt.Errorf("%w: edge (%d,%d) closes an odd cycle", ErrNotBipartite, e.U, e.V)
		}
	}

	return c, nil
}
