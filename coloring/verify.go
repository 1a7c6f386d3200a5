package coloring

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

// Verify checks that c is a complete proper coloring of g: one color ≥ 1 per
// vertex and no edge with equally colored endpoints.
func Verify(g *core.Graph, c *Coloring) error {
	if g == nil {
		return ErrGraphNil
	}
	if c == nil || len(c.Colors) != g.VertexCount() {
		got := 0
		if c != nil {
			got = len(c.Colors)
		}
		return fmt.Errorf("%w: %d colors for %d vertices", ErrSizeMismatch, got, g.VertexCount())
	}
	for v, col := range c.Colors {
		if col < 1 {
			return fmt.Errorf("%w: vertex %d", ErrUncolored, v)
		}
	}
	for _, e := range g.Edges() {
		if c.Colors[e.U] == c.Colors[e.V] {
			return fmt.Errorf("%w: edge (%d,%d) color %d", ErrImproperColoring, e.U, e.V, c.Colors[e.U])
		}
	}

	return nil
}
