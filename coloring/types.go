package coloring

import (
	"errors"

	"github.com/katalvlaran/chromatic/core"
)

// Sentinel errors for coloring.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrNotBipartite is returned by TwoColor when the graph has an odd cycle.
	ErrNotBipartite = errors.New("coloring: graph is not bipartite")

	// ErrSizeMismatch indicates a Coloring whose length differs from the graph order.
	ErrSizeMismatch = errors.New("coloring: coloring size does not match graph")

	// ErrUncolored indicates a vertex without a color ≥ 1.
	ErrUncolored = errors.New("coloring: vertex left uncolored")

	// ErrImproperColoring indicates two adjacent vertices sharing a color.
	ErrImproperColoring = errors.New("coloring: adjacent vertices share a color")

	// ErrUnknownKind is returned for an unrecognised strategy name or Kind.
	ErrUnknownKind = errors.New("coloring: unknown strategy")
)

// Uncolored marks a vertex that has not been assigned a color yet.
const Uncolored = 0

// Coloring is the result of a strategy run.
type Coloring struct {
	// Colors maps vertex id to its color (≥ 1 once colored).
	Colors []int
	// Count is the largest color in Colors.
	Count int
	// Order lists vertex ids in the order they were colored.
	Order []int
}

// Len returns the number of vertices covered.
func (c *Coloring) Len() int { return len(c.Colors) }

// Color returns the color of v, or Uncolored when v is out of range.
func (c *Coloring) Color(v int) int {
	if v < 0 || v >= len(c.Colors) {
		return Uncolored
	}

	return c.Colors[v]
}

// Classes groups vertex ids by color; Classes()[k] holds the vertices of
// color k+1 in ascending id order.
func (c *Coloring) Classes() [][]int {
	out := make([][]int, c.Count)
	for v, col := range c.Colors {
		if col >= 1 && col <= c.Count {
			out[col-1] = append(out[col-1], v)
		}
	}

	return out
}

// Strategy colors a graph. Implementations are pure and deterministic:
// they never modify g and return the same Coloring for the same graph.
type Strategy interface {
	// Name is the short identifier used by ParseKind and reports.
	Name() string
	// Color assigns a color to every vertex of g.
	Color(g *core.Graph) (*Coloring, error)
}

// Option configures a strategy.
type Option func(*Options)

// Options holds strategy parameters.
type Options struct {
	// OnAssign, if set, is called after each vertex receives its color.
	OnAssign func(v, color int)
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithOnAssign registers a callback fired after every color assignment.
func WithOnAssign(fn func(v, color int)) Option {
	return func(o *Options) {
		o.OnAssign = fn
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
