package coloring

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/chromatic/core"
)

// IncidenceDegreeOrdering repeatedly colors the uncolored vertex with the
// most colored neighbors (ties: larger degree, then smaller id) using the
// smallest free color.
type IncidenceDegreeOrdering struct {
	opts Options
}

// NewIncidenceDegreeOrdering returns an IncidenceDegreeOrdering strategy.
func NewIncidenceDegreeOrdering(opts ...Option) IncidenceDegreeOrdering {
	return IncidenceDegreeOrdering{opts: resolve(opts)}
}

// Name implements Strategy.
func (IncidenceDegreeOrdering) Name() string { return KindIncidenceDegree.String() }

// Color implements Strategy.
func (s IncidenceDegreeOrdering) Color(g *core.Graph) (*Coloring, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	p := newPainter(g, s.opts)
	sel := newSelector(p.deg)
	for !sel.empty() {
		v := sel.pop()
		p.assign(v, p.smallestFree(v))
		for _, u := range p.adj[v] {
			if p.colors[u] == Uncolored {
				sel.setScore(u, sel.score[u]+1)
			}
		}
	}

	return p.result(), nil
}

// DSatur repeatedly colors the uncolored vertex whose neighbors already use
// the most distinct colors (ties: larger degree, then smaller id) with the
// smallest free color. The first pick is therefore the max-degree vertex.
type DSatur struct {
	opts Options
}

// NewDSatur returns a DSatur strategy.
func NewDSatur(opts ...Option) DSatur {
	return DSatur{opts: resolve(opts)}
}

// Name implements Strategy.
func (DSatur) Name() string { return KindDSatur.String() }

// Color implements Strategy.
func (s DSatur) Color(g *core.Graph) (*Coloring, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	p := newPainter(g, s.opts)
	sel := newSelector(p.deg)
	saturation := make([]mapset.Set[int], len(p.adj))
	for v := range saturation {
		saturation[v] = mapset.NewThreadUnsafeSet[int]()
	}

	for !sel.empty() {
		v := sel.pop()
		c := p.smallestFree(v)
		p.assign(v, c)
		for _, u := range p.adj[v] {
			if p.colors[u] != Uncolored {
				continue
			}
			if saturation[u].Add(c) {
				sel.setScore(u, saturation[u].Cardinality())
			}
		}
	}

	return p.result(), nil
}
