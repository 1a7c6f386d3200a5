package coloring

import "github.com/katalvlaran/chromatic/core"

// FirstFit colors vertices in ascending id order, each with the smallest
// color not used by its colored neighbors. Uses at most Δ+1 colors.
type FirstFit struct {
	opts Options
}

// NewFirstFit returns a FirstFit strategy.
func NewFirstFit(opts ...Option) FirstFit {
	return FirstFit{opts: resolve(opts)}
}

// Name implements Strategy.
func (FirstFit) Name() string { return KindFirstFit.String() }

// Color implements Strategy.
func (s FirstFit) Color(g *core.Graph) (*Coloring, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	p := newPainter(g, s.opts)
	for v := range p.adj {
		p.assign(v, p.smallestFree(v))
	}

	return p.result(), nil
}

// LargestDegreeOrdering colors vertices by degree descending (ties by
// ascending id) with the FirstFit rule. Degrees are computed once up front.
type LargestDegreeOrdering struct {
	opts Options
}

// NewLargestDegreeOrdering returns a LargestDegreeOrdering strategy.
func NewLargestDegreeOrdering(opts ...Option) LargestDegreeOrdering {
	return LargestDegreeOrdering{opts: resolve(opts)}
}

// Name implements Strategy.
func (LargestDegreeOrdering) Name() string { return KindLargestDegree.String() }

// Color implements Strategy.
func (s LargestDegreeOrdering) Color(g *core.Graph) (*Coloring, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	p := newPainter(g, s.opts)
	for _, v := range p.byDegree() {
		p.assign(v, p.smallestFree(v))
	}

	return p.result(), nil
}

// WelshPowell walks the largest-degree order once per color: each pass
// opens a new color and gives it to every uncolored vertex with no neighbor
// already holding that color. Terminates after at most n passes.
type WelshPowell struct {
	opts Options
}

// NewWelshPowell returns a WelshPowell strategy.
func NewWelshPowell(opts ...Option) WelshPowell {
	return WelshPowell{opts: resolve(opts)}
}

// Name implements Strategy.
func (WelshPowell) Name() string { return KindWelshPowell.String() }

// Color implements Strategy.
func (s WelshPowell) Color(g *core.Graph) (*Coloring, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	p := newPainter(g, s.opts)
	order := p.byDegree()
	remaining := len(order)
	for color := 1; remaining > 0; color++ {
		for _, v := range order {
			if p.colors[v] != Uncolored || p.conflicts(v, color) {
				continue
			}
			p.assign(v, color)
			remaining--
		}
	}

	return p.result(), nil
}
