package coloring

import (
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/chromatic/core"
)

// RecursiveLargestFirst builds the color classes one at a time. A class
// starts with the uncolored vertex of largest degree; U collects the
// uncolored neighbors of the class. The class then grows by the uncolored
// vertex outside U with the most neighbors in U (ties: larger degree, then
// smaller id) until no such vertex remains.
type RecursiveLargestFirst struct {
	opts Options
}

// NewRecursiveLargestFirst returns a RecursiveLargestFirst strategy.
func NewRecursiveLargestFirst(opts ...Option) RecursiveLargestFirst {
	return RecursiveLargestFirst{opts: resolve(opts)}
}

// Name implements Strategy.
func (RecursiveLargestFirst) Name() string { return KindRecursiveLargestFirst.String() }

// Color implements Strategy.
func (s RecursiveLargestFirst) Color(g *core.Graph) (*Coloring, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	p := newPainter(g, s.opts)
	n := len(p.adj)
	inU := bits.New(n)
	nbrsInU := make([]int, n)
	remaining := n

	for color := 1; remaining > 0; color++ {
		inU.ClearAll()
		for i := range nbrsInU {
			nbrsInU[i] = 0
		}

		v := p.firstOfClass()
		for v >= 0 {
			p.assign(v, color)
			remaining--
			for _, u := range p.adj[v] {
				if p.colors[u] != Uncolored || inU.Bit(u) == 1 {
					continue
				}
				inU.SetBit(u, 1)
				for _, w := range p.adj[u] {
					nbrsInU[w]++
				}
			}
			v = p.nextOfClass(inU, nbrsInU)
		}
	}

	return p.result(), nil
}

// firstOfClass returns the uncolored vertex of largest degree, lowest id on ties.
func (p *painter) firstOfClass() int {
	best := -1
	for v, d := range p.deg {
		if p.colors[v] == Uncolored && (best < 0 || d > p.deg[best]) {
			best = v
		}
	}

	return best
}

// nextOfClass returns the uncolored vertex outside U maximizing its number
// of neighbors in U, or -1 when the class is maximal.
func (p *painter) nextOfClass(inU bits.Bits, nbrsInU []int) int {
	best := -1
	for w := range p.adj {
		if p.colors[w] != Uncolored || inU.Bit(w) == 1 {
			continue
		}
		switch {
		case best < 0,
			nbrsInU[w] > nbrsInU[best],
			nbrsInU[w] == nbrsInU[best] && p.deg[w] > p.deg[best]:
			best = w
		}
	}

	return best
}
