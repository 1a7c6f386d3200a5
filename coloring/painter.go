package coloring

import (
	"sort"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/chromatic/core"
)

// painter carries the state shared by all greedy strategies: a snapshot of
// the adjacency lists, the partial coloring and a scratch bitset used to
// find the smallest free color.
type painter struct {
	adj      [][]int
	deg      []int
	colors   []int
	order    []int
	count    int
	used     bits.Bits
	onAssign func(v, color int)
}

func newPainter(g *core.Graph, o Options) *painter {
	adj := g.AdjacencyList()
	n := len(adj)
	deg := make([]int, n)
	for v, nbrs := range adj {
		deg[v] = len(nbrs)
	}

	return &painter{
		adj:      adj,
		deg:      deg,
		colors:   make([]int, n),
		order:    make([]int, 0, n),
		used:     bits.New(n + 2),
		onAssign: o.OnAssign,
	}
}

// smallestFree returns the least color ≥ 1 not used by a colored neighbor of v.
func (p *painter) smallestFree(v int) int {
	for _, u := range p.adj[v] {
		if c := p.colors[u]; c != Uncolored {
			p.used.SetBit(c, 1)
		}
	}
	free := p.used.ZeroFrom(1)
	for _, u := range p.adj[v] {
		if c := p.colors[u]; c != Uncolored {
			p.used.SetBit(c, 0)
		}
	}

	return free
}

// conflicts reports whether a colored neighbor of v already has color c.
func (p *painter) conflicts(v, c int) bool {
	for _, u := range p.adj[v] {
		if p.colors[u] == c {
			return true
		}
	}

	return false
}

func (p *painter) assign(v, c int) {
	p.colors[v] = c
	p.order = append(p.order, v)
	if c > p.count {
		p.count = c
	}
	if p.onAssign != nil {
		p.onAssign(v, c)
	}
}

func (p *painter) result() *Coloring {
	return &Coloring{Colors: p.colors, Count: p.count, Order: p.order}
}

// byDegree returns vertex ids sorted by degree descending; equal degrees
// keep ascending id order.
func (p *painter) byDegree() []int {
	ids := make([]int, len(p.deg))
	for i := range ids {
		ids[i] = i
	}
	sort.SliceStable(ids, func(a, b int) bool {
		return p.deg[ids[a]] > p.deg[ids[b]]
	})

	return ids
}
