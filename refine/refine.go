package refine

import (
	"encoding/binary"
	"errors"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/chromatic/core"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("refine: graph is nil")

// Result is the stable coloring of a single graph.
type Result struct {
	// Colors maps vertex id to its stable color in 0..k-1.
	Colors []int
	// Rounds is the number of refinement rounds run, the confirming one included.
	Rounds int
	// History holds the number of distinct colors before the first round
	// and after each round; it is non-decreasing.
	History []int
}

// Classes returns the number of distinct stable colors.
func (r *Result) Classes() int {
	if len(r.History) == 0 {
		return 0
	}

	return r.History[len(r.History)-1]
}

// Refine runs color refinement on g until the partition is stable.
// For a graph with V ≥ 1 vertices, Rounds ≤ V.
func Refine(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	r := newRefiner(g)
	res := &Result{History: []int{distinct(r.colors[0])}}
	if g.VertexCount() == 0 {
		res.Colors = []int{}
		return res, nil
	}
	for {
		prev := res.History[len(res.History)-1]
		r.round()
		res.Rounds++
		d := distinct(r.colors[0])
		res.History = append(res.History, d)
		if d == prev {
			break
		}
	}
	res.Colors = r.colors[0]

	return res, nil
}

// refiner holds the current colors of one or more graphs that share a
// label palette.
type refiner struct {
	adj    [][][]int
	colors [][]int
	key    []byte
	nbr    []int
}

func newRefiner(gs ...*core.Graph) *refiner {
	r := &refiner{
		adj:    make([][][]int, len(gs)),
		colors: make([][]int, len(gs)),
	}
	for i, g := range gs {
		r.adj[i] = g.AdjacencyList()
		r.colors[i] = g.Degrees()
	}

	return r
}

// round computes the next coloring of every graph.
func (r *refiner) round() {
	palette := make(map[string]int)
	next := make([][]int, len(r.adj))
	for gi, adj := range r.adj {
		cur := r.colors[gi]
		out := make([]int, len(adj))
		for v, nbrs := range adj {
			k := r.label(cur, v, nbrs)
			c, ok := palette[k]
			if !ok {
				c = len(palette)
				palette[k] = c
			}
			out[v] = c
		}
		next[gi] = out
	}
	r.colors = next
}

// label encodes (cur[v], sorted colors of nbrs) as a map key.
func (r *refiner) label(cur []int, v int, nbrs []int) string {
	r.nbr = r.nbr[:0]
	for _, u := range nbrs {
		r.nbr = append(r.nbr, cur[u])
	}
	sort.Ints(r.nbr)

	r.key = binary.AppendUvarint(r.key[:0], uint64(cur[v]))
	for _, c := range r.nbr {
		r.key = binary.AppendUvarint(r.key, uint64(c))
	}

	return string(r.key)
}

func distinct(colors []int) int {
	set := mapset.NewThreadUnsafeSetWithSize[int](len(colors))
	for _, c := range colors {
		set.Add(c)
	}

	return set.Cardinality()
}
