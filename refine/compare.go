package refine

import (
	"github.com/emirpasic/gods/maps/treemap"

	"github.com/katalvlaran/chromatic/core"
)

// Class is one bucket of a color histogram.
type Class struct {
	Color int
	Size  int
}

// Comparison is the outcome of refining two graphs side by side.
type Comparison struct {
	// Possible is false when the graphs are certainly not isomorphic.
	Possible bool
	// Rounds is the number of joint refinement rounds run.
	Rounds int
	// Colors1 and Colors2 are the stable colorings, drawn from one palette.
	Colors1, Colors2 []int
	// Classes1 and Classes2 are the color histograms in ascending color order.
	Classes1, Classes2 []Class
}

// Compare refines g1 and g2 together and compares their color histograms.
// Graphs of different order are rejected without refining.
func Compare(g1, g2 *core.Graph) (*Comparison, error) {
	if g1 == nil || g2 == nil {
		return nil, ErrGraphNil
	}
	if g1.VertexCount() != g2.VertexCount() {
		return &Comparison{Possible: false}, nil
	}
	if g1.VertexCount() == 0 {
		return &Comparison{Possible: true, Colors1: []int{}, Colors2: []int{}}, nil
	}

	r := newRefiner(g1, g2)
	prev1, prev2 := distinct(r.colors[0]), distinct(r.colors[1])
	cmp := &Comparison{}
	for {
		r.round()
		cmp.Rounds++
		d1, d2 := distinct(r.colors[0]), distinct(r.colors[1])
		if d1 == prev1 && d2 == prev2 {
			break
		}
		prev1, prev2 = d1, d2
	}

	cmp.Colors1, cmp.Colors2 = r.colors[0], r.colors[1]
	cmp.Classes1, cmp.Classes2 = histogram(cmp.Colors1), histogram(cmp.Colors2)
	cmp.Possible = sameClasses(cmp.Classes1, cmp.Classes2)

	return cmp, nil
}

// PossiblyIsomorphic reports false only when g1 and g2 are certainly not
// isomorphic.
func PossiblyIsomorphic(g1, g2 *core.Graph) (bool, error) {
	cmp, err := Compare(g1, g2)
	if err != nil {
		return false, err
	}

	return cmp.Possible, nil
}

func histogram(colors []int) []Class {
	counts := treemap.NewWithIntComparator()
	for _, c := range colors {
		n, _ := counts.Get(c)
		if n == nil {
			n = 0
		}
		counts.Put(c, n.(int)+1)
	}

	out := make([]Class, 0, counts.Size())
	it := counts.Iterator()
	for it.Next() {
		out = append(out, Class{Color: it.Key().(int), Size: it.Value().(int)})
	}

	return out
}

func sameClasses(a, b []Class) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
