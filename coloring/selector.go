package coloring

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// rank orders candidates: higher score first, then higher degree, then
// lower id.
type rank struct {
	score, degree, id int
}

func compareRank(a, b interface{}) int {
	x, y := a.(rank), b.(rank)
	switch {
	case x.score != y.score:
		return cmpInt(x.score, y.score)
	case x.degree != y.degree:
		return cmpInt(x.degree, y.degree)
	default:
		return cmpInt(y.id, x.id)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// selector keeps every uncolored vertex in a red-black tree keyed by rank,
// so the best candidate is always the rightmost node.
type selector struct {
	tree  *redblacktree.Tree
	score []int
	deg   []int
}

func newSelector(deg []int) *selector {
	s := &selector{
		tree:  redblacktree.NewWith(compareRank),
		score: make([]int, len(deg)),
		deg:   deg,
	}
	for v, d := range deg {
		s.tree.Put(rank{degree: d, id: v}, nil)
	}

	return s
}

func (s *selector) key(v int) rank {
	return rank{score: s.score[v], degree: s.deg[v], id: v}
}

func (s *selector) empty() bool { return s.tree.Empty() }

// pop removes and returns the best candidate.
func (s *selector) pop() int {
	best := s.tree.Right().Key.(rank)
	s.tree.Remove(best)

	return best.id
}

// setScore moves v to its new position; v must still be in the tree.
func (s *selector) setScore(v, score int) {
	s.tree.Remove(s.key(v))
	s.score[v] = score
	s.tree.Put(s.key(v), nil)
}
