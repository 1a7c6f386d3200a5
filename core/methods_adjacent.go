// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, AdjacencyList).
//
// Determinism:
//   - Every returned neighbor slice is sorted ascending.
//   - Returned slices are independent copies; callers may mutate them.
package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the neighbors of v in ascending order.
//
// Errors:
//   - ErrVertexOutOfRange if v is not a vertex.
//
// Complexity: O(d log d), d = deg(v).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) {
		return nil, fmt.Errorf("core: Neighbors(%d): %w", v, ErrVertexOutOfRange)
	}

	return sortedKeys(g.adj[v]), nil
}

// AdjacencyList returns a snapshot adj where adj[v] lists the neighbors of
// v in ascending order. Algorithms take one snapshot up front and iterate
// it lock-free.
// Complexity: O(V + E log Δ).
func (g *Graph) AdjacencyList() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, len(g.adj))
	for v, nbrs := range g.adj {
		out[v] = sortedKeys(nbrs)
	}

	return out
}

// sortedKeys copies a neighbor set into an ascending slice.
func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
