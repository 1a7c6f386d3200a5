// File: methods_vertices.go
// Role: Vertex growth and degree queries.
//
// Determinism:
//   - Vertex ids are handed out densely in call order.
//
// Concurrency:
//   - Mutators take mu for writing; queries take it for reading.
package core

import "fmt"

// errorf attaches method and endpoint context to a sentinel.
func errorf(method string, u, v int, err error) error {
	return fmt.Errorf("core: %s(%d,%d): %w", method, u, v, err)
}

// AddVertex appends one isolated vertex and returns its id.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj = append(g.adj, make(map[int]struct{}))

	return len(g.adj) - 1
}

// AddVertices appends k isolated vertices and returns the id of the first
// one, so callers can address the block as first..first+k-1.
//
// Errors:
//   - ErrNegativeSize if k < 0.
//
// Complexity: O(k).
func (g *Graph) AddVertices(k int) (int, error) {
	if k < 0 {
		return 0, fmt.Errorf("core: AddVertices(%d): %w", k, ErrNegativeSize)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.adj)
	for i := 0; i < k; i++ {
		g.adj = append(g.adj, make(map[int]struct{}))
	}

	return first, nil
}

// VertexCount returns n, the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// HasVertex reports whether v is a valid vertex id.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return v >= 0 && v < len(g.adj)
}

// Degree returns the number of neighbors of v.
//
// Errors:
//   - ErrVertexOutOfRange if v is not a vertex.
//
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) {
		return 0, fmt.Errorf("core: Degree(%d): %w", v, ErrVertexOutOfRange)
	}

	return len(g.adj[v]), nil
}

// Degrees returns the degree of every vertex, indexed by id.
// Complexity: O(V).
func (g *Graph) Degrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adj))
	for v, nbrs := range g.adj {
		out[v] = len(nbrs)
	}

	return out
}

// MaxDegree returns Δ(G), or 0 for a graph without vertices.
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var maxDeg int
	for _, nbrs := range g.adj {
		if len(nbrs) > maxDeg {
			maxDeg = len(nbrs)
		}
	}

	return maxDeg
}
