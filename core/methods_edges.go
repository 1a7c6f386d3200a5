// File: methods_edges.go
// Role: Edge insertion and edge queries.
//
// Determinism:
//   - Edges() is sorted by (U, V) ascending with U < V.
package core

import "sort"

// AddEdge inserts the undirected edge {u, v}.
//
// Implementation:
//   - Stage 1: Validate both endpoints under the write lock.
//   - Stage 2: Reject loops and parallel edges.
//   - Stage 3: Mirror the edge into adj[u] and adj[v].
//
// Errors:
//   - ErrVertexOutOfRange if either endpoint is not a vertex.
//   - ErrLoopNotAllowed if u == v.
//   - ErrMultiEdgeNotAllowed if {u, v} already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adj)
	if u < 0 || u >= n || v < 0 || v >= n {
		return errorf("AddEdge", u, v, ErrVertexOutOfRange)
	}
	if u == v {
		return errorf("AddEdge", u, v, ErrLoopNotAllowed)
	}
	if _, dup := g.adj[u][v]; dup {
		return errorf("AddEdge", u, v, ErrMultiEdgeNotAllowed)
	}

	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether {u, v} is an edge. Out-of-range ids yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= len(g.adj) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once, with U < V, sorted by (U, V).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adj {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}
