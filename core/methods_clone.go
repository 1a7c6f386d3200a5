// File: methods_clone.go
// Role: Deep copies.
package core

// Clone returns a deep copy of the Graph. Mutating the clone never affects
// the source.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adj:       make([]map[int]struct{}, len(g.adj)),
		edgeCount: g.edgeCount,
	}
	for v, nbrs := range g.adj {
		cp := make(map[int]struct{}, len(nbrs))
		for u := range nbrs {
			cp[u] = struct{}{}
		}
		clone.adj[v] = cp
	}

	return clone
}
