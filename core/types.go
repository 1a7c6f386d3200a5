// Package core defines the Graph and Edge types and the sentinel errors
// shared by its construction and query methods.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrAsymmetricAdjacency indicates an adjacency list that is not undirected.
	ErrAsymmetricAdjacency = errors.New("core: adjacency is not symmetric")

	// ErrNegativeSize indicates a negative vertex count.
	ErrNegativeSize = errors.New("core: negative vertex count")
)

// Edge is an undirected edge with U < V.
type Edge struct {
	U int
	V int
}

// Graph is an undirected simple graph over dense vertex ids 0..n-1.
//
// mu guards adj and edgeCount. adj[v] is the neighbor set of v; both
// directions of every edge are stored.
type Graph struct {
	mu sync.RWMutex

	adj       []map[int]struct{}
	edgeCount int
}

// NewGraph creates a Graph with n isolated vertices.
// A negative n is treated as zero; use AddVertices for checked growth.
// Complexity: O(n)
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{adj: make([]map[int]struct{}, n)}
	for i := range g.adj {
		g.adj[i] = make(map[int]struct{})
	}

	return g
}

// FromAdjacency builds a Graph from a per-vertex neighbor list, the shape
// {0:[1,3], 1:[0,2], ...} used throughout the coloring literature.
//
// Every neighbor must be in range, differ from its owner and be mirrored
// (v ∈ adj[u] ⟺ u ∈ adj[v]). Repeated entries in one row are tolerated.
// Complexity: O(V + E)
func FromAdjacency(adj [][]int) (*Graph, error) {
	g := NewGraph(len(adj))
	n := len(adj)
	for u, row := range adj {
		for _, v := range row {
			if v < 0 || v >= n {
				return nil, errorf("FromAdjacency", u, v, ErrVertexOutOfRange)
			}
			if u == v {
				return nil, errorf("FromAdjacency", u, v, ErrLoopNotAllowed)
			}
			g.adj[u][v] = struct{}{}
		}
	}
	// Symmetry check after all rows are in, so row order does not matter.
	for u := range g.adj {
		for v := range g.adj[u] {
			if _, ok := g.adj[v][u]; !ok {
				return nil, errorf("FromAdjacency", u, v, ErrAsymmetricAdjacency)
			}
			if u < v {
				g.edgeCount++
			}
		}
	}

	return g, nil
}
