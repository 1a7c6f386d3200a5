// Package core provides the dense, undirected, simple Graph every coloring
// and refinement algorithm in this module consumes.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are dense integers 0..n-1 (no string catalog, no metadata).
//   - Edges are undirected and unweighted; u ∈ N(v) ⟺ v ∈ N(u).
//   - Self-loops and parallel edges are rejected with sentinel errors.
//   - A sync.RWMutex guards adjacency so a Graph may be read by many
//     goroutines at once; algorithms work on an AdjacencyList() snapshot.
//
// Why a dense graph?
//
//   - Coloring heuristics index colors, degrees and flags by vertex id;
//     slices beat hashing for every hot loop in this module.
//   - DIMACS instances and 0/1 matrices already number their vertices.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int) *Graph                      // O(n)
//	FromAdjacency(adj [][]int) (*Graph, error)  // O(V+E), validates symmetry
//	AddVertex() int                             // O(1), returns the new id
//	AddVertices(k int) (int, error)             // O(k), returns the first new id
//	AddEdge(u, v int) error                     // O(1) amortized
//
//	// Query
//	HasEdge(u, v int) bool                      // O(1)
//	Neighbors(v int) ([]int, error)             // O(d log d), ascending
//	Degree(v int) (int, error)                  // O(1)
//	Degrees() []int                             // O(V)
//	MaxDegree() int                             // O(V)
//	VertexCount() int / EdgeCount() int         // O(1)
//	Edges() []Edge                              // O(E log E), U < V
//	AdjacencyList() [][]int                     // O(V + E log d), independent copy
//
//	// Cloning
//	Clone() *Graph                              // O(V+E)
//
// Errors:
//
//	ErrVertexOutOfRange    – vertex id outside [0, n)
//	ErrLoopNotAllowed      – u == v
//	ErrMultiEdgeNotAllowed – edge already present
//	ErrAsymmetricAdjacency – FromAdjacency got v ∈ adj[u] without u ∈ adj[v]
//	ErrNegativeSize        – AddVertices with a negative count
package core
