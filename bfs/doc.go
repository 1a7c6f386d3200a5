// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links and visit order, plus connected
// components.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  distance from start per vertex id (-1 when unreached)
//   - Parent: predecessor per vertex id (-1 for the root and unreached)
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (OnVisit may abort with an error).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds the search.
//   - Components(g) partitions the graph by repeated BFS from the lowest
//     unvisited id.
//
// Why
//
//   - BFS layers give an exact 2-coloring of bipartite graphs (coloring.TwoColor).
//   - Component counts are reported next to coloring results.
//
// Determinism
//
//	core.AdjacencyList returns neighbors sorted ascending and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx errors or hook errors
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start id is not a vertex.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
