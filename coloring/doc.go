// Package coloring implements greedy vertex-coloring heuristics over a
// core.Graph behind a single Strategy interface.
//
// What
//
//   - FirstFit                 vertices in ascending id order.
//   - LargestDegreeOrdering    vertices by degree descending (stable on id).
//   - WelshPowell              same order, one color class per pass.
//   - IncidenceDegreeOrdering  next vertex has most colored neighbors.
//   - DSatur                   next vertex has most distinct neighbor colors.
//   - RecursiveLargestFirst    builds one maximal independent class at a time.
//   - TwoColor                 exact 2-coloring of bipartite graphs via BFS layers.
//
// Every strategy except WelshPowell and RecursiveLargestFirst gives the
// selected vertex the smallest color in 1..n not used by an already colored
// neighbor. Ties are always broken by ascending vertex id, so every run on
// the same graph yields the same Coloring.
//
// Coloring
//
//	Colors[v] ≥ 1 is the color of vertex v, Count is the largest color used
//	and Order records the sequence in which vertices were colored. A graph
//	with no vertices yields an empty Coloring with Count 0.
//
// Selection
//
//	s, err := coloring.New(coloring.KindDSatur)
//	c, err := s.Color(g)
//	err = coloring.Verify(g, c)
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - FirstFit, LargestDegreeOrdering: O(V log V + E)
//   - WelshPowell:                     O(k·(V + E)) for k colors
//   - IncidenceDegreeOrdering, DSatur: O((V + E) log V)
//   - RecursiveLargestFirst:           O(k·V² ) worst case
//   - TwoColor:                        O(V + E)
//
// Errors
//
//   - ErrGraphNil          nil graph.
//   - ErrNotBipartite      TwoColor on a graph with an odd cycle.
//   - ErrSizeMismatch, ErrUncolored, ErrImproperColoring from Verify.
//   - ErrUnknownKind       from New and ParseKind.
package coloring
