// Package chromatic collects greedy graph coloring heuristics and the
// color refinement isomorphism filter, together with the loaders and
// drivers that run them over benchmark instances.
//
// What is in here?
//
//	core/      Graph: simple undirected graph over dense ids 0..V-1, thread-safe
//	coloring/  FirstFit, LargestDegreeOrdering, WelshPowell, IDO, DSatur, RLF, TwoColor, Verify
//	refine/    color refinement (1-WL) and the PossiblyIsomorphic filter
//	bfs/       breadth-first search and connected components
//	matrix/    0/1 adjacency and incidence matrices, pair instance reader
//	dimacs/    DIMACS .col loader and writer
//	builder/   deterministic and seeded random fixture graphs
//	pbm/       P1 bitmap codec with dilate and erode
//	store/     Badger-backed result history
//	bench/     batch runner with timing statistics
//	report/    console tables
//	cmd/chromatic  the command line front end
//
// Quick example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	g, _ := builder.BuildGraph(nil, builder.Cycle(4))
//	c, _ := coloring.NewWelshPowell().Color(g)   // c.Count == 2
//
// Every strategy is deterministic: the same graph always yields the same
// Coloring, ties being broken by ascending vertex id.
//
//	go install github.com/katalvlaran/chromatic/cmd/chromatic@latest
package chromatic
