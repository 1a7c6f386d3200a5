// Package dimacs reads and writes graphs in the DIMACS edge format used by
// the graph-coloring benchmark instances.
//
// Format
//
//	c <free text>        comment, ignored
//	p edge <N> <M>       problem line: N vertices, M edges ("col" is accepted too)
//	e <U> <V>            undirected edge, 1-based endpoints
//
// Blank lines are ignored. The problem line must come before any edge and
// carry exactly four tokens. Vertex u in the file becomes id u-1 in the
// returned core.Graph.
//
// Errors and warnings
//
// Malformed problem or edge lines, an unknown problem type, an edge before
// the problem line and a missing problem line are fatal: Parse returns a
// *ParseError wrapping ErrParse with the 1-based line number.
//
// Recoverable oddities are skipped, logged through klog and recorded on
// Instance.Warnings:
//
//   - RangeWarning      an endpoint outside 1..N
//   - LoopWarning       an edge from a vertex to itself
//   - DuplicateWarning  an edge listed twice (in either direction)
//   - UnknownWarning    a line whose kind is not c, p or e
//   - CountWarning      the number of edges read differs from M
package dimacs
