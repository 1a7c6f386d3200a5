// Package matrix reads 0/1 adjacency and incidence matrices and converts
// them to and from core.Graph.
//
// The matrix package provides:
//
//   - Binary, a dense row-major n×m matrix of 0/1 entries.
//   - AdjacencyToGraph / FromGraph for square symmetric adjacency matrices.
//   - IncidenceToGraph / IncidenceFromGraph for vertex-by-edge matrices
//     where every column marks exactly two endpoints.
//   - ReadBinary and ReadPairs for the text format used by isomorphism
//     instance files: an order n followed by n rows of n digits.
//
// Rows may be written as one token ("0110") or as separate digits
// ("0 1 1 0"); any whitespace between digits is ignored.
package matrix
