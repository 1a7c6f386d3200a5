// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: ". Callers match with errors.Is;
// returned errors wrap these with the offending row, column or line.
var (
	// ErrBadShape is returned when a requested shape is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonBinary signals an entry other than 0 or 1.
	ErrNonBinary = errors.New("matrix: entry is not 0 or 1")

	// ErrAsymmetry signals a[i][j] != a[j][i] in an adjacency matrix.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a self-loop in an adjacency matrix.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrBadIncidenceColumn signals an incidence column without exactly two ones.
	ErrBadIncidenceColumn = errors.New("matrix: incidence column must mark two vertices")

	// ErrDuplicateEdge signals two incidence columns describing the same edge.
	ErrDuplicateEdge = errors.New("matrix: duplicate edge")

	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrParse signals malformed matrix text.
	ErrParse = errors.New("matrix: parse error")
)
