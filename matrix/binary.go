// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Binary is a dense row-major matrix of 0/1 entries.
type Binary struct {
	r, c int
	data []uint8
}

// NewBinary returns an r×c zero matrix; negative sizes yield ErrBadShape.
func NewBinary(r, c int) (*Binary, error) {
	if r < 0 || c < 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadShape, r, c)
	}

	return &Binary{r: r, c: c, data: make([]uint8, r*c)}, nil
}

// Rows returns the number of rows.
func (b *Binary) Rows() int { return b.r }

// Cols returns the number of columns.
func (b *Binary) Cols() int { return b.c }

// At returns the entry at (i, j).
func (b *Binary) At(i, j int) (int, error) {
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return 0, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfRange, i, j, b.r, b.c)
	}

	return int(b.data[i*b.c+j]), nil
}

// Set stores v at (i, j); v must be 0 or 1.
func (b *Binary) Set(i, j, v int) error {
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfRange, i, j, b.r, b.c)
	}
	if v != 0 && v != 1 {
		return fmt.Errorf("%w: %d at (%d,%d)", ErrNonBinary, v, i, j)
	}
	b.data[i*b.c+j] = uint8(v)

	return nil
}

func (b *Binary) at(i, j int) uint8 { return b.data[i*b.c+j] }

// String renders one row per line with no separators, the same layout
// ParseRows and ReadBinary accept.
func (b *Binary) String() string {
	var sb strings.Builder
	sb.Grow(b.r * (b.c + 1))
	for i := 0; i < b.r; i++ {
		for j := 0; j < b.c; j++ {
			sb.WriteByte('0' + b.at(i, j))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// ParseRows builds a matrix from rows of '0'/'1' characters. Spaces and
// tabs inside a row are ignored; every row must have the same width.
func ParseRows(rows []string) (*Binary, error) {
	if len(rows) == 0 {
		return &Binary{}, nil
	}
	parsed := make([][]uint8, len(rows))
	for i, row := range rows {
		for k, ch := range row {
			switch ch {
			case '0', '1':
				parsed[i] = append(parsed[i], uint8(ch-'0'))
			case ' ', '\t', '\r':
			default:
				return nil, fmt.Errorf("%w: row %d col %d: %q", ErrNonBinary, i, k, ch)
			}
		}
		if len(parsed[i]) != len(parsed[0]) {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrParse, i, len(parsed[i]), len(parsed[0]))
		}
	}

	b := &Binary{r: len(parsed), c: len(parsed[0])}
	b.data = make([]uint8, 0, b.r*b.c)
	for _, row := range parsed {
		b.data = append(b.data, row...)
	}

	return b, nil
}
