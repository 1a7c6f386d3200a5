// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/chromatic/core"
)

// Pair is one instance of an isomorphism instance file.
type Pair struct {
	// Index is the 1-based position of the pair in the stream.
	Index int
	// N is the declared order of both graphs.
	N      int
	G1, G2 *core.Graph
}

// MaxOrder bounds the order of a matrix read from text.
const MaxOrder = 1 << 14

// scanner walks whitespace-separated tokens and hands out matrix digits
// one at a time across token boundaries.
type scanner struct {
	s     *bufio.Scanner
	tok   string
	pos   int
	count int
}

func newScanner(r io.Reader) *scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	s.Split(bufio.ScanWords)

	return &scanner{s: s}
}

// next returns the next whole token, discarding any unread digits.
func (sc *scanner) next() (string, bool) {
	if sc.pos < len(sc.tok) {
		t := sc.tok[sc.pos:]
		sc.pos = len(sc.tok)
		return t, true
	}
	if !sc.s.Scan() {
		return "", false
	}
	sc.count++
	sc.tok, sc.pos = sc.s.Text(), len(sc.s.Text())

	return sc.tok, true
}

func (sc *scanner) digit() (uint8, error) {
	for sc.pos >= len(sc.tok) {
		if !sc.s.Scan() {
			if err := sc.s.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		sc.count++
		sc.tok, sc.pos = sc.s.Text(), 0
	}
	ch := sc.tok[sc.pos]
	sc.pos++
	if ch != '0' && ch != '1' {
		return 0, fmt.Errorf("%w: token %d: %q", ErrNonBinary, sc.count, ch)
	}

	return ch - '0', nil
}

func (sc *scanner) order() (int, bool, error) {
	tok, ok := sc.next()
	if !ok {
		return 0, false, sc.s.Err()
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, false, fmt.Errorf("%w: token %d: bad order %q", ErrParse, sc.count, tok)
	}
	if n > MaxOrder {
		return 0, false, fmt.Errorf("%w: token %d: order %d exceeds %d", ErrParse, sc.count, n, MaxOrder)
	}

	return n, true, nil
}

func (sc *scanner) square(n int) (*Binary, error) {
	b := &Binary{r: n, c: n, data: make([]uint8, n*n)}
	for k := range b.data {
		d, err := sc.digit()
		if err != nil {
			return nil, fmt.Errorf("%w: reading %d×%d matrix: %w", ErrParse, n, n, err)
		}
		b.data[k] = d
	}
	// a row token longer than n digits is malformed
	if sc.pos != len(sc.tok) {
		return nil, fmt.Errorf("%w: token %d: trailing digits %q", ErrParse, sc.count, sc.tok[sc.pos:])
	}

	return b, nil
}

// ReadBinary reads a single square matrix: its order followed by its rows.
func ReadBinary(r io.Reader) (*Binary, error) {
	sc := newScanner(r)
	n, ok, err := sc.order()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}

	return sc.square(n)
}

// ReadPairs reads every "n, matrix1, matrix2" instance from r until EOF and
// converts both matrices to graphs. The first malformed instance stops the
// read; pairs decoded before it are returned along with the error.
func ReadPairs(r io.Reader) ([]Pair, error) {
	sc := newScanner(r)
	var out []Pair
	for idx := 1; ; idx++ {
		n, ok, err := sc.order()
		if err != nil {
			return out, fmt.Errorf("pair %d: %w", idx, err)
		}
		if !ok {
			return out, nil
		}
		p := Pair{Index: idx, N: n}
		for _, dst := range []**core.Graph{&p.G1, &p.G2} {
			b, err := sc.square(n)
			if err != nil {
				return out, fmt.Errorf("pair %d: %w", idx, err)
			}
			if *dst, err = AdjacencyToGraph(b); err != nil {
				return out, fmt.Errorf("pair %d: %w", idx, err)
			}
		}
		out = append(out, p)
	}
}
