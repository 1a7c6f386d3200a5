package matrix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/core"
	"github.com/katalvlaran/chromatic/matrix"
)

func TestBinary_AtSet(t *testing.T) {
	b, err := matrix.NewBinary(2, 3)
	require.NoError(t, err)
	require.NoError(t, b.Set(1, 2, 1))
	v, err := b.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, "000\n001\n", b.String())

	_, err = b.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, b.Set(0, 0, 2), matrix.ErrNonBinary)
	assert.ErrorIs(t, b.Set(0, -1, 1), matrix.ErrOutOfRange)

	_, err = matrix.NewBinary(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestParseRows(t *testing.T) {
	b, err := matrix.ParseRows([]string{"0 1", "10"})
	require.NoError(t, err)
	assert.Equal(t, 2, b.Rows())
	assert.Equal(t, 2, b.Cols())
	assert.Equal(t, "01\n10\n", b.String())

	_, err = matrix.ParseRows([]string{"01", "1"})
	assert.ErrorIs(t, err, matrix.ErrParse)
	_, err = matrix.ParseRows([]string{"02", "10"})
	assert.ErrorIs(t, err, matrix.ErrNonBinary)
}

func TestAdjacencyToGraph(t *testing.T) {
	b, err := matrix.ParseRows([]string{"0101", "1010", "0101", "1010"})
	require.NoError(t, err)
	g, err := matrix.AdjacencyToGraph(b)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 3}, {U: 1, V: 2}, {U: 2, V: 3}}, g.Edges())

	back, err := matrix.FromGraph(g)
	require.NoError(t, err)
	assert.Equal(t, b.String(), back.String())
}

func TestAdjacencyToGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want error
	}{
		{"non-square", []string{"010", "101"}, matrix.ErrNonSquare},
		{"diagonal", []string{"11", "10"}, matrix.ErrNonZeroDiagonal},
		{"asymmetric", []string{"01", "00"}, matrix.ErrAsymmetry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := matrix.ParseRows(tc.rows)
			require.NoError(t, err)
			_, err = matrix.AdjacencyToGraph(b)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromGraph_Nil(t *testing.T) {
	_, err := matrix.FromGraph(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
	_, err = matrix.IncidenceFromGraph(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestIncidence(t *testing.T) {
	// triangle: columns (0,1) (0,2) (1,2), plus an empty column
	b, err := matrix.ParseRows([]string{"1100", "1010", "0110"})
	require.NoError(t, err)
	g, err := matrix.IncidenceToGraph(b)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 2))

	inc, err := matrix.IncidenceFromGraph(g)
	require.NoError(t, err)
	assert.Equal(t, "110\n101\n011\n", inc.String())
}

func TestIncidence_Errors(t *testing.T) {
	b, err := matrix.ParseRows([]string{"1", "1", "1"})
	require.NoError(t, err)
	_, err = matrix.IncidenceToGraph(b)
	assert.ErrorIs(t, err, matrix.ErrBadIncidenceColumn)

	b, err = matrix.ParseRows([]string{"11", "11"})
	require.NoError(t, err)
	_, err = matrix.IncidenceToGraph(b)
	assert.ErrorIs(t, err, matrix.ErrDuplicateEdge)
}

func TestReadBinary(t *testing.T) {
	b, err := matrix.ReadBinary(strings.NewReader("3\n0 1 0\n1 0 1\n0 1 0\n"))
	require.NoError(t, err)
	assert.Equal(t, "010\n101\n010\n", b.String())

	_, err = matrix.ReadBinary(strings.NewReader(""))
	assert.ErrorIs(t, err, matrix.ErrParse)
	_, err = matrix.ReadBinary(strings.NewReader("2\n01\n1"))
	assert.ErrorIs(t, err, matrix.ErrParse)
	_, err = matrix.ReadBinary(strings.NewReader("2\n010\n100"))
	assert.ErrorIs(t, err, matrix.ErrParse)
	_, err = matrix.ReadBinary(strings.NewReader("x"))
	assert.ErrorIs(t, err, matrix.ErrParse)
}

const pairs = `3
011
101
110
3
010
101
010
4
0101
1010
0101
1010
0011
0011
1100
1100
`

func TestReadPairs(t *testing.T) {
	ps, err := matrix.ReadPairs(strings.NewReader(pairs))
	require.NoError(t, err)
	require.Len(t, ps, 2)

	assert.Equal(t, 1, ps[0].Index)
	assert.Equal(t, 3, ps[0].N)
	assert.Equal(t, 3, ps[0].G1.EdgeCount())
	assert.Equal(t, 2, ps[0].G2.EdgeCount())

	assert.Equal(t, 2, ps[1].Index)
	assert.Equal(t, 4, ps[1].G1.EdgeCount())
	assert.True(t, ps[1].G2.HasEdge(0, 2))
}

func TestReadPairs_StopsAtBrokenPair(t *testing.T) {
	in := pairs + "2\n01\n11\n00\n00\n"
	ps, err := matrix.ReadPairs(strings.NewReader(in))
	assert.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)
	assert.Len(t, ps, 2)
	assert.Contains(t, err.Error(), "pair 3")

	for _, order := range []string{"5000000000", "16385"} {
		ps, err = matrix.ReadPairs(strings.NewReader(pairs + order + "\n0\n"))
		assert.ErrorIs(t, err, matrix.ErrParse, order)
		assert.Len(t, ps, 2, order)
	}

	_, err = matrix.ReadBinary(strings.NewReader("99999999999\n"))
	assert.ErrorIs(t, err, matrix.ErrParse)
}
