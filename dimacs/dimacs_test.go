package dimacs_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/core"
	"github.com/katalvlaran/chromatic/dimacs"
)

func TestLoadFile_Myciel3(t *testing.T) {
	in, err := dimacs.LoadFile("testdata/myciel3.col")
	require.NoError(t, err)
	assert.Equal(t, "myciel3.col", in.Name)
	assert.Equal(t, "edge", in.Format)
	assert.Equal(t, 11, in.DeclaredVertices)
	assert.Equal(t, 20, in.DeclaredEdges)
	assert.Equal(t, 11, in.Graph.VertexCount())
	assert.Equal(t, 20, in.Graph.EdgeCount())
	assert.Empty(t, in.Warnings)
	assert.True(t, in.Graph.HasEdge(0, 1))
	assert.True(t, in.Graph.HasEdge(10, 9))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := dimacs.LoadFile("testdata/nope.col")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.col")
}

func TestParse_CommentsAndBlankLines(t *testing.T) {
	src := "c hello\n\n   \np col 3 2\nc between\ne 1 2\n\ne 2 3\n"
	in, err := dimacs.Parse(strings.NewReader(src), "small")
	require.NoError(t, err)
	assert.Equal(t, "col", in.Format)
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, in.Graph.Edges())
	assert.Empty(t, in.Warnings)
}

func TestParse_Warnings(t *testing.T) {
	src := strings.Join([]string{
		"p edge 3 5",
		"e 1 2",
		"e 2 1",  // duplicate
		"e 1 4",  // out of range
		"e 0 1",  // out of range
		"e 3 3",  // loop
		"n 1 10", // unknown kind
		"e 2 3",
	}, "\n")
	in, err := dimacs.Parse(strings.NewReader(src), "warn")
	require.NoError(t, err)

	assert.Equal(t, 2, in.Graph.EdgeCount())
	assert.Equal(t, 1, in.Count(dimacs.DuplicateWarning))
	assert.Equal(t, 2, in.Count(dimacs.RangeWarning))
	assert.Equal(t, 1, in.Count(dimacs.LoopWarning))
	assert.Equal(t, 1, in.Count(dimacs.UnknownWarning))
	assert.Equal(t, 1, in.Count(dimacs.CountWarning))

	assert.Equal(t, 3, in.Warnings[0].Line)
	assert.Equal(t, "line 4: range: edge (1,4) outside 1..3, skipped", in.Warnings[1].String())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		line int
	}{
		{"missing header", "c only comments\n", 1},
		{"empty input", "", 0},
		{"edge before header", "e 1 2\np edge 2 1\n", 1},
		{"short header", "p edge 4\n", 1},
		{"long header", "p edge 4 2 9\n", 1},
		{"unknown type", "p graph 4 2\n", 1},
		{"non-numeric count", "p edge four 2\n", 1},
		{"negative count", "p edge -4 2\n", 1},
		{"huge count", "p edge 4611686018427387904 0\n", 1},
		{"count above limit", "c big\np edge 4194305 0\n", 2},
		{"second header", "p edge 2 0\np edge 2 0\n", 2},
		{"short edge", "p edge 2 1\ne 1\n", 2},
		{"long edge", "p edge 3 1\ne 1 2 3\n", 2},
		{"non-numeric edge", "p edge 3 1\ne 1 two\n", 2},
		{"glued edge", "p edge 3 1\ne 1 2x\n", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dimacs.Parse(strings.NewReader(tc.src), tc.name)
			require.Error(t, err)
			assert.ErrorIs(t, err, dimacs.ErrParse)

			var pe *dimacs.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
			assert.Equal(t, tc.name, pe.Name)
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(3, 1))
	require.NoError(t, g.AddEdge(2, 3))

	var buf bytes.Buffer
	require.NoError(t, dimacs.Write(&buf, g, "generated\nby test"))
	assert.Equal(t, "c generated\nc by test\np edge 4 3\ne 1 2\ne 2 4\ne 3 4\n", buf.String())

	in, err := dimacs.Parse(&buf, "roundtrip")
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), in.Graph.Edges())
	assert.Empty(t, in.Warnings)

	assert.Error(t, dimacs.Write(&buf, nil))
}
