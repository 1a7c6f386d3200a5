package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/builder"
	"github.com/katalvlaran/chromatic/core"
)

func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(t, err)

	return g
}

func TestClassicShapes(t *testing.T) {
	cases := []struct {
		name     string
		con      builder.Constructor
		vertices int
		edges    int
		maxDeg   int
	}{
		{"path", builder.Path(5), 5, 4, 2},
		{"cycle", builder.Cycle(6), 6, 6, 2},
		{"star", builder.Star(5), 5, 4, 4},
		{"wheel", builder.Wheel(6), 6, 10, 5},
		{"complete", builder.Complete(5), 5, 10, 4},
		{"bipartite", builder.CompleteBipartite(2, 3), 5, 6, 3},
		{"grid", builder.Grid(3, 4), 12, 17, 4},
		{"crown", builder.Crown(4), 8, 12, 3},
		{"single", builder.Complete(1), 1, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, nil, tc.con)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
			assert.Equal(t, tc.maxDeg, g.MaxDegree())
		})
	}
}

func TestStar_CenterIsFirstID(t *testing.T) {
	g := build(t, nil, builder.Path(2), builder.Star(4))
	d, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 3, d)
	nbrs, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, nbrs)
}

func TestWheel_HubIsLastID(t *testing.T) {
	g := build(t, nil, builder.Wheel(5))
	d, err := g.Degree(4)
	require.NoError(t, err)
	assert.Equal(t, 4, d)
}

func TestBuildGraph_DisjointUnion(t *testing.T) {
	g := build(t, nil, builder.Cycle(3), builder.Path(3))
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}, {U: 3, V: 4}, {U: 4, V: 5}}, g.Edges())
}

func TestMycielski(t *testing.T) {
	cases := []struct{ k, vertices, edges int }{
		{2, 2, 1},
		{3, 5, 5},
		{4, 11, 20},
		{5, 23, 71},
	}
	for _, tc := range cases {
		g := build(t, nil, builder.Mycielski(tc.k))
		assert.Equal(t, tc.vertices, g.VertexCount(), "k=%d", tc.k)
		assert.Equal(t, tc.edges, g.EdgeCount(), "k=%d", tc.k)
		// triangle-free
		for _, e := range g.Edges() {
			nu, _ := g.Neighbors(e.U)
			for _, w := range nu {
				assert.False(t, g.HasEdge(e.V, w) && w != e.V, "triangle %d-%d-%d", e.U, e.V, w)
			}
		}
	}
}

func TestRandomSparse(t *testing.T) {
	a := build(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(30, 0.3))
	b := build(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(30, 0.3))
	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, 30, a.VertexCount())

	full := build(t, nil, builder.RandomSparse(5, 1))
	assert.Equal(t, 10, full.EdgeCount())
	empty := build(t, nil, builder.RandomSparse(5, 0))
	assert.Equal(t, 0, empty.EdgeCount())
}

func TestRandomRegular(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomRegular(12, 3))
	assert.Equal(t, 12, g.VertexCount())
	assert.Equal(t, 18, g.EdgeCount())
	for _, d := range g.Degrees() {
		assert.Equal(t, 3, d)
	}

	zero := build(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomRegular(4, 0))
	assert.Equal(t, 0, zero.EdgeCount())
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"path", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"cycle", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"star", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"wheel", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"complete", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"bipartite", builder.CompleteBipartite(0, 2), nil, builder.ErrTooFewVertices},
		{"grid", builder.Grid(2, 0), nil, builder.ErrTooFewVertices},
		{"crown", builder.Crown(1), nil, builder.ErrTooFewVertices},
		{"mycielski", builder.Mycielski(1), nil, builder.ErrTooFewVertices},
		{"sparse p", builder.RandomSparse(3, 1.5), nil, builder.ErrInvalidProbability},
		{"sparse rng", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"regular parity", builder.RandomRegular(5, 3), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"regular degree", builder.RandomRegular(4, 4), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"regular rng", builder.RandomRegular(4, 2), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.opts, tc.con)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWithRand_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}
