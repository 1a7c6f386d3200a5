package bench_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/bench"
	"github.com/katalvlaran/chromatic/builder"
	"github.com/katalvlaran/chromatic/coloring"
	"github.com/katalvlaran/chromatic/dimacs"
	"github.com/katalvlaran/chromatic/store"
)

func testdata(name string) string { return filepath.Join("testdata", name) }

func TestNewRunner_Defaults(t *testing.T) {
	r, err := bench.NewRunner(bench.Config{})
	require.NoError(t, err)

	want := make([]string, 0)
	for _, k := range coloring.Kinds() {
		want = append(want, k.String())
	}
	assert.Equal(t, want, r.Strategies())
}

func TestNewRunner_UnknownKind(t *testing.T) {
	_, err := bench.NewRunner(bench.Config{Kinds: []coloring.Kind{coloring.Kind(99)}})
	assert.ErrorIs(t, err, coloring.ErrUnknownKind)
}

func TestRun_MixedBatch(t *testing.T) {
	r, err := bench.NewRunner(bench.Config{Repeat: 3, Verify: true})
	require.NoError(t, err)

	reps := r.Run(context.Background(), []string{
		testdata("triangle.col"),
		testdata("broken.col"),
		testdata("missing.col"),
	})
	require.Len(t, reps, 3)

	ok := reps[0]
	require.NoError(t, ok.Err)
	assert.Equal(t, "triangle.col", ok.Instance)
	assert.Equal(t, 4, ok.Vertices)
	assert.Equal(t, 3, ok.Edges)
	assert.Equal(t, 2, ok.Components)
	assert.Zero(t, ok.Warnings)
	require.Len(t, ok.Results, len(coloring.Kinds()))
	for _, res := range ok.Results {
		assert.NoError(t, res.Err, res.Strategy)
		assert.Equal(t, 3, res.Colors, res.Strategy)
		assert.True(t, res.Verified, res.Strategy)
		assert.Equal(t, 3, res.Timing.Runs, res.Strategy)
		assert.LessOrEqual(t, res.Timing.Min, res.Timing.Median)
		assert.LessOrEqual(t, res.Timing.Median, res.Timing.Max)
	}

	assert.ErrorIs(t, reps[1].Err, dimacs.ErrParse)
	assert.Equal(t, "broken.col", reps[1].Instance)
	assert.Empty(t, reps[1].Results)

	assert.ErrorIs(t, reps[2].Err, os.ErrNotExist)
}

func TestRun_OversizedHeaderDoesNotStopBatch(t *testing.T) {
	r, err := bench.NewRunner(bench.Config{Kinds: []coloring.Kind{coloring.KindFirstFit}})
	require.NoError(t, err)

	reps := r.Run(context.Background(), []string{testdata("huge.col"), testdata("triangle.col")})
	require.Len(t, reps, 2)

	assert.ErrorIs(t, reps[0].Err, dimacs.ErrParse)
	assert.Empty(t, reps[0].Results)

	require.NoError(t, reps[1].Err)
	require.Len(t, reps[1].Results, 1)
	assert.Equal(t, 3, reps[1].Results[0].Colors)
}

func TestRunGraph_CancelledBeforeComponents(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)
	r, err := bench.NewRunner(bench.Config{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep := r.RunGraph(ctx, "c5", g)
	assert.ErrorIs(t, rep.Err, context.Canceled)
	assert.Empty(t, rep.Results)
}

func TestRun_PersistsRecords(t *testing.T) {
	s, err := store.Open(store.Options{InMemory: true})
	require.NoError(t, err)
	defer s.Close()

	kinds := []coloring.Kind{coloring.KindWelshPowell, coloring.KindDSatur}
	r, err := bench.NewRunner(bench.Config{Kinds: kinds, Verify: true, Store: s})
	require.NoError(t, err)

	reps := r.Run(context.Background(), []string{testdata("triangle.col")})
	require.Len(t, reps, 1)
	require.NoError(t, reps[0].Err)

	recs, err := s.List("triangle.col")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.Equal(t, 3, rec.Colors)
		assert.True(t, rec.Verified)
		assert.Equal(t, 1, rec.Runs)
	}

	rec, err := s.Get("triangle.col", "dsatur")
	require.NoError(t, err)
	assert.Equal(t, 4, rec.Vertices)
}

func TestRun_Cancelled(t *testing.T) {
	r, err := bench.NewRunner(bench.Config{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reps := r.Run(ctx, []string{testdata("triangle.col"), testdata("triangle.col")})
	require.Len(t, reps, 2)
	for _, rep := range reps {
		assert.ErrorIs(t, rep.Err, context.Canceled)
	}
}

func TestRunGraph_Crown(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Crown(4))
	require.NoError(t, err)

	r, err := bench.NewRunner(bench.Config{
		Kinds:  []coloring.Kind{coloring.KindFirstFit, coloring.KindWelshPowell},
		Verify: true,
	})
	require.NoError(t, err)

	rep := r.RunGraph(context.Background(), "crown4", g)
	require.NoError(t, rep.Err)
	assert.Equal(t, 1, rep.Components)

	ff, ok := rep.Result("ff")
	require.True(t, ok)
	assert.Equal(t, 4, ff.Colors)

	wp, ok := rep.Result("wp")
	require.True(t, ok)
	assert.True(t, wp.Verified)

	_, ok = rep.Result("rlf")
	assert.False(t, ok)
}

func TestRunPairs(t *testing.T) {
	r, err := bench.NewRunner(bench.Config{})
	require.NoError(t, err)

	res, err := r.RunPairs(context.Background(), testdata("pairs.txt"))
	require.NoError(t, err)
	require.Len(t, res, 3)

	// C4 against a relabeled C4, P3 against K3, C6 against two triangles.
	possible := []bool{true, false, true}
	for i, pr := range res {
		assert.NoError(t, pr.Err)
		assert.Equal(t, i+1, pr.Index)
		assert.Equal(t, possible[i], pr.Possible, "pair %d", pr.Index)
		assert.GreaterOrEqual(t, pr.Elapsed, time.Duration(0))
	}
	assert.Equal(t, 6, res[2].N)
}

func TestRunPairs_MissingFile(t *testing.T) {
	r, err := bench.NewRunner(bench.Config{})
	require.NoError(t, err)

	_, err = r.RunPairs(context.Background(), testdata("nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
