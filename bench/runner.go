package bench

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/chromatic/bfs"
	"github.com/katalvlaran/chromatic/coloring"
	"github.com/katalvlaran/chromatic/core"
	"github.com/katalvlaran/chromatic/dimacs"
	"github.com/katalvlaran/chromatic/matrix"
	"github.com/katalvlaran/chromatic/refine"
	"github.com/katalvlaran/chromatic/store"
)

// Runner executes batches according to its Config.
type Runner struct {
	cfg        Config
	strategies []coloring.Strategy
	now        func() time.Time
}

// NewRunner validates cfg and builds the configured strategies.
func NewRunner(cfg Config) (*Runner, error) {
	if len(cfg.Kinds) == 0 {
		cfg.Kinds = coloring.Kinds()
	}
	if cfg.Repeat < 1 {
		cfg.Repeat = 1
	}
	r := &Runner{cfg: cfg, now: time.Now}
	for _, k := range cfg.Kinds {
		s, err := coloring.New(k)
		if err != nil {
			return nil, errors.Wrap(err, "bench: configure")
		}
		r.strategies = append(r.strategies, s)
	}

	return r, nil
}

// Strategies returns the strategy names in report order.
func (r *Runner) Strategies() []string {
	out := make([]string, len(r.strategies))
	for i, s := range r.strategies {
		out[i] = s.Name()
	}

	return out
}

// Run processes every DIMACS file in paths in order. It returns one Report
// per path; once ctx is done the remaining reports carry ctx.Err().
func (r *Runner) Run(ctx context.Context, paths []string) []Report {
	out := make([]Report, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			out = append(out, Report{Instance: filepath.Base(path), Path: path, Err: err})
			continue
		}
		in, err := dimacs.LoadFile(path)
		if err != nil {
			klog.Errorf("bench: %s: %v", path, err)
			out = append(out, Report{Instance: filepath.Base(path), Path: path, Err: err})
			continue
		}
		rep := r.RunGraph(ctx, in.Name, in.Graph)
		rep.Path = path
		rep.Warnings = len(in.Warnings)
		out = append(out, rep)
	}

	return out
}

// RunGraph runs every strategy on g, recorded under the given instance name.
func (r *Runner) RunGraph(ctx context.Context, name string, g *core.Graph) Report {
	rep := Report{Instance: name, Vertices: g.VertexCount(), Edges: g.EdgeCount()}
	comps, err := bfs.Components(g, bfs.WithContext(ctx))
	if err != nil {
		rep.Err = err
		return rep
	}
	rep.Components = len(comps)
	klog.V(2).Infof("bench: %s: %d vertices, %d edges", name, rep.Vertices, rep.Edges)

	for _, s := range r.strategies {
		if err := ctx.Err(); err != nil {
			rep.Err = err
			return rep
		}
		res := r.runStrategy(s, g)
		if res.Err == nil && r.cfg.Store != nil {
			res.Err = r.persist(rep, res)
		}
		if res.Err != nil {
			klog.Errorf("bench: %s/%s: %v", name, res.Strategy, res.Err)
		}
		rep.Results = append(rep.Results, res)
	}

	return rep
}

func (r *Runner) runStrategy(s coloring.Strategy, g *core.Graph) Result {
	res := Result{Strategy: s.Name()}
	durations := make([]time.Duration, 0, r.cfg.Repeat)
	var c *coloring.Coloring
	for i := 0; i < r.cfg.Repeat; i++ {
		start := r.now()
		var err error
		c, err = s.Color(g)
		durations = append(durations, r.now().Sub(start))
		if err != nil {
			res.Err = err
			return res
		}
	}
	res.Colors = c.Count
	res.Timing = summarize(durations)
	if r.cfg.Verify {
		if err := coloring.Verify(g, c); err != nil {
			res.Err = err
			return res
		}
		res.Verified = true
	}

	return res
}

func (r *Runner) persist(rep Report, res Result) error {
	return r.cfg.Store.Put(store.Record{
		Instance: rep.Instance,
		Strategy: res.Strategy,
		Vertices: rep.Vertices,
		Edges:    rep.Edges,
		Colors:   res.Colors,
		Verified: res.Verified,
		Runs:     res.Timing.Runs,
		Median:   res.Timing.Median,
		Mean:     res.Timing.Mean,
		StdDev:   res.Timing.StdDev,
		Min:      res.Timing.Min,
		Max:      res.Timing.Max,
		At:       r.now().UTC(),
	})
}

// RunPairs reads the isomorphism instance file at path and filters every
// pair with refine.Compare. Pairs decoded before a malformed one are still
// run; the read error is returned alongside their results.
func (r *Runner) RunPairs(ctx context.Context, path string) ([]PairResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "bench: open %s", path)
	}
	defer f.Close()

	pairs, readErr := matrix.ReadPairs(f)
	if readErr != nil {
		klog.Warningf("bench: %s: %v", path, readErr)
		readErr = errors.Wrapf(readErr, "bench: %s", path)
	}

	out := make([]PairResult, 0, len(pairs))
	for _, p := range pairs {
		pr := PairResult{Index: p.Index, N: p.N}
		if err := ctx.Err(); err != nil {
			pr.Err = err
			out = append(out, pr)
			continue
		}
		start := r.now()
		cmp, err := refine.Compare(p.G1, p.G2)
		pr.Elapsed = r.now().Sub(start)
		if err != nil {
			pr.Err = err
		} else {
			pr.Possible, pr.Rounds = cmp.Possible, cmp.Rounds
		}
		out = append(out, pr)
	}

	return out, readErr
}
