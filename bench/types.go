package bench

import (
	"time"

	"github.com/aclements/go-moremath/stats"

	"github.com/katalvlaran/chromatic/coloring"
	"github.com/katalvlaran/chromatic/store"
)

// Config controls a Runner.
type Config struct {
	// Kinds lists the strategies to run, in report order. Empty means all.
	Kinds []coloring.Kind
	// Repeat is the number of timed runs per strategy; values below 1 mean 1.
	Repeat int
	// Verify checks every coloring with coloring.Verify.
	Verify bool
	// Store, if set, receives one Record per instance and strategy.
	Store *store.Store
}

// Timing summarises the wall-clock durations of repeated runs.
type Timing struct {
	Runs                           int
	Median, Mean, StdDev, Min, Max time.Duration
}

func summarize(ds []time.Duration) Timing {
	if len(ds) == 0 {
		return Timing{}
	}
	xs := make([]float64, len(ds))
	for i, d := range ds {
		xs[i] = float64(d)
	}
	s := stats.Sample{Xs: xs}
	s.Sort()
	lo, hi := s.Bounds()
	t := Timing{
		Runs:   len(ds),
		Median: time.Duration(s.Quantile(0.5)),
		Mean:   time.Duration(s.Mean()),
		Min:    time.Duration(lo),
		Max:    time.Duration(hi),
	}
	if len(ds) > 1 {
		t.StdDev = time.Duration(s.StdDev())
	}

	return t
}

// Result is one strategy's outcome on one instance.
type Result struct {
	Strategy string
	Colors   int
	Verified bool
	Timing   Timing
	Err      error
}

// Report collects everything measured for one instance.
type Report struct {
	Instance   string
	Path       string
	Vertices   int
	Edges      int
	Components int
	Warnings   int
	Results    []Result
	// Err is set when the instance could not be loaded or the run was cancelled.
	Err error
}

// Result returns the result for strategy name, if any.
func (r *Report) Result(name string) (Result, bool) {
	for _, res := range r.Results {
		if res.Strategy == name {
			return res, true
		}
	}

	return Result{}, false
}

// PairResult is the outcome of one isomorphism instance.
type PairResult struct {
	Index    int
	N        int
	Possible bool
	Rounds   int
	Elapsed  time.Duration
	Err      error
}
