package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/chromatic/bench"
	"github.com/katalvlaran/chromatic/builder"
	"github.com/katalvlaran/chromatic/coloring"
	"github.com/katalvlaran/chromatic/dimacs"
	"github.com/katalvlaran/chromatic/pbm"
	"github.com/katalvlaran/chromatic/report"
	"github.com/katalvlaran/chromatic/store"
)

var errUsage = errors.New("bad usage")

type command func(ctx context.Context, args []string, out io.Writer) error

var commands = map[string]command{
	"color":  cmdColor,
	"iso":    cmdIso,
	"dilate": cmdDilate,
	"gen":    cmdGen,
	"runs":   cmdRuns,
}

// run dispatches args[0] to its subcommand; interrupts cancel the context.
func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.Wrap(errUsage, "missing subcommand")
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return errors.Wrapf(errUsage, "unknown subcommand %q", args[0])
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cmd(ctx, args[1:], out)
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

// openStore returns nil when dir is empty.
func openStore(dir string) (*store.Store, error) {
	if dir == "" {
		return nil, nil
	}

	return store.Open(store.Options{Dir: dir})
}

func cmdColor(ctx context.Context, args []string, out io.Writer) error {
	fs := newFlagSet("color")
	kinds := fs.String("kinds", "ff,ldo,wp", "comma-separated strategies: "+kindList())
	repeat := fs.Int("repeat", 1, "timed runs per strategy")
	verify := fs.Bool("verify", false, "check every coloring for conflicts")
	dbDir := fs.String("db", "", "persist results to this directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.Wrap(errUsage, "color: no input files")
	}

	ks, err := coloring.ParseKinds(*kinds)
	if err != nil {
		return err
	}
	st, err := openStore(*dbDir)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
	}

	r, err := bench.NewRunner(bench.Config{Kinds: ks, Repeat: *repeat, Verify: *verify, Store: st})
	if err != nil {
		return err
	}
	reps := r.Run(ctx, fs.Args())
	if err := report.WriteColoring(out, reps, r.Strategies()); err != nil {
		return err
	}
	for _, rep := range reps {
		if rep.Warnings > 0 {
			klog.V(1).Infof("%s: %d warnings while loading", rep.Instance, rep.Warnings)
		}
	}

	return nil
}

func kindList() string {
	names := make([]string, 0, len(coloring.Kinds()))
	for _, k := range coloring.Kinds() {
		names = append(names, k.String())
	}

	return strings.Join(names, ",")
}

func cmdIso(ctx context.Context, args []string, out io.Writer) error {
	fs := newFlagSet("iso")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.Wrap(errUsage, "iso: want exactly one instance file")
	}

	r, err := bench.NewRunner(bench.Config{})
	if err != nil {
		return err
	}
	res, readErr := r.RunPairs(ctx, fs.Arg(0))
	if err := report.WriteIsomorphism(out, res); err != nil {
		return err
	}

	return readErr
}

func cmdDilate(_ context.Context, args []string, out io.Writer) error {
	fs := newFlagSet("dilate")
	erode := fs.Bool("erode", false, "erode instead of dilate")
	steps := fs.Int("steps", 1, "number of passes")
	dst := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 || *steps < 1 {
		return errors.Wrap(errUsage, "dilate: want one input file and -steps >= 1")
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return errors.Wrap(err, "dilate")
	}
	defer f.Close()
	img, err := pbm.Read(f)
	if err != nil {
		return errors.Wrapf(err, "dilate: %s", fs.Arg(0))
	}

	op := pbm.Dilate
	if *erode {
		op = pbm.Erode
	}
	for i := 0; i < *steps; i++ {
		img = op(img)
	}

	return writeTo(*dst, out, func(w io.Writer) error { return pbm.Write(w, img) })
}

func cmdGen(_ context.Context, args []string, out io.Writer) error {
	fs := newFlagSet("gen")
	shape := fs.String("shape", "cycle", "path|cycle|star|wheel|complete|bipartite|grid|crown|mycielski|sparse|regular")
	n := fs.Int("n", 10, "vertex count, first side, rows or order depending on -shape")
	k := fs.Int("k", 3, "second side, columns or degree depending on -shape")
	p := fs.Float64("p", 0.1, "edge probability for -shape sparse")
	seed := fs.Int64("seed", 1, "random seed")
	dst := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cons, err := constructor(*shape, *n, *k, *p)
	if err != nil {
		return err
	}
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(*seed)}, cons)
	if err != nil {
		return err
	}
	comment := fmt.Sprintf("%s n=%d k=%d p=%g seed=%d", *shape, *n, *k, *p, *seed)

	return writeTo(*dst, out, func(w io.Writer) error { return dimacs.Write(w, g, comment) })
}

// constructor maps a -shape name to its builder.
func constructor(shape string, n, k int, p float64) (builder.Constructor, error) {
	switch strings.ToLower(shape) {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "bipartite":
		return builder.CompleteBipartite(n, k), nil
	case "grid":
		return builder.Grid(n, k), nil
	case "crown":
		return builder.Crown(n), nil
	case "mycielski":
		return builder.Mycielski(n), nil
	case "sparse":
		return builder.RandomSparse(n, p), nil
	case "regular":
		return builder.RandomRegular(n, k), nil
	default:
		return nil, errors.Wrapf(errUsage, "gen: unknown shape %q", shape)
	}
}

func cmdRuns(_ context.Context, args []string, out io.Writer) error {
	fs := newFlagSet("runs")
	dbDir := fs.String("db", "", "result directory written by color -db")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dbDir == "" || fs.NArg() > 1 {
		return errors.Wrap(errUsage, "runs: want -db DIR and at most one instance")
	}

	st, err := openStore(*dbDir)
	if err != nil {
		return err
	}
	defer st.Close()
	recs, err := st.List(fs.Arg(0))
	if err != nil {
		return err
	}
	for _, rec := range recs {
		fmt.Fprintf(out, "%s\t%s\tk=%d\tverified=%t\tmedian=%v\truns=%d\t%s\n",
			rec.Instance, rec.Strategy, rec.Colors, rec.Verified, rec.Median, rec.Runs,
			rec.At.Format("2006-01-02 15:04:05"))
	}

	return nil
}

// writeTo calls fn on the file at path, or on out when path is empty.
func writeTo(path string, out io.Writer, fn func(io.Writer) error) error {
	if path == "" {
		return fn(out)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
