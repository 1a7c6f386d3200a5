// Package report renders bench results as plain-text console tables.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/chromatic/bench"
)

// WriteColoring prints one row per instance with the color count and median
// time of every strategy in strategies. Failed instances print their error
// instead; a failed strategy prints "error" in its cell.
func WriteColoring(w io.Writer, reports []bench.Report, strategies []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	head := []string{"instance", "V", "E", "comp"}
	for _, s := range strategies {
		head = append(head, s+" k", s+" time")
	}
	fmt.Fprintln(tw, strings.Join(head, "\t"))

	for i := range reports {
		rep := &reports[i]
		if rep.Err != nil && len(rep.Results) == 0 {
			fmt.Fprintf(tw, "%s\terror: %v\n", rep.Instance, rep.Err)
			continue
		}
		row := []string{
			rep.Instance,
			fmt.Sprint(rep.Vertices),
			fmt.Sprint(rep.Edges),
			fmt.Sprint(rep.Components),
		}
		for _, s := range strategies {
			res, ok := rep.Result(s)
			switch {
			case !ok:
				row = append(row, "-", "-")
			case res.Err != nil:
				row = append(row, "error", "-")
			default:
				row = append(row, fmt.Sprint(res.Colors), seconds(res.Timing.Median))
			}
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// WriteIsomorphism prints one line per pair: "i) n = N +++ secs" when the
// pair may be isomorphic and "---" when refinement separated it.
func WriteIsomorphism(w io.Writer, results []bench.PairResult) error {
	for _, pr := range results {
		var err error
		switch {
		case pr.Err != nil:
			_, err = fmt.Fprintf(w, "%d) n = %d error: %v\n", pr.Index, pr.N, pr.Err)
		default:
			mark := "---"
			if pr.Possible {
				mark = "+++"
			}
			_, err = fmt.Fprintf(w, "%d) n = %d %s %s\n", pr.Index, pr.N, mark, seconds(pr.Elapsed))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
