package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/chromatic/core"
)

// Write emits g as a "p edge" file, one "c" line per comment line first.
// Vertex ids are shifted to 1-based and edges are written in g.Edges() order.
func Write(w io.Writer, g *core.Graph, comments ...string) error {
	if g == nil {
		return errors.New("dimacs: graph is nil")
	}
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		for _, line := range strings.Split(c, "\n") {
			fmt.Fprintf(bw, "c %s\n", line)
		}
	}
	fmt.Fprintf(bw, "p edge %d %d\n", g.VertexCount(), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "e %d %d\n", e.U+1, e.V+1)
	}

	return errors.Wrap(bw.Flush(), "dimacs: write")
}
