package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/chromatic/core"
)

// LoadFile opens and parses the DIMACS file at path. The instance is named
// after the file's base name.
func LoadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dimacs: open %s", path)
	}
	defer f.Close()

	return Parse(f, filepath.Base(path))
}

// MaxVertices bounds the vertex count a problem line may declare.
const MaxVertices = 1 << 22

// loader holds the state of one Parse call.
type loader struct {
	in     *Instance
	lineNo int
	text   string
	seen   bool
}

// Parse reads a DIMACS graph from r. name labels errors, warnings and the
// returned Instance.
func Parse(r io.Reader, name string) (*Instance, error) {
	ld := &loader{in: &Instance{Name: name}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		ld.lineNo++
		ld.text = strings.TrimSpace(sc.Text())
		if ld.text == "" {
			continue
		}
		if err := ld.line(); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "dimacs: read %s", name)
	}
	if !ld.seen {
		return nil, &ParseError{Name: name, Line: ld.lineNo, Msg: "missing problem line"}
	}
	if got := ld.in.Graph.EdgeCount(); got != ld.in.DeclaredEdges {
		ld.warn(CountWarning, "read %d edges, header declares %d", got, ld.in.DeclaredEdges)
	}
	klog.V(2).Infof("dimacs: %s: %d vertices, %d edges, %d warnings",
		name, ld.in.Graph.VertexCount(), ld.in.Graph.EdgeCount(), len(ld.in.Warnings))

	return ld.in, nil
}

func (ld *loader) fail(format string, args ...interface{}) error {
	return &ParseError{Name: ld.in.Name, Line: ld.lineNo, Text: ld.text, Msg: fmt.Sprintf(format, args...)}
}

func (ld *loader) warn(kind WarningKind, format string, args ...interface{}) {
	w := Warning{Line: ld.lineNo, Kind: kind, Msg: fmt.Sprintf(format, args...)}
	ld.in.Warnings = append(ld.in.Warnings, w)
	klog.Warningf("dimacs: %s: %s", ld.in.Name, w)
}

func (ld *loader) line() error {
	if ld.text[0] == 'c' {
		return nil
	}
	rec, err := parseRecord.ParseString(ld.in.Name, ld.text)
	if err != nil {
		return ld.fail("unreadable line: %v", err)
	}

	switch rec.Key {
	case "p":
		return ld.problem(rec)
	case "e":
		return ld.edge(rec)
	default:
		ld.warn(UnknownWarning, "unknown line kind %q", rec.Key)
		return nil
	}
}

// problem handles "p <format> <N> <M>".
func (ld *loader) problem(rec *record) error {
	if ld.seen {
		return ld.fail("second problem line")
	}
	if len(rec.Args) != 3 || rec.Args[0].Word == nil || rec.Args[1].Int == nil || rec.Args[2].Int == nil {
		return ld.fail("malformed problem line, want \"p edge N M\"")
	}
	format := *rec.Args[0].Word
	if format != "edge" && format != "col" {
		return ld.fail("unknown problem type %q", format)
	}
	n, m := *rec.Args[1].Int, *rec.Args[2].Int
	if n < 0 || m < 0 {
		return ld.fail("negative vertex or edge count")
	}
	if n > MaxVertices {
		return ld.fail("vertex count %d exceeds %d", n, MaxVertices)
	}

	ld.seen = true
	ld.in.Format = format
	ld.in.DeclaredVertices = n
	ld.in.DeclaredEdges = m
	ld.in.Graph = core.NewGraph(n)

	return nil
}

// edge handles "e <U> <V>".
func (ld *loader) edge(rec *record) error {
	if !ld.seen {
		return ld.fail("edge before problem line")
	}
	ends, ok := rec.ints()
	if !ok || len(ends) != 2 {
		return ld.fail("malformed edge line, want \"e U V\"")
	}
	n := ld.in.DeclaredVertices
	u, v := ends[0], ends[1]
	if u < 1 || u > n || v < 1 || v > n {
		ld.warn(RangeWarning, "edge (%d,%d) outside 1..%d, skipped", u, v, n)
		return nil
	}

	err := ld.in.Graph.AddEdge(u-1, v-1)
	switch {
	case err == nil:
	case errors.Is(err, core.ErrLoopNotAllowed):
		ld.warn(LoopWarning, "self-loop on %d, skipped", u)
	case errors.Is(err, core.ErrMultiEdgeNotAllowed):
		ld.warn(DuplicateWarning, "edge (%d,%d) repeated, skipped", u, v)
	default:
		return ld.fail("%v", err)
	}

	return nil
}
