package dimacs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

// ErrParse is wrapped by every *ParseError.
var ErrParse = errors.New("dimacs: parse error")

// ParseError reports a fatal problem on one input line.
type ParseError struct {
	Name string
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dimacs: %s:%d: %s: %q", e.Name, e.Line, e.Msg, e.Text)
}

// Unwrap lets errors.Is match ErrParse.
func (e *ParseError) Unwrap() error { return ErrParse }

// WarningKind classifies a skipped line.
type WarningKind int

const (
	RangeWarning WarningKind = iota
	LoopWarning
	DuplicateWarning
	UnknownWarning
	CountWarning
)

func (k WarningKind) String() string {
	switch k {
	case RangeWarning:
		return "range"
	case LoopWarning:
		return "loop"
	case DuplicateWarning:
		return "duplicate"
	case UnknownWarning:
		return "unknown"
	case CountWarning:
		return "count"
	}

	return fmt.Sprintf("WarningKind(%d)", int(k))
}

// Warning is a recoverable issue found while parsing.
type Warning struct {
	Line int
	Kind WarningKind
	Msg  string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s: %s", w.Line, w.Kind, w.Msg)
}

// Instance is a parsed DIMACS file.
type Instance struct {
	Name string
	// Format is the problem type from the p line, "edge" or "col".
	Format           string
	DeclaredVertices int
	DeclaredEdges    int
	Graph            *core.Graph
	Warnings         []Warning
}

// Count returns how many warnings of kind k were recorded.
func (in *Instance) Count(k WarningKind) int {
	n := 0
	for _, w := range in.Warnings {
		if w.Kind == k {
			n++
		}
	}

	return n
}
