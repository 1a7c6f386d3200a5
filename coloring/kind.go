package coloring

import (
	"fmt"
	"strings"
)

// Kind enumerates the built-in strategies.
type Kind int

const (
	KindFirstFit Kind = iota
	KindLargestDegree
	KindWelshPowell
	KindIncidenceDegree
	KindDSatur
	KindRecursiveLargestFirst
)

var kindNames = [...]string{
	KindFirstFit:              "ff",
	KindLargestDegree:         "ldo",
	KindWelshPowell:           "wp",
	KindIncidenceDegree:       "ido",
	KindDSatur:                "dsatur",
	KindRecursiveLargestFirst: "rlf",
}

// long names accepted by ParseKind in addition to the short ones.
var kindAliases = map[string]Kind{
	"firstfit":              KindFirstFit,
	"first-fit":             KindFirstFit,
	"largestdegree":         KindLargestDegree,
	"largest-degree":        KindLargestDegree,
	"welshpowell":           KindWelshPowell,
	"welsh-powell":          KindWelshPowell,
	"incidencedegree":       KindIncidenceDegree,
	"incidence-degree":      KindIncidenceDegree,
	"recursivelargestfirst": KindRecursiveLargestFirst,
}

// String returns the short name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Kinds returns every built-in Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}

	return out
}

// ParseKind maps a name such as "ldo" or "welsh-powell" (case-insensitive)
// to its Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// ParseKinds parses a comma-separated list of names, e.g. "ff,ldo,wp".
func ParseKinds(list string) ([]Kind, error) {
	var out []Kind
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := ParseKind(part)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}

	return out, nil
}

// New returns the strategy for kind configured with opts.
func New(kind Kind, opts ...Option) (Strategy, error) {
	switch kind {
	case KindFirstFit:
		return NewFirstFit(opts...), nil
	case KindLargestDegree:
		return NewLargestDegreeOrdering(opts...), nil
	case KindWelshPowell:
		return NewWelshPowell(opts...), nil
	case KindIncidenceDegree:
		return NewIncidenceDegreeOrdering(opts...), nil
	case KindDSatur:
		return NewDSatur(opts...), nil
	case KindRecursiveLargestFirst:
		return NewRecursiveLargestFirst(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}
