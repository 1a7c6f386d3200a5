// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

// Constructor appends one topology to g using the resolved configuration.
// Constructors validate their parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph and applies all constructors in order.
// The first constructor error is returned wrapped as "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(0)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// block appends n vertices and returns the id of the first one.
func block(g *core.Graph, method string, n int) (int, error) {
	first, err := g.AddVertices(n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}

	return first, nil
}

// link adds {u, v}, wrapping failures with the method name.
func link(g *core.Graph, method string, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

func tooFew(method, what string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, what, got, min, ErrTooFewVertices)
}
