// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

const (
	methodRandomSparse  = "RandomSparse"
	methodRandomRegular = "RandomRegular"

	minRandomVertices       = 1
	maxStubMatchingAttempts = 256
)

// RandomSparse samples an Erdős–Rényi graph G(n, p): every pair i < j is
// tried once, i ascending then j ascending, and kept with probability p.
// An RNG is required only for 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return tooFew(methodRandomSparse, "n", n, minRandomVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		first, err := block(g, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1
				if cfg.rng != nil && p > 0 && p < 1 {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = link(g, methodRandomSparse, first+i, first+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomRegular builds a simple d-regular graph by stub matching: every
// vertex contributes d stubs, the stubs are shuffled and paired, and the
// pairing is retried while it yields a loop or a repeated pair.
//
// Requires n ≥ 1, 0 ≤ d < n and n·d even. Returns ErrConstructFailed after
// maxStubMatchingAttempts failed shuffles.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return tooFew(methodRandomRegular, "n", n, minRandomVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		pairs, ok := matchStubs(stubs, cfg)
		if !ok {
			return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
				methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
		}

		first, err := block(g, methodRandomRegular, n)
		if err != nil {
			return err
		}
		for _, e := range pairs {
			if err = link(g, methodRandomRegular, first+e.U, first+e.V); err != nil {
				return err
			}
		}

		return nil
	}
}

// matchStubs shuffles and pairs stubs until the pairing is simple.
func matchStubs(stubs []int, cfg builderConfig) ([]core.Edge, bool) {
	if len(stubs) == 0 {
		return nil, true
	}
	for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
		cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
		seen := make(map[core.Edge]struct{}, len(stubs)/2)
		pairs := make([]core.Edge, 0, len(stubs)/2)
		valid := true
		for i := 0; i < len(stubs); i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			e := core.Edge{U: u, V: v}
			if _, dup := seen[e]; dup {
				valid = false
				break
			}
			seen[e] = struct{}{}
			pairs = append(pairs, e)
		}
		if valid {
			return pairs, true
		}
	}

	return nil, false
}
