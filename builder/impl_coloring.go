// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/chromatic/core"

const (
	methodCrown     = "Crown"
	methodMycielski = "Mycielski"

	minCrownPairs     = 2
	minMycielskiOrder = 2
)

// Crown builds the crown graph on 2k vertices: a_i = 2i, b_i = 2i+1 and
// a_i ~ b_j whenever i ≠ j. It is bipartite, yet FirstFit in id order
// spends k colors on it.
func Crown(k int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if k < minCrownPairs {
			return tooFew(methodCrown, "k", k, minCrownPairs)
		}
		first, err := block(g, methodCrown, 2*k)
		if err != nil {
			return err
		}
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				if i == j {
					continue
				}
				if err = link(g, methodCrown, first+2*i, first+2*j+1); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Mycielski builds M_k by repeating the Mycielski construction from
// M_2 = K_2: M_3 is C_5 and M_4 the Grötzsch graph. M_k is triangle-free
// with chromatic number k and 3·2^(k-2) - 1 vertices.
//
// One step maps a graph on vertices u_0..u_{n-1} to 2n+1 vertices: u_i
// keep their ids, the shadow w_i = n+i is joined to every neighbor of u_i,
// and the apex z = 2n is joined to every shadow.
func Mycielski(k int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if k < minMycielskiOrder {
			return tooFew(methodMycielski, "k", k, minMycielskiOrder)
		}
		n := 2
		edges := []core.Edge{{U: 0, V: 1}}
		for step := minMycielskiOrder; step < k; step++ {
			next := make([]core.Edge, 0, 3*len(edges)+n)
			next = append(next, edges...)
			for _, e := range edges {
				next = append(next, core.Edge{U: e.U, V: n + e.V}, core.Edge{U: e.V, V: n + e.U})
			}
			for i := 0; i < n; i++ {
				next = append(next, core.Edge{U: n + i, V: 2 * n})
			}
			edges, n = next, 2*n+1
		}

		first, err := block(g, methodMycielski, n)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if err = link(g, methodMycielski, first+e.U, first+e.V); err != nil {
				return err
			}
		}

		return nil
	}
}
