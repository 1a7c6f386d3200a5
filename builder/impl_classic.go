// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/chromatic/core"

const (
	methodPath              = "Path"
	methodCycle             = "Cycle"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
	minWheelNodes = 4
	minGridDim    = 1
)

// Path builds P_n: edges (i, i+1) in ascending i.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		first, err := block(g, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(g, methodPath, first+i, first+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: the path edges plus the closing edge (n-1, 0).
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		first, err := block(g, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = link(g, methodCycle, first+i, first+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a center (first id of the block) with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		center, err := block(g, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = link(g, methodStar, center, center+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: a ring of n-1 vertices and a hub as the last id.
func Wheel(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		first, err := block(g, methodWheel, n)
		if err != nil {
			return err
		}
		ring, hub := n-1, first+n-1
		for i := 0; i < ring; i++ {
			if err = link(g, methodWheel, first+i, first+(i+1)%ring); err != nil {
				return err
			}
			if err = link(g, methodWheel, hub, first+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n.
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < 1 {
			return tooFew(methodComplete, "n", n, 1)
		}
		first, err := block(g, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = link(g, methodComplete, first+i, first+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite builds K_{a,b}; the a left vertices come first.
func CompleteBipartite(a, b int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if a < 1 {
			return tooFew(methodCompleteBipartite, "a", a, 1)
		}
		if b < 1 {
			return tooFew(methodCompleteBipartite, "b", b, 1)
		}
		first, err := block(g, methodCompleteBipartite, a+b)
		if err != nil {
			return err
		}
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				if err = link(g, methodCompleteBipartite, first+i, first+a+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighbor grid; cell (r, c) gets id r*cols + c
// within the block. Right edges are emitted before down edges per cell.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridDim {
			return tooFew(methodGrid, "rows", rows, minGridDim)
		}
		if cols < minGridDim {
			return tooFew(methodGrid, "cols", cols, minGridDim)
		}
		first, err := block(g, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := first + r*cols + c
				if c+1 < cols {
					if err = link(g, methodGrid, id, id+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = link(g, methodGrid, id, id+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
