package bfs

import "github.com/katalvlaran/chromatic/core"

// Components returns the connected components of g. Each component lists
// its vertices in BFS order from its lowest id; components are ordered by
// their lowest id. A graph without vertices yields an empty slice.
//
// Options apply to every per-component search; WithContext lets a caller
// abort between vertices.
//
// Complexity: O(V + E).
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	trees, err := Forest(g, opts...)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(trees))
	for i, t := range trees {
		out[i] = t.Order
	}

	return out, nil
}

// Forest runs BFS from every vertex not yet reached, in ascending id order,
// and returns one Result per component. Each Result only covers its own
// component; Depth and Parent are -1 elsewhere.
func Forest(g *core.Graph, opts ...Option) ([]*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	adj := g.AdjacencyList()
	seen := make([]bool, len(adj))
	var out []*Result
	for s := range adj {
		if seen[s] {
			continue
		}
		res, err := run(adj, s, o)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res)
	}

	return out, nil
}
