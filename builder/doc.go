// Package builder generates deterministic graph fixtures for the coloring
// and refinement packages.
//
// Every factory returns a Constructor; BuildGraph applies constructors in
// order to one core.Graph. Each constructor appends its own block of fresh
// vertices, so composing several constructors yields their disjoint union
// and ids inside a block are offset by the vertices added before it.
//
// Topologies:
//
//   - Path(n)                 P_n, n ≥ 2.
//   - Cycle(n)                C_n, n ≥ 3.
//   - Star(n)                 center is the first id of the block, n ≥ 2.
//   - Wheel(n)                C_{n-1} plus a hub as the last id, n ≥ 4.
//   - Complete(n)             K_n, n ≥ 1.
//   - CompleteBipartite(a,b)  K_{a,b}, left side first, a,b ≥ 1.
//   - Grid(r,c)               4-neighbor grid, id = r·cols + c.
//   - Crown(k)                K_{k,k} minus a perfect matching, k ≥ 2; a_i = 2i, b_i = 2i+1.
//   - Mycielski(k)            triangle-free graph with chromatic number k, k ≥ 2.
//   - RandomSparse(n,p)       each pair independently with probability p.
//   - RandomRegular(n,d)      d-regular via stub matching with bounded retries.
//
// Determinism: identical constructors, order and WithSeed value produce
// identical graphs. Random constructors require WithSeed or WithRand
// (ErrNeedRandSource otherwise, except RandomSparse with p ∈ {0,1}).
//
// Errors are the sentinels in errors.go wrapped with the method name.
package builder
