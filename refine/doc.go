// Package refine implements color refinement (1-dimensional
// Weisfeiler-Leman) as a cheap isomorphism filter.
//
// Every vertex starts with its degree as color. Each round a vertex's label
// is the pair (own color, sorted multiset of neighbor colors); distinct
// labels receive fresh integer colors numbered from 0 in first-seen order,
// scanning vertices by ascending id. Refinement stops at the first round
// that does not increase the number of distinct colors.
//
// Two graphs are compared by refining them side by side with one shared
// label palette per round (the first graph is scanned before the second),
// until both are stable in the same round. If their color-class histograms
// (color → number of vertices) differ, the graphs are certainly not
// isomorphic. Equal histograms only mean they may be: regular graphs of the
// same order and degree, for instance, are never told apart.
//
// Complexity: O(V·(V + E) log Δ) worst case, V rounds of a sort per vertex.
package refine
