// Package nondominated implements dominance-based filtering and Pareto-rank
// assignment over point.Matrix point sets (spec.md §4.3).
//
// Three filtering paths share one entry point, Filter, dispatched by
// dimension: a 2D one-pass sweep, a 3D dimension-sweep backed by
// avltree.Tree, and a general-d O(n²) pairwise fallback. ParetoRank peels
// successive fronts with whichever of those three the matrix's dimension
// selects, assigning each row the index of the peel that removed it.
package nondominated
