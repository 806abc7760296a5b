// Package point defines the data model shared across moocore — Matrix (a
// row-major point set), MultiSet (a concatenation of point sets with
// cumulative sizes), Direction/AgreeKind — and the geometry primitives every
// higher-level package builds on: dominance predicates, the agree
// transformation, normalisation, and component-wise bounds.
//
// Dimension is carried as a small int (≤ MaxDimension) so inner loops can
// assume the bound, per spec.md §3.
package point
