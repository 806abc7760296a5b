// Package eaf computes the empirical attainment function (EAF) of a family
// of point sets (spec.md §4.6). Given m sets in d ∈ {2, 3} dimensions and a
// target attainment level ℓ, Surface2D and Surface3D return the
// ℓ-attainment surface: the
// upper envelope of points attained by at least ℓ of the m sets, together
// with a bit-mask recording which sets attain each surface point.
//
// The caller picks the entry point by dimension: Surface2D is the exact pointer-array sweep of original_source/c/eaf.c's
// compute_agg_eaf2d, Surface3D is a layered sweep that runs Surface2D once
// per distinct z-layer. BuildPolygonSet and BuildRectangleSet turn a pair of
// consecutive-level surfaces into plotting primitives; PercentileToLevel
// converts a percentile into the matching attainment level.
package eaf
