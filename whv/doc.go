// Package whv computes weighted hypervolume indicators (spec.md §4.5): the
// rectangle-weighted 2D exact variant, which accumulates the dominated area
// of a point set restricted to a caller-supplied set of weighted regions,
// and the HypE-style sampled variant, which estimates a per-point hypervolume
// contribution vector by Monte-Carlo sampling inside [ideal, ref].
//
// Grounded on original_source/c/whv.c (RectWeightedHV2D) and spec.md §4.5's
// "HypE-style sampled" description (Sampled).
package whv
