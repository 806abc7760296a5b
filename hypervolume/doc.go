// Package hypervolume computes the Lebesgue measure of the region
// dominated by a point set with respect to a reference point, and the
// exclusive per-point contribution to that measure (spec.md §4.4).
//
// Compute dispatches by dimension: an exact O(n log n) sweep at d=2, and a
// recursive dimension-slicing reduction to the 2D base case at d≥3 (the
// "hypervolume by slicing objectives" technique -- see DESIGN.md for why
// this trades the source's incremental cnext-linked sweep for a simpler,
// still-exact recursive form). Contribution computes the exclusive
// contribution of every point with the "remove one and recompute" baseline;
// ApproximateQMC and ApproximateMC offer Monte-Carlo estimators for d up to
// 32 that agree with the exact engine in the limit.
package hypervolume
