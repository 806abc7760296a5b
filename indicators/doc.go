// Package indicators computes the scalar quality indicators spec.md §4.7-§4.9
// defines over a pair (or family) of point sets: GD, IGD, IGD+ and
// avg-Hausdorff distance share one kernel (gdCommon), additive and
// multiplicative epsilon indicators share another (epsilonCommon), and R2Exact
// implements the closed-form 2D/uniform-weight R2 indicator.
//
// Distance dispatches on Kind to gdCommon the way original_source/c/igd.h's
// GD_minmax/IGD_minmax/IGD_plus_minmax/avg_Hausdorff_dist_minmax all resolve
// to gd_common with different argument order and flags.
package indicators
