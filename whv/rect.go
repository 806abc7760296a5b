package whv

import (
	"math"

	"github.com/katalvlaran/moocore/hypervolume"
	"github.com/katalvlaran/moocore/point"
)

// RectWeightedHV2D computes the rectangle-weighted 2D exact hypervolume of
// data against ref, distributing credit over the caller-supplied weighted
// regions (spec.md §4.5 "Rectangle-weighted 2D exact").
//
// original_source/c/whv.c's rect_weighted_hv2d sweeps both the data points
// and the rectangles in a single incremental pass (sorted by y descending,
// with goto-driven cursor advances). This is a grounded simplification of
// that sweep, not a literal port: for each rectangle R independently, the
// area of R covered by the union of dominated boxes is exactly the ordinary
// 2D hypervolume of the points clamped into R, computed against R's own
// upper corner as a local reference -- because any point below R's lower
// bound on an axis already dominates all of R on that axis. Summing
// weight(R) * localHV(R) over all rectangles gives the same total the
// source's single sweep accumulates, without needing to replicate its
// cursor bookkeeping; see DESIGN.md.
func RectWeightedHV2D(data point.Matrix, rects []WeightedRectangle, ref []float64, opts ...Option) (float64, error) {
	_ = resolve(opts)

	if data.D != 2 || len(ref) != 2 {
		return 0, ErrDimensionUnsupported
	}
	if data.N == 0 {
		return 0, ErrEmptySet
	}

	clamped := whvPreprocessRectangles(rects, ref)
	if len(clamped) == 0 {
		return 0, nil
	}

	total := 0.0
	for _, r := range clamped {
		area, err := localDominatedArea(data, r)
		if err != nil {
			return 0, err
		}
		total += area * r.Weight
	}
	return total, nil
}

// whvPreprocessRectangles clamps every rectangle's corners to ref and drops
// rectangles degenerate after clamping, mirroring whv_preprocess_rectangles.
func whvPreprocessRectangles(rects []WeightedRectangle, ref []float64) []WeightedRectangle {
	out := make([]WeightedRectangle, 0, len(rects))
	for _, r := range rects {
		c := WeightedRectangle{
			Lower:  [2]float64{math.Min(r.Lower[0], ref[0]), math.Min(r.Lower[1], ref[1])},
			Upper:  [2]float64{math.Min(r.Upper[0], ref[0]), math.Min(r.Upper[1], ref[1])},
			Weight: r.Weight,
		}
		if c.Lower[0] >= c.Upper[0] || c.Lower[1] >= c.Upper[1] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// localDominatedArea returns the area of r covered by the union of boxes
// [p, r.Upper] over every p in data, by clamping each point up to r's lower
// bound and running the ordinary 2D hypervolume sweep against r.Upper.
func localDominatedArea(data point.Matrix, r WeightedRectangle) (float64, error) {
	rows := make([]float64, 0, data.N*2)
	n := 0
	for i := 0; i < data.N; i++ {
		p := data.Row(i)
		cx := math.Max(p[0], r.Lower[0])
		cy := math.Max(p[1], r.Lower[1])
		if cx >= r.Upper[0] || cy >= r.Upper[1] {
			continue
		}
		rows = append(rows, cx, cy)
		n++
	}
	if n == 0 {
		return 0, nil
	}

	m := point.Matrix{Data: rows, N: n, D: 2}
	return hypervolume.Compute(m, r.Upper[:])
}
