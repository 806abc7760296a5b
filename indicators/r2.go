package indicators

import (
	"math"
	"sort"

	"github.com/katalvlaran/moocore/point"
)

// utility computes (twice) the utility of the axis-parallel segment between
// y1, y2 and the neighbouring y2p (original_source/c/r2_exact.c's
// _utility); y2p == +Inf represents the open boundary at the end of the
// front.
func utility(y1, y2, y2p float64) float64 {
	if y1 == 0 {
		return 0
	}
	w := y2 / (y1 + y2)
	wp := 1.0
	if !math.IsInf(y2p, 1) {
		wp = y2p / (y1 + y2p)
	}
	return y1 * (wp*wp - w*w)
}

// R2Exact computes the exact R2 indicator for two-objective minimisation
// with uniform weight density over [0, 1] (spec.md §4.9): it sweeps the
// non-dominated prefix of data sorted by f1 then f2 and sums the closed-form
// utility kernel between consecutive corners and ref. Not generalised
// beyond d=2 or uniform weights, matching spec.md's explicit Non-goal.
func R2Exact(data point.Matrix, ref []float64) (float64, error) {
	if data.D != 2 || len(ref) != 2 {
		return 0, ErrDimensionUnsupported
	}
	if data.N == 0 {
		return 0, ErrEmptySet
	}

	idx := make([]int, data.N)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ra, rb := data.Row(idx[a]), data.Row(idx[b])
		if ra[0] != rb[0] {
			return ra[0] < rb[0]
		}
		return ra[1] < rb[1]
	})
	p := func(i int) []float64 { return data.Row(idx[i]) }
	n := data.N

	j := 0
	for j < n && p(j)[0] < ref[0] {
		j++
	}
	if j == n {
		if p(n-1)[1] <= ref[1] {
			return 0, nil
		}
		return math.MaxFloat64, nil
	}

	prevY1 := p(j)[0] - ref[0]
	prevY2 := p(j)[1] - ref[1]
	if prevY2 < 0 {
		return 0, nil
	}

	total := utility(prevY1, prevY2, math.Inf(1))

	for j < n-1 {
		j++
		y1 := p(j)[0] - ref[0]
		y2 := p(j)[1] - ref[1]
		if y2 < 0 {
			continue
		}
		if y2 < prevY2 {
			total += utility(prevY2, prevY1, y1) + utility(y1, y2, prevY2)
			prevY1 = y1
			prevY2 = y2
		}
	}

	total += utility(prevY2, prevY1, math.Inf(1))
	return 0.5 * total, nil
}
