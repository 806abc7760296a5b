package indicators

import (
	"math"

	"github.com/katalvlaran/moocore/point"
)

// gdCommon implements GD, IGD, IGD+ and avg-Hausdorff (by construction, via
// Distance) in one kernel (spec.md §4.7, original_source/c/igd.h's
// gd_common): for each row of from, the Euclidean distance (restricted to
// minmax's participating dimensions) to the nearest row of to is found;
// those minima are combined over p and optionally averaged.
//
// plus replaces each coordinate difference with the one-sided IGD+
// modification max(0, signed-diff-in-the-minimisation-direction). psize
// controls whether the outer 1/p root is taken before or after dividing by
// |from| -- see the p==1 fast path below, which matches both.
func gdCommon(minmax []point.Direction, from, to point.Matrix, plus, psize bool, p int) float64 {
	if from.N == 0 {
		return math.Inf(1)
	}

	sum := 0.0
	for a := 0; a < from.N; a++ {
		rowA := from.Row(a)
		minDist := math.Inf(1)
		for r := 0; r < to.N; r++ {
			rowR := to.Row(r)
			dist := 0.0
			for d := 0; d < from.D; d++ {
				diff := gdTerm(minmax[d], plus, rowA[d], rowR[d])
				dist += diff * diff
			}
			if dist == 0 {
				minDist = 0
				break
			}
			if dist < minDist {
				minDist = dist
			}
		}

		switch {
		case p == 1:
			minDist = math.Sqrt(minDist)
		case p%2 == 0:
			minDist = math.Pow(minDist, float64(p)/2)
		default:
			minDist = math.Pow(math.Sqrt(minDist), float64(p))
		}
		sum += minDist
	}

	switch {
	case p == 1:
		return sum / float64(from.N)
	case psize:
		return math.Pow(sum/float64(from.N), 1/float64(p))
	default:
		return math.Pow(sum, 1/float64(p)) / float64(from.N)
	}
}

func gdTerm(dir point.Direction, plus bool, a, r float64) float64 {
	if dir == point.Ignore {
		return 0
	}
	if !plus {
		return a - r
	}
	if dir == point.Minimise {
		return math.Max(r-a, 0)
	}
	return math.Max(a-r, 0)
}

// Distance computes the GD-family indicator named by kind between approx
// and ref under minmax, with exponent p (p=1 is the classic GD/IGD; p>1 is
// GD_p/IGD_p; avg-Hausdorff always uses p internally for both directions
// and returns their max).
func Distance(kind Kind, minmax []point.Direction, approx, ref point.Matrix, p int) (float64, error) {
	if approx.D != ref.D {
		return 0, ErrDimensionMismatch
	}
	if len(minmax) != approx.D {
		return 0, ErrDimensionMismatch
	}
	if p < 1 {
		return 0, ErrBadExponent
	}

	switch kind {
	case KindGD:
		return gdCommon(minmax, approx, ref, false, true, p), nil
	case KindIGD:
		return gdCommon(minmax, ref, approx, false, true, p), nil
	case KindIGDPlus:
		return gdCommon(minmax, ref, approx, true, true, p), nil
	case KindAvgHausdorff:
		gdp := gdCommon(minmax, approx, ref, false, true, p)
		igdp := gdCommon(minmax, ref, approx, false, true, p)
		return math.Max(gdp, igdp), nil
	default:
		return 0, ErrDimensionMismatch
	}
}
