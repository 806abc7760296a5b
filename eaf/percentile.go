package eaf

import "math"

// epsSqrt is the same √ε tolerance hypervolume.Contribution clamps against,
// used here to decide whether n·p/100 should round to the floor instead of
// the ceiling (spec.md §4.6 "Percentile ↔ level").
var epsSqrt = math.Sqrt(2.220446049250313e-16)

// PercentileToLevel converts a percentile p ∈ (0, 100] over n sets into the
// matching attainment level: ceil(n·p/100), unless n·p/100 is within √ε of
// an integer (in which case the floor is used), with level 0 clamped to 1.
func PercentileToLevel(n int, percentile float64) (int, error) {
	if percentile <= 0 || percentile > 100 {
		return 0, ErrPercentileOutOfRange
	}

	v := float64(n) * percentile / 100
	var level int
	if math.Abs(v-math.Round(v)) < epsSqrt {
		level = int(math.Floor(v))
	} else {
		level = int(math.Ceil(v))
	}
	if level < 1 {
		level = 1
	}
	return level, nil
}
