package indicators

import "github.com/katalvlaran/moocore/point"

// Normalise rescales both a and b into [0, 1] using their combined bounds,
// the preprocessing step original_source/c/igd.c's normalise helper applies
// before computing a distance indicator so that objectives on very
// different scales don't dominate the Euclidean distance. minmax/target
// follow point.Normalise's agree convention.
func Normalise(a, b point.Matrix, minmax []point.Direction, target point.Direction) (point.Matrix, point.Matrix, error) {
	if a.D != b.D {
		return point.Matrix{}, point.Matrix{}, ErrDimensionMismatch
	}

	combined, err := point.NewMatrix(a.N+b.N, a.D)
	if err != nil {
		return point.Matrix{}, point.Matrix{}, err
	}
	copy(combined.Data[:len(a.Data)], a.Data)
	copy(combined.Data[len(a.Data):], b.Data)

	lo, hi := point.Bounds(combined)
	return point.Normalise(a, minmax, target, 0, 1, lo, hi),
		point.Normalise(b, minmax, target, 0, 1, lo, hi),
		nil
}
