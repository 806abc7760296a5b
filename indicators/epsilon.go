package indicators

import (
	"math"

	"github.com/katalvlaran/moocore/point"
)

func epsilonAdditiveTerm(dir point.Direction, a, b float64) float64 {
	switch dir {
	case point.Minimise:
		return a - b
	case point.Maximise:
		return b - a
	default:
		return 0
	}
}

func epsilonMultiplicativeTerm(dir point.Direction, a, b float64) float64 {
	switch dir {
	case point.Minimise:
		return a / b
	case point.Maximise:
		return b / a
	default:
		return 1
	}
}

// epsilonCommon implements both the additive and multiplicative one-sided
// epsilon indicators with a single kernel (spec.md §4.8,
// original_source/c/epsilon.h sharing epsilon_mul/epsilon_add internals):
// for every row of b, find the row of a minimising the worst-case
// per-dimension term, then take the max of those minima over b.
func epsilonCommon(minmax []point.Direction, a, b point.Matrix, term func(point.Direction, float64, float64) float64) float64 {
	epsilon := math.Inf(-1)
	for j := 0; j < b.N; j++ {
		rowB := b.Row(j)
		epsMin := math.Inf(1)
		for i := 0; i < a.N; i++ {
			rowA := a.Row(i)
			epsMax := math.Inf(-1)
			for d := 0; d < a.D; d++ {
				t := term(minmax[d], rowA[d], rowB[d])
				if t > epsMax {
					epsMax = t
				}
			}
			if epsMax < epsMin {
				epsMin = epsMax
			}
		}
		if epsMin > epsilon {
			epsilon = epsMin
		}
	}
	return epsilon
}

func validateEpsilonInputs(minmax []point.Direction, a, b point.Matrix) error {
	if a.D != b.D {
		return ErrDimensionMismatch
	}
	if len(minmax) != a.D {
		return ErrDimensionMismatch
	}
	if a.N == 0 || b.N == 0 {
		return ErrEmptySet
	}
	return nil
}

func allPositive(m point.Matrix) bool {
	for _, v := range m.Data {
		if v <= 0 {
			return false
		}
	}
	return true
}

// EpsilonAdditive returns the additive one-sided epsilon indicator
// max_{b∈B} min_{a∈A} max_k sgn(minmax_k)·(a_k − b_k), where sgn flips the
// sign of maximised dimensions and ignored dimensions contribute 0
// (spec.md §4.8).
func EpsilonAdditive(minmax []point.Direction, a, b point.Matrix) (float64, error) {
	if err := validateEpsilonInputs(minmax, a, b); err != nil {
		return 0, err
	}
	return epsilonCommon(minmax, a, b, epsilonAdditiveTerm), nil
}

// EpsilonMultiplicative is the ratio-based form of EpsilonAdditive; it
// rejects inputs with non-positive coordinates, where a multiplicative
// ratio is meaningless (spec.md §4.8).
func EpsilonMultiplicative(minmax []point.Direction, a, b point.Matrix) (float64, error) {
	if err := validateEpsilonInputs(minmax, a, b); err != nil {
		return 0, err
	}
	if !allPositive(a) || !allPositive(b) {
		return 0, ErrNonPositiveCoordinates
	}
	return epsilonCommon(minmax, a, b, epsilonMultiplicativeTerm), nil
}

// EpsilonIndicatorComparator returns the signed {-1, 0, +1} comparator
// epsilon_additive_ind(A, B): -1 when A is a strictly better additive
// epsilon-approximation of B than the reverse, +1 for the opposite, 0
// otherwise (spec.md §4.8).
func EpsilonIndicatorComparator(minmax []point.Direction, a, b point.Matrix) (int, error) {
	epsAB, err := EpsilonAdditive(minmax, a, b)
	if err != nil {
		return 0, err
	}
	epsBA, err := EpsilonAdditive(minmax, b, a)
	if err != nil {
		return 0, err
	}
	switch {
	case epsAB <= 0 && epsBA > 0:
		return -1, nil
	case epsAB > 0 && epsBA <= 0:
		return 1, nil
	default:
		return 0, nil
	}
}

// EpsilonIndicatorAll reports the additive epsilon indicator between every
// ordered pair of sets in ms -- the per-pair matrix some original callers
// need beyond the two entry points spec.md names (original_source/c's
// r/src/Rmoocore.c exposes this as epsilon_ind_R).
func EpsilonIndicatorAll(minmax []point.Direction, ms point.MultiSet) ([][]float64, error) {
	if err := ms.Validate(); err != nil {
		return nil, err
	}
	k := ms.NumSets()
	out := make([][]float64, k)
	for i := range out {
		out[i] = make([]float64, k)
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if i == j {
				continue
			}
			v, err := EpsilonAdditive(minmax, ms.Set(i), ms.Set(j))
			if err != nil {
				return nil, err
			}
			out[i][j] = v
		}
	}
	return out, nil
}
