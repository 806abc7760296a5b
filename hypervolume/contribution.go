package hypervolume

import (
	"math"

	"github.com/katalvlaran/moocore/point"
)

// epsSqrt clamps contributions indistinguishable from zero at double
// precision, per spec.md §4.4 "Contributions below √ε are clamped to zero."
var epsSqrt = math.Sqrt(2.220446049250313e-16)

// Contribution returns, for every row of m, its exclusive contribution to
// HV(m, ref): the amount Compute(m, ref) would drop by if that row were
// removed. Dominated rows contribute exactly zero.
//
// ContributionBaseline (the default) uses the "remove one and recompute"
// algorithm spec.md §4.4 mandates: the row is replaced in place by ref (so
// it stops contributing anything), the engine runs on the modified buffer,
// and the difference from the total is the contribution; the row is
// restored before moving to the next one. ContributionFast is reserved (see
// types.go) and currently behaves like ContributionBaseline.
func Contribution(m point.Matrix, ref []float64, opts ...Option) ([]float64, error) {
	_ = resolve(opts) // ContributionFast is reserved; both modes run the baseline today.
	if m.N == 0 {
		return nil, ErrEmptySet
	}
	if len(ref) != m.D {
		return nil, ErrDimensionMismatch
	}

	rows := make([][]float64, m.N)
	for i := 0; i < m.N; i++ {
		rows[i] = m.Row(i)
	}
	total := computeRows(rows, ref)

	out := make([]float64, m.N)
	for i := 0; i < m.N; i++ {
		original := rows[i]
		rows[i] = ref

		without := computeRows(rows, ref)
		c := total - without
		if c < epsSqrt {
			c = 0
		}
		out[i] = c

		rows[i] = original
	}
	return out, nil
}
