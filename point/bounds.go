package point

import "gonum.org/v1/gonum/floats"

// Bounds computes the component-wise min and max across every row of m
// (spec.md §4.8 "compute component-wise min/max across points"). For N==0
// both returned slices are nil.
//
// Per-dimension columns are gathered into a scratch buffer and reduced with
// gonum's floats.Min/floats.Max rather than a hand-rolled loop, matching the
// rest of the pack's habit of leaning on gonum/floats for vector reductions
// (see SPEC_FULL.md §4 "Domain stack").
func Bounds(m Matrix) (lo, hi []float64) {
	if m.N == 0 {
		return nil, nil
	}

	lo = make([]float64, m.D)
	hi = make([]float64, m.D)
	col := make([]float64, m.N)
	for k := 0; k < m.D; k++ {
		for i := 0; i < m.N; i++ {
			col[i] = m.Data[i*m.D+k]
		}
		lo[k] = floats.Min(col)
		hi[k] = floats.Max(col)
	}
	return lo, hi
}
