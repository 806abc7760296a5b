package nondominated

import "github.com/katalvlaran/moocore/point"

// dispatchFilter selects the 2D, 3D, or general-d sweep by dimension.
func dispatchFilter(m point.Matrix, keepWeakly bool) []bool {
	switch m.D {
	case 2:
		return filter2D(m, keepWeakly)
	case 3:
		return filter3D(m, keepWeakly)
	default:
		return filterD(m, keepWeakly)
	}
}

// FilterMask returns, for every row of m, whether that row survives
// dominance filtering: true for a row on the non-dominated front, false for
// a row some other row (strictly, or weakly when KeepWeakly is off)
// dominates. Spec.md §4.3.
func FilterMask(m point.Matrix, opts ...Option) ([]bool, error) {
	cfg := resolve(opts)
	if m.N == 0 {
		return nil, ErrEmptySet
	}
	return dispatchFilter(m, cfg.KeepWeakly), nil
}

// Filter returns the sub-matrix of m containing only the non-dominated rows,
// preserving their relative order.
func Filter(m point.Matrix, opts ...Option) (point.Matrix, error) {
	mask, err := FilterMask(m, opts...)
	if err != nil {
		return point.Matrix{}, err
	}
	n := 0
	for _, k := range mask {
		if k {
			n++
		}
	}
	out, err := point.NewMatrix(n, m.D)
	if err != nil {
		return point.Matrix{}, err
	}
	row := 0
	for i, k := range mask {
		if k {
			copy(out.Row(row), m.Row(i))
			row++
		}
	}
	return out, nil
}
