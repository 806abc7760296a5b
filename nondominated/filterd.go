package nondominated

import "github.com/katalvlaran/moocore/point"

// filterD implements the general-d O(n²) pairwise fallback of spec.md §4.3
// for dimensions outside the 2D/3D fast paths. Every row is compared against
// every other row; a row is dominated the moment a strict dominator (or, with
// keepWeakly off, a weak one from an earlier index) is found.
func filterD(m point.Matrix, keepWeakly bool) []bool {
	keep := make([]bool, m.N)
	for i := 0; i < m.N; i++ {
		keep[i] = true
	}

	for i := 0; i < m.N; i++ {
		if !keep[i] {
			continue
		}
		pi := m.Row(i)
		for j := 0; j < m.N; j++ {
			if i == j || !keep[j] {
				continue
			}
			pj := m.Row(j)
			if point.Dominates(pj, pi, m.D) {
				keep[i] = false
				break
			}
			if !keepWeakly && point.WeaklyDominates(pj, pi, m.D) && j < i {
				// Earlier-indexed weak duplicate/dominator survives; this one does not.
				keep[i] = false
				break
			}
		}
	}
	return keep
}
