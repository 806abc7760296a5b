package point

// StronglyDominates reports whether a strongly (strictly) dominates b under
// minimisation: a[k] < b[k] for every k in [0, d). Spec.md §4.1.
func StronglyDominates(a, b []float64, d int) bool {
	for k := 0; k < d; k++ {
		if a[k] >= b[k] {
			return false
		}
	}
	return true
}

// WeaklyDominates reports whether a weakly dominates b under minimisation:
// a[k] <= b[k] for every k in [0, d). Spec.md §4.1.
func WeaklyDominates(a, b []float64, d int) bool {
	for k := 0; k < d; k++ {
		if a[k] > b[k] {
			return false
		}
	}
	return true
}

// Dominates reports strict Pareto dominance: a weakly dominates b and the
// two points differ in at least one coordinate. This is the usual
// "dominates (weakly, with at least one strict)" relation from the GLOSSARY.
func Dominates(a, b []float64, d int) bool {
	strict := false
	for k := 0; k < d; k++ {
		if a[k] > b[k] {
			return false
		}
		if a[k] < b[k] {
			strict = true
		}
	}
	return strict
}

// NoSentinel is the sentinel index FindWeaklyDominatedPoint returns when no
// point is weakly dominated.
const NoSentinel = -1

// FindWeaklyDominatedPoint scans m (N points of dimension D) and returns the
// index of the first point it identifies as weakly dominated by some other
// point in m, or NoSentinel if none exists. The exact index chosen on ties
// is unspecified by spec.md §4.1 but deterministic for a given input order:
// this implementation always reports the lowest index i for which some
// earlier-or-later j dominates it, scanning i in input order and, for each
// i, j in input order.
func FindWeaklyDominatedPoint(m Matrix) int {
	for i := 0; i < m.N; i++ {
		pi := m.Row(i)
		for j := 0; j < m.N; j++ {
			if i == j {
				continue
			}
			pj := m.Row(j)
			if Dominates(pj, pi, m.D) || (WeaklyDominates(pj, pi, m.D) && j < i) {
				return i
			}
		}
	}
	return NoSentinel
}
