package nondominated

import (
	"math"
	"sort"

	"github.com/katalvlaran/moocore/point"
)

// filter2D implements the 2D dimension-sweep of spec.md §4.3: sort pointers
// to rows by (x ascending, y ascending), then sweep maintaining the
// minimum y seen so far. A row is dominated iff its y is not strictly below
// that minimum; KeepWeakly relaxes the tie case (y == minimum) to "kept".
//
// The sort is stable, so among rows tied on (x, y) the lowest original index
// survives — this project's documented resolution of the "implementation-
// defined duplicate survivor" Open Question in spec.md §9.
func filter2D(m point.Matrix, keepWeakly bool) []bool {
	idx := make([]int, m.N)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		pa, pb := m.Row(idx[a]), m.Row(idx[b])
		if pa[0] != pb[0] {
			return pa[0] < pb[0]
		}
		return pa[1] < pb[1] // ascending y on x-ties
	})

	keep := make([]bool, m.N)
	minY := math.Inf(1)
	for _, i := range idx {
		y := m.Row(i)[1]
		switch {
		case y < minY:
			keep[i] = true
			minY = y
		case y == minY && keepWeakly:
			keep[i] = true
		default:
			keep[i] = false
		}
	}
	return keep
}
