package nondominated

import (
	"math"
	"sort"

	"github.com/katalvlaran/moocore/avltree"
	"github.com/katalvlaran/moocore/point"
)

// filter3D implements the 3D dimension-sweep of spec.md §4.3: sort points by
// z ascending (ties broken lexicographically by x then y), and maintain an
// avltree.Tree of the currently-undominated (x, y) projections ordered by
// (y ascending, x descending), bracketed by two sentinels.
func filter3D(m point.Matrix, keepWeakly bool) []bool {
	n := m.N
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := m.Row(order[a]), m.Row(order[b])
		if pa[2] != pb[2] {
			return pa[2] < pb[2]
		}
		if pa[0] != pb[0] {
			return pa[0] < pb[0]
		}
		return pa[1] < pb[1]
	})

	// proj[i] = {y, x} for the i-th point in z order, i in [0, n).
	// proj[n]   = low sentinel  (y = -Inf, x = +Inf)
	// proj[n+1] = high sentinel (y = +Inf, x = -Inf)
	proj := make([][2]float64, n+2)
	for i, orig := range order {
		row := m.Row(orig)
		proj[i] = [2]float64{row[1], row[0]}
	}
	loSentinel, hiSentinel := n, n+1
	proj[loSentinel] = [2]float64{math.Inf(-1), math.Inf(1)}
	proj[hiSentinel] = [2]float64{math.Inf(1), math.Inf(-1)}

	less := func(a, b int) bool {
		if proj[a][0] != proj[b][0] {
			return proj[a][0] < proj[b][0]
		}
		return proj[a][1] > proj[b][1]
	}

	tree := avltree.NewTree(less)
	top := tree.InsertTop(loSentinel)
	tree.InsertAfter(top, hiSentinel)

	keep := make([]bool, n)
	for i := 0; i < n; i++ {
		key := proj[i]

		id, sign := tree.SearchClosest(i)
		if sign == 0 {
			// Exact (x, y) duplicate of an earlier (smaller-or-equal z) survivor.
			keep[order[i]] = keepWeakly
			continue
		}

		var succ avltree.NodeID
		if sign == -1 {
			succ = id
		} else {
			succ = tree.Next(id)
		}
		q := tree.Prev(succ)
		qx := proj[tree.Payload(q)][1]

		if qx < key[1] {
			keep[order[i]] = false
			continue
		}
		if qx == key[1] {
			if !keepWeakly {
				keep[order[i]] = false
				continue
			}
			// qx == key[1] and keepWeakly: p survives despite the tie.
		}

		cur := succ
		for {
			curPayload := tree.Payload(cur)
			curX := proj[curPayload][1]
			if curX >= key[1] {
				next := tree.Next(cur)
				tree.Unlink(cur)
				cur = next
				continue
			}
			break
		}

		tree.InsertBefore(cur, i)
		keep[order[i]] = true
	}
	return keep
}
