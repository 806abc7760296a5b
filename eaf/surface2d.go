package eaf

import (
	"sort"

	"github.com/katalvlaran/moocore/point"
)

// Surface2D computes the ℓ-attainment surface of a 2D MultiSet via the
// pointer-array dimension sweep of original_source/c/eaf.c's eaf2d: two
// index arrays over the same points (one sorted x ascending, one sorted y
// descending) are walked in lockstep. The x-cursor advances while the
// running attained-set count is below level or the next x ties the
// current one; the y-cursor then retreats while the count is still at or
// above level, snapshotting the attained mask before each retreat so ties
// along y are resolved correctly. Each time the x-cursor stalls below
// level, the point where it stalled closes a surface corner.
func Surface2D(ms point.MultiSet, level int, opts ...Option) (*Surface, error) {
	_ = resolve(opts)
	if ms.D != 2 {
		return nil, ErrDimensionUnsupported
	}
	if err := ms.Validate(); err != nil {
		return nil, err
	}
	numSets := ms.NumSets()
	ntotal := ms.N
	if numSets == 0 || ntotal == 0 {
		return nil, ErrEmptySet
	}
	if level < 1 || level > numSets {
		return nil, ErrLevelOutOfRange
	}

	runOf := make([]int, ntotal)
	for s := 0; s < numSets; s++ {
		lo, hi := ms.CumSizes[s], ms.CumSizes[s+1]
		for k := lo; k < hi; k++ {
			runOf[k] = s
		}
	}

	px := func(i int) float64 { return ms.At(i, 0) }
	py := func(i int) float64 { return ms.At(i, 1) }

	ix := make([]int, ntotal)
	iy := make([]int, ntotal)
	for k := range ix {
		ix[k] = k
		iy[k] = k
	}
	sort.SliceStable(ix, func(a, b int) bool { return px(ix[a]) < px(ix[b]) })
	sort.SliceStable(iy, func(a, b int) bool { return py(iy[a]) > py(iy[b]) })

	surf := newSurface(2, numSets)

	attained := make([]int, numSets)
	saveAttained := make([]int, numSets)

	x, y := 0, 0
	nattained := 0
	run := runOf[ix[x]]
	attained[run]++
	nattained++

	for {
		for x < ntotal-1 && (nattained < level || px(ix[x]) == px(ix[x+1])) {
			x++
			if py(ix[x]) <= py(iy[y]) {
				run = runOf[ix[x]]
				if attained[run] == 0 {
					nattained++
				}
				attained[run]++
			}
		}

		if nattained >= level {
			for {
				copy(saveAttained, attained)
				for {
					if px(iy[y]) <= px(ix[x]) {
						run = runOf[iy[y]]
						attained[run]--
						if attained[run] == 0 {
							nattained--
						}
					}
					y++
					if !(y < ntotal && py(iy[y]) == py(iy[y-1])) {
						break
					}
				}
				if !(nattained >= level && y < ntotal) {
					break
				}
			}
			surf.addPoint([]float64{px(ix[x]), py(iy[y-1])}, attainedSetsOf(saveAttained))
		}

		if !(x < ntotal-1 && y < ntotal) {
			break
		}
	}
	return surf, nil
}

// attainedSetsOf turns a per-set attained-count snapshot into the set of
// indices with a non-zero count.
func attainedSetsOf(attained []int) []int {
	var sets []int
	for s, c := range attained {
		if c > 0 {
			sets = append(sets, s)
		}
	}
	return sets
}
