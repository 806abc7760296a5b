package eaf

import (
	"sort"

	"github.com/katalvlaran/moocore/point"
)

// Surface3D computes the ℓ-attainment surface of a 3D MultiSet via a
// layered sweep: for each distinct z value found across all sets, sorted
// ascending, project every point with that z or lower onto the (x, y) plane
// (preserving set membership) and run Surface2D on the projection. Points
// already emitted by a lower z-layer are skipped. This mirrors spec.md
// §4.6's "layered sweep in z that maintains a 2D attainment surface" a
// layer at a time, trading the source's single incremental 3D sweep for one
// independent Surface2D call per distinct z -- see DESIGN.md.
func Surface3D(ms point.MultiSet, level int, opts ...Option) (*Surface, error) {
	if ms.D != 3 {
		return nil, ErrDimensionUnsupported
	}
	if err := ms.Validate(); err != nil {
		return nil, err
	}
	numSets := ms.NumSets()
	if numSets == 0 || ms.N == 0 {
		return nil, ErrEmptySet
	}
	if level < 1 || level > numSets {
		return nil, ErrLevelOutOfRange
	}

	zs := distinctSortedZ(ms)
	surf := newSurface(3, numSets)
	seen := make(map[[2]float64]bool)

	for _, z := range zs {
		sub, cumsizes := projectUpToZ(ms, z)
		if sub.N == 0 {
			continue
		}
		layer, err := Surface2D(point.MultiSet{Matrix: sub, CumSizes: cumsizes}, level, opts...)
		if err != nil {
			if err == ErrEmptySet {
				continue
			}
			return nil, err
		}
		for i := 0; i < layer.N; i++ {
			row := layer.Row(i)
			key := [2]float64{row[0], row[1]}
			if seen[key] {
				continue
			}
			seen[key] = true

			var attainedSets []int
			for s := 0; s < numSets; s++ {
				if layer.Attained(i, s) {
					attainedSets = append(attainedSets, s)
				}
			}
			surf.addPoint([]float64{row[0], row[1], z}, attainedSets)
		}
	}
	return surf, nil
}

func distinctSortedZ(ms point.MultiSet) []float64 {
	seen := make(map[float64]bool, ms.N)
	zs := make([]float64, 0, ms.N)
	for i := 0; i < ms.N; i++ {
		z := ms.At(i, 2)
		if !seen[z] {
			seen[z] = true
			zs = append(zs, z)
		}
	}
	sort.Float64s(zs)
	return zs
}

// projectUpToZ returns the (x, y) projection of every point across every
// set whose z coordinate is <= zmax, preserving per-set grouping so the
// result is a valid 2D MultiSet.
func projectUpToZ(ms point.MultiSet, zmax float64) (point.Matrix, []int) {
	numSets := ms.NumSets()
	var data []float64
	cumsizes := make([]int, numSets+1)
	count := 0
	for s := 0; s < numSets; s++ {
		lo, hi := ms.CumSizes[s], ms.CumSizes[s+1]
		for k := lo; k < hi; k++ {
			if ms.At(k, 2) <= zmax {
				data = append(data, ms.At(k, 0), ms.At(k, 1))
				count++
			}
		}
		cumsizes[s+1] = count
	}
	return point.Matrix{Data: data, N: count, D: 2}, cumsizes
}
