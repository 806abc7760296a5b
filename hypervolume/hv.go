package hypervolume

import (
	"sort"

	"github.com/katalvlaran/moocore/point"
)

// Compute returns the Lebesgue measure of the union of boxes [p, ref] over
// every p in m that strictly dominates ref (spec.md §4.4). d==2 uses the
// exact sweep; d≥3 reduces recursively to it by slicing on the last
// coordinate.
func Compute(m point.Matrix, ref []float64, _ ...Option) (float64, error) {
	if m.N == 0 {
		return 0, ErrEmptySet
	}
	if len(ref) != m.D {
		return 0, ErrDimensionMismatch
	}

	rows := make([][]float64, m.N)
	for i := 0; i < m.N; i++ {
		rows[i] = m.Row(i)
	}
	return computeRows(rows, ref), nil
}

// computeRows is the dimension-generic entry point shared by Compute and
// Contribution; it takes raw row slices (rather than a point.Matrix) so
// Contribution can pass a scratch buffer with one row temporarily replaced.
func computeRows(rows [][]float64, ref []float64) float64 {
	d := len(ref)
	if d == 2 {
		return hv2D(rows, ref)
	}
	return hvSliceD(rows, ref)
}

// hv2D implements spec.md §4.4's 2D sweep exactly: sort by (x ascending, y
// ascending), then walk maintaining a y-ceiling, accumulating the rectangle
// between each surviving point and the reference.
func hv2D(rows [][]float64, ref []float64) float64 {
	sorted := make([][]float64, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a][0] != sorted[b][0] {
			return sorted[a][0] < sorted[b][0]
		}
		return sorted[a][1] < sorted[b][1]
	})

	vol := 0.0
	ceiling := ref[1]
	for _, p := range sorted {
		if p[0] >= ref[0] || p[1] >= ceiling {
			continue
		}
		vol += (ref[0] - p[0]) * (ceiling - p[1])
		ceiling = p[1]
	}
	return vol
}

// hvSliceD implements the general-d reduction by recursive slicing on the
// last coordinate (documented simplification of spec.md §4.4's incremental
// HV3D+/HV4D+/general-d sweeps -- see DESIGN.md). Only rows strictly below
// ref on the last coordinate can contribute any slab height; rows are
// processed in ascending order of that coordinate, each slab's height
// running from one row's coordinate to the next (or to ref for the final
// slab), and the slab's cross-section is the (d-1)-dimensional hypervolume
// of every row seen so far, projected onto the remaining coordinates.
func hvSliceD(rows [][]float64, ref []float64) float64 {
	d := len(ref)
	last := d - 1

	var contributing [][]float64
	for _, p := range rows {
		if p[last] < ref[last] {
			contributing = append(contributing, p)
		}
	}
	if len(contributing) == 0 {
		return 0
	}
	sort.Slice(contributing, func(a, b int) bool { return contributing[a][last] < contributing[b][last] })

	vol := 0.0
	for k := 0; k < len(contributing); k++ {
		var height float64
		if k == len(contributing)-1 {
			height = ref[last] - contributing[k][last]
		} else {
			height = contributing[k+1][last] - contributing[k][last]
		}
		if height <= 0 {
			continue
		}
		proj := make([][]float64, k+1)
		for i := 0; i <= k; i++ {
			proj[i] = contributing[i][:last]
		}
		vol += height * computeRows(proj, ref[:last])
	}
	return vol
}
