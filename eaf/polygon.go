package eaf

import "math"

// colourAt returns the signed attainment-count difference between the first
// half and the second half of a surface's sets at its i-th point, the
// colour spec.md §4.6 "Polygon output" assigns to the region a surface
// point belongs to.
func colourAt(s *Surface, i int) int {
	half := s.NumSets / 2
	left, right := 0, 0
	for k := 0; k < half; k++ {
		if s.Attained(i, k) {
			left++
		}
	}
	for k := half; k < s.NumSets; k++ {
		if s.Attained(i, k) {
			right++
		}
	}
	return left - right
}

// BuildPolygonSet turns two consecutive-level 2D surfaces (a the lower
// level, b the higher one) into plotting polygons: points on a are grouped
// into runs of constant colour, each run is closed by walking back along b
// in reverse across the same x-span, and consecutive polygons are delimited
// by a -Inf sentinel point (spec.md §3 "EAF polygon set"). Both surfaces
// must be 2D and share an even NumSets so the colour split is meaningful.
func BuildPolygonSet(a, b *Surface) (*PolygonSet, error) {
	if a.D != 2 || b.D != 2 {
		return nil, ErrDimensionUnsupported
	}
	if a.NumSets != b.NumSets {
		return nil, ErrDimensionUnsupported
	}
	if a.NumSets%2 != 0 {
		return nil, ErrOddSetCount
	}
	if a.N == 0 {
		return &PolygonSet{}, nil
	}

	out := &PolygonSet{}
	i := 0
	for i < a.N {
		c := colourAt(a, i)
		j := i
		for j < a.N && colourAt(a, j) == c {
			j++
		}

		for k := i; k < j; k++ {
			row := a.Row(k)
			out.Points = append(out.Points, row[0], row[1])
		}

		xlo, xhi := a.Row(i)[0], a.Row(j-1)[0]
		if xhi < xlo {
			xlo, xhi = xhi, xlo
		}
		const tol = 1e-9
		for k := b.N - 1; k >= 0; k-- {
			row := b.Row(k)
			if row[0] >= xlo-tol && row[0] <= xhi+tol {
				out.Points = append(out.Points, row[0], row[1])
			}
		}

		out.Points = append(out.Points, math.Inf(-1), math.Inf(-1))
		out.Colours = append(out.Colours, c)
		i = j
	}
	return out, nil
}
