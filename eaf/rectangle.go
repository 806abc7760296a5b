package eaf

import "sort"

// BuildRectangleSet turns two consecutive-level 2D surfaces (a the lower
// level/lower boundary, b the higher level/upper boundary) into
// axis-aligned rectangles: the merged, deduplicated x-breakpoints of both
// surfaces partition the x-axis into intervals, and each interval becomes
// one rectangle between a's step value and b's step value at its midpoint,
// carrying a's colour (spec.md §4.6 "Rectangle output"). This is a
// breakpoint-search restatement of the source's incremental two-cursor
// sweep (original_source/c/eaf.c), not a literal port -- see DESIGN.md.
func BuildRectangleSet(a, b *Surface) (*RectangleSet, error) {
	if a.D != 2 || b.D != 2 {
		return nil, ErrDimensionUnsupported
	}
	if a.NumSets != b.NumSets {
		return nil, ErrDimensionUnsupported
	}
	if a.NumSets%2 != 0 {
		return nil, ErrOddSetCount
	}
	if a.N == 0 || b.N == 0 {
		return &RectangleSet{}, nil
	}

	xs := make([]float64, 0, a.N+b.N)
	for i := 0; i < a.N; i++ {
		xs = append(xs, a.Row(i)[0])
	}
	for i := 0; i < b.N; i++ {
		xs = append(xs, b.Row(i)[0])
	}
	sort.Float64s(xs)
	xs = dedupeSorted(xs)

	out := &RectangleSet{}
	for k := 0; k < len(xs)-1; k++ {
		xlo, xhi := xs[k], xs[k+1]
		mid := (xlo + xhi) / 2

		yBot, ia := stepAt(a, mid)
		yTop, _ := stepAt(b, mid)
		if yTop <= yBot {
			continue
		}

		out.Lo = append(out.Lo, [2]float64{xlo, yBot})
		out.Hi = append(out.Hi, [2]float64{xhi, yTop})
		out.Colours = append(out.Colours, colourAt(a, ia))
	}
	return out, nil
}

// stepAt returns a surface's staircase value (and the point index holding
// it) at x, where the staircase is the largest-x point whose x <= x.
func stepAt(s *Surface, x float64) (float64, int) {
	idx := sort.Search(s.N, func(i int) bool { return s.Row(i)[0] > x }) - 1
	if idx < 0 {
		idx = 0
	}
	return s.Row(idx)[1], idx
}

func dedupeSorted(xs []float64) []float64 {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
