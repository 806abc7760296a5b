package nondominated

import "github.com/katalvlaran/moocore/point"

// ParetoRank assigns every row of m a non-dominated rank: rank 0 is the
// non-dominated front, rank 1 is the front that remains once rank 0 is
// removed, and so on (spec.md §4.3 "Pareto rank"). Each layer is peeled with
// dispatchFilter, so a 2D or 3D matrix gets the matching fast sweep at every
// round instead of the general-d pairwise fallback.
func ParetoRank(m point.Matrix, opts ...Option) ([]int, error) {
	cfg := resolve(opts)
	if m.N == 0 {
		return nil, ErrEmptySet
	}
	if m.D < point.MinDimension || m.D > point.MaxDimension {
		return nil, point.ErrBadDimension
	}
	return peelRanks(m, cfg.KeepWeakly), nil
}

// peelRanks repeatedly filters the non-dominated front out of the remaining
// rows and assigns it the next rank, until every row is assigned.
func peelRanks(m point.Matrix, keepWeakly bool) []int {
	rank := make([]int, m.N)
	remaining := make([]int, m.N)
	for i := range remaining {
		remaining[i] = i
	}

	current := 0
	for len(remaining) > 0 {
		sub, _ := point.NewMatrix(len(remaining), m.D) // D checked by ParetoRank
		for s, orig := range remaining {
			copy(sub.Row(s), m.Row(orig))
		}
		keep := dispatchFilter(sub, keepWeakly)

		var next []int
		for s, orig := range remaining {
			if keep[s] {
				rank[orig] = current
			} else {
				next = append(next, orig)
			}
		}
		remaining = next
		current++
	}
	return rank
}
