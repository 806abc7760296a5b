package mooio

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/moocore/point"
)

// Bounds computes the component-wise min and max across every point in ms,
// ignoring set boundaries (spec.md §4 "compute component-wise min/max across
// points"). It is a thin MultiSet-aware wrapper: point.Bounds already does
// the per-column gonum/floats.Min/Max reduction, so Bounds delegates to it
// over ms.Matrix directly.
func Bounds(ms point.MultiSet) (lo, hi []float64) {
	return point.Bounds(ms.Matrix)
}

// SetBounds computes component-wise min/max separately for each contained
// set, useful when a caller wants one [ideal, ref] box per run rather than
// one shared box across the whole file.
func SetBounds(ms point.MultiSet) (los, his [][]float64, err error) {
	if err := ms.Validate(); err != nil {
		return nil, nil, err
	}

	numSets := ms.NumSets()
	los = make([][]float64, numSets)
	his = make([][]float64, numSets)
	for s := 0; s < numSets; s++ {
		set := ms.Set(s)
		lo, hi := point.Bounds(set)
		los[s], his[s] = lo, hi
	}
	return los, his, nil
}

// ColumnExtent returns the min and max of column k across every point in ms,
// computed directly with gonum/floats rather than going through
// point.Bounds's full-matrix sweep -- useful when only one objective's range
// is needed.
func ColumnExtent(ms point.MultiSet, k int) (lo, hi float64) {
	col := make([]float64, ms.N)
	for i := 0; i < ms.N; i++ {
		col[i] = ms.At(i, k)
	}
	return floats.Min(col), floats.Max(col)
}
