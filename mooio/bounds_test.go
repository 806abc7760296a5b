package mooio

import (
	"testing"

	"github.com/katalvlaran/moocore/point"
)

func TestBoundsAcrossWholeMultiSet(t *testing.T) {
	ms := point.MultiSet{
		Matrix:   point.Matrix{Data: []float64{1, 5, 3, 1, 2, 9}, N: 3, D: 2},
		CumSizes: []int{0, 2, 3},
	}
	lo, hi := Bounds(ms)
	if lo[0] != 1 || lo[1] != 1 || hi[0] != 3 || hi[1] != 9 {
		t.Fatalf("unexpected bounds lo=%v hi=%v", lo, hi)
	}
}

func TestSetBoundsPerSet(t *testing.T) {
	ms := point.MultiSet{
		Matrix:   point.Matrix{Data: []float64{1, 5, 3, 1, 2, 9}, N: 3, D: 2},
		CumSizes: []int{0, 2, 3},
	}
	los, his, err := SetBounds(ms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(los) != 2 || len(his) != 2 {
		t.Fatalf("expected bounds for 2 sets, got %d/%d", len(los), len(his))
	}
	if los[0][0] != 1 || his[0][0] != 3 {
		t.Fatalf("unexpected set-0 x bounds lo=%v hi=%v", los[0], his[0])
	}
	if los[1][0] != 2 || his[1][0] != 2 {
		t.Fatalf("unexpected set-1 x bounds lo=%v hi=%v", los[1], his[1])
	}
}

func TestColumnExtent(t *testing.T) {
	ms := point.MultiSet{
		Matrix:   point.Matrix{Data: []float64{1, 5, 3, 1, 2, 9}, N: 3, D: 2},
		CumSizes: []int{0, 3},
	}
	lo, hi := ColumnExtent(ms, 1)
	if lo != 1 || hi != 9 {
		t.Fatalf("expected lo=1 hi=9, got lo=%v hi=%v", lo, hi)
	}
}
