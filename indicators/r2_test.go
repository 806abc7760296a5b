package indicators

import (
	"math"
	"testing"

	"github.com/katalvlaran/moocore/point"
)

func TestR2ExactSinglePoint(t *testing.T) {
	data := point.Matrix{Data: []float64{1, 1}, N: 1, D: 2}
	got, err := R2Exact(data, []float64{0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("expected 0.75, got %v", got)
	}
}

func TestR2ExactAllPointsBeyondRefIsZero(t *testing.T) {
	// The single point (1,1) lies below ref (2,2) on both objectives, so no
	// point reaches ref on f1 and the last one is at or below ref on f2:
	// R2Exact takes its zero-result branch.
	data := point.Matrix{Data: []float64{1, 1}, N: 1, D: 2}
	got, err := R2Exact(data, []float64{2, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestR2ExactEmptySet(t *testing.T) {
	data := point.Matrix{Data: nil, N: 0, D: 2}
	if _, err := R2Exact(data, []float64{0, 0}); err != ErrEmptySet {
		t.Fatalf("expected ErrEmptySet, got %v", err)
	}
}

func TestR2ExactDimensionUnsupported(t *testing.T) {
	data := point.Matrix{Data: []float64{1, 1, 1}, N: 1, D: 3}
	if _, err := R2Exact(data, []float64{0, 0, 0}); err != ErrDimensionUnsupported {
		t.Fatalf("expected ErrDimensionUnsupported, got %v", err)
	}
}
