package hypervolume

import (
	"math"
	"testing"

	"github.com/katalvlaran/moocore/point"
)

func mustMatrix(data []float64, n, d int) point.Matrix {
	return point.Matrix{Data: data, N: n, D: d}
}

func TestCompute2DThreePoints(t *testing.T) {
	m := mustMatrix([]float64{1, 6, 2, 4, 4, 3}, 3, 2)
	got, err := Compute(m, []float64{5, 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-11) > 1e-9 {
		t.Fatalf("expected 11, got %v", got)
	}
}

func TestCompute3DDuplicateMatchesNonDuplicateSet(t *testing.T) {
	withDup := mustMatrix([]float64{
		1, 2, 3,
		2, 1, 3,
		1, 2, 3,
		0.5, 0.5, 3.5,
	}, 4, 3)
	withoutDup := mustMatrix([]float64{
		1, 2, 3,
		2, 1, 3,
		0.5, 0.5, 3.5,
	}, 3, 3)

	ref := []float64{4, 4, 4}
	got, err := Compute(withDup, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := Compute(withoutDup, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected duplicate to be a no-op, got %v want %v", got, want)
	}
}

func TestComputeReferenceNotStrictlyDominatedIsZero(t *testing.T) {
	m := mustMatrix([]float64{5, 5}, 1, 2)
	got, err := Compute(m, []float64{5, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestComputeMonotonicityUnderAddedPoint(t *testing.T) {
	ref := []float64{5, 7}
	small := mustMatrix([]float64{1, 6}, 1, 2)
	bigger := mustMatrix([]float64{1, 6, 2, 4}, 2, 2)
	a, _ := Compute(small, ref)
	b, _ := Compute(bigger, ref)
	if b < a {
		t.Fatalf("adding a point must not decrease HV: got %v after %v", b, a)
	}
}

func TestComputeDimensionMismatch(t *testing.T) {
	m := mustMatrix([]float64{1, 1}, 1, 2)
	if _, err := Compute(m, []float64{1, 1, 1}); err != ErrDimensionMismatch {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}
