package hypervolume

import (
	"math"
	"testing"
)

func TestApproximateMCConvergesToExact(t *testing.T) {
	m := mustMatrix([]float64{1, 6, 2, 4, 4, 3}, 3, 2)
	ref := []float64{5, 7}

	exact, err := Compute(m, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	approx, err := ApproximateMC(m, ref, 20000, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(approx-exact)/exact > 0.1 {
		t.Fatalf("expected MC estimate within 10%% of exact %v, got %v", exact, approx)
	}
}

func TestApproximateQMCConvergesToExact(t *testing.T) {
	m := mustMatrix([]float64{1, 6, 2, 4, 4, 3}, 3, 2)
	ref := []float64{5, 7}

	exact, err := Compute(m, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	approx, err := ApproximateQMC(m, ref, 20000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(approx-exact)/exact > 0.1 {
		t.Fatalf("expected QMC estimate within 10%% of exact %v, got %v", exact, approx)
	}
}

func TestApproximateEmptySet(t *testing.T) {
	m := mustMatrix(nil, 0, 2)
	if _, err := ApproximateMC(m, []float64{1, 1}, 100, 1); err != ErrEmptySet {
		t.Fatalf("expected ErrEmptySet, got %v", err)
	}
}
