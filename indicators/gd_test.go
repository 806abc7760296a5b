package indicators

import (
	"math"
	"testing"

	"github.com/katalvlaran/moocore/point"
)

func minimiseDirs(d int) []point.Direction {
	dirs := make([]point.Direction, d)
	for i := range dirs {
		dirs[i] = point.Minimise
	}
	return dirs
}

// igdScenario builds spec.md §8 scenario 5: reference = [(0,1), (1,0)],
// approx = [(0,2), (2,0)], both minimising.
func igdScenario() (approx, ref point.Matrix) {
	approx = point.Matrix{Data: []float64{0, 2, 2, 0}, N: 2, D: 2}
	ref = point.Matrix{Data: []float64{0, 1, 1, 0}, N: 2, D: 2}
	return approx, ref
}

func TestDistanceIGDMatchesWorkedExample(t *testing.T) {
	approx, ref := igdScenario()
	got, err := Distance(KindIGD, minimiseDirs(2), approx, ref, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected IGD = 1, got %v", got)
	}
}

func TestDistanceIGDPlusMatchesWorkedExample(t *testing.T) {
	approx, ref := igdScenario()
	got, err := Distance(KindIGDPlus, minimiseDirs(2), approx, ref, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected IGD+ = 1, got %v", got)
	}
}

func TestDistanceGDEmptyApproxIsInfinite(t *testing.T) {
	ref := point.Matrix{Data: []float64{0, 1, 1, 0}, N: 2, D: 2}
	approx := point.Matrix{Data: nil, N: 0, D: 2}
	got, err := Distance(KindGD, minimiseDirs(2), approx, ref, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf for empty approximation set, got %v", got)
	}
}

func TestDistanceIGDOfSetWithItselfIsZero(t *testing.T) {
	s := point.Matrix{Data: []float64{1, 2, 3, 4}, N: 2, D: 2}
	got, err := Distance(KindIGD, minimiseDirs(2), s, s, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got) > 1e-9 {
		t.Fatalf("expected IGD(S, S) = 0, got %v", got)
	}
}

func TestDistanceAvgHausdorffIsMaxOfGDAndIGD(t *testing.T) {
	approx, ref := igdScenario()
	gd, err := Distance(KindGD, minimiseDirs(2), approx, ref, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	igd, err := Distance(KindIGD, minimiseDirs(2), approx, ref, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	haus, err := Distance(KindAvgHausdorff, minimiseDirs(2), approx, ref, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := math.Max(gd, igd)
	if math.Abs(haus-want) > 1e-9 {
		t.Fatalf("expected avg-Hausdorff = max(GD, IGD) = %v, got %v", want, haus)
	}
}

func TestDistanceRejectsBadExponent(t *testing.T) {
	approx, ref := igdScenario()
	if _, err := Distance(KindGD, minimiseDirs(2), approx, ref, 0); err != ErrBadExponent {
		t.Fatalf("expected ErrBadExponent, got %v", err)
	}
}
