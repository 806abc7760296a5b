package eaf

import (
	"math"
	"testing"

	"github.com/katalvlaran/moocore/point"
)

// twoSetScenario builds the S1={(1,3),(3,1)}, S2={(2,2)} MultiSet spec.md
// §8 scenario 6 uses to pin down Surface2D's level 1 and level 2 output.
func twoSetScenario() point.MultiSet {
	return point.MultiSet{
		Matrix:   point.Matrix{Data: []float64{1, 3, 3, 1, 2, 2}, N: 3, D: 2},
		CumSizes: []int{0, 2, 3},
	}
}

func hasPoint(s *Surface, x, y float64) (int, bool) {
	for i := 0; i < s.N; i++ {
		row := s.Row(i)
		if math.Abs(row[0]-x) < 1e-9 && math.Abs(row[1]-y) < 1e-9 {
			return i, true
		}
	}
	return -1, false
}

func TestSurface2DLevel1Scenario(t *testing.T) {
	surf, err := Surface2D(twoSetScenario(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if surf.N != 3 {
		t.Fatalf("expected 3 points at level 1, got %d", surf.N)
	}
	for _, want := range [][2]float64{{1, 3}, {2, 2}, {3, 1}} {
		if _, ok := hasPoint(surf, want[0], want[1]); !ok {
			t.Fatalf("expected level-1 surface to contain (%v, %v)", want[0], want[1])
		}
	}
}

func TestSurface2DLevel2Scenario(t *testing.T) {
	surf, err := Surface2D(twoSetScenario(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if surf.N != 2 {
		t.Fatalf("expected 2 points at level 2, got %d", surf.N)
	}
	i, ok := hasPoint(surf, 2, 3)
	if !ok {
		t.Fatalf("expected level-2 surface to contain (2, 3)")
	}
	if !surf.Attained(i, 0) || !surf.Attained(i, 1) {
		t.Fatalf("expected (2, 3) to be attained by both sets at level 2")
	}
	if _, ok := hasPoint(surf, 3, 2); !ok {
		t.Fatalf("expected level-2 surface to contain (3, 2)")
	}
}

func TestSurface2DLevelOutOfRange(t *testing.T) {
	if _, err := Surface2D(twoSetScenario(), 3); err != ErrLevelOutOfRange {
		t.Fatalf("expected ErrLevelOutOfRange, got %v", err)
	}
	if _, err := Surface2D(twoSetScenario(), 0); err != ErrLevelOutOfRange {
		t.Fatalf("expected ErrLevelOutOfRange, got %v", err)
	}
}

func TestSurface2DDimensionUnsupported(t *testing.T) {
	ms := point.MultiSet{
		Matrix:   point.Matrix{Data: []float64{1, 2, 3, 3, 4, 5}, N: 2, D: 3},
		CumSizes: []int{0, 2},
	}
	if _, err := Surface2D(ms, 1); err != ErrDimensionUnsupported {
		t.Fatalf("expected ErrDimensionUnsupported, got %v", err)
	}
}
