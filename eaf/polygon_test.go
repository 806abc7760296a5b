package eaf

import (
	"math"
	"testing"
)

func levelSurfaces(t *testing.T) (*Surface, *Surface) {
	t.Helper()
	a, err := Surface2D(twoSetScenario(), 1)
	if err != nil {
		t.Fatalf("unexpected error building level 1: %v", err)
	}
	b, err := Surface2D(twoSetScenario(), 2)
	if err != nil {
		t.Fatalf("unexpected error building level 2: %v", err)
	}
	return a, b
}

func TestBuildPolygonSetDelimitsWithSentinels(t *testing.T) {
	a, b := levelSurfaces(t)
	polys, err := BuildPolygonSet(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(polys.Colours) == 0 {
		t.Fatalf("expected at least one polygon")
	}
	// every polygon's points end in a (-Inf, -Inf) sentinel pair.
	if len(polys.Points) < 2 {
		t.Fatalf("expected emitted points")
	}
	lastX, lastY := polys.Points[len(polys.Points)-2], polys.Points[len(polys.Points)-1]
	if lastX != math.Inf(-1) || lastY != math.Inf(-1) {
		t.Fatalf("expected final point to be the -Inf sentinel, got (%v, %v)", lastX, lastY)
	}
}

func TestBuildPolygonSetRejectsOddSetCount(t *testing.T) {
	a, _ := levelSurfaces(t)
	odd := &Surface{D: 2, NumSets: 3, N: a.N, Points: a.Points}
	if _, err := BuildPolygonSet(odd, odd); err != ErrOddSetCount {
		t.Fatalf("expected ErrOddSetCount, got %v", err)
	}
}
