package nondominated

import "testing"

func TestFilter3DSimpleFront(t *testing.T) {
	// (1,1,1) dominates (2,2,2); (3,0,0) is incomparable with (1,1,1).
	m := mustMatrix([]float64{
		1, 1, 1,
		2, 2, 2,
		3, 0, 0,
	}, 3, 3)
	keep := filter3D(m, false)
	want := []bool{true, false, true}
	for i := range want {
		if keep[i] != want[i] {
			t.Fatalf("row %d: got keep=%v want %v (%v)", i, keep[i], want[i], keep)
		}
	}
}

func TestFilter3DExactDuplicateCollapses(t *testing.T) {
	m := mustMatrix([]float64{
		1, 1, 1,
		1, 1, 1,
		2, 2, 2,
	}, 3, 3)

	keep := filter3D(m, false)
	survivors := 0
	for _, k := range keep {
		if k {
			survivors++
		}
	}
	if survivors != 1 {
		t.Fatalf("expected exactly one survivor among duplicates, got %d (%v)", survivors, keep)
	}
	if !keep[0] {
		t.Fatalf("expected the lowest-indexed duplicate to survive, got %v", keep)
	}

	keepWeak := filter3D(m, true)
	survivorsWeak := 0
	for _, k := range keepWeak {
		if k {
			survivorsWeak++
		}
	}
	if survivorsWeak != 2 {
		t.Fatalf("expected both duplicates kept with KeepWeakly, got %d (%v)", survivorsWeak, keepWeak)
	}
}

func TestFilter3DWeakDominanceOnTwoCoordinates(t *testing.T) {
	// (1,1,0) weakly dominates (1,1,1): identical (x, y) projection, strictly
	// better z, so the earlier-z row wins the exact-tie collapse.
	m := mustMatrix([]float64{
		1, 1, 0,
		1, 1, 1,
	}, 2, 3)
	keep := filter3D(m, false)
	if !keep[0] {
		t.Fatalf("expected row 0 to survive, got %v", keep)
	}
	if keep[1] {
		t.Fatalf("expected row 1 dominated, got %v", keep)
	}
}

func TestFilter3DAgreesWithGeneralDFallback(t *testing.T) {
	m := mustMatrix([]float64{
		1, 5, 3,
		4, 1, 2,
		2, 2, 2,
		5, 5, 5,
		0, 0, 9,
	}, 5, 3)
	got := filter3D(m, false)
	want := filterD(m, false)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: 3D sweep %v disagrees with general-d fallback %v", i, got[i], want[i])
		}
	}
}
