package nondominated

import "testing"

func TestParetoRank2DFrontsInLayers(t *testing.T) {
	// (1,4) dominates (2,4); (3,1) is incomparable with both, so front 0 is
	// {(1,4), (3,1)} and front 1 is {(2,4)} once front 0 is peeled away.
	m := mustMatrix([]float64{
		1, 4,
		3, 1,
		2, 4,
	}, 3, 2)
	rank, err := ParetoRank(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rank[0] != 0 || rank[1] != 0 {
		t.Fatalf("expected rows 0 and 1 on front 0, got %v", rank)
	}
	if rank[2] != 1 {
		t.Fatalf("expected row 2 on front 1, got %v", rank)
	}
}

func TestParetoRankDMatchesDimensionThree(t *testing.T) {
	m := mustMatrix([]float64{
		1, 1, 1,
		2, 2, 2,
		3, 3, 3,
	}, 3, 3)
	rank, err := ParetoRank(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 1, 2}
	for i := range want {
		if rank[i] != want[i] {
			t.Fatalf("row %d: got rank %d want %d (%v)", i, rank[i], want[i], rank)
		}
	}
}

func TestParetoRankEmptySet(t *testing.T) {
	m := mustMatrix(nil, 0, 2)
	if _, err := ParetoRank(m); err != ErrEmptySet {
		t.Fatalf("expected ErrEmptySet, got %v", err)
	}
}
