package avltree

import "testing"

func inOrder(t *Tree) []int {
	var out []int
	for id := t.Head(); id != Nil; id = t.Next(id) {
		out = append(out, t.Payload(id))
	}
	return out
}

func lessInt(a, b int) bool { return a < b }

func buildSorted(values []int) *Tree {
	tr := NewTree(lessInt)
	if len(values) == 0 {
		return tr
	}
	top := tr.InsertTop(values[0])
	cur := top
	for _, v := range values[1:] {
		cur = tr.InsertAfter(cur, v)
	}
	return tr
}

func assertOrder(t *testing.T, tr *Tree, want []int) {
	t.Helper()
	got := inOrder(tr)
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v want %v", i, got, want)
		}
	}
}

func TestInsertAfterMaintainsOrder(t *testing.T) {
	tr := buildSorted([]int{1, 2, 3, 4, 5})
	assertOrder(t, tr, []int{1, 2, 3, 4, 5})
	if tr.Len() != 5 {
		t.Fatalf("expected len 5, got %d", tr.Len())
	}
}

func TestInsertBefore(t *testing.T) {
	tr := NewTree(lessInt)
	a := tr.InsertTop(10)
	b := tr.InsertBefore(a, 5)
	tr.InsertBefore(b, 1)
	tr.InsertAfter(a, 20)
	assertOrder(t, tr, []int{1, 5, 10, 20})
}

func TestSearchClosest(t *testing.T) {
	tr := buildSorted([]int{2, 4, 6, 8})

	id, sign := tr.SearchClosest(4)
	if sign != 0 || tr.Payload(id) != 4 {
		t.Fatalf("expected exact match on 4, got payload=%d sign=%d", tr.Payload(id), sign)
	}

	id, sign = tr.SearchClosest(5)
	if sign != -1 || tr.Payload(id) != 6 {
		t.Fatalf("expected successor 6 for query 5, got payload=%d sign=%d", tr.Payload(id), sign)
	}

	id, sign = tr.SearchClosest(7)
	if sign != -1 || tr.Payload(id) != 8 {
		t.Fatalf("expected successor 8 for query 7, got payload=%d sign=%d", tr.Payload(id), sign)
	}

	id, sign = tr.SearchClosest(0)
	if sign != -1 || tr.Payload(id) != 2 {
		t.Fatalf("expected successor 2 for query 0, got payload=%d sign=%d", tr.Payload(id), sign)
	}

	id, sign = tr.SearchClosest(9)
	if sign != 1 || tr.Payload(id) != 8 {
		t.Fatalf("expected predecessor 8 for query 9, got payload=%d sign=%d", tr.Payload(id), sign)
	}
}

func TestUnlinkLeaf(t *testing.T) {
	tr := buildSorted([]int{1, 2, 3, 4, 5})
	id, _ := tr.SearchClosest(5)
	tr.Unlink(id)
	assertOrder(t, tr, []int{1, 2, 3, 4})
}

func TestUnlinkInternalWithBothChildren(t *testing.T) {
	tr := buildSorted([]int{1, 2, 3, 4, 5, 6, 7})
	id, _ := tr.SearchClosest(4) // root-ish, has both children in a balanced shape
	tr.Unlink(id)
	assertOrder(t, tr, []int{1, 2, 3, 5, 6, 7})
	if tr.Len() != 6 {
		t.Fatalf("expected len 6, got %d", tr.Len())
	}
}

func TestUnlinkAllMaintainsOrder(t *testing.T) {
	values := []int{9, 1, 8, 2, 7, 3, 6, 4, 5}
	tr := NewTree(lessInt)
	tr.InsertTop(values[0])
	for _, v := range values[1:] {
		id, sign := tr.SearchClosest(v)
		if sign < 0 {
			tr.InsertBefore(id, v)
		} else {
			tr.InsertAfter(id, v)
		}
	}
	for _, v := range []int{9, 1, 8, 2, 7} {
		id, sign := tr.SearchClosest(v)
		if sign != 0 {
			t.Fatalf("value %d must exist exactly", v)
		}
		tr.Unlink(id)
	}
	assertOrder(t, tr, []int{3, 4, 5, 6})
}

func TestHeadTailTrack(t *testing.T) {
	tr := buildSorted([]int{3, 5, 7})
	if tr.Payload(tr.Head()) != 3 {
		t.Fatalf("head mismatch")
	}
	if tr.Payload(tr.Tail()) != 7 {
		t.Fatalf("tail mismatch")
	}
	head := tr.Head()
	tr.Unlink(head)
	if tr.Payload(tr.Head()) != 5 {
		t.Fatalf("head did not advance after unlinking old head")
	}
}
