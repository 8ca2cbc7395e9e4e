package vector

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cow.vector")
	defer teardown()
	//
	x := Of(1, 2, 3)
	y := Of(1, 2, 3)
	if !Equal(x, y) {
		t.Errorf("expected independently built equal vectors to compare equal")
	}
	if x.big.blk == y.big.blk {
		t.Errorf("expected independently built vectors to use distinct storage")
	}
	z := x.Clone()
	if !Equal(x, z) {
		t.Errorf("expected a clone to compare equal (same block fast path)")
	}
	if Equal(x, Of(1, 2)) || Equal(x, Of(1, 2, 4)) {
		t.Errorf("expected different sequences to compare unequal")
	}
}

func TestEqualAcrossRepresentations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cow.vector")
	defer teardown()
	//
	// A one-element heap-backed vector and an inline one must be
	// indistinguishable from the outside.
	heapBacked := Of(1, 2)
	if err := heapBacked.Pop(); err != nil {
		t.Fatalf("unexpected Pop error: %v", err)
	}
	inline := Of(1)
	if heapBacked.tag != repShared || inline.tag != repInline {
		t.Fatalf("test setup: expected differing representations")
	}
	if !Equal(heapBacked, inline) {
		t.Errorf("expected equal sequences to compare equal across representations")
	}
	var e1, e2 Vector[int]
	e2.Push(1)
	_ = e2.Pop()
	if !Equal(e1, e2) {
		t.Errorf("expected empty vectors to compare equal regardless of history")
	}
}

func TestEqualFunc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cow.vector")
	defer teardown()
	//
	a := Of("Alpha", "Beta")
	b := Of("alpha", "BETA")
	if !EqualFunc(a, b, strings.EqualFold) {
		t.Errorf("expected case-insensitive comparison to succeed")
	}
	if EqualFunc(a, Of("alpha"), strings.EqualFold) {
		t.Errorf("expected different lengths to compare unequal")
	}
}

func TestCompare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cow.vector")
	defer teardown()
	//
	cases := []struct {
		a, b Vector[int]
		want int
	}{
		{Of(1, 2, 3), Of(1, 2, 3), 0},
		{Of(1, 2), Of(1, 2, 3), -1}, // prefix sorts first
		{Of(1, 2, 3), Of(1, 2), +1},
		{Of(1, 2, 3), Of(1, 3), -1},
		{Of(2), Of(1, 9, 9), +1},
		{Of[int](), Of(1), -1},
		{Of[int](), Of[int](), 0},
	}
	for i, c := range cases {
		if got := Compare(c.a, c.b); got != c.want {
			t.Errorf("case %d: expected Compare(%v, %v) = %d, have %d",
				i, c.a.Slice(), c.b.Slice(), c.want, got)
		}
	}
}

func TestCompareFunc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cow.vector")
	defer teardown()
	//
	desc := func(a, b int) int { return b - a } // reversed ordering
	if got := CompareFunc(Of(3), Of(1), desc); got >= 0 {
		t.Errorf("expected reversed comparator to sort 3 before 1, have %d", got)
	}
}
