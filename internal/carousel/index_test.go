package carousel

import "testing"

func TestIndexAtRoundTrip(t *testing.T) {
	for _, extent := range []float64{226.5, 60, 18, 3, 1} {
		for k := -40; k <= 40; k++ {
			if got := IndexAt(OffsetAt(k, extent), extent); got != k {
				t.Fatalf("extent %v: expected index %d, got %d", extent, k, got)
			}
		}
	}
}

func TestLogicalWraps(t *testing.T) {
	for _, physical := range []int{-1, 4, 9, 14, -6} {
		if got := Logical(physical, 5); got != 4 {
			t.Fatalf("physical %d: expected logical 4, got %d", physical, got)
		}
	}
	if got := Logical(0, 5); got != 0 {
		t.Fatalf("expected logical 0, got %d", got)
	}
}

func TestRoundHalfTowardPositiveInfinity(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{1.5, 2},
		{2.5, 3},
		{-1.5, -1},
		{-2.5, -2},
		{0.49, 0},
		{-0.51, -1},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Fatalf("Round(%v): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestNearestAlignsToSlot(t *testing.T) {
	const extent = 60.0
	base := OffsetAt(7, extent)
	for _, delta := range []float64{-29, -10, 0, 10, 29} {
		if got := Nearest(base+delta, extent); got != base {
			t.Fatalf("delta %v: expected %v, got %v", delta, base, got)
		}
	}
	if got := Nearest(base-31, extent); got != OffsetAt(8, extent) {
		t.Fatalf("expected next slot, got %v", got)
	}
}
