package gamemath

import (
	"math"
	"testing"
)

func TestClampLength(t *testing.T) {
	x, y := ClampLength(3, 4, 1)
	if math.Abs(Length(x, y)-1) > 1e-9 {
		t.Fatalf("length = %v, want 1", Length(x, y))
	}
	if math.Abs(x-0.6) > 1e-9 || math.Abs(y-0.8) > 1e-9 {
		t.Fatalf("direction changed: (%v, %v)", x, y)
	}

	x, y = ClampLength(0.3, 0.4, 1)
	if x != 0.3 || y != 0.4 {
		t.Fatalf("short vector changed: (%v, %v)", x, y)
	}

	x, y = ClampLength(0, 0, 1)
	if x != 0 || y != 0 {
		t.Fatalf("zero vector changed: (%v, %v)", x, y)
	}
}

func TestRectClamp(t *testing.T) {
	r := Rect{MinX: -1000, MinY: -1000, MaxX: 1000, MaxY: 1000}

	cases := []struct {
		x, y, wantX, wantY float64
	}{
		{0, 0, 0, 0},
		{1500, 0, 1000, 0},
		{-2000, 2000, -1000, 1000},
		{999, -1001, 999, -1000},
	}
	for _, c := range cases {
		gx, gy := r.Clamp(c.x, c.y)
		if gx != c.wantX || gy != c.wantY {
			t.Errorf("Clamp(%v, %v) = (%v, %v), want (%v, %v)", c.x, c.y, gx, gy, c.wantX, c.wantY)
		}
	}
}

func TestRectOverlaps(t *testing.T) {
	a := RectAround(0, 0, 20, 20)
	if !a.Overlaps(RectAround(15, 0, 20, 20)) {
		t.Fatal("expected overlap")
	}
	if a.Overlaps(RectAround(20, 0, 20, 20)) {
		t.Fatal("touching edges should not overlap")
	}
	if a.Overlaps(RectAround(0, 50, 20, 20)) {
		t.Fatal("expected no overlap")
	}
}
