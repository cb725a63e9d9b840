package physics

import (
	"math"
	"testing"
)

func TestWrapTeleportsToOppositeEdge(t *testing.T) {
	b := Bounds{Width: 800, Height: 600}

	tests := []struct {
		name string
		in   Vec
		want Vec
	}{
		{"inside", Vec{X: 10, Y: 20}, Vec{X: 10, Y: 20}},
		{"past right edge", Vec{X: 801, Y: 300}, Vec{X: 0, Y: 300}},
		{"exactly on right edge", Vec{X: 800, Y: 300}, Vec{X: 0, Y: 300}},
		{"past bottom edge", Vec{X: 400, Y: 650}, Vec{X: 400, Y: 0}},
		{"far past right edge", Vec{X: 1700, Y: 300}, Vec{X: 0, Y: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Wrap(tt.in)
			if got != tt.want {
				t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWrapNegativeStaysInsideHalfOpenRange(t *testing.T) {
	b := Bounds{Width: 800, Height: 600}

	got := b.Wrap(Vec{X: -1, Y: -0.5})
	if got.X >= b.Width || got.X < b.Width-1 {
		t.Errorf("x = %v, want just below %v", got.X, b.Width)
	}
	if got.Y >= b.Height || got.Y < b.Height-1 {
		t.Errorf("y = %v, want just below %v", got.Y, b.Height)
	}
}

func TestContainsIsInclusive(t *testing.T) {
	b := Bounds{Width: 100, Height: 50}
	for _, p := range []Vec{{0, 0}, {100, 50}, {50, 25}} {
		if !b.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	for _, p := range []Vec{{-0.1, 0}, {100.1, 10}, {10, 50.1}, {10, -1}} {
		if b.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}

func TestVecHelpers(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	if v.Len() != 5 {
		t.Errorf("Len = %v, want 5", v.Len())
	}
	n := v.Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalize length = %v, want 1", n.Len())
	}
	if (Vec{}).Normalize() != (Vec{}) {
		t.Error("Normalize of zero vector should stay zero")
	}

	f := FromAngle(90)
	if math.Abs(f.X) > 1e-12 || math.Abs(f.Y-1) > 1e-12 {
		t.Errorf("FromAngle(90) = %v, want (0,1)", f)
	}

	r := Vec{X: 1}.Rotate(180)
	if math.Abs(r.X+1) > 1e-12 || math.Abs(r.Y) > 1e-12 {
		t.Errorf("Rotate(180) = %v, want (-1,0)", r)
	}
}

func TestCircleTests(t *testing.T) {
	if !PointInCircle(Vec{X: 1, Y: 1}, Vec{}, 2) {
		t.Error("point should be inside circle")
	}
	if PointInCircle(Vec{X: 2}, Vec{}, 2) {
		t.Error("point on the rim is not inside")
	}
	if !CirclesOverlap(Vec{}, 1, Vec{X: 1.5}, 1) {
		t.Error("circles should overlap")
	}
	if CirclesOverlap(Vec{}, 1, Vec{X: 2}, 1) {
		t.Error("touching circles do not overlap")
	}
	if d := Distance(Vec{}, Vec{X: 3, Y: 4}); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
}
