package physics

import "math"

// Bounds is the playfield size. The playfield is a torus: anything leaving
// one edge re-enters from the opposite one.
type Bounds struct {
	Width  float64
	Height float64
}

// Center returns the middle of the playfield.
func (b Bounds) Center() Vec {
	return Vec{X: b.Width / 2, Y: b.Height / 2}
}

// HalfDiagonal is the largest distance any point can be from the centre.
func (b Bounds) HalfDiagonal() float64 {
	return math.Hypot(b.Width, b.Height) / 2
}

// Wrap teleports p to the opposite edge when it has crossed a bound.
// The result always lies in [0, Width) x [0, Height). Crossing the far edge
// lands exactly on 0; crossing the near edge lands just inside Width.
func (b Bounds) Wrap(p Vec) Vec {
	p.X = wrapAxis(p.X, b.Width)
	p.Y = wrapAxis(p.Y, b.Height)
	return p
}

func wrapAxis(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	switch {
	case v >= size:
		return 0
	case v < 0:
		return math.Nextafter(size, 0)
	}
	return v
}

// Contains reports whether p lies inside the closed rectangle
// [0, Width] x [0, Height].
func (b Bounds) Contains(p Vec) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}
