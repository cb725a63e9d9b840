package physics

import "math"

// Vec is a 2D vector. Positions, velocities and forces all use it.
type Vec struct {
	X, Y float64
}

// FromAngle returns the unit vector pointing along deg degrees
// (0 = +X, angles grow towards +Y, i.e. clockwise on screen).
func FromAngle(deg float64) Vec {
	rad := Radians(deg)
	return Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the magnitude of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector along v, or the zero vector if v is zero.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Rotate returns v rotated by deg degrees around the origin.
func (v Vec) Rotate(deg float64) Vec {
	s, c := math.Sincos(Radians(deg))
	return Vec{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}
