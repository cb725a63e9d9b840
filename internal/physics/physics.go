// Package physics provides the vector math, distance tests and toroidal
// screen bounds shared by every moving entity.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vec) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// PointInCircle reports whether p lies strictly inside the circle at c.
func PointInCircle(p, c Vec, radius float64) bool {
	return DistanceSquared(p, c) < radius*radius
}

// CirclesOverlap reports whether two circles overlap.
func CirclesOverlap(c1 Vec, r1 float64, c2 Vec, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(c1, c2) < minDist*minDist
}

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
