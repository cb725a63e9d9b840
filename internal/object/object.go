// Package object holds the mobile entities of the game: the player ship,
// asteroids, projectiles and the particle bursts they own.
package object

import (
	"math/rand"

	"github.com/tomz197/asteroid-acceleration/internal/physics"
)

// KinematicBody is implemented by anything with a position, a velocity and
// a circular collision footprint.
type KinematicBody interface {
	Position() physics.Vec
	Velocity() physics.Vec
	Radius() float64
}

// Explodable is implemented by entities that end their life in a particle
// burst. IsExplosionFinished is the only condition under which the owning
// collection may drop the entity.
type Explodable interface {
	IsExploding() bool
	IsExplosionFinished() bool
}

// Range is a closed-open interval [Min, Max) sampled uniformly.
type Range struct {
	Min, Max float64
}

// Sample draws a value from the range.
func (r Range) Sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Symmetric returns the range [-v, v).
func Symmetric(v float64) Range {
	return Range{Min: -v, Max: v}
}

// randomVec draws both components from r independently.
func randomVec(rng *rand.Rand, r Range) physics.Vec {
	return physics.Vec{X: r.Sample(rng), Y: r.Sample(rng)}
}
