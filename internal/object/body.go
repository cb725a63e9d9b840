package object

import "github.com/tomz197/asteroid-acceleration/internal/physics"

// Body is the kinematic state embedded in every mobile entity.
type Body struct {
	Pos physics.Vec // Position
	Vel physics.Vec // Velocity, pixels per frame
	Acc physics.Vec // Force accumulator, cleared on every step
	Rot float64     // Facing angle in degrees
}

// ApplyForce accumulates f into the acceleration for the next step.
func (b *Body) ApplyForce(f physics.Vec) {
	b.Acc = b.Acc.Add(f)
}

// Advance applies the accumulated acceleration to the velocity and the
// velocity to the position, then clears the accumulator.
func (b *Body) Advance() {
	b.Vel = b.Vel.Add(b.Acc)
	b.Pos = b.Pos.Add(b.Vel)
	b.Acc = physics.Vec{}
}

// Integrate advances the body one frame and wraps it into bounds.
func (b *Body) Integrate(bounds physics.Bounds) {
	b.Advance()
	b.Pos = bounds.Wrap(b.Pos)
}

// Position returns the centre of the body.
func (b *Body) Position() physics.Vec { return b.Pos }

// Velocity returns the current velocity.
func (b *Body) Velocity() physics.Vec { return b.Vel }

// SetPosition moves the body.
func (b *Body) SetPosition(p physics.Vec) { b.Pos = p }

// SetVelocity replaces the velocity.
func (b *Body) SetVelocity(v physics.Vec) { b.Vel = v }
