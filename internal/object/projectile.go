package object

import (
	"github.com/tomz197/asteroid-acceleration/internal/draw"
	"github.com/tomz197/asteroid-acceleration/internal/loop/config"
	"github.com/tomz197/asteroid-acceleration/internal/physics"
)

// Projectile is a bullet fired by the player. Projectiles do not wrap; they
// are dropped once they leave the playfield.
type Projectile struct {
	Body
	Dead bool // Consumed by a hit, removed on the next Compact
}

// ProjectileStream owns every live projectile in firing order.
type ProjectileStream struct {
	Projectiles []Projectile
}

// Emit fires a projectile from origin along facing (degrees). Its velocity
// is inherited plus speed along facing, and it starts a little ahead of
// origin so it clears the ship.
func (s *ProjectileStream) Emit(origin physics.Vec, facing, speed float64, inherited physics.Vec) {
	dir := physics.FromAngle(facing)
	s.Projectiles = append(s.Projectiles, Projectile{
		Body: Body{
			Pos: origin.Add(dir.Scale(config.ProjectileTipShift)),
			Vel: inherited.Add(dir.Scale(speed)),
			Rot: facing,
		},
	})
}

// Update moves every projectile and culls those outside bounds.
func (s *ProjectileStream) Update(bounds physics.Bounds) {
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if p.Dead {
			continue
		}
		p.Advance()
		if !bounds.Contains(p.Pos) {
			continue
		}
		kept = append(kept, p)
	}
	s.Projectiles = kept
}

// Compact drops projectiles consumed this frame.
func (s *ProjectileStream) Compact() {
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if !p.Dead {
			kept = append(kept, p)
		}
	}
	s.Projectiles = kept
}

// Len returns the number of projectiles, dead or alive.
func (s *ProjectileStream) Len() int {
	return len(s.Projectiles)
}

// Draw renders each live projectile as a short dash along its heading.
func (s *ProjectileStream) Draw(surface draw.Surface) {
	for _, p := range s.Projectiles {
		if p.Dead {
			continue
		}
		half := physics.FromAngle(p.Rot).Scale(config.ProjectileLength / 2)
		a, b := p.Pos.Sub(half), p.Pos.Add(half)
		surface.DrawLine(draw.Point{X: a.X, Y: a.Y}, draw.Point{X: b.X, Y: b.Y}, draw.White)
	}
}
