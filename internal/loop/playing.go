package loop

import (
	"github.com/tomz197/asteroid-acceleration/internal/input"
	"github.com/tomz197/asteroid-acceleration/internal/loop/config"
	"github.com/tomz197/asteroid-acceleration/internal/object"
	"github.com/tomz197/asteroid-acceleration/internal/sfx"
)

// Step advances the game by one frame. in holds the held controls and now
// is the elapsed session time in seconds. Shots leave from where the ship
// ends up this frame and first move on the next one.
func (s *State) Step(in input.Input, now float64) {
	s.steer(in)
	s.updateObjects(now)
	s.fire(in, now)
	s.resolveCollisions(now)
	s.compact()
	s.replenish()
}

// steer applies rotation and thrust from the held controls.
func (s *State) steer(in input.Input) {
	if in.Left {
		s.Player.Rotate(-config.PlayerRotateStep)
	}
	if in.Right {
		s.Player.Rotate(config.PlayerRotateStep)
	}
	if in.Forward {
		s.Player.Thrust(config.PlayerThrustPower)
	}
	if in.Backward {
		s.Player.Thrust(-config.PlayerThrustPower)
	}
}

// fire emits a projectile when the trigger is held, the fire rate allows it
// and the player is vulnerable.
func (s *State) fire(in input.Input, now float64) {
	if !in.Fire || !s.Player.CanFire() || now-s.lastShot < config.FireRate {
		return
	}
	s.Projectiles.Emit(s.Player.Pos, s.Player.Rot, config.ProjectileSpeed, s.Player.Vel)
	s.lastShot = now
	s.Sounds.Play(sfx.Shot)
}

// updateObjects moves every entity one frame.
func (s *State) updateObjects(now float64) {
	s.Player.Update(now, s.Bounds)
	s.Projectiles.Update(s.Bounds)
	for i := range s.Large {
		s.Large[i].Update(s.Rng, s.Bounds)
	}
	for i := range s.Small {
		s.Small[i].Update(s.Rng, s.Bounds)
	}
}

// compact drops everything that finished this frame and adds the asteroids
// split off during it.
func (s *State) compact() {
	s.Projectiles.Compact()
	s.Large = removeFinished(s.Large)
	s.Small = removeFinished(s.Small)
	s.Small = append(s.Small, s.spawned...)
	s.spawned = s.spawned[:0]
}

// removeFinished keeps entities whose explosion has not yet burnt out,
// reusing the backing array.
func removeFinished[T any, PT interface {
	*T
	object.Explodable
}](items []T) []T {
	kept := items[:0]
	for i := range items {
		if PT(&items[i]).IsExplosionFinished() {
			continue
		}
		kept = append(kept, items[i])
	}
	clear(items[len(kept):])
	return kept
}
