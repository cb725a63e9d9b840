package loop

import (
	"github.com/tomz197/asteroid-acceleration/internal/loop/config"
	"github.com/tomz197/asteroid-acceleration/internal/object"
	"github.com/tomz197/asteroid-acceleration/internal/physics"
	"github.com/tomz197/asteroid-acceleration/internal/sfx"
)

// resolveCollisions runs every pairwise pass in a fixed order. Nothing is
// removed here; consumed projectiles are marked dead and exploded asteroids
// stay in place until compaction.
func (s *State) resolveCollisions(now float64) {
	s.shootAsteroids(s.Large)
	s.shootAsteroids(s.Small)
	s.crashPlayer(s.Large, now)
	s.crashPlayer(s.Small, now)
	bounceWithin(s.Large, s.Bounds)
	bounceAcross(s.Large, s.Small, s.Bounds)
}

// asteroidScore returns the points for hitting an asteroid of the given class.
func asteroidScore(class object.AsteroidClass) int {
	switch class {
	case object.AsteroidLarge:
		return config.ScoreLargeAsteroid
	case object.AsteroidSmall:
		return config.ScoreSmallAsteroid
	default:
		return 0
	}
}

// shootAsteroids lets each asteroid take at most one projectile. Projectiles
// are scanned newest first, so the freshest shot wins a tie.
func (s *State) shootAsteroids(asteroids []object.Asteroid) {
	shots := s.Projectiles.Projectiles
	for i := range asteroids {
		a := &asteroids[i]
		if a.AlreadyHit || a.IsExploding() {
			continue
		}
		for j := len(shots) - 1; j >= 0; j-- {
			p := &shots[j]
			if p.Dead || !physics.PointInCircle(p.Pos, a.Pos, a.Radius()) {
				continue
			}
			p.Dead = true
			a.AlreadyHit = true
			// A shot fired this frame may still sit past the edge.
			s.spawned = append(s.spawned, a.Hit(s.Rng, s.Bounds.Wrap(p.Pos))...)
			s.Score += asteroidScore(a.Class)
			s.Destroyed++
			s.Sounds.Play(sfx.AsteroidHit)
			s.Log.Debug("asteroid hit", "class", a.Class, "score", s.Score)
			break
		}
	}
}

// crashPlayer applies the first asteroid touching the player. The player
// ignores further contacts until it is vulnerable again.
func (s *State) crashPlayer(asteroids []object.Asteroid, now float64) {
	for i := range asteroids {
		if !s.Player.Collides(&asteroids[i]) {
			continue
		}
		if !s.Player.Hit(s.Rng, now) {
			return
		}
		s.Score = max(0, s.Score-config.PenaltyPlayerHit)
		s.Deaths++
		s.Sounds.Play(sfx.PlayerHit)
		s.Log.Debug("player hit", "deaths", s.Deaths, "score", s.Score)
		return
	}
}

func bounceWithin(asteroids []object.Asteroid, bounds physics.Bounds) {
	for i := 0; i < len(asteroids); i++ {
		for j := i + 1; j < len(asteroids); j++ {
			bounce(&asteroids[i], &asteroids[j], bounds)
		}
	}
}

func bounceAcross(large, small []object.Asteroid, bounds physics.Bounds) {
	for i := range large {
		for j := range small {
			bounce(&large[i], &small[j], bounds)
		}
	}
}

// bounce resolves an elastic collision between two equal-mass asteroids:
// the velocity components along the contact normal are exchanged and the
// bodies are pushed apart by half the overlap each, wrapping if that pushes
// them off the playfield.
func bounce(a1, a2 *object.Asteroid, bounds physics.Bounds) {
	if a1.IsExploding() || a2.IsExploding() {
		return
	}

	minDist := (a1.Radius() + a2.Radius()) * config.CollisionSlop
	delta := a1.Pos.Sub(a2.Pos)
	dist := delta.Len()
	if dist >= minDist {
		return
	}

	// Normal from a2 to a1. Coincident centres get an arbitrary axis.
	normal := physics.Vec{X: 1}
	if dist > 0 {
		normal = delta.Scale(1 / dist)
	}

	exchange := normal.Scale(a1.Vel.Sub(a2.Vel).Dot(normal))
	a1.Vel = a1.Vel.Sub(exchange)
	a2.Vel = a2.Vel.Add(exchange)

	separation := normal.Scale((minDist - dist) / 2)
	a1.Pos = bounds.Wrap(a1.Pos.Add(separation))
	a2.Pos = bounds.Wrap(a2.Pos.Sub(separation))
}
