package loop

import (
	"github.com/tomz197/asteroid-acceleration/internal/loop/config"
	"github.com/tomz197/asteroid-acceleration/internal/object"
	"github.com/tomz197/asteroid-acceleration/internal/physics"
)

// seedPopulation fills the field with the minimum number of large asteroids,
// each with a random side count.
func (s *State) seedPopulation() {
	for len(s.Large) < config.MinLargeAsteroids {
		sides := config.InitialSidesMin + s.Rng.Intn(config.InitialSidesMax-config.InitialSidesMin)
		s.spawnLarge(sides)
	}
}

// replenish tops large asteroids back up to the minimum once every small
// asteroid is gone. Later asteroids get more sides as more are destroyed.
func (s *State) replenish() int {
	if len(s.Small) > 0 {
		return 0
	}
	missing := config.MinLargeAsteroids - len(s.Large)
	if missing <= 0 {
		return 0
	}
	sides := config.BaseSides + s.Destroyed/config.DestroyedPerSide
	for i := 0; i < missing; i++ {
		s.spawnLarge(sides)
	}
	s.Log.Debug("replenished asteroids", "count", missing, "sides", sides)
	return missing
}

func (s *State) spawnLarge(sides int) {
	pos := s.spawnPoint()
	s.Large = append(s.Large, object.NewAsteroid(s.Rng, object.AsteroidLarge, pos, sides))
}

// spawnPoint samples the playfield until it finds a point farther than the
// safety radius from the player. NewState guarantees such a point exists.
func (s *State) spawnPoint() physics.Vec {
	for {
		p := physics.Vec{
			X: s.Rng.Float64() * s.Bounds.Width,
			Y: s.Rng.Float64() * s.Bounds.Height,
		}
		if physics.Distance(p, s.Player.Pos) > s.SafetyRadius {
			return p
		}
	}
}
