package loop

import (
	"errors"
	"io"
	"math"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroid-acceleration/internal/input"
	"github.com/tomz197/asteroid-acceleration/internal/loop/config"
	"github.com/tomz197/asteroid-acceleration/internal/object"
	"github.com/tomz197/asteroid-acceleration/internal/physics"
	"github.com/tomz197/asteroid-acceleration/internal/sfx"
)

// soundLog records every effect played.
type soundLog struct {
	effects []sfx.Effect
}

func (l *soundLog) Play(e sfx.Effect) { l.effects = append(l.effects, e) }

func (l *soundLog) count(e sfx.Effect) int {
	n := 0
	for _, got := range l.effects {
		if got == e {
			n++
		}
	}
	return n
}

func testOptions(sounds sfx.Player) Options {
	return Options{
		Bounds:       physics.Bounds{Width: config.DefaultWidth, Height: config.DefaultHeight},
		SafetyRadius: config.DefaultSafetyRadius,
		Rng:          rand.New(rand.NewSource(1)),
		Sounds:       sounds,
		Logger:       log.New(io.Discard),
	}
}

func newTestState(t *testing.T) (*State, *soundLog) {
	t.Helper()
	sounds := &soundLog{}
	s, err := NewState(testOptions(sounds), 0)
	if err != nil {
		t.Fatalf("NewState() error = %v", err)
	}
	return s, sounds
}

// placeShot adds a stationary projectile at p.
func placeShot(s *State, p physics.Vec) {
	s.Projectiles.Projectiles = append(s.Projectiles.Projectiles, object.Projectile{
		Body: object.Body{Pos: p},
	})
}

func TestNewStateSeedsPopulationAwayFromPlayer(t *testing.T) {
	s, _ := newTestState(t)

	if len(s.Large) != config.MinLargeAsteroids {
		t.Fatalf("got %d large asteroids, want %d", len(s.Large), config.MinLargeAsteroids)
	}
	if len(s.Small) != 0 {
		t.Errorf("got %d small asteroids, want 0", len(s.Small))
	}
	for i, a := range s.Large {
		if d := physics.Distance(a.Pos, s.Player.Pos); d <= s.SafetyRadius {
			t.Errorf("asteroid %d spawned %v from the player", i, d)
		}
		if n := len(a.Segments); n < config.InitialSidesMin || n >= config.InitialSidesMax {
			t.Errorf("asteroid %d has %d sides", i, n)
		}
	}
	if s.Player.Pos != s.Bounds.Center() || s.Player.Phase != object.PhaseInvulnerable {
		t.Errorf("player at %v in phase %v", s.Player.Pos, s.Player.Phase)
	}
}

func TestNewStateRejectsUnsatisfiableSafetyRadius(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
	}{
		{"half diagonal", 250},
		{"negative", -1},
		{"NaN", math.NaN()},
		{"infinite", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(nil)
			opts.Bounds = physics.Bounds{Width: 300, Height: 400}
			opts.SafetyRadius = tt.radius

			if _, err := NewState(opts, 0); !errors.Is(err, ErrSafetyRadius) {
				t.Errorf("NewState() error = %v, want ErrSafetyRadius", err)
			}
		})
	}
}

func TestNewStateRejectsNonFinitePlayfield(t *testing.T) {
	for _, w := range []float64{math.NaN(), math.Inf(1)} {
		opts := testOptions(nil)
		opts.Bounds = physics.Bounds{Width: w, Height: 400}
		if _, err := NewState(opts, 0); err == nil {
			t.Errorf("NewState() accepted width %v", w)
		}
	}
}

func TestSingleHitPerAsteroidPerFrame(t *testing.T) {
	s, sounds := newTestState(t)
	target := physics.Vec{X: 200, Y: 200}
	s.Large = []object.Asteroid{object.NewAsteroid(s.Rng, object.AsteroidLarge, target, 12)}

	placeShot(s, physics.Vec{X: 200, Y: 200})
	placeShot(s, physics.Vec{X: 210, Y: 200})
	placeShot(s, physics.Vec{X: 220, Y: 200})

	s.resolveCollisions(0)
	s.compact()

	if s.Projectiles.Len() != 2 {
		t.Fatalf("%d projectiles left, want 2", s.Projectiles.Len())
	}
	// The newest projectile wins the tie.
	for _, p := range s.Projectiles.Projectiles {
		if p.Pos.X == 220 {
			t.Error("newest projectile survived")
		}
	}
	if !s.Large[0].IsExploding() || !s.Large[0].AlreadyHit {
		t.Error("asteroid not exploding after hit")
	}
	if s.Score != config.ScoreLargeAsteroid || s.Destroyed != 1 {
		t.Errorf("score %d destroyed %d, want %d and 1", s.Score, s.Destroyed, config.ScoreLargeAsteroid)
	}
	if n := sounds.count(sfx.AsteroidHit); n != 1 {
		t.Errorf("asteroid hit played %d times, want 1", n)
	}

	// The remaining shots must not hit the same asteroid again. Its children
	// are moved out of the way so they cannot take the shots instead.
	s.Small = nil
	s.resolveCollisions(0)
	s.compact()
	if s.Projectiles.Len() != 2 || s.Destroyed != 1 {
		t.Errorf("exploding asteroid was hit again")
	}
}

func TestLargeHitSplitsIntoThreeAtHitPoint(t *testing.T) {
	s, _ := newTestState(t)
	s.Large = []object.Asteroid{object.NewAsteroid(s.Rng, object.AsteroidLarge, physics.Vec{X: 200, Y: 200}, 12)}
	hitPoint := physics.Vec{X: 230, Y: 190}
	placeShot(s, hitPoint)

	s.resolveCollisions(0)
	if len(s.Small) != 0 {
		t.Fatalf("split children joined before compaction")
	}
	s.compact()

	if len(s.Small) != config.SplitCount {
		t.Fatalf("got %d small asteroids, want %d", len(s.Small), config.SplitCount)
	}
	for i, a := range s.Small {
		if a.Pos != hitPoint || a.Class != object.AsteroidSmall {
			t.Errorf("child %d: %v at %v", i, a.Class, a.Pos)
		}
	}

	// Hitting a small asteroid produces nothing new.
	placeShot(s, hitPoint)
	s.resolveCollisions(0)
	s.compact()
	if len(s.Small) != config.SplitCount {
		t.Errorf("small hit changed the count to %d", len(s.Small))
	}
	if s.Score != config.ScoreLargeAsteroid+config.ScoreSmallAsteroid {
		t.Errorf("score = %d", s.Score)
	}
}

func TestSplitFromShotPastEdgeLandsOnField(t *testing.T) {
	s, _ := newTestState(t)
	s.Large = []object.Asteroid{object.NewAsteroid(s.Rng, object.AsteroidLarge, physics.Vec{X: 1020, Y: 300}, 12)}
	placeShot(s, physics.Vec{X: 1030, Y: 300})

	s.resolveCollisions(0)
	s.compact()

	if len(s.Small) != config.SplitCount {
		t.Fatalf("got %d small asteroids, want %d", len(s.Small), config.SplitCount)
	}
	for i, a := range s.Small {
		if a.Pos != (physics.Vec{X: 0, Y: 300}) {
			t.Errorf("child %d at %v, want wrapped to the near edge", i, a.Pos)
		}
	}
}

func TestBounceSwapsHeadOnVelocities(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	bounds := physics.Bounds{Width: 1000, Height: 1000}
	a := object.NewAsteroid(rng, object.AsteroidLarge, physics.Vec{X: 400, Y: 500}, 12)
	b := object.NewAsteroid(rng, object.AsteroidLarge, physics.Vec{X: 470, Y: 500}, 12)
	v := physics.Vec{X: 2}
	a.Vel, b.Vel = v, v.Scale(-1)

	bounce(&a, &b, bounds)

	if !near(a.Vel, v.Scale(-1)) || !near(b.Vel, v) {
		t.Errorf("velocities after bounce: %v and %v, want %v and %v", a.Vel, b.Vel, v.Scale(-1), v)
	}
	minDist := (a.Radius() + b.Radius()) * config.CollisionSlop
	if d := physics.Distance(a.Pos, b.Pos); d < minDist-1e-9 {
		t.Errorf("bodies still overlap: distance %v < %v", d, minDist)
	}
}

func near(a, b physics.Vec) bool {
	return physics.Distance(a, b) < 1e-9
}

func TestBounceSkipsExplodingAndDistant(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	bounds := physics.Bounds{Width: 1000, Height: 1000}

	tests := []struct {
		name    string
		offset  float64
		explode bool
	}{
		{"exploding", 50, true},
		{"out of reach", 110, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := object.NewAsteroid(rng, object.AsteroidLarge, physics.Vec{X: 400, Y: 500}, 12)
			b := object.NewAsteroid(rng, object.AsteroidLarge, physics.Vec{X: 400 + tt.offset, Y: 500}, 12)
			a.Vel, b.Vel = physics.Vec{X: 1}, physics.Vec{X: -1}
			if tt.explode {
				b.Hit(rng, b.Pos)
			}
			aPos, bPos := a.Pos, b.Pos

			bounce(&a, &b, bounds)

			if a.Vel != (physics.Vec{X: 1}) || b.Vel != (physics.Vec{X: -1}) || a.Pos != aPos || b.Pos != bPos {
				t.Error("bodies were changed")
			}
		})
	}
}

func TestBounceHandlesCoincidentCentres(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	bounds := physics.Bounds{Width: 1000, Height: 1000}
	a := object.NewAsteroid(rng, object.AsteroidSmall, physics.Vec{X: 500, Y: 500}, 10)
	b := object.NewAsteroid(rng, object.AsteroidSmall, physics.Vec{X: 500, Y: 500}, 10)

	bounce(&a, &b, bounds)

	if math.IsNaN(a.Pos.X) || math.IsNaN(b.Vel.X) {
		t.Fatal("bounce produced NaN")
	}
	if a.Pos == b.Pos {
		t.Error("coincident bodies were not separated")
	}
}

func TestPlayerCrashCountsOnce(t *testing.T) {
	s, sounds := newTestState(t)
	center := s.Player.Pos
	s.Player.Phase = object.PhaseNormal
	s.Score = 50
	s.Large = []object.Asteroid{object.NewAsteroid(s.Rng, object.AsteroidLarge, center, 12)}
	s.Small = []object.Asteroid{object.NewAsteroid(s.Rng, object.AsteroidSmall, center, 10)}

	s.resolveCollisions(1)

	if s.Deaths != 1 {
		t.Errorf("deaths = %d, want 1", s.Deaths)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want penalty floored at 0", s.Score)
	}
	if s.Player.Phase != object.PhaseExploding {
		t.Errorf("player phase = %v, want exploding", s.Player.Phase)
	}
	if n := sounds.count(sfx.PlayerHit); n != 1 {
		t.Errorf("player hit played %d times", n)
	}
	if s.Large[0].IsExploding() || s.Small[0].IsExploding() {
		t.Error("crash destroyed an asteroid")
	}
}

func TestInvulnerablePlayerIgnoresAsteroids(t *testing.T) {
	s, sounds := newTestState(t)
	s.Large = []object.Asteroid{object.NewAsteroid(s.Rng, object.AsteroidLarge, s.Player.Pos, 12)}

	for _, phase := range []object.PlayerPhase{object.PhaseInvulnerable, object.PhaseExploding} {
		s.Player.Phase = phase
		s.resolveCollisions(1)
		if s.Player.Phase != phase || s.Deaths != 0 || len(sounds.effects) != 0 {
			t.Errorf("%v player was hit", phase)
		}
	}
}

func TestPopulationFloor(t *testing.T) {
	s, _ := newTestState(t)
	idle := input.Input{}

	// Destroy one large asteroid; its children keep replenishment off.
	placeShot(s, s.Large[0].Pos)
	s.resolveCollisions(0)
	s.compact()
	if n := s.replenish(); n != 0 {
		t.Fatalf("replenished %d while small asteroids remain", n)
	}

	now := 0.0
	for i := 0; i < 3*config.TargetFPS; i++ {
		now += config.Timestep
		s.Step(idle, now)
	}
	if len(s.Large) != config.MinLargeAsteroids-1 || len(s.Small) != config.SplitCount {
		t.Fatalf("got %d large and %d small, want %d and %d",
			len(s.Large), len(s.Small), config.MinLargeAsteroids-1, config.SplitCount)
	}

	// Clearing the small asteroids triggers exactly one new large one.
	for i := range s.Small {
		s.Small[i].Hit(s.Rng, s.Small[i].Pos)
	}
	for i := 0; i < 3*config.TargetFPS && len(s.Small) > 0; i++ {
		now += config.Timestep
		s.Step(idle, now)
	}
	if len(s.Small) != 0 {
		t.Fatal("small asteroids never finished exploding")
	}
	if len(s.Large) != config.MinLargeAsteroids {
		t.Errorf("got %d large asteroids, want %d", len(s.Large), config.MinLargeAsteroids)
	}
}

func TestReplenishSpawnsMissingAwayFromPlayer(t *testing.T) {
	s, _ := newTestState(t)
	s.Player.Pos = physics.Vec{X: 100, Y: 100}
	s.Large = s.Large[:3]
	s.Destroyed = 25

	if n := s.replenish(); n != config.MinLargeAsteroids-3 {
		t.Fatalf("replenish() = %d, want %d", n, config.MinLargeAsteroids-3)
	}
	wantSides := config.BaseSides + 25/config.DestroyedPerSide
	for _, a := range s.Large[3:] {
		if d := physics.Distance(a.Pos, s.Player.Pos); d <= s.SafetyRadius {
			t.Errorf("spawned %v from the player", d)
		}
		if len(a.Segments) != wantSides {
			t.Errorf("spawned with %d sides, want %d", len(a.Segments), wantSides)
		}
	}
	if n := s.replenish(); n != 0 {
		t.Errorf("second replenish() = %d, want 0", n)
	}
}

func TestFireRateGating(t *testing.T) {
	sounds := &soundLog{}
	opts := testOptions(sounds)
	opts.SafetyRadius = 400 // Keep asteroids out of the line of fire
	s, err := NewState(opts, 0)
	if err != nil {
		t.Fatal(err)
	}
	s.Player.Phase = object.PhaseNormal
	fire := input.Input{Fire: true}

	steps := []struct {
		now  float64
		want int
	}{
		{0, 1},
		{0.1, 1},
		{0.19, 1},
		{0.2, 2},
		{0.3, 2},
		{0.45, 3},
	}
	for _, st := range steps {
		s.Step(fire, st.now)
		if got := s.Projectiles.Len(); got != st.want {
			t.Fatalf("at %v: %d projectiles, want %d", st.now, got, st.want)
		}
	}
	if n := sounds.count(sfx.Shot); n != 3 {
		t.Errorf("shot played %d times, want 3", n)
	}

	s.Player.Hit(s.Rng, 1)
	s.Step(fire, 1)
	if s.Projectiles.Len() != 3 {
		t.Error("exploding player fired")
	}
}

func TestShotLeavesFromUpdatedShip(t *testing.T) {
	opts := testOptions(nil)
	opts.SafetyRadius = 400
	s, err := NewState(opts, 0)
	if err != nil {
		t.Fatal(err)
	}
	s.Player.Phase = object.PhaseNormal
	s.Player.Vel = physics.Vec{X: 3}
	start := s.Player.Pos

	s.Step(input.Input{Fire: true}, 0)

	if s.Player.Pos == start {
		t.Fatal("ship did not move")
	}
	if s.Projectiles.Len() != 1 {
		t.Fatalf("%d projectiles, want 1", s.Projectiles.Len())
	}
	shot := s.Projectiles.Projectiles[0]
	want := s.Player.Pos.Add(physics.FromAngle(s.Player.Rot).Scale(config.ProjectileTipShift))
	if !near(shot.Pos, want) {
		t.Errorf("shot at %v, want %v", shot.Pos, want)
	}
	if !near(shot.Vel, s.Player.Vel.Add(physics.FromAngle(s.Player.Rot).Scale(config.ProjectileSpeed))) {
		t.Errorf("shot velocity %v does not inherit the ship's", shot.Vel)
	}
}

func TestStepKeepsEntitiesInBounds(t *testing.T) {
	s, _ := newTestState(t)
	s.Player.Phase = object.PhaseNormal
	in := input.Input{Forward: true, Left: true, Fire: true}

	now := 0.0
	for i := 0; i < 600; i++ {
		now += config.Timestep
		s.Step(in, now)

		for _, group := range [][]object.Asteroid{s.Large, s.Small} {
			for _, a := range group {
				if a.IsExploding() {
					continue
				}
				if a.Pos.X < 0 || a.Pos.X >= s.Bounds.Width || a.Pos.Y < 0 || a.Pos.Y >= s.Bounds.Height {
					t.Fatalf("frame %d: asteroid at %v", i, a.Pos)
				}
			}
		}
		p := s.Player.Pos
		if p.X < 0 || p.X >= s.Bounds.Width || p.Y < 0 || p.Y >= s.Bounds.Height {
			t.Fatalf("frame %d: player at %v", i, p)
		}
		if len(s.Small) == 0 && len(s.Large) < config.MinLargeAsteroids {
			t.Fatalf("frame %d: population floor broken", i)
		}
	}
}
