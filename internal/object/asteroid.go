package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/asteroid-acceleration/internal/draw"
	"github.com/tomz197/asteroid-acceleration/internal/loop/config"
	"github.com/tomz197/asteroid-acceleration/internal/physics"
)

// AsteroidClass selects the size variant of an asteroid.
type AsteroidClass int

const (
	AsteroidLarge AsteroidClass = iota
	AsteroidSmall
)

func (c AsteroidClass) String() string {
	switch c {
	case AsteroidLarge:
		return "large"
	case AsteroidSmall:
		return "small"
	default:
		return "unknown"
	}
}

// classSpec holds the parameters that distinguish the two variants.
type classSpec struct {
	radius Range // Spoke length band; Max is also the collision radius
	speed  float64
	spin   float64
	burst  BurstSpec
}

var asteroidClasses = [...]classSpec{
	AsteroidLarge: {
		radius: Range{Min: config.LargeMinRadius, Max: config.LargeMaxRadius},
		speed:  config.LargeSpeed,
		spin:   config.LargeSpin,
		burst: BurstSpec{
			Count:    config.LargeBurstCount,
			Speed:    Symmetric(5),
			Lifespan: Range{Min: 1, Max: 2},
			Radius:   Range{Min: 1, Max: 3},
		},
	},
	AsteroidSmall: {
		radius: Range{Min: config.SmallMinRadius, Max: config.SmallMaxRadius},
		speed:  config.SmallSpeed,
		spin:   config.SmallSpin,
		burst: BurstSpec{
			Count:    config.SmallBurstCount,
			Speed:    Symmetric(2.5),
			Lifespan: Range{Min: 0.5, Max: 1.2},
			Radius:   Range{Min: 0.5, Max: 1.5},
		},
	},
}

// Segment is one edge of an asteroid outline, relative to its centre.
type Segment struct {
	A, B physics.Vec
}

// Asteroid is a destructible polygonal rock. Asteroids are stored by value
// in their owning collection and removed only once IsExplosionFinished.
type Asteroid struct {
	Body
	Class         AsteroidClass
	Segments      []Segment
	RotationSpeed float64 // Degrees per frame
	AlreadyHit    bool    // Set by the collision pass before calling Hit
	exploded      bool
	burst         Burst
}

// NewAsteroid builds an asteroid of the given class at pos with an outline
// of sides random-length spokes. Fewer than three sides are raised to three.
func NewAsteroid(rng *rand.Rand, class AsteroidClass, pos physics.Vec, sides int) Asteroid {
	spec := asteroidClasses[class]
	if sides < 3 {
		sides = 3
	}

	vertices := make([]physics.Vec, sides)
	step := 360.0 / float64(sides)
	for i := range vertices {
		vertices[i] = physics.FromAngle(float64(i) * step).Scale(spec.radius.Sample(rng))
	}

	segments := make([]Segment, sides)
	for i := range vertices {
		segments[i] = Segment{A: vertices[i], B: vertices[(i+1)%sides]}
	}

	return Asteroid{
		Body: Body{
			Pos: pos,
			Vel: randomVec(rng, Symmetric(1)),
		},
		Class:         class,
		Segments:      segments,
		RotationSpeed: Symmetric(spec.spin).Sample(rng),
	}
}

// Radius is the collision radius: the outer edge of the spoke band.
func (a *Asteroid) Radius() float64 {
	return asteroidClasses[a.Class].radius.Max
}

// Speed is the fixed cruising speed of the asteroid's class.
func (a *Asteroid) Speed() float64 {
	return asteroidClasses[a.Class].speed
}

// Update steers, moves, spins and wraps the asteroid. Once exploded only the
// burst is aged.
func (a *Asteroid) Update(rng *rand.Rand, bounds physics.Bounds) {
	a.burst.Update()
	if a.exploded {
		return
	}

	a.ApplyForce(randomVec(rng, Symmetric(config.SteeringNoise)))
	a.Vel = a.Vel.Add(a.Acc).Normalize().Scale(a.Speed())
	a.Acc = physics.Vec{}
	a.Pos = bounds.Wrap(a.Pos.Add(a.Vel))
	a.Rot = math.Mod(a.Rot+a.RotationSpeed, 360)
}

// Hit explodes the asteroid at the given point. Large asteroids return the
// small asteroids they split into; the caller owns them. Hitting an asteroid
// that has already exploded does nothing.
func (a *Asteroid) Hit(rng *rand.Rand, at physics.Vec) []Asteroid {
	if a.exploded {
		return nil
	}
	a.exploded = true
	a.burst.Trigger(rng, at, asteroidClasses[a.Class].burst)

	if a.Class != AsteroidLarge {
		return nil
	}
	children := make([]Asteroid, config.SplitCount)
	for i := range children {
		children[i] = NewAsteroid(rng, AsteroidSmall, at, config.SmallSides)
	}
	return children
}

// IsExploding reports whether the asteroid has been hit.
func (a *Asteroid) IsExploding() bool {
	return a.exploded
}

// IsExplosionFinished reports whether the asteroid can be removed.
func (a *Asteroid) IsExplosionFinished() bool {
	return a.exploded && a.burst.IsEmpty()
}

// Burst exposes the explosion particles.
func (a *Asteroid) Burst() *Burst {
	return &a.burst
}

// Draw renders the outline, or the explosion once hit.
func (a *Asteroid) Draw(s draw.Surface) {
	if a.exploded {
		a.burst.Draw(s, draw.White)
		return
	}
	for _, seg := range a.Segments {
		p1 := a.Pos.Add(seg.A.Rotate(a.Rot))
		p2 := a.Pos.Add(seg.B.Rotate(a.Rot))
		s.DrawLine(draw.Point{X: p1.X, Y: p1.Y}, draw.Point{X: p2.X, Y: p2.Y}, draw.White)
	}
}
