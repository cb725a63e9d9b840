package object

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/tomz197/asteroid-acceleration/internal/draw"
	"github.com/tomz197/asteroid-acceleration/internal/loop/config"
	"github.com/tomz197/asteroid-acceleration/internal/physics"
)

// Particle is one fragment of an explosion.
type Particle struct {
	Pos      physics.Vec
	Vel      physics.Vec
	Lifespan float64 // Seconds
	Age      float64 // Seconds
	Radius   float64
}

// BurstSpec describes how a burst is populated when triggered.
type BurstSpec struct {
	Count    int
	Speed    Range // Per-axis velocity
	Lifespan Range
	Radius   Range
}

// Burst is a short-lived swarm of particles owned by a single entity.
type Burst struct {
	particles []Particle
}

// Trigger discards any residual particles and spawns spec.Count new ones
// at origin.
func (b *Burst) Trigger(rng *rand.Rand, origin physics.Vec, spec BurstSpec) {
	b.particles = b.particles[:0]
	for i := 0; i < spec.Count; i++ {
		b.particles = append(b.particles, Particle{
			Pos:      origin,
			Vel:      randomVec(rng, spec.Speed),
			Lifespan: spec.Lifespan.Sample(rng),
			Radius:   spec.Radius.Sample(rng),
		})
	}
}

// Update moves every particle, applies drag and ages it by one timestep.
// Particles older than their lifespan are dropped.
func (b *Burst) Update() {
	kept := b.particles[:0]
	for _, p := range b.particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel = p.Vel.Scale(config.ParticleDrag)
		p.Age += config.Timestep
		if p.Age > p.Lifespan {
			continue
		}
		kept = append(kept, p)
	}
	b.particles = kept
}

// IsEmpty reports whether every particle has expired.
func (b *Burst) IsEmpty() bool {
	return len(b.particles) == 0
}

// Len returns the number of live particles.
func (b *Burst) Len() int {
	return len(b.particles)
}

// Particles exposes the live particles. The slice is only valid until the
// next Update or Trigger.
func (b *Burst) Particles() []Particle {
	return b.particles
}

// Draw renders each particle as a small radial marker fading with age.
func (b *Burst) Draw(s draw.Surface, c color.NRGBA) {
	var ring [config.ParticleSegments]draw.Point
	step := 2 * math.Pi / config.ParticleSegments

	for _, p := range b.particles {
		fade := 1 - p.Age/p.Lifespan
		if fade <= 0 {
			continue
		}
		for i := range ring {
			sin, cos := math.Sincos(float64(i) * step)
			ring[i] = draw.Point{X: p.Pos.X + cos*p.Radius, Y: p.Pos.Y + sin*p.Radius}
		}
		draw.Polyline(s, ring[:], true, draw.WithAlpha(c, uint8(255*fade)))
	}
}
