package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/asteroid-acceleration/internal/draw"
	"github.com/tomz197/asteroid-acceleration/internal/loop/config"
	"github.com/tomz197/asteroid-acceleration/internal/physics"
)

// PlayerPhase is the state of the player's hit lifecycle.
type PlayerPhase int

const (
	PhaseNormal PlayerPhase = iota
	PhaseInvulnerable
	PhaseExploding
)

func (p PlayerPhase) String() string {
	switch p {
	case PhaseNormal:
		return "normal"
	case PhaseInvulnerable:
		return "invulnerable"
	case PhaseExploding:
		return "exploding"
	default:
		return "unknown"
	}
}

var shipBurst = BurstSpec{
	Count:    config.ShipBurstCount,
	Speed:    Symmetric(5),
	Lifespan: Range{Min: 1, Max: 2},
	Radius:   Range{Min: 1.5, Max: 3.5},
}

// Ship outline in local coordinates, nose pointing along +X.
var shipOutline = [...]physics.Vec{
	{X: -10, Y: 10},
	{X: 10, Y: 0},
	{X: -10, Y: -10},
}

// Player is the ship. It is created once per session and reset in place.
type Player struct {
	Body
	Phase PlayerPhase
	Alpha float64 // Render opacity in [0, 255]

	home       physics.Vec
	phaseStart float64
	fadeDir    float64
	burst      Burst
}

// NewPlayer places the ship at home, invulnerable from now.
func NewPlayer(home physics.Vec, now float64) *Player {
	p := &Player{
		home:    home,
		fadeDir: 1,
	}
	p.Reset()
	p.enter(PhaseInvulnerable, now)
	return p
}

// Radius returns the collision radius.
func (p *Player) Radius() float64 {
	return config.PlayerRadius
}

// Rotate turns the ship by deg degrees.
func (p *Player) Rotate(deg float64) {
	p.Rot = math.Mod(p.Rot+deg, 360)
}

// Thrust pushes the ship along its facing. Negative power reverses.
func (p *Player) Thrust(power float64) {
	p.ApplyForce(physics.FromAngle(p.Rot).Scale(power * config.ThrustCoefficient))
}

// Reset returns the ship to its home position at rest. The phase is kept.
func (p *Player) Reset() {
	p.Pos = p.home
	p.Vel = physics.Vec{}
	p.Acc = physics.Vec{}
	p.Rot = 0
}

// Hit starts the explosion. It reports whether the hit was taken; hits while
// invulnerable or already exploding are ignored.
func (p *Player) Hit(rng *rand.Rand, now float64) bool {
	if p.Phase != PhaseNormal {
		return false
	}
	p.enter(PhaseExploding, now)
	p.burst.Trigger(rng, p.Pos, shipBurst)
	return true
}

// Collides reports whether other touches the ship. Nothing touches a ship
// that is not in the normal phase, and exploding bodies touch nothing.
func (p *Player) Collides(other KinematicBody) bool {
	if p.Phase != PhaseNormal {
		return false
	}
	if e, ok := other.(Explodable); ok && e.IsExploding() {
		return false
	}
	return physics.CirclesOverlap(p.Pos, p.Radius(), other.Position(), other.Radius())
}

// CanFire reports whether the ship is allowed to shoot.
func (p *Player) CanFire() bool {
	return p.Phase == PhaseNormal
}

// IsExploding reports whether the ship is in the explosion phase.
func (p *Player) IsExploding() bool {
	return p.Phase == PhaseExploding
}

// IsExplosionFinished reports whether the last explosion has burnt out.
func (p *Player) IsExplosionFinished() bool {
	return p.Phase != PhaseExploding && p.burst.IsEmpty()
}

// Burst exposes the explosion particles.
func (p *Player) Burst() *Burst {
	return &p.burst
}

// Update advances the phase machine and, unless exploding, the ship itself.
// now is the session clock in seconds.
func (p *Player) Update(now float64, bounds physics.Bounds) {
	p.burst.Update()

	switch p.Phase {
	case PhaseExploding:
		if now-p.phaseStart > config.ExplosionDuration {
			p.enter(PhaseInvulnerable, now)
			p.Reset()
		}
		return
	case PhaseInvulnerable:
		if now-p.phaseStart > config.InvulnerableDuration && p.Vel.Len() > config.LeaveInvulnerableAt {
			p.enter(PhaseNormal, now)
		} else {
			p.blink()
		}
	}

	p.Integrate(bounds)
	p.Vel = p.Vel.Scale(config.PlayerDamping)
}

func (p *Player) enter(phase PlayerPhase, now float64) {
	p.Phase = phase
	p.phaseStart = now
	switch phase {
	case PhaseNormal:
		p.Alpha = 255
	case PhaseInvulnerable:
		p.Alpha = 0
		p.fadeDir = 1
	}
}

// blink ping-pongs the alpha between 0 and 255.
func (p *Player) blink() {
	p.Alpha += p.fadeDir * config.BlinkStep
	if p.Alpha >= 255 {
		p.Alpha = 255
		p.fadeDir = -1
	} else if p.Alpha <= 0 {
		p.Alpha = 0
		p.fadeDir = 1
	}
}

// Draw renders the ship outline, or its explosion. The ship is green while
// it can be hit and blinks white while invulnerable.
func (p *Player) Draw(s draw.Surface) {
	if p.Phase == PhaseExploding {
		p.burst.Draw(s, draw.Green)
		return
	}
	c := draw.Green
	if p.Phase == PhaseInvulnerable {
		c = draw.WithAlpha(draw.White, uint8(p.Alpha))
	}
	var pts [len(shipOutline)]draw.Point
	for i, v := range shipOutline {
		w := p.Pos.Add(v.Rotate(p.Rot))
		pts[i] = draw.Point{X: w.X, Y: w.Y}
	}
	draw.Polyline(s, pts[:], true, c)
}
