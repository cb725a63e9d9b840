// Package config centralizes all tunable game parameters.
// Distances are in playfield pixels, speeds in pixels per frame, rotation in
// degrees (per frame where it is a rate) and durations in seconds.
package config

import "time"

// Playfield defaults, overridable through runtime settings.
const (
	DefaultWidth     = 1024
	DefaultHeight    = 768
	DefaultTimeLimit = 120.0 // Seconds per session
)

// Frame clock
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	Timestep        = 1.0 / TargetFPS // Particle age increment per update
)

// Scoring
const (
	ScoreLargeAsteroid = 100
	ScoreSmallAsteroid = 50
	PenaltyPlayerHit   = 75
)

// Player
const (
	PlayerRadius         = 15.0
	PlayerRotateStep     = 5.0  // Degrees per frame while turning
	PlayerThrustPower    = 0.1  // Passed to Thrust while moving forward/backward
	ThrustCoefficient    = 0.75 // Scales thrust power into force
	PlayerDamping        = 0.99 // Velocity multiplier per frame
	ExplosionDuration    = 2.0
	InvulnerableDuration = 1.0
	LeaveInvulnerableAt  = 0.1 // Minimum speed to drop invulnerability
	BlinkStep            = 2.0 // Alpha change per frame while invulnerable
)

// Shooting
const (
	FireRate           = 0.2 // Minimum seconds between shots
	ProjectileSpeed    = 8.0
	ProjectileTipShift = 10.0 // Spawn distance in front of the ship
	ProjectileLength   = 4.0
)

// Asteroids
const (
	LargeMinRadius = 40.0
	LargeMaxRadius = 60.0
	LargeSpeed     = 2.0
	LargeSpin      = 1.0 // Rotation speed drawn from [-LargeSpin, LargeSpin]

	SmallMinRadius = 15.0
	SmallMaxRadius = 30.0
	SmallSpeed     = 3.0
	SmallSpin      = 2.0
	SmallSides     = 10

	SplitCount    = 3   // Small asteroids produced by a large hit
	SteeringNoise = 0.1 // Per-axis random velocity perturbation
	CollisionSlop = 0.9 // Radius scale for asteroid-asteroid contact
)

// Population
const (
	MinLargeAsteroids   = 7
	DefaultSafetyRadius = 100.0
	InitialSidesMin     = 10 // Inclusive
	InitialSidesMax     = 20 // Exclusive
	BaseSides           = 10
	DestroyedPerSide    = 10 // Destroyed asteroids per extra side on respawn
)

// Explosions
const (
	ParticleDrag     = 0.95
	ParticleSegments = 8

	LargeBurstCount = 100
	SmallBurstCount = 30
	ShipBurstCount  = 80
)
