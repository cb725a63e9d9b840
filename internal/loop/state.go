package loop

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroid-acceleration/internal/loop/config"
	"github.com/tomz197/asteroid-acceleration/internal/object"
	"github.com/tomz197/asteroid-acceleration/internal/physics"
	"github.com/tomz197/asteroid-acceleration/internal/sfx"
)

// ErrSafetyRadius is returned when no point of the playfield is far enough
// from the player to spawn an asteroid.
var ErrSafetyRadius = errors.New("safety radius leaves no room to spawn asteroids")

// Options configure a simulation.
type Options struct {
	Bounds       physics.Bounds
	SafetyRadius float64
	Rng          *rand.Rand  // Nil seeds from the clock
	Sounds       sfx.Player  // Nil plays nothing
	Logger       *log.Logger // Nil uses log.Default()
}

func (o Options) withDefaults() Options {
	if o.Bounds.Width == 0 && o.Bounds.Height == 0 {
		o.Bounds = physics.Bounds{Width: config.DefaultWidth, Height: config.DefaultHeight}
	}
	if o.Rng == nil {
		o.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Sounds == nil {
		o.Sounds = sfx.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

func (o Options) validate() error {
	if !positiveFinite(o.Bounds.Width) || !positiveFinite(o.Bounds.Height) {
		return fmt.Errorf("invalid playfield %vx%v", o.Bounds.Width, o.Bounds.Height)
	}
	// Written so that NaN fails too; spawnPoint would never return.
	if !(o.SafetyRadius >= 0 && o.SafetyRadius < o.Bounds.HalfDiagonal()) {
		return fmt.Errorf("%w: %v with half diagonal %v", ErrSafetyRadius, o.SafetyRadius, o.Bounds.HalfDiagonal())
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// State is everything one game owns. It is mutated only by Step.
type State struct {
	Bounds       physics.Bounds
	SafetyRadius float64
	Rng          *rand.Rand
	Sounds       sfx.Player
	Log          *log.Logger

	Player      *object.Player
	Projectiles object.ProjectileStream
	Large       []object.Asteroid
	Small       []object.Asteroid

	Score     int
	Deaths    int
	Destroyed int

	lastShot float64
	spawned  []object.Asteroid // Split children, joined to Small at frame end
}

// NewState starts a game at time now: the player at the centre and the
// initial large asteroids placed away from it.
func NewState(opts Options, now float64) (*State, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	s := &State{
		Bounds:       opts.Bounds,
		SafetyRadius: opts.SafetyRadius,
		Rng:          opts.Rng,
		Sounds:       opts.Sounds,
		Log:          opts.Logger,
		Player:       object.NewPlayer(opts.Bounds.Center(), now),
		lastShot:     math.Inf(-1),
	}
	s.seedPopulation()
	return s, nil
}
