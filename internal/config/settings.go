package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	gameconfig "github.com/tomz197/asteroid-acceleration/internal/loop/config"
	"github.com/tomz197/asteroid-acceleration/internal/physics"
)

var (
	// ErrInvalidSetting is returned for values that fail to parse or are out
	// of range.
	ErrInvalidSetting = errors.New("invalid setting")
	// ErrSafetyRadius is returned when no spawn point on the playfield can
	// satisfy the safety radius.
	ErrSafetyRadius = errors.New("safety radius must be smaller than half the playfield diagonal")
)

// Settings are the runtime knobs of a host process.
type Settings struct {
	Width        float64
	Height       float64
	TimeLimit    float64 // Seconds
	SafetyRadius float64
	Seed         int64 // Zero means seed from the clock
	LogLevel     log.Level
	Audio        bool
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Width:        gameconfig.DefaultWidth,
		Height:       gameconfig.DefaultHeight,
		TimeLimit:    gameconfig.DefaultTimeLimit,
		SafetyRadius: gameconfig.DefaultSafetyRadius,
		LogLevel:     log.InfoLevel,
		Audio:        true,
	}
}

// Load reads settings from the environment on top of Defaults and
// validates them.
func Load() (Settings, error) {
	s := Defaults()
	var err error

	if s.Width, err = getFloat("ASTEROIDS_WIDTH", s.Width); err != nil {
		return s, err
	}
	if s.Height, err = getFloat("ASTEROIDS_HEIGHT", s.Height); err != nil {
		return s, err
	}
	if s.TimeLimit, err = getFloat("ASTEROIDS_TIME_LIMIT", s.TimeLimit); err != nil {
		return s, err
	}
	if s.SafetyRadius, err = getFloat("ASTEROIDS_SAFETY_RADIUS", s.SafetyRadius); err != nil {
		return s, err
	}
	if s.Seed, err = getInt("ASTEROIDS_SEED", s.Seed); err != nil {
		return s, err
	}
	if s.Audio, err = getBool("ASTEROIDS_AUDIO", s.Audio); err != nil {
		return s, err
	}
	if raw := GetEnv("ASTEROIDS_LOG_LEVEL", ""); raw != "" {
		lvl, perr := log.ParseLevel(raw)
		if perr != nil {
			return s, fmt.Errorf("%w: ASTEROIDS_LOG_LEVEL=%q", ErrInvalidSetting, raw)
		}
		s.LogLevel = lvl
	}

	return s, s.Validate()
}

// Validate checks that the settings describe a playable session.
func (s Settings) Validate() error {
	if !finitePositive(s.Width) || !finitePositive(s.Height) {
		return fmt.Errorf("%w: playfield %vx%v", ErrInvalidSetting, s.Width, s.Height)
	}
	if !finitePositive(s.TimeLimit) {
		return fmt.Errorf("%w: time limit %v", ErrInvalidSetting, s.TimeLimit)
	}
	if !(s.SafetyRadius >= 0) {
		return fmt.Errorf("%w: safety radius %v", ErrInvalidSetting, s.SafetyRadius)
	}
	if s.SafetyRadius >= s.Bounds().HalfDiagonal() {
		return fmt.Errorf("%w: %v >= %v", ErrSafetyRadius, s.SafetyRadius, s.Bounds().HalfDiagonal())
	}
	return nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Bounds returns the playfield size.
func (s Settings) Bounds() physics.Bounds {
	return physics.Bounds{Width: s.Width, Height: s.Height}
}

// RandSeed returns Seed, or the current time when Seed is zero.
func (s Settings) RandSeed() int64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return time.Now().UnixNano()
}
