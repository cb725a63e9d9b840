package loop

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroid-acceleration/internal/input"
	"github.com/tomz197/asteroid-acceleration/internal/loop/config"
)

// Phase is the screen a session is showing.
type Phase int

const (
	PhaseStart        Phase = iota // Title screen
	PhaseInstructions              // Controls and rules
	PhasePlaying                   // Active gameplay
	PhaseOver                      // Final results
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseInstructions:
		return "instructions"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Session drives the screens around a game and the countdown timer. A new
// State is created every time a game starts.
type Session struct {
	Phase     Phase
	Game      *State // Nil until the first game starts
	StartedAt float64
	TimeLimit float64 // Seconds

	opts     Options
	log      *log.Logger
	prev     input.Input
	finalAge float64 // Seconds played when the last game ended
}

// NewSession validates opts and returns a session on the title screen.
// A non-positive timeLimit uses the default.
func NewSession(opts Options, timeLimit float64) (*Session, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if timeLimit <= 0 {
		timeLimit = config.DefaultTimeLimit
	}
	return &Session{
		Phase:     PhaseStart,
		TimeLimit: timeLimit,
		opts:      opts,
		log:       opts.Logger,
	}, nil
}

// Update handles one frame of input at session time now. It returns false
// once the player asks to quit.
func (s *Session) Update(in input.Input, now float64) bool {
	pressed := in.Pressed(s.prev)
	s.prev = in

	if pressed.Quit {
		return false
	}

	switch s.Phase {
	case PhaseStart:
		switch {
		case pressed.Enter || pressed.Fire:
			s.start(now)
		case pressed.Help:
			s.Phase = PhaseInstructions
		}
	case PhaseInstructions:
		if pressed.Enter || pressed.Escape {
			s.Phase = PhaseStart
		}
	case PhasePlaying:
		if pressed.End {
			s.finish(now, "ended by player")
			break
		}
		s.Game.Step(in, now-s.StartedAt)
		if s.Remaining(now) <= 0 {
			s.finish(now, "time up")
		}
	case PhaseOver:
		if pressed.Enter || pressed.Escape {
			s.Phase = PhaseStart
		}
	}
	return true
}

// Remaining returns the seconds left on the countdown.
func (s *Session) Remaining(now float64) float64 {
	played := s.finalAge
	if s.Phase == PhasePlaying {
		played = now - s.StartedAt
	}
	return math.Max(0, s.TimeLimit-played)
}

func (s *Session) start(now float64) {
	game, err := NewState(s.opts, 0)
	if err != nil {
		s.log.Error("failed to start game", "err", err)
		return
	}
	s.Game = game
	s.StartedAt = now
	s.finalAge = 0
	s.Phase = PhasePlaying
	s.log.Info("game started", "time_limit", s.TimeLimit, "asteroids", len(game.Large))
}

func (s *Session) finish(now float64, reason string) {
	s.finalAge = math.Min(now-s.StartedAt, s.TimeLimit)
	s.Phase = PhaseOver
	s.log.Info("game over",
		"reason", reason,
		"score", s.Game.Score,
		"deaths", s.Game.Deaths,
		"destroyed", s.Game.Destroyed,
	)
}
