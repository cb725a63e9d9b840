// Package sfx names the sound effects the game requests. Playback lives
// elsewhere; the simulation only announces what happened.
package sfx

// Effect identifies a sound effect.
type Effect int

const (
	Shot Effect = iota
	PlayerHit
	AsteroidHit
)

func (e Effect) String() string {
	switch e {
	case Shot:
		return "shot"
	case PlayerHit:
		return "player-hit"
	case AsteroidHit:
		return "asteroid-hit"
	default:
		return "unknown"
	}
}

// Player plays effects. Play must not block the caller.
type Player interface {
	Play(e Effect)
}

// Nop discards every effect.
type Nop struct{}

func (Nop) Play(Effect) {}
