// Package audio synthesizes the game's sound effects and plays them through
// the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/asteroid-acceleration/internal/sfx"
)

const sampleRate = beep.SampleRate(44100)

// Effect builds a fresh streamer for e at the given volume (0..1).
func Effect(e sfx.Effect, rate beep.SampleRate, vol float64) beep.Streamer {
	switch e {
	case sfx.Shot:
		d := 80 * time.Millisecond
		tone := NewOscillator(1400, 500, d, WaveSquare, rate)
		return withVolume(NewEnvelope(tone, d, 2*time.Millisecond, 50*time.Millisecond, rate), vol*0.4)

	case sfx.AsteroidHit:
		d := 250 * time.Millisecond
		noise := NewOscillator(1, 1, d, WaveNoise, rate)
		thud := NewOscillator(120, 50, d, WaveSine, rate)
		mixed := beep.Mix(
			withVolume(noise, 0.5),
			withVolume(thud, 0.6),
		)
		return withVolume(NewEnvelope(mixed, d, 5*time.Millisecond, 200*time.Millisecond, rate), vol)

	case sfx.PlayerHit:
		d := 700 * time.Millisecond
		noise := NewOscillator(2, 2, d, WaveNoise, rate)
		drop := NewOscillator(300, 40, d, WaveSquare, rate)
		mixed := beep.Mix(
			withVolume(noise, 0.6),
			withVolume(drop, 0.3),
		)
		return withVolume(NewEnvelope(mixed, d, 5*time.Millisecond, 600*time.Millisecond, rate), vol)
	}
	return nil
}

// Speaker plays effects on the default audio device. Play is a no-op until
// Init succeeds.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSpeaker returns a speaker with the given master volume (0..1).
func NewSpeaker(volume float64) *Speaker {
	return &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the audio device and starts the mixer.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues e on the mixer. It returns immediately.
func (s *Speaker) Play(e sfx.Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st := Effect(e, sampleRate, s.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops all sounds and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

var _ sfx.Player = (*Speaker)(nil)
