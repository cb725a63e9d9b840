package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals report only presses, so a held key shows up as auto-repeat.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Left     bool // Rotate counter-clockwise
	Right    bool // Rotate clockwise
	Forward  bool // Thrust
	Backward bool // Reverse thrust
	Fire     bool
	Enter    bool
	Escape   bool
	Help     bool // Open the instructions screen
	End      bool // End the current run early
	Quit     bool
}

// Pressed returns the keys held in in that were not held in prev.
func (in Input) Pressed(prev Input) Input {
	return Input{
		Left:     in.Left && !prev.Left,
		Right:    in.Right && !prev.Right,
		Forward:  in.Forward && !prev.Forward,
		Backward: in.Backward && !prev.Backward,
		Fire:     in.Fire && !prev.Fire,
		Enter:    in.Enter && !prev.Enter,
		Escape:   in.Escape && !prev.Escape,
		Help:     in.Help && !prev.Help,
		End:      in.End && !prev.End,
		Quit:     in.Quit && !prev.Quit,
	}
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	left     time.Time
	right    time.Time
	forward  time.Time
	backward time.Time
	fire     time.Time
	enter    time.Time
	escape   time.Time
	help     time.Time
	end      time.Time
	quit     time.Time
}

// Tracker turns raw terminal bytes into held-key flags.
type Tracker struct {
	state keyState
}

// Feed records the keys in buf as pressed at now and returns the flags of
// every key seen within the hold duration.
func (t *Tracker) Feed(buf []byte, now time.Time) Input {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				t.state.forward = now
			case 'B':
				t.state.backward = now
			case 'C':
				t.state.right = now
			case 'D':
				t.state.left = now
			}
			i += 2
			continue
		}

		applyByteToState(&t.state, b, now)
	}

	held := func(at time.Time) bool { return now.Sub(at) < keyHoldDuration }
	return Input{
		Left:     held(t.state.left),
		Right:    held(t.state.right),
		Forward:  held(t.state.forward),
		Backward: held(t.state.backward),
		Fire:     held(t.state.fire),
		Enter:    held(t.state.enter),
		Escape:   held(t.state.escape),
		Help:     held(t.state.help),
		End:      held(t.state.end),
		Quit:     held(t.state.quit),
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case 'w', 'W':
		state.forward = now
	case 's', 'S':
		state.backward = now
	case ' ':
		state.fire = now
	case '\n', '\r':
		state.enter = now
	case 'i', 'I':
		state.help = now
	case 'r', 'R':
		state.end = now
	case '\x1b':
		state.escape = now
	}
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch chan byte
	Tracker
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the held-key flags. ok is false once the reader has closed.
func ReadInput(s *Stream) (in Input, ok bool) {
	var buf []byte
	ok = true

drain:
	for {
		select {
		case b, open := <-s.ch:
			if !open {
				ok = false
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return s.Feed(buf, time.Now()), ok
}
