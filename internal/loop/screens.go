package loop

import (
	"fmt"

	"github.com/tomz197/asteroid-acceleration/internal/draw"
)

const title = "ASTEROID ACCELERATION"

var instructions = []string{
	"A / LEFT     rotate left",
	"D / RIGHT    rotate right",
	"W / UP       thrust",
	"S / DOWN     reverse thrust",
	"SPACE        shoot",
	"R            end the run",
	"Q            quit",
	"",
	"Large asteroid +100, small asteroid +50, crash -75",
	"You have two minutes. Survive and score.",
}

// Draw renders the current screen at session time now.
func (s *Session) Draw(surface draw.Surface, now float64) {
	b := s.opts.Bounds
	cx, cy := b.Width/2, b.Height/2

	switch s.Phase {
	case PhaseStart:
		draw.CenterText(surface, cx, cy-100, title, draw.Green)
		draw.CenterText(surface, cx, cy, "ENTER  start game", draw.White)
		draw.CenterText(surface, cx, cy+50, "I  instructions", draw.White)
		draw.CenterText(surface, cx, cy+100, "Q  quit", draw.White)

	case PhaseInstructions:
		draw.CenterText(surface, cx, b.Height*0.15, "INSTRUCTIONS", draw.Green)
		y := b.Height * 0.3
		for _, line := range instructions {
			draw.CenterText(surface, cx, y, line, draw.White)
			y += 35
		}
		draw.CenterText(surface, cx, b.Height-50, "ENTER  back", draw.White)

	case PhasePlaying:
		s.Game.Draw(surface)
		surface.DrawText(draw.Point{X: 5, Y: 5}, fmt.Sprintf("Score: %d", s.Game.Score), draw.White)
		draw.CenterText(surface, cx, 5, fmt.Sprintf("Time: %d", int(s.Remaining(now))), draw.White)

	case PhaseOver:
		draw.CenterText(surface, cx, cy-100, "GAME OVER", draw.Green)
		draw.CenterText(surface, cx, cy-30, fmt.Sprintf("Score: %d", s.Game.Score), draw.White)
		draw.CenterText(surface, cx, cy+10, fmt.Sprintf("Deaths: %d", s.Game.Deaths), draw.White)
		draw.CenterText(surface, cx, cy+50, fmt.Sprintf("Asteroids destroyed: %d", s.Game.Destroyed), draw.White)
		draw.CenterText(surface, cx, b.Height-50, "ENTER  back to title", draw.White)
	}
}
