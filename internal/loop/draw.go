package loop

import "github.com/tomz197/asteroid-acceleration/internal/draw"

// Draw renders every entity of the game onto surface.
func (s *State) Draw(surface draw.Surface) {
	for i := range s.Large {
		s.Large[i].Draw(surface)
	}
	for i := range s.Small {
		s.Small[i].Draw(surface)
	}
	s.Projectiles.Draw(surface)
	s.Player.Draw(surface)
}
