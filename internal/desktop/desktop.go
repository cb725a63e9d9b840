// Package desktop hosts a session in an ebiten window.
package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/asteroid-acceleration/internal/draw"
	"github.com/tomz197/asteroid-acceleration/internal/input"
	"github.com/tomz197/asteroid-acceleration/internal/loop"
)

const lineWidth = 1.5

var background = color.RGBA{0, 0, 0, 255}

// KeyFunc reports whether a key is held. ebiten.IsKeyPressed satisfies it.
type KeyFunc func(ebiten.Key) bool

// Game adapts a session to ebiten.Game. Time advances one tick per Update,
// so the simulation runs at the window's tick rate regardless of frame
// rate.
type Game struct {
	session *loop.Session
	keys    KeyFunc
	width   int
	height  int
	ticks   int
}

// NewGame wraps session. The logical screen has the playfield's size.
func NewGame(session *loop.Session, width, height int) *Game {
	return &Game{
		session: session,
		keys:    ebiten.IsKeyPressed,
		width:   width,
		height:  height,
	}
}

// Now returns the session time in seconds.
func (g *Game) Now() float64 {
	return float64(g.ticks) / float64(ebiten.DefaultTPS)
}

func (g *Game) Update() error {
	g.ticks++
	if !g.session.Update(ReadKeys(g.keys), g.Now()) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.session.Draw(&Screen{Image: screen}, g.Now())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// ReadKeys maps held keys to game input. Arrows and WASD both steer.
func ReadKeys(pressed KeyFunc) input.Input {
	anyOf := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if pressed(k) {
				return true
			}
		}
		return false
	}
	return input.Input{
		Left:     anyOf(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:    anyOf(ebiten.KeyArrowRight, ebiten.KeyD),
		Forward:  anyOf(ebiten.KeyArrowUp, ebiten.KeyW),
		Backward: anyOf(ebiten.KeyArrowDown, ebiten.KeyS),
		Fire:     anyOf(ebiten.KeySpace),
		Enter:    anyOf(ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		Escape:   anyOf(ebiten.KeyEscape),
		Help:     anyOf(ebiten.KeyI),
		End:      anyOf(ebiten.KeyR),
		Quit:     anyOf(ebiten.KeyQ),
	}
}

var face = text.NewGoXFace(basicfont.Face7x13)

// Screen draws onto an ebiten image in playfield coordinates.
type Screen struct {
	Image *ebiten.Image
}

func (s *Screen) DrawLine(p1, p2 draw.Point, c color.NRGBA) {
	vector.StrokeLine(s.Image, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), lineWidth, c, true)
}

func (s *Screen) DrawText(p draw.Point, str string, c color.NRGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(p.X, p.Y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.Image, str, face, op)
}

// TextWidth reports the rendered width of str.
func (s *Screen) TextWidth(str string) float64 {
	return text.Advance(str, face)
}

var (
	_ ebiten.Game   = (*Game)(nil)
	_ draw.Surface  = (*Screen)(nil)
	_ draw.Measurer = (*Screen)(nil)
)
