// Package draw renders line art for the game. Entities draw onto a Surface;
// the terminal Canvas and the desktop window both implement it.
package draw

import "image/color"

// Point represents a 2D coordinate in playfield units.
type Point struct {
	X, Y float64
}

// Surface is the outward rendering port. Calls are fire-and-forget.
type Surface interface {
	// DrawLine draws a segment between two playfield points.
	DrawLine(p1, p2 Point, c color.NRGBA)
	// DrawText draws a string with its top-left corner at p.
	DrawText(p Point, s string, c color.NRGBA)
}

// Common colours.
var (
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Green = color.NRGBA{G: 255, A: 255}
)

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// Polyline draws consecutive segments through points. If closed, the last
// point is joined back to the first.
func Polyline(s Surface, points []Point, closed bool, c color.NRGBA) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := 0; i < n-1; i++ {
		s.DrawLine(points[i], points[i+1], c)
	}
	if closed && n > 2 {
		s.DrawLine(points[n-1], points[0], c)
	}
}

// Measurer is implemented by surfaces that know how wide text renders, in
// playfield units.
type Measurer interface {
	TextWidth(s string) float64
}

// fallbackGlyphWidth is used for surfaces that cannot measure text.
const fallbackGlyphWidth = 8

// CenterText draws s horizontally centred on x with its top at y.
func CenterText(s Surface, x, y float64, str string, c color.NRGBA) {
	w := float64(len(str)) * fallbackGlyphWidth
	if m, ok := s.(Measurer); ok {
		w = m.TextWidth(str)
	}
	s.DrawText(Point{X: x - w/2, Y: y}, str, c)
}
