package draw

import "image/color"

// recorder captures draw calls for assertions.
type recorder struct {
	lines [][2]Point
	texts []string
}

func (r *recorder) DrawLine(p1, p2 Point, _ color.NRGBA) {
	r.lines = append(r.lines, [2]Point{p1, p2})
}

func (r *recorder) DrawText(_ Point, s string, _ color.NRGBA) {
	r.texts = append(r.texts, s)
}
