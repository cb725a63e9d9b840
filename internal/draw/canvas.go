package draw

import (
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"
)

// alphaCutoff is the lowest alpha a terminal cell can show. Anything fainter
// is skipped, which is how fades and blinking come across without colour.
const alphaCutoff = 96

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Playfield coordinates are scaled to the terminal size.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int    // termHeight * 2
	pixels         []bool // [y*termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	labels    []label
	renderBuf strings.Builder
	numBuf    [20]byte
}

// label is a text overlay written after the pixels.
type label struct {
	col, row int
	text     string
}

var _ Surface = (*Canvas)(nil)

// NewScaledCanvas creates a canvas that maps a logicalWidth x logicalHeight
// playfield onto termWidth x termHeight terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
	}
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// Clear resets all pixels and text overlays.
func (c *Canvas) Clear() {
	clear(c.pixels)
	c.labels = c.labels[:0]
}

// TerminalWidth returns the terminal column count.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the terminal row count.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// pixelAt reports whether the sub-pixel at (x, y) is lit.
func (c *Canvas) pixelAt(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// DrawLine rasterises a segment with Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point, col color.NRGBA) {
	if col.A < alphaCutoff {
		return
	}
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawText queues a text overlay at the terminal cell under p.
func (c *Canvas) DrawText(p Point, s string, col color.NRGBA) {
	if col.A < alphaCutoff || s == "" {
		return
	}
	c.labels = append(c.labels, label{
		col:  int(math.Round(p.X*c.scaleX)) + 1,
		row:  int(math.Round(p.Y*c.scaleY))/2 + 1,
		text: s,
	})
}

// TextWidth returns the playfield width covered by s, one cell per byte.
func (c *Canvas) TextWidth(s string) float64 {
	return float64(len(s)) / c.scaleX
}

// Render writes the canvas to w using half-block characters, followed by the
// text overlays. Empty cells are skipped; callers clear the screen first.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 4)

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			top := c.pixelAt(col, row*2)
			bottom := c.pixelAt(col, row*2+1)

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}
			c.moveCursor(col+1, row+1)
			c.renderBuf.WriteRune(ch)
		}
	}

	for _, l := range c.labels {
		c.moveCursor(l.col, l.row)
		c.renderBuf.WriteString(l.text)
	}

	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
