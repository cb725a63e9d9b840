package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Block characters used by the half-block canvas.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// FrameWriter buffers one frame of terminal output and flushes it in a
// single write, which keeps SSH sessions from tearing.
type FrameWriter struct {
	bufw *bufio.Writer
}

// NewFrameWriter wraps w.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{bufw: bufio.NewWriterSize(w, 16*1024)}
}

// Write implements io.Writer.
func (fw *FrameWriter) Write(p []byte) (int, error) {
	return fw.bufw.Write(p)
}

// Flush sends the buffered frame to the underlying writer.
func (fw *FrameWriter) Flush() error {
	return fw.bufw.Flush()
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}
