// Package loop runs the game: the per-frame simulation step, collision
// passes, the asteroid population, the session screens and the terminal
// frame loop.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tomz197/asteroid-acceleration/internal/draw"
	"github.com/tomz197/asteroid-acceleration/internal/input"
	"github.com/tomz197/asteroid-acceleration/internal/loop/config"
)

// RunOptions configure the terminal host.
type RunOptions struct {
	TermSizeFunc draw.TermSizeFunc // Nil reads the size of os.Stdout
	TimeLimit    float64           // Seconds per game; zero uses the default
	IdleTimeout  time.Duration     // Quit after this long without input; zero never
}

// Run plays sessions in the terminal until the player quits, ctx is
// cancelled or the input reader closes. Input → Update → Draw, once per
// frame.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options, runOpts RunOptions) error {
	session, err := NewSession(opts, runOpts.TimeLimit)
	if err != nil {
		return err
	}
	termSize := runOpts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	stream := input.StartStream(r)
	fw := draw.NewFrameWriter(w)

	draw.HideCursor(fw)
	draw.ClearScreen(fw)
	defer func() {
		draw.ClearScreen(fw)
		draw.ShowCursor(fw)
		_ = fw.Flush()
	}()

	termWidth, termHeight, err := termSize()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	b := session.opts.Bounds
	canvas := draw.NewScaledCanvas(termWidth, termHeight, b.Width, b.Height)

	start := time.Now()
	lastInput := start

	for {
		frameStart := time.Now()
		now := frameStart.Sub(start).Seconds()

		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// ===== INPUT PHASE =====
		in, open := input.ReadInput(stream)
		if !open {
			return nil
		}
		if in != (input.Input{}) {
			lastInput = frameStart
		} else if runOpts.IdleTimeout > 0 && frameStart.Sub(lastInput) > runOpts.IdleTimeout {
			session.log.Info("closing idle session", "idle", runOpts.IdleTimeout)
			return nil
		}

		// ===== UPDATE PHASE =====
		if !session.Update(in, now) {
			return nil
		}
		if tw, th, err := termSize(); err == nil {
			canvas.Resize(tw, th)
		}

		// ===== DRAW PHASE =====
		draw.ClearScreen(fw)
		canvas.Clear()
		session.Draw(canvas, now)
		if err := canvas.Render(fw); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if err := fw.Flush(); err != nil {
			return fmt.Errorf("flush frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}
}
