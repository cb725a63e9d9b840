package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/asteroid-acceleration/internal/audio"
	"github.com/tomz197/asteroid-acceleration/internal/config"
	"github.com/tomz197/asteroid-acceleration/internal/loop"
	"github.com/tomz197/asteroid-acceleration/internal/sfx"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
		os.Exit(1)
	}
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid settings: %v\n", err)
		os.Exit(1)
	}

	// The game owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("ASTEROIDS_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Level:           settings.LogLevel,
		Prefix:          "asteroids",
	})

	var sounds sfx.Player = sfx.Nop{}
	if settings.Audio {
		spk := audio.NewSpeaker(0.6)
		if err := spk.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer spk.Close()
			sounds = spk
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := loop.Options{
		Bounds:       settings.Bounds(),
		SafetyRadius: settings.SafetyRadius,
		Rng:          rand.New(rand.NewSource(settings.RandSeed())),
		Sounds:       sounds,
		Logger:       logger,
	}
	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(ctx, reader, os.Stdout, opts, loop.RunOptions{TimeLimit: settings.TimeLimit}); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
