package main

import (
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/asteroid-acceleration/internal/audio"
	"github.com/tomz197/asteroid-acceleration/internal/config"
	"github.com/tomz197/asteroid-acceleration/internal/desktop"
	"github.com/tomz197/asteroid-acceleration/internal/loop"
	"github.com/tomz197/asteroid-acceleration/internal/sfx"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "asteroids"})

	if err := config.LoadDotEnv(); err != nil {
		logger.Fatal("failed to read .env", "err", err)
	}
	settings, err := config.Load()
	if err != nil {
		logger.Fatal("invalid settings", "err", err)
	}
	logger.SetLevel(settings.LogLevel)

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

	session, err := loop.NewSession(loop.Options{
		Bounds:       settings.Bounds(),
		SafetyRadius: settings.SafetyRadius,
		Rng:          rand.New(rand.NewSource(settings.RandSeed())),
		Sounds:       sounds,
		Logger:       logger,
	}, settings.TimeLimit)
	if err != nil {
		logger.Fatal("failed to create session", "err", err)
	}

	width, height := int(settings.Width), int(settings.Height)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Asteroid Acceleration")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(desktop.NewGame(session, width, height)); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
