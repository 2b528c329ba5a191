package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/audio"
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/games/lander"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog := newLogger(flagLogFile)
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	sprites, err := loadSprites(flagAssets)
	if err != nil {
		return fmt.Errorf("assets: %w", err)
	}

	sounds := audio.NewSoundManager(cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
	}
	defer sounds.Cleanup()

	game, err := lander.New(cfg, sprites,
		lander.WithLogger(logger),
		lander.WithSounds(sounds),
	)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("starting", "cols", width, "rows", height, "audio", sounds.Enabled())

	return tui.Run(game, tui.Options{
		FrameRate:  cfg.Physics.FrameRate,
		HoldWindow: cfg.Input.HoldWindow(),
		Width:      width,
		Height:     height,
		Logger:     logger,
	})
}
