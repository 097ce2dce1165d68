package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/surface"
	"github.com/vovakirdan/tui-snake/internal/platform/tcellui"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	if err := surface.CheckSize(cfg.Grid.Width, cfg.Grid.Height, width, height); err != nil {
		logger.Error("terminal too small", "error", err)
		return err
	}

	opts := gameOptions(cfg)
	opts.Logger = logger
	if store := openRecorder(logger); store != nil {
		defer store.Close()
		opts.Scores = store
	}

	logger.Info("starting", "backend", cfg.Backend, "grid", cfg.Grid, "tick", cfg.Tick())
	painter := surface.NewPainter(glyphs(cfg))
	ctx := cmd.Context()

	if cfg.Backend == config.BackendTcell {
		d, err := tcellui.New(painter)
		if err != nil {
			return err
		}
		w, h := d.Size()
		if err := surface.CheckSize(cfg.Grid.Width, cfg.Grid.Height, w, h); err != nil {
			d.Close()
			logger.Error("terminal too small", "error", err)
			return err
		}
		return tcellui.Run(ctx, d, game.NewLoop(d, opts))
	}

	d := tui.NewDisplay(painter)
	return tui.Run(ctx, d, game.NewLoop(d, opts))
}
