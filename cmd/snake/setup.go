package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/surface"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// loadConfig resolves the configuration and applies command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return config.Config{}, err
	}
	if flagBackend != "" {
		cfg.Backend = config.Backend(flagBackend)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func gameOptions(cfg config.Config) game.Options {
	return game.Options{
		Width:  cfg.Grid.Width,
		Height: cfg.Grid.Height,
		Tick:   cfg.Tick(),
		Bindings: game.Bindings{
			Up:    cfg.Keys.Up,
			Down:  cfg.Keys.Down,
			Left:  cfg.Keys.Left,
			Right: cfg.Keys.Right,
			Quit:  cfg.Keys.Quit,
		},
	}
}

func glyphs(cfg config.Config) surface.Glyphs {
	def := surface.DefaultGlyphs()
	return surface.Glyphs{
		Empty: config.Glyph(cfg.Glyphs.Empty, def.Empty),
		Snake: config.Glyph(cfg.Glyphs.Snake, def.Snake),
		Food:  config.Glyph(cfg.Glyphs.Food, def.Food),
	}
}

func newLogger(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
		Prefix:          prefix,
	}), nil
}

// playLogger writes to --log-file, or nowhere: the game owns the terminal.
func playLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard, flagLogLevel, "snake")
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, flagLogLevel, "snake")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// openRecorder opens the scores database when --record is set. Failing to
// open it only disables recording.
func openRecorder(logger *log.Logger) *storage.Store {
	if !flagRecord {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be recorded", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
