package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestGameOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Width, cfg.Grid.Height = 20, 10
	cfg.TickMS = 90
	cfg.Keys.Quit = []string{"x"}

	opts := gameOptions(cfg)
	if opts.Width != 20 || opts.Height != 10 {
		t.Errorf("grid = %dx%d, want 20x10", opts.Width, opts.Height)
	}
	if opts.Tick != 90*time.Millisecond {
		t.Errorf("tick = %v, want 90ms", opts.Tick)
	}
	if len(opts.Bindings.Quit) != 1 || opts.Bindings.Quit[0] != "x" {
		t.Errorf("quit keys = %v, want [x]", opts.Bindings.Quit)
	}
}

func TestGlyphsFallBackToDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Glyphs.Snake = "@"
	cfg.Glyphs.Food = ""

	g := glyphs(cfg)
	if g.Snake != '@' {
		t.Errorf("snake glyph = %q, want @", g.Snake)
	}
	if g.Food != 'O' {
		t.Errorf("food glyph = %q, want default O", g.Food)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn", "snake")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("log output = %q", buf.String())
	}

	if _, err := newLogger(&buf, "loud", "snake"); err == nil {
		t.Error("expected error for unknown level")
	}
}

type memScores struct {
	entries []storage.ScoreEntry
}

func (m memScores) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return m.entries, nil
}

func (m memScores) GetGameStats(gameID string) (*storage.GameStats, error) {
	st := &storage.GameStats{GameID: gameID, GamesCount: len(m.entries)}
	for _, e := range m.entries {
		st.HighScore = max(st.HighScore, e.Score)
	}
	return st, nil
}

func TestPrintScores(t *testing.T) {
	var buf bytes.Buffer
	src := memScores{entries: []storage.ScoreEntry{
		{Score: 25, CreatedAt: time.Now()},
		{Score: 9, CreatedAt: time.Now()},
	}}
	if err := printScores(&buf, src, 10); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"High Scores", "Rank", "#1", "25", "#2", "Best: 25"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printScores(&buf, memScores{}, 10); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("output = %q", buf.String())
	}
}
