// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// Backend names a terminal display implementation.
type Backend string

const (
	BackendTea   Backend = "tea"
	BackendTcell Backend = "tcell"
)

// Config contains all game configuration.
type Config struct {
	Grid    GridConfig  `yaml:"grid"`
	TickMS  int         `yaml:"tick_ms"`
	Glyphs  GlyphConfig `yaml:"glyphs"`
	Keys    KeyConfig   `yaml:"keys"`
	Backend Backend     `yaml:"backend"`
}

// GridConfig is the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GlyphConfig maps cell kinds to the characters drawn for them.
type GlyphConfig struct {
	Empty string `yaml:"empty"`
	Snake string `yaml:"snake"`
	Food  string `yaml:"food"`
}

// KeyConfig lists key names per action. Names follow the terminal
// backends: "up", "down", "left", "right", "enter", "esc", or a single
// character.
type KeyConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Quit  []string `yaml:"quit"`
}

// Tick returns the per-tick duration.
func (c Config) Tick() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Validate reports every problem with the configuration.
func (c Config) Validate() error {
	var errs []error

	if c.Grid.Width < 2 || c.Grid.Height < 2 {
		errs = append(errs, fmt.Errorf("grid must be at least 2x2, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("tick_ms must be positive, got %d", c.TickMS))
	}

	for _, g := range []struct{ name, glyph string }{
		{"empty", c.Glyphs.Empty},
		{"snake", c.Glyphs.Snake},
		{"food", c.Glyphs.Food},
	} {
		if utf8.RuneCountInString(g.glyph) != 1 {
			errs = append(errs, fmt.Errorf("glyphs.%s must be a single character, got %q", g.name, g.glyph))
		}
	}

	seen := make(map[string]string)
	for _, b := range []struct {
		action string
		keys   []string
	}{
		{"up", c.Keys.Up},
		{"down", c.Keys.Down},
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"quit", c.Keys.Quit},
	} {
		if len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s has no keys bound", b.action))
		}
		for _, k := range b.keys {
			if prev, dup := seen[k]; dup {
				errs = append(errs, fmt.Errorf("key %q bound to both %s and %s", k, prev, b.action))
				continue
			}
			seen[k] = b.action
		}
	}

	switch c.Backend {
	case BackendTea, BackendTcell:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Glyph returns the first rune of s, or fallback when s is empty.
func Glyph(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return fallback
	}
	return r
}
