package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  32,
			Height: 16,
		},
		TickMS: 120,
		Glyphs: GlyphConfig{
			Empty: " ",
			Snake: "#",
			Food:  "O",
		},
		Keys: KeyConfig{
			Up:    []string{"up"},
			Down:  []string{"down"},
			Left:  []string{"left"},
			Right: []string{"right"},
			Quit:  []string{"q"},
		},
		Backend: BackendTea,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
