package config

import "fmt"

// DifficultyPreset represents a named game speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// TickForPreset returns the tick length in milliseconds for a preset.
// Fixed, and the empty preset, return 0: keep whatever is configured.
func TickForPreset(preset DifficultyPreset) (int, error) {
	switch preset {
	case DifficultyEasy:
		return 180, nil
	case DifficultyNormal:
		return 120, nil
	case DifficultyHard:
		return 80, nil
	case DifficultyFixed, "":
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", preset)
	}
}

// ApplyPreset adjusts cfg's tick length for the given preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	tick, err := TickForPreset(preset)
	if err != nil {
		return err
	}
	if tick > 0 {
		cfg.TickMS = tick
	}
	return nil
}
