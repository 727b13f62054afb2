package config

import (
	_ "embed"
)

//go:embed defaults/sweeper.yaml
var defaultSweeperYAML []byte

// Preset names.
const (
	PresetClassic      = "classic"
	PresetBeginner     = "beginner"
	PresetIntermediate = "intermediate"
	PresetExpert       = "expert"
)

// DefaultConfig returns the hardcoded configuration used when no YAML can be
// read. The classic 8x8 board with 10 mines is the default.
func DefaultConfig() SweeperConfig {
	return SweeperConfig{
		Board: BoardConfig{Width: 8, Height: 8, Mines: 10},
		Presets: map[string]BoardConfig{
			PresetClassic:      {Width: 8, Height: 8, Mines: 10},
			PresetBeginner:     {Width: 9, Height: 9, Mines: 10},
			PresetIntermediate: {Width: 16, Height: 16, Mines: 40},
			PresetExpert:       {Width: 30, Height: 16, Mines: 99},
		},
		Display: DisplayConfig{
			Cheat:    true,
			ShowHelp: true,
		},
	}
}
