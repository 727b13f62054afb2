// Package config provides YAML configuration for board sizes, difficulty
// presets and display options.
package config

import (
	"fmt"
	"sort"
	"strings"
)

// SweeperConfig is the top-level configuration document.
type SweeperConfig struct {
	Board   BoardConfig            `yaml:"board"`
	Presets map[string]BoardConfig `yaml:"presets"`
	Display DisplayConfig          `yaml:"display"`
}

// BoardConfig describes a board size and mine count.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// DisplayConfig holds front-end options.
type DisplayConfig struct {
	Cheat    bool `yaml:"cheat"`     // Allow the flag-all-mines key
	ShowHelp bool `yaml:"show_help"` // Show the key help footer
}

// Limits keep boards drawable in a terminal.
const (
	MaxWidth  = 60
	MaxHeight = 40
)

// Validate checks that the board can be generated and drawn.
func (b BoardConfig) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("config: board must be at least 1x1, got %dx%d", b.Width, b.Height)
	}
	if b.Width > MaxWidth || b.Height > MaxHeight {
		return fmt.Errorf("config: board %dx%d exceeds %dx%d", b.Width, b.Height, MaxWidth, MaxHeight)
	}
	if b.Mines < 0 || b.Mines >= b.Width*b.Height {
		return fmt.Errorf("config: %d mines do not fit a %dx%d board", b.Mines, b.Width, b.Height)
	}
	return nil
}

// String formats the board as "WxH/M".
func (b BoardConfig) String() string {
	return fmt.Sprintf("%dx%d/%d", b.Width, b.Height, b.Mines)
}

// Preset returns the named preset, case-insensitively.
func (c SweeperConfig) Preset(name string) (BoardConfig, error) {
	b, ok := c.Presets[strings.ToLower(name)]
	if !ok {
		return BoardConfig{}, fmt.Errorf("config: unknown difficulty %q (have %s)",
			name, strings.Join(c.PresetNames(), ", "))
	}
	return b, nil
}

// PresetNames returns the preset names sorted by board area.
func (c SweeperConfig) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for n := range c.Presets {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := c.Presets[names[i]], c.Presets[names[j]]
		if a.Width*a.Height != b.Width*b.Height {
			return a.Width*a.Height < b.Width*b.Height
		}
		return names[i] < names[j]
	})
	return names
}
