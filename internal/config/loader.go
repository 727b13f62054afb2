package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the sweeper configuration.
// Search order: customPath -> ~/.sweeper/configs/sweeper.yaml ->
// ./configs/sweeper.yaml -> embedded default -> DefaultConfig.
// Only an explicit customPath that cannot be read or parsed is an error.
func Load(customPath string) (SweeperConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SweeperConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SweeperConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("sweeper.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "sweeper.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultSweeperYAML)
	if err != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of DefaultConfig, so a file only
// needs the keys it changes. Presets are merged by name.
func Parse(data []byte) (SweeperConfig, error) {
	cfg := DefaultConfig()
	presets := cfg.Presets
	cfg.Presets = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SweeperConfig{}, err
	}

	for name, p := range cfg.Presets {
		presets[name] = p
	}
	cfg.Presets = presets

	if err := cfg.Board.Validate(); err != nil {
		return SweeperConfig{}, err
	}
	for name, p := range cfg.Presets {
		if err := p.Validate(); err != nil {
			return SweeperConfig{}, fmt.Errorf("preset %s: %w", name, err)
		}
	}
	return cfg, nil
}

// userConfigPath returns the path to a file in ~/.sweeper/configs.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sweeper", "configs", filename)
}
