package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads configuration for the arena variant id.
// Search order: customPath -> ~/.arcade-arena/configs/<id>.yaml ->
// ./configs/<id>.yaml -> embedded default -> hardcoded default.
//
// A custom path must exist, parse and validate. The other locations are
// optional and skipped when unreadable or invalid.
func Load(id, customPath string) (ArenaConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath, Default(id))
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := id + ".yaml"

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if cfg, err := readFile(path, Default(id)); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if data := embedded(id); data != nil {
		cfg := Default(id)
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}
	return Default(id), nil // Fallback to hardcoded if embed fails
}

// readFile decodes path over base, so a partial file only overrides the
// keys it names.
func readFile(path string, base ArenaConfig) (ArenaConfig, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- path comes from the user or a fixed location
	if err != nil {
		return base, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return base, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade-arena", "configs", filename)
}

// ApplyArenaPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyArenaPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust how punishing hits are
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.ShrinkPerHit = 12
		cfg.Gameplay.StartAmmo = max(cfg.Gameplay.StartAmmo, 2)
	case DifficultyHard:
		cfg.Gameplay.ShrinkPerHit = 30
		cfg.Enemy.MinSpeed *= 1.2
		cfg.Enemy.MaxSpeed *= 1.2
	}
}
