package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "thornfall.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.thornfall/configs/thornfall.yaml -> ./configs/thornfall.yaml -> embedded default
//
// Files only need to list the keys they change; everything else keeps the
// built-in value. A custom path that cannot be read or parsed is an error;
// broken files in the implicit locations are skipped.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the built-in defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders a config as YAML, e.g. for `thornfall config`.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".thornfall", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.SpawnIntervalMs = 1300
		cfg.Difficulty.EnemySpeed = 2.5
		cfg.Difficulty.MaxOnScreen = 3
		cfg.Difficulty.SpawnChance = 0.06
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.SpawnIntervalMs = 750
		cfg.Difficulty.EnemySpeed = 4
		cfg.Difficulty.MaxOnScreen = 5
		cfg.Difficulty.SpawnChance = 0.12
	}
}
