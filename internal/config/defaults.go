package config

import (
	_ "embed"
)

//go:embed defaults/thornfall.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/thornfall.yaml and is the last fallback when the
// embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Player: PlayerConfig{
			Width:        50,
			Height:       50,
			Speed:        5,
			BottomMargin: 20,
		},
		Obstacles: ObstacleConfig{
			Width:  40,
			Height: 40,
		},
		Thorn: ThornConfig{
			Width:  6,
			Height: 16,
			Speed:  10,
		},
		Explosion: ExplosionConfig{
			MaxFrames:    8,
			FrameDelayMs: 60,
		},
		Scoring: ScoringConfig{
			KillBonus: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:              true,
			SpawnIntervalMs:      1000,
			SpawnIntervalStepMs:  75,
			SpawnIntervalFloorMs: 250,
			EnemySpeed:           3,
			EnemySpeedStep:       0.5,
			EnemySpeedMax:        12,
			MaxOnScreen:          4,
			MaxOnScreenCap:       10,
			SpawnChance:          0.08,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
