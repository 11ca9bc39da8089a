// Package config provides YAML-based game configuration loading and
// difficulty management for Thornfall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all tunables for a Thornfall session.
// Sizes and speeds are world units (pixels) and pixels per tick.
type Config struct {
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Thorn      ThornConfig      `yaml:"thorn"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the player character.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Horizontal pixels per tick
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between character and field bottom
}

// ObstacleConfig defines the descending enemies. Both kinds share a box size.
type ObstacleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ThornConfig defines the player's projectile.
type ThornConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Upward pixels per tick
}

// ExplosionConfig defines explosion pacing.
type ExplosionConfig struct {
	MaxFrames    int `yaml:"max_frames"`
	FrameDelayMs int `yaml:"frame_delay_ms"`
}

// FrameDelay returns the minimum wall-clock gap between explosion frames.
func (e ExplosionConfig) FrameDelay() time.Duration {
	return time.Duration(e.FrameDelayMs) * time.Millisecond
}

// ScoringConfig defines the per-kill award. Survival points are not
// configurable: each tick pays one point per live obstacle.
type ScoringConfig struct {
	KillBonus int `yaml:"kill_bonus"`
}

// DifficultyConfig defines the level-driven progression.
type DifficultyConfig struct {
	Enabled bool `yaml:"enabled"`

	SpawnIntervalMs      int `yaml:"spawn_interval_ms"`       // Level 1 interval
	SpawnIntervalStepMs  int `yaml:"spawn_interval_step_ms"`  // Reduction per level
	SpawnIntervalFloorMs int `yaml:"spawn_interval_floor_ms"` // Never spawn faster than this

	EnemySpeed     float64 `yaml:"enemy_speed"`      // Level 1 speed
	EnemySpeedStep float64 `yaml:"enemy_speed_step"` // Increase per level
	EnemySpeedMax  float64 `yaml:"enemy_speed_max"`  // Hard ceiling

	MaxOnScreen    int `yaml:"max_on_screen"`     // Level 1 obstacle cap
	MaxOnScreenCap int `yaml:"max_on_screen_cap"` // Hard ceiling for the cap

	SpawnChance float64 `yaml:"spawn_chance"` // Per-tick Bernoulli probability once the interval elapsed
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// An empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q", s)
	}
}

// Validate reports settings that would break the difficulty invariants
// (monotonic, bounded progression) or produce degenerate entities.
func (c Config) Validate() error {
	var errs []error

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		errs = append(errs, errors.New("obstacle size must be positive"))
	}
	if c.Thorn.Width <= 0 || c.Thorn.Height <= 0 || c.Thorn.Speed <= 0 {
		errs = append(errs, errors.New("thorn size and speed must be positive"))
	}
	if c.Explosion.MaxFrames <= 0 {
		errs = append(errs, errors.New("explosion max_frames must be positive"))
	}
	if c.Explosion.FrameDelayMs < 0 {
		errs = append(errs, errors.New("explosion frame_delay_ms must not be negative"))
	}
	if c.Scoring.KillBonus < 0 {
		errs = append(errs, errors.New("kill_bonus must not be negative"))
	}

	d := c.Difficulty
	if d.SpawnIntervalStepMs < 0 || d.EnemySpeedStep < 0 {
		errs = append(errs, errors.New("difficulty steps must not be negative"))
	}
	if d.SpawnIntervalFloorMs < 0 {
		errs = append(errs, errors.New("spawn_interval_floor_ms must not be negative"))
	}
	if d.MaxOnScreen < 1 || d.MaxOnScreenCap < 1 {
		errs = append(errs, errors.New("max_on_screen and max_on_screen_cap must be at least 1"))
	}
	if d.MaxOnScreen > d.MaxOnScreenCap {
		errs = append(errs, errors.New("max_on_screen must not exceed max_on_screen_cap"))
	}
	if d.SpawnChance < 0 || d.SpawnChance > 1 {
		errs = append(errs, errors.New("spawn_chance must be within [0, 1]"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
