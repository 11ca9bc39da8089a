package config

import (
	"math"
	"time"
)

// PointsPerLevel is the score span of one difficulty level.
const PointsPerLevel = 1000

// DifficultyState is the set of parameters in force for one level.
type DifficultyState struct {
	Level         int
	SpawnInterval time.Duration
	EnemySpeed    float64
	MaxOnScreen   int
	SpawnChance   float64
}

// LevelForScore returns floor(score/PointsPerLevel) + 1.
// Negative scores are treated as zero.
func LevelForScore(score int) int {
	if score < 0 {
		score = 0
	}
	return score/PointsPerLevel + 1
}

// DifficultyController derives spawn and speed parameters from cumulative score.
// Parameters are recomputed only when the level changes, and the level never
// goes down until Reset.
type DifficultyController struct {
	cfg   DifficultyConfig
	state DifficultyState
}

// NewDifficultyController creates a controller at level 1.
func NewDifficultyController(cfg DifficultyConfig) *DifficultyController {
	d := &DifficultyController{cfg: cfg}
	d.Reset()
	return d
}

// Reset returns the controller to level 1.
func (d *DifficultyController) Reset() {
	d.state = d.StateForLevel(1)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyController) IsEnabled() bool {
	return d.cfg.Enabled
}

// State returns the parameters currently in force.
func (d *DifficultyController) State() DifficultyState {
	return d.state
}

// Advance settles the controller for the given score.
// Returns true when the level went up.
func (d *DifficultyController) Advance(score int) bool {
	level := LevelForScore(score)
	if level <= d.state.Level {
		return false
	}
	if d.cfg.Enabled {
		d.state = d.StateForLevel(level)
	} else {
		d.state.Level = level
	}
	return true
}

// StateForLevel computes the parameters for a level without touching the
// controller. With progression disabled every level gets the level 1 values.
func (d *DifficultyController) StateForLevel(level int) DifficultyState {
	if level < 1 {
		level = 1
	}
	steps := level - 1
	if !d.cfg.Enabled {
		steps = 0
	}

	intervalMs := d.cfg.SpawnIntervalMs - steps*d.cfg.SpawnIntervalStepMs
	if intervalMs < d.cfg.SpawnIntervalFloorMs {
		intervalMs = d.cfg.SpawnIntervalFloorMs
	}

	speed := d.cfg.EnemySpeed + float64(steps)*d.cfg.EnemySpeedStep
	if d.cfg.EnemySpeedMax > 0 {
		speed = math.Min(speed, d.cfg.EnemySpeedMax)
	}

	return DifficultyState{
		Level:         level,
		SpawnInterval: time.Duration(intervalMs) * time.Millisecond,
		EnemySpeed:    speed,
		MaxOnScreen:   d.maxOnScreen(steps + 1),
		SpawnChance:   d.cfg.SpawnChance,
	}
}

// maxOnScreen grows by one every two levels starting at level 3,
// and never past the configured cap.
func (d *DifficultyController) maxOnScreen(level int) int {
	n := d.cfg.MaxOnScreen
	if level >= 3 {
		n += (level-3)/2 + 1
	}
	if n > d.cfg.MaxOnScreenCap {
		n = d.cfg.MaxOnScreenCap
	}
	return n
}
