package thornfall

import (
	"math"

	"github.com/vovakirdan/thornfall/internal/config"
	"github.com/vovakirdan/thornfall/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs.
// It shares no memory with the running game.
type Snapshot struct {
	Tick   uint64
	Phase  Phase
	Paused bool

	FieldW, FieldH float64

	Character Character
	Obstacles []Obstacle
	Thorn     Projectile
	Explosion Explosion
	Impact    core.Point

	Score     int
	Survival  int
	Bonus     int
	Kills     int
	Spawned   int
	Anomalies int // Hits whose impact point could not be located

	Difficulty config.DifficultyState
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(g.obstacles))
	copy(obstacles, g.obstacles)

	return Snapshot{
		Tick:       g.tick,
		Phase:      g.phase,
		Paused:     g.paused,
		FieldW:     g.runtime.FieldW,
		FieldH:     g.runtime.FieldH,
		Character:  g.char,
		Obstacles:  obstacles,
		Thorn:      g.thorn,
		Explosion:  g.explosion,
		Impact:     g.impact,
		Score:      g.Score(),
		Survival:   g.survival,
		Bonus:      g.bonus,
		Kills:      g.kills,
		Spawned:    g.spawner.Spawned(),
		Anomalies:  g.anomalies,
		Difficulty: g.difficulty.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Timestamps are left out so runs driven by different clocks can match.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Survival)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bonus)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Spawned)    //#nosec G115 -- hash computation

	h = h*31 + uint64(snap.Difficulty.Level) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Character.X)
	h = h*31 + math.Float64bits(snap.Character.Y)

	if snap.Thorn.Active {
		h = h*31 + 1
		h = h*31 + math.Float64bits(snap.Thorn.X)
		h = h*31 + math.Float64bits(snap.Thorn.Y)
	}

	if snap.Explosion.Active {
		h = h*31 + 1
		h = h*31 + uint64(snap.Explosion.Frame) //#nosec G115 -- hash computation
	}

	for _, o := range snap.Obstacles {
		h = h*31 + uint64(o.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(o.X)
		h = h*31 + math.Float64bits(o.Y)
	}

	return h
}
