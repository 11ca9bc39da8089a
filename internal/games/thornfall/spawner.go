package thornfall

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/thornfall/internal/config"
)

// Spawner decides when a new obstacle enters the field and what it is.
// All randomness comes from a seeded source so a run can be replayed.
type Spawner struct {
	rng       *rand.Rand
	fieldW    float64
	obstacleW float64
	obstacleH float64
	lastSpawn time.Time
	lastKind  Kind
	spawned   int
}

// NewSpawner creates a spawner for a field of the given width.
func NewSpawner(seed int64, fieldW float64, cfg config.ObstacleConfig) *Spawner {
	s := &Spawner{
		fieldW:    fieldW,
		obstacleW: cfg.Width,
		obstacleH: cfg.Height,
	}
	s.Reset(seed, time.Time{})
	return s
}

// Reset reseeds the RNG and restarts the spawn clock at now.
// The first obstacle after a reset is always kind A.
func (s *Spawner) Reset(seed int64, now time.Time) {
	s.rng = rand.New(rand.NewSource(seed))
	s.lastSpawn = now
	s.lastKind = KindB
	s.spawned = 0
}

// SetFieldWidth updates the horizontal spawn range.
func (s *Spawner) SetFieldWidth(w float64) {
	s.fieldW = w
}

// Spawned returns how many obstacles were created since the last reset.
func (s *Spawner) Spawned() int {
	return s.spawned
}

// TrySpawn returns a new obstacle when the spawn interval has elapsed,
// fewer than diff.MaxOnScreen obstacles are live and the spawn roll succeeds.
// The RNG is only drawn from once the first two conditions hold.
func (s *Spawner) TrySpawn(now time.Time, live int, diff config.DifficultyState) (Obstacle, bool) {
	if now.Sub(s.lastSpawn) < diff.SpawnInterval {
		return Obstacle{}, false
	}
	if live >= diff.MaxOnScreen {
		return Obstacle{}, false
	}
	if s.rng.Float64() >= diff.SpawnChance {
		return Obstacle{}, false
	}

	span := s.fieldW - s.obstacleW
	x := 0.0
	if span > 0 {
		x = s.rng.Float64() * span
	}

	kind := s.lastKind.Opposite()
	s.lastKind = kind
	s.lastSpawn = now
	s.spawned++

	return Obstacle{
		X:    x,
		Y:    -s.obstacleH,
		W:    s.obstacleW,
		H:    s.obstacleH,
		Kind: kind,
	}, true
}
