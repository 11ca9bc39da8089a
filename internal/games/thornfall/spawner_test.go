package thornfall

import (
	"testing"
	"time"

	"github.com/vovakirdan/thornfall/internal/config"
)

func spawnState(interval time.Duration, max int, chance float64) config.DifficultyState {
	return config.DifficultyState{
		Level:         1,
		SpawnInterval: interval,
		EnemySpeed:    3,
		MaxOnScreen:   max,
		SpawnChance:   chance,
	}
}

func TestSpawnerAlternatesKinds(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewSpawner(7, 480, config.ObstacleConfig{Width: 40, Height: 40})
	s.Reset(7, start)

	var kinds []Kind
	now := start
	for i := 0; i < 5000; i++ {
		now = now.Add(10 * time.Millisecond)
		live := i % 5 // cap 4 blocks some ticks
		if o, ok := s.TrySpawn(now, live, spawnState(30*time.Millisecond, 4, 0.4)); ok {
			kinds = append(kinds, o.Kind)
		}
	}

	if len(kinds) < 50 {
		t.Fatalf("expected many spawns, got %d", len(kinds))
	}
	if kinds[0] != KindA {
		t.Errorf("first spawn = %v, expected %v", kinds[0], KindA)
	}
	for i := 1; i < len(kinds); i++ {
		if kinds[i] == kinds[i-1] {
			t.Fatalf("spawns %d and %d are both %v", i-1, i, kinds[i])
		}
	}
}

func TestSpawnerPlacement(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewSpawner(3, 300, config.ObstacleConfig{Width: 40, Height: 40})
	s.Reset(3, start)

	now := start
	for i := 0; i < 200; i++ {
		now = now.Add(time.Second)
		o, ok := s.TrySpawn(now, 0, spawnState(0, 10, 1))
		if !ok {
			t.Fatal("spawn with chance 1 should succeed")
		}
		if o.X < 0 || o.X >= 300-40 {
			t.Errorf("x = %v outside [0, 260)", o.X)
		}
		if o.Y != -40 {
			t.Errorf("y = %v, expected -40", o.Y)
		}
	}
}

func TestSpawnerGates(t *testing.T) {
	start := time.Unix(0, 0)
	diff := spawnState(time.Second, 2, 1)

	s := NewSpawner(1, 480, config.ObstacleConfig{Width: 40, Height: 40})
	s.Reset(1, start)

	if _, ok := s.TrySpawn(start.Add(999*time.Millisecond), 0, diff); ok {
		t.Error("spawned before the interval elapsed")
	}
	if _, ok := s.TrySpawn(start.Add(time.Second), 2, diff); ok {
		t.Error("spawned at the obstacle cap")
	}
	if _, ok := s.TrySpawn(start.Add(time.Second), 1, diff); !ok {
		t.Error("expected a spawn once interval and cap allow it")
	}
	// Clock restarts at the spawn
	if _, ok := s.TrySpawn(start.Add(1500*time.Millisecond), 0, diff); ok {
		t.Error("spawned again before a full interval")
	}
	if _, ok := s.TrySpawn(start.Add(time.Second), 0, spawnState(0, 5, 0)); ok {
		t.Error("spawned with chance 0")
	}
}

func TestSpawnerNarrowField(t *testing.T) {
	s := NewSpawner(1, 30, config.ObstacleConfig{Width: 40, Height: 40})
	o, ok := s.TrySpawn(time.Unix(10, 0), 0, spawnState(0, 1, 1))
	if !ok || o.X != 0 {
		t.Errorf("narrow field spawn = %+v, %v; expected x=0", o, ok)
	}
}

func TestSpawnerResetIsReproducible(t *testing.T) {
	start := time.Unix(0, 0)
	run := func() []float64 {
		s := NewSpawner(99, 480, config.ObstacleConfig{Width: 40, Height: 40})
		s.Reset(99, start)
		var xs []float64
		now := start
		for i := 0; i < 300; i++ {
			now = now.Add(50 * time.Millisecond)
			if o, ok := s.TrySpawn(now, 0, spawnState(100*time.Millisecond, 3, 0.5)); ok {
				xs = append(xs, o.X)
			}
		}
		return xs
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("spawn counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("spawn %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
