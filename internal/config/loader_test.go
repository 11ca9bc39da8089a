package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded YAML and DefaultConfig() differ:\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  speed: 9\ndifficulty:\n  spawn_chance: 0.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Speed != 9 {
		t.Errorf("Player.Speed = %v, expected 9", cfg.Player.Speed)
	}
	if cfg.Difficulty.SpawnChance != 0.5 {
		t.Errorf("SpawnChance = %v, expected 0.5", cfg.Difficulty.SpawnChance)
	}
	// Untouched keys keep their defaults
	if cfg.Player.Width != DefaultConfig().Player.Width {
		t.Errorf("Player.Width = %v, expected default", cfg.Player.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("difficulty:\n  spawn_chance: 3\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(bad)
	if err == nil {
		t.Fatal("Load() should reject an out-of-range spawn_chance")
	}
	if !strings.Contains(err.Error(), "spawn_chance") {
		t.Errorf("error should name the bad key, got %v", err)
	}
}

func TestLoadFallsBackToLocalDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	work := t.TempDir()
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	local := filepath.Join(work, "configs", FileName)
	if err := os.WriteFile(local, []byte("scoring:\n  kill_bonus: 7\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Chdir(work)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scoring.KillBonus != 7 {
		t.Errorf("KillBonus = %d, expected 7 from ./configs", cfg.Scoring.KillBonus)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
	}{
		{DifficultyEasy, true},
		{DifficultyNormal, true},
		{DifficultyHard, true},
		{DifficultyFixed, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}

	easy, hard := DefaultConfig(), DefaultConfig()
	ApplyPreset(&easy, DifficultyEasy)
	ApplyPreset(&hard, DifficultyHard)
	if easy.Difficulty.EnemySpeed >= hard.Difficulty.EnemySpeed {
		t.Error("easy should start slower than hard")
	}
}

func TestValidateRejectsStartAboveCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Difficulty.MaxOnScreenCap = 3
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when max_on_screen exceeds max_on_screen_cap")
	}

	cfg.Difficulty.MaxOnScreen = 3
	if err := cfg.Validate(); err != nil {
		t.Errorf("start equal to cap should be valid: %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestMarshalRoundTripsThroughLoad(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Thorn.Speed = 14

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "dump.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("config changed after dump/load:\n%+v\n%+v", loaded, cfg)
	}
}

func TestServeAddress(t *testing.T) {
	t.Run("port from env", func(t *testing.T) {
		t.Setenv("PORT", "4000")
		if got := ServeAddress(); got != ":4000" {
			t.Errorf("ServeAddress() = %q, expected :4000", got)
		}
	})

	t.Run("port unset", func(t *testing.T) {
		t.Setenv("PORT", "")
		//nolint:errcheck // Setenv restores the old value on cleanup
		os.Unsetenv("PORT")
		if got := ServeAddress(); got != ":3000" {
			t.Errorf("ServeAddress() = %q, expected :3000", got)
		}
	})
}
