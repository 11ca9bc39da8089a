package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGameConfigRejectsUnknownPreset(t *testing.T) {
	flagDifficulty = "insane"
	t.Cleanup(func() { flagDifficulty = "" })

	if _, err := loadGameConfig(); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestLoadGameConfigValidatesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thornfall.yaml")
	data := []byte("difficulty:\n  max_on_screen: 3\n  max_on_screen_cap: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	flagConfig = path
	t.Cleanup(func() {
		flagConfig = ""
		flagDifficulty = ""
	})

	flagDifficulty = "normal"
	if _, err := loadGameConfig(); err != nil {
		t.Fatalf("normal keeps the file's cap, got error: %v", err)
	}

	// hard starts at 5 on screen, above the file's cap of 3
	flagDifficulty = "hard"
	if _, err := loadGameConfig(); err == nil {
		t.Fatal("expected hard preset to be rejected against a cap of 3")
	}
}
