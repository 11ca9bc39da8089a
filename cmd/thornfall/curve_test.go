package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/thornfall/internal/config"
)

func TestCurveTable(t *testing.T) {
	cfg := config.DefaultConfig().Difficulty
	out := curveTable(cfg, 3)

	for _, want := range []string{"Level", "Spawn every", "Max on screen", "2000"} {
		if !strings.Contains(out, want) {
			t.Errorf("curve table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "3000") {
		t.Errorf("curve table shows more than 3 levels:\n%s", out)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"error", false},
		{"loud", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			flagLogLevel = tt.level
			t.Cleanup(func() { flagLogLevel = "info" })

			logger, closeLog, err := newLogger(&strings.Builder{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("newLogger(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
			if err == nil {
				if logger == nil {
					t.Fatal("nil logger")
				}
				closeLog()
			}
		})
	}
}
