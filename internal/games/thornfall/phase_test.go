package thornfall

import (
	"testing"
	"time"

	"github.com/vovakirdan/thornfall/internal/core"
)

func TestPhaseTransitions(t *testing.T) {
	tests := []struct {
		from   Phase
		event  Event
		to     Phase
		wantOK bool
	}{
		{PhaseTitle, EventStart, PhasePlaying, true},
		{PhasePlaying, EventLethalHit, PhaseExploding, true},
		{PhaseExploding, EventExplosionDone, PhaseGameOver, true},
		{PhaseGameOver, EventRestart, PhasePlaying, true},

		{PhaseTitle, EventRestart, PhaseTitle, false},
		{PhasePlaying, EventStart, PhasePlaying, false},
		{PhasePlaying, EventRestart, PhasePlaying, false},
		{PhaseExploding, EventLethalHit, PhaseExploding, false},
		{PhaseGameOver, EventExplosionDone, PhaseGameOver, false},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+"/"+tc.event.String(), func(t *testing.T) {
			got, ok := tc.from.Next(tc.event)
			if got != tc.to || ok != tc.wantOK {
				t.Errorf("Next() = (%v, %v), expected (%v, %v)", got, ok, tc.to, tc.wantOK)
			}
		})
	}
}

func TestExplosionTiming(t *testing.T) {
	t0 := time.Unix(100, 0)
	e := Explosion{MaxFrames: 3, FrameDelay: 50 * time.Millisecond}

	if !e.Start(t0, core.Point{X: 1, Y: 2}, true) {
		t.Fatal("Start should succeed on an idle explosion")
	}
	if e.Start(t0, core.Point{}, false) {
		t.Error("Start should refuse while active")
	}
	if !e.Lethal || e.At != (core.Point{X: 1, Y: 2}) {
		t.Error("refused Start must not overwrite the running explosion")
	}

	if e.Advance(t0.Add(49 * time.Millisecond)) {
		t.Error("finished too early")
	}
	if e.Frame != 0 {
		t.Errorf("frame = %d before the delay, expected 0", e.Frame)
	}

	now := t0
	for k := 1; k <= 3; k++ {
		now = now.Add(50 * time.Millisecond)
		done := e.Advance(now)
		if done != (k == 3) {
			t.Fatalf("advance %d: done = %v", k, done)
		}
	}
	if e.Active {
		t.Error("explosion should be inactive after the last frame")
	}
	if e.Advance(now.Add(time.Hour)) {
		t.Error("inactive explosion should not finish again")
	}
}

func TestKindOpposite(t *testing.T) {
	if KindA.Opposite() != KindB || KindB.Opposite() != KindA {
		t.Error("Opposite should swap the two kinds")
	}
	if KindA.String() != "beetle" || KindB.String() != "wasp" {
		t.Errorf("names = %s, %s", KindA, KindB)
	}
}
