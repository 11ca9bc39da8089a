package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/thornfall/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func hasAction(actions []core.Action, a core.Action) bool {
	for _, got := range actions {
		if got == a {
			return true
		}
	}
	return false
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key  string
		want []core.Action
	}{
		{"left", []core.Action{core.ActionLeft}},
		{"a", []core.Action{core.ActionLeft}},
		{"right", []core.Action{core.ActionRight}},
		{"d", []core.Action{core.ActionRight}},
		{" ", []core.Action{core.ActionFire, core.ActionStart, core.ActionRestart}},
		{"enter", []core.Action{core.ActionStart}},
		{"r", []core.Action{core.ActionRestart}},
		{"p", []core.Action{core.ActionPause}},
		{"q", []core.Action{core.ActionQuit}},
		{"ctrl+c", []core.Action{core.ActionQuit}},
		{"x", nil},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got := km.Actions(keyMsg(tc.key))
			if len(got) != len(tc.want) {
				t.Fatalf("Actions(%q) = %v, expected %v", tc.key, got, tc.want)
			}
			for _, a := range tc.want {
				if !hasAction(got, a) {
					t.Errorf("Actions(%q) missing %v", tc.key, a)
				}
			}
		})
	}
}

func TestHeldKeysWindow(t *testing.T) {
	var h heldKeys
	t0 := time.Unix(0, 0)

	h.press(core.ActionLeft, t0)

	frame := core.NewInputFrame()
	h.apply(&frame, t0.Add(holdWindow-time.Millisecond))
	if !frame.Has(core.ActionLeft) {
		t.Error("left should still be held inside the window")
	}

	frame.Clear()
	h.apply(&frame, t0.Add(holdWindow))
	if frame.Has(core.ActionLeft) {
		t.Error("left should be released once the window passed")
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	var h heldKeys
	t0 := time.Unix(0, 0)

	h.press(core.ActionLeft, t0)
	h.press(core.ActionRight, t0.Add(10*time.Millisecond))

	frame := core.NewInputFrame()
	h.apply(&frame, t0.Add(20*time.Millisecond))
	if frame.Has(core.ActionLeft) || !frame.Has(core.ActionRight) {
		t.Errorf("expected only right held, got %v", frame.Actions)
	}

	h.release()
	frame.Clear()
	h.apply(&frame, t0.Add(20*time.Millisecond))
	if frame.Direction() != 0 {
		t.Error("release should drop every held direction")
	}
}
