package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/thornfall/internal/config"
	"github.com/vovakirdan/thornfall/internal/core"
	"github.com/vovakirdan/thornfall/internal/games/thornfall"
)

func newTestModel(cols, rows int) (Model, *thornfall.Game) {
	game := thornfall.New(config.DefaultConfig(), nil)
	m := NewModel(game, core.RuntimeConfig{TickRate: 60, Seed: 5}, cols, rows)
	game.Reset(m.config)
	return m, game
}

func TestModelFieldFromTerminalSize(t *testing.T) {
	m, game := newTestModel(48, 34)

	w, h := game.Field()
	if w != 480 || h != 640 {
		t.Errorf("field = (%v, %v), expected (480, 640)", w, h)
	}
	if m.screen.Width() != 48 || m.screen.Height() != 33 {
		t.Errorf("screen = %dx%d, expected 48x33", m.screen.Width(), m.screen.Height())
	}
}

func TestModelClickStartsGame(t *testing.T) {
	m, game := newTestModel(48, 34)

	// Click outside the button does nothing
	updated, _ := m.Update(tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = updated.(Model)
	updated, _ = m.Update(TickMsg(time.Now()))
	m = updated.(Model)
	if game.Phase() != thornfall.PhaseTitle {
		t.Fatalf("click outside the button started the game")
	}

	// The button is centered on the field
	btn := thornfall.StartButton(game.Field())
	c := btn.Center()
	cx := int(c.X / thornfall.CellW)
	cy := int(c.Y/thornfall.CellH) + thornfall.HUDRows
	updated, _ = m.Update(tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = updated.(Model)
	updated, _ = m.Update(TickMsg(time.Now()))
	m = updated.(Model)

	if game.Phase() != thornfall.PhasePlaying {
		t.Errorf("click on the start button should start the game, phase = %v", game.Phase())
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, game := newTestModel(48, 34)

	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(Model)
	updated, _ = m.Update(TickMsg(time.Now()))
	m = updated.(Model)
	if game.Phase() != thornfall.PhasePlaying {
		t.Fatalf("enter should start the game, phase = %v", game.Phase())
	}

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 21})
	m = updated.(Model)

	if game.Phase() != thornfall.PhasePlaying {
		t.Error("resize should not reset the session")
	}
	if w, h := game.Field(); w != 300 || h != 380 {
		t.Errorf("field = (%v, %v), expected (300, 380)", w, h)
	}
	if m.screen.Width() != 30 || m.screen.Height() != 20 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(48, 34)

	updated, cmd := m.Update(keyMsg("q"))
	m = updated.(Model)
	if !m.quitting || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelViewShowsHelp(t *testing.T) {
	m, _ := newTestModel(80, 34)
	view := m.View()
	if !strings.Contains(view, "fire") {
		t.Error("view should include the key help line")
	}
}
