package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/thornfall/internal/core"
)

// holdWindow is how long a movement key counts as held after its last
// press. Terminals send no key-up events, only auto-repeat presses.
const holdWindow = 250 * time.Millisecond

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Start      key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Start, k.Restart, k.Pause},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Actions returns every game action bound to the key.
// One key may carry several actions; the game only acts on those that
// make sense in its current phase.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	var actions []core.Action
	pairs := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Fire, core.ActionFire},
		{k.Start, core.ActionStart},
		{k.Restart, core.ActionRestart},
		{k.Pause, core.ActionPause},
		{k.Quit, core.ActionQuit},
	}
	for _, p := range pairs {
		if key.Matches(msg, p.binding) {
			actions = append(actions, p.action)
		}
	}
	return actions
}

// heldKeys turns repeated movement presses into a held direction.
type heldKeys struct {
	left  time.Time // Last left press
	right time.Time // Last right press
}

// press records a movement press. Pressing one direction releases the other.
func (h *heldKeys) press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.left = now
		h.right = time.Time{}
	case core.ActionRight:
		h.right = now
		h.left = time.Time{}
	}
}

// release forgets all held directions.
func (h *heldKeys) release() {
	h.left = time.Time{}
	h.right = time.Time{}
}

// apply marks the directions still inside the hold window.
func (h heldKeys) apply(frame *core.InputFrame, now time.Time) {
	if !h.left.IsZero() && now.Sub(h.left) < holdWindow {
		frame.Set(core.ActionLeft)
	}
	if !h.right.IsZero() && now.Sub(h.right) < holdWindow {
		frame.Set(core.ActionRight)
	}
}
