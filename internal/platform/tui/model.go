package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/thornfall/internal/core"
	"github.com/vovakirdan/thornfall/internal/games/thornfall"
)

// helpRows is the space kept below the field for the key help line.
const helpRows = 1

// Model is the Bubble Tea model for a Thornfall session.
type Model struct {
	game       *thornfall.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	held       heldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a model for a terminal of cols×rows cells.
func NewModel(game *thornfall.Game, cfg core.RuntimeConfig, cols, rows int) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.FieldW, cfg.FieldH = thornfall.FieldForCells(cols, rows-helpRows)

	return Model{
		game:       game,
		screen:     core.NewScreen(cols, rows-helpRows),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop. The game must already be Reset.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	now := time.Now()
	for _, a := range m.keys.Actions(msg) {
		switch a {
		case core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case core.ActionLeft, core.ActionRight:
			m.held.press(a, now)
		default:
			m.inputFrame.Set(a)
		}
	}

	return m, nil
}

// handleMouse turns a left click on the start button into a start action.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.game.Phase() != thornfall.PhaseTitle {
		return m, nil
	}

	p := thornfall.CellToWorld(msg.X, msg.Y)
	if thornfall.StartButton(m.game.Field()).Contains(p.X, p.Y) {
		m.inputFrame.Set(core.ActionStart)
	}
	return m, nil
}

// handleResize processes window resize events.
// The session keeps running; only the field bounds change.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := msg.Height - helpRows
	m.screen.Resize(msg.Width, rows)
	m.help.Width = msg.Width

	m.config.FieldW, m.config.FieldH = thornfall.FieldForCells(msg.Width, rows)
	m.game.Resize(m.config.FieldW, m.config.FieldH)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.held.apply(&m.inputFrame, now)

	result := m.game.Step(now, m.inputFrame)
	if result.State.GameOver && !m.gameState.GameOver {
		m.held.release()
	}
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".thornfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run resets the game for a cols×rows terminal and runs it until quit.
func Run(game *thornfall.Game, cfg core.RuntimeConfig, cols, rows int) error {
	model := NewModel(game, cfg, cols, rows)
	game.Reset(model.config)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the start button
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: program failed: %w", err)
	}
	return nil
}
