// Package tui provides the Bubble Tea integration for the wayfarer
// platform. It handles the terminal UI loop, input mapping, and
// expedition orchestration.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wayfarer/internal/core"
	"github.com/vovakirdan/tui-wayfarer/internal/storage"
	"github.com/vovakirdan/tui-wayfarer/internal/wayfarer"
)

// Model is the Bubble Tea model for running an expedition. There is no
// tick loop: the game state only changes in response to input events,
// so the model steps the game exactly once per key or mouse message.
type Model struct {
	game         *wayfarer.Game
	screen       *core.Screen
	store        *storage.Store
	config       core.RuntimeConfig
	mode         string // "guided" or "freeroam", recorded in the journey log
	keymap       *KeyMapper
	gameState    core.GameState
	quitting     bool
	journeySaved bool // Whether the journey has been logged for current completion
}

// NewModel creates a new Bubble Tea model for the given expedition.
func NewModel(game *wayfarer.Game, store *storage.Store, cfg core.RuntimeConfig, mode string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		mode:      mode,
		keymap:    NewKeyMapper(),
		gameState: game.State(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
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
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keymap.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}
	if len(frame.Actions) == 0 {
		return m, nil
	}

	if frame.Has(core.ActionRestart) {
		m.journeySaved = false
	}

	return m.step(frame)
}

// handleMouse processes mouse input.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	if !m.keymap.MapMouseToFrame(msg, &frame) {
		return m, nil
	}
	return m.step(frame)
}

// step runs one game step and logs the journey on completion.
func (m Model) step(frame core.InputFrame) (tea.Model, tea.Cmd) {
	result := m.game.Step(frame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.journeySaved {
		m.saveJourney()
		m.journeySaved = true
	}

	return m, nil
}

// saveJourney records the finished expedition in the journey log.
func (m *Model) saveJourney() {
	if m.store == nil {
		return
	}
	snap := m.game.Snapshot()
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveJourney(storage.JourneyEntry{
		WorldID:   m.game.World().ID,
		Mode:      m.mode,
		Nodes:     snap.Nodes,
		Edges:     snap.Edges,
		Steps:     snap.Steps,
		Resolved:  snap.Resolved,
		Completed: snap.Completed,
	})
}

// handleResize processes window resize events. The expedition state
// survives a resize; only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".wayfarer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.World().ID, timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, the session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *wayfarer.Game, store *storage.Store, cfg core.RuntimeConfig, mode string) error {
	model := NewModel(game, store, cfg, mode)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover picking needs motion events
	)

	_, err := p.Run()
	return err
}
