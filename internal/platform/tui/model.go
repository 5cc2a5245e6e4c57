// Package tui provides the Bubble Tea integration for the game platform:
// the game loop, key mapping, the level picker and the SSH server.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

// GameModel is the Bubble Tea model for running one game.
// Every key press is applied to the game immediately; there is no tick loop.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	gameState  core.GameState
	shotDir    string // screenshot directory
	lastShot   string // path of the last screenshot, for tests and status
	allowBack  bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new game model. The game is reset on Init.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig) GameModel {
	return GameModel{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    NewKeyMapper(),
		shotDir: defaultScreenshotDir(),
	}
}

// WithBack enables the key that returns to the level picker.
func (m GameModel) WithBack() GameModel {
	m.allowBack = true
	return m
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board is re-centred on the next render; progress is kept.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input, one game step per key.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionBack:
		if m.allowBack {
			m.backToMenu = true
		}
		return m, nil
	}

	result := m.game.Step(core.FrameOf(action))
	m.gameState = result.State
	if m.gameState.GameOver {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.game.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.shotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err == nil {
		m.lastShot = path
	}
}

// defaultScreenshotDir returns ~/.sokoban/screenshots, or "" without a home.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sokoban", "screenshots")
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last key.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level picker.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
