package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

// SessionModel manages the session flow: level picker -> game -> picker.
// This is the top-level model used for local play and SSH sessions.
type SessionModel struct {
	gameID    string
	catalog   *engine.Catalog
	config    core.RuntimeConfig
	picker    PickerModel
	gameModel *GameModel
	inGame    bool
	quitting  bool
	err       error
}

// NewSessionModel creates a session. When startInPicker is false the game
// starts immediately on cfg.StartLevel.
func NewSessionModel(gameID string, catalog *engine.Catalog, cfg core.RuntimeConfig, startInPicker bool) SessionModel {
	m := SessionModel{
		gameID:  gameID,
		catalog: catalog,
		config:  cfg,
		picker:  NewPickerModel(catalog, cfg.StartLevel, cfg.ScreenW, cfg.ScreenH),
	}
	if !startInPicker {
		m.err = m.startGame(cfg.StartLevel)
	}
	return m
}

// startGame creates a fresh game on the given level.
func (m *SessionModel) startGame(level int) error {
	game, err := registry.Create(m.gameID)
	if err != nil {
		return err
	}
	m.config.StartLevel = level
	gm := NewGameModel(game, m.config).WithBack()
	m.gameModel = &gm
	m.inGame = true
	return nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	if m.inGame {
		return m.gameModel.Init()
	}
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates while the level picker is shown.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if picker, ok := newPicker.(PickerModel); ok {
		m.picker = picker
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if level := m.picker.Selected(); level > 0 {
		if err := m.startGame(level); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates while a level is being played.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		current := m.gameModel.game.State().Level
		m.inGame = false
		m.gameModel = nil
		m.picker = NewPickerModel(m.catalog, current, m.config.ScreenW, m.config.ScreenH)
		return m, m.picker.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.picker.View()
}

// InGame reports whether a level is on screen.
func (m SessionModel) InGame() bool {
	return m.inGame
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// Run starts a local session on the alternate screen.
func Run(gameID string, catalog *engine.Catalog, cfg core.RuntimeConfig, startInPicker bool) error {
	model := NewSessionModel(gameID, catalog, cfg, startInPicker)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if sm, ok := final.(SessionModel); ok {
		return sm.Err()
	}
	return nil
}
