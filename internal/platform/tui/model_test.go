package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

func defaultCatalog(t *testing.T) *engine.Catalog {
	t.Helper()
	cat, err := levels.Load("")
	if err != nil {
		t.Fatalf("levels.Load failed: %v", err)
	}
	return cat
}

func newGameModel(t *testing.T) GameModel {
	t.Helper()
	game, err := registry.Create(sokoban.ID)
	if err != nil {
		t.Fatalf("registry.Create failed: %v", err)
	}
	m := NewGameModel(game, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, StartLevel: 1})
	m.shotDir = t.TempDir()
	m.Init()
	return m
}

func press(t *testing.T, m tea.Model, msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func TestGameModelSolveFirstLevel(t *testing.T) {
	right := tea.KeyMsg{Type: tea.KeyRight}
	m, _ := press(t, newGameModel(t), right, runeKey('d'))
	gm := m.(GameModel)

	if !gm.State().Solved {
		t.Fatalf("expected first level solved, state %+v", gm.State())
	}
	if !strings.Contains(gm.View(), "Level complete!") {
		t.Error("victory overlay not rendered")
	}

	m, _ = press(t, gm, tea.KeyMsg{Type: tea.KeyEnter})
	gm = m.(GameModel)
	if gm.State().Level != 2 || gm.State().Solved {
		t.Errorf("expected level 2 after enter, got %+v", gm.State())
	}
}

func TestGameModelQuit(t *testing.T) {
	m, cmd := press(t, newGameModel(t), runeKey('q'))
	gm := m.(GameModel)
	if !gm.IsQuitting() || cmd == nil {
		t.Error("q should quit the program")
	}
	if gm.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestGameModelBack(t *testing.T) {
	m, _ := press(t, newGameModel(t), runeKey('b'))
	if m.(GameModel).BackToMenu() {
		t.Error("back should be ignored unless enabled")
	}

	m, _ = press(t, newGameModel(t).WithBack(), runeKey('b'))
	if !m.(GameModel).BackToMenu() {
		t.Error("back should be honoured when enabled")
	}
}

func TestGameModelResizeKeepsProgress(t *testing.T) {
	m, _ := press(t, newGameModel(t),
		tea.KeyMsg{Type: tea.KeyRight},
		tea.WindowSizeMsg{Width: 100, Height: 30},
	)
	gm := m.(GameModel)
	snap := gm.game.(*sokoban.Game).Snapshot()
	if snap.Player != engine.C(2, 2) {
		t.Errorf("resize should keep the session, player at %v", snap.Player)
	}
	if gm.screen.Width() != 100 || gm.screen.Height() != 30 {
		t.Errorf("screen not resized: %dx%d", gm.screen.Width(), gm.screen.Height())
	}
}

func TestGameModelScreenshot(t *testing.T) {
	m, _ := press(t, newGameModel(t), tea.KeyMsg{Type: tea.KeyCtrlS})
	gm := m.(GameModel)
	if gm.lastShot == "" {
		t.Fatal("screenshot was not written")
	}
	data, err := os.ReadFile(gm.lastShot)
	if err != nil {
		t.Fatalf("reading screenshot: %v", err)
	}
	if !strings.Contains(string(data), "Sokoban | Level 1/6") {
		t.Errorf("screenshot missing HUD:\n%s", data)
	}
}

func TestSessionPickerFlow(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, StartLevel: 1}
	var m tea.Model = NewSessionModel(sokoban.ID, defaultCatalog(t), cfg, true)

	if !strings.Contains(m.View(), "SOKOBAN - 6 levels") {
		t.Errorf("picker title missing:\n%s", m.View())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	sm := m.(SessionModel)
	if !sm.InGame() {
		t.Fatal("enter should start the selected level")
	}
	if lvl := sm.gameModel.game.State().Level; lvl != 2 {
		t.Errorf("expected level 2, got %d", lvl)
	}

	m, _ = press(t, sm, runeKey('b'))
	sm = m.(SessionModel)
	if sm.InGame() {
		t.Fatal("b should return to the picker")
	}
	if sm.picker.table.Cursor() != 1 {
		t.Errorf("picker cursor should stay on level 2, got row %d", sm.picker.table.Cursor())
	}

	m, cmd := press(t, sm, runeKey('q'))
	if cmd == nil || m.View() != "" {
		t.Error("q in picker should quit")
	}
}

func TestSessionStartsInGame(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, StartLevel: 3}
	sm := NewSessionModel(sokoban.ID, defaultCatalog(t), cfg, false)
	sm.Init()

	if !sm.InGame() {
		t.Fatal("session should start in game")
	}
	if lvl := sm.gameModel.game.State().Level; lvl != 3 {
		t.Errorf("expected start level 3, got %d", lvl)
	}
	if !strings.Contains(sm.View(), "Uphill") {
		t.Error("level 3 name missing from HUD")
	}
}

func TestSessionUnknownGame(t *testing.T) {
	sm := NewSessionModel("nope", defaultCatalog(t), core.DefaultConfig(), false)
	if sm.Err() == nil {
		t.Fatal("expected error for unknown game")
	}
	if sm.Init() == nil {
		t.Error("Init should quit when the game cannot start")
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextWithColor(0, 1, "coloured", core.ColorOrange)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "plain       " {
		t.Errorf("default-colour row should be unstyled, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "coloured") {
		t.Errorf("coloured run missing: %q", lines[1])
	}
}
