package engine_test

import (
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
)

// newCatalog builds a two-level catalog. Level 1 is solved by one push
// right, level 2 by one push left.
func newCatalog(t *testing.T) *engine.Catalog {
	t.Helper()
	m1, err := engine.ParseMap([]string{"#--X#"})
	if err != nil {
		t.Fatal(err)
	}
	m2, err := engine.ParseMap([]string{"#X--#"})
	if err != nil {
		t.Fatal(err)
	}

	cat, err := engine.NewCatalog([]engine.LevelDefinition{
		{Name: "First", Map: m1, Player: engine.C(1, 0), Crates: []engine.Coord{engine.C(2, 0)}},
		{Name: "Second", Map: m2, Player: engine.C(3, 0), Crates: []engine.Coord{engine.C(2, 0)}},
	})
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	return cat
}

func TestControllerInitialState(t *testing.T) {
	c := engine.NewController(newCatalog(t), 1)

	v := c.View()
	if c.Phase() != engine.PhasePlaying {
		t.Errorf("Phase() = %v, want playing", c.Phase())
	}
	if v.SelectedLevel != 1 || v.LevelCount != 2 || v.LevelName != "First" {
		t.Errorf("view level = %d/%d %q", v.SelectedLevel, v.LevelCount, v.LevelName)
	}
	if v.Facing != engine.DirDown {
		t.Errorf("Facing = %v, want down", v.Facing)
	}
	if !v.Running || v.Victory {
		t.Errorf("Running=%v Victory=%v", v.Running, v.Victory)
	}
}

func TestControllerStartLevelIsClamped(t *testing.T) {
	cat := newCatalog(t)

	if got := engine.NewController(cat, 0).State().SelectedLevel; got != 1 {
		t.Errorf("start 0 -> level %d, want 1", got)
	}
	if got := engine.NewController(cat, 99).State().SelectedLevel; got != 2 {
		t.Errorf("start 99 -> level %d, want 2", got)
	}
}

func TestControllerMoveToVictory(t *testing.T) {
	c := engine.NewController(newCatalog(t), 1)

	if !c.HandleInput(engine.MoveEvent(engine.DirRight)) {
		t.Fatal("move should be handled")
	}

	v := c.View()
	if !v.Victory || c.Phase() != engine.PhaseVictory {
		t.Fatal("expected victory")
	}
	if v.Player != engine.C(2, 0) || !v.HasCrate(engine.C(3, 0)) {
		t.Errorf("player=%v crates=%v", v.Player, v.Crates)
	}
	if r := c.LastMove(); !r.Moved || !r.Pushed {
		t.Errorf("LastMove() = %+v", r)
	}
}

func TestControllerIgnoresInputDuringVictory(t *testing.T) {
	c := engine.NewController(newCatalog(t), 1)
	c.HandleInput(engine.MoveEvent(engine.DirRight))
	before := c.View()

	if c.HandleInput(engine.MoveEvent(engine.DirLeft)) {
		t.Error("move during victory should be ignored")
	}
	if c.HandleInput(engine.ResetEvent()) {
		t.Error("reset during victory should be ignored")
	}
	if c.HandleInput(engine.Event{}) {
		t.Error("empty event should be ignored")
	}

	after := c.View()
	if after.Player != before.Player || after.Facing != before.Facing || !after.Victory {
		t.Errorf("victory state changed: %+v", after)
	}
}

func TestControllerAdvance(t *testing.T) {
	c := engine.NewController(newCatalog(t), 1)

	// Advance while playing is a no-op.
	if c.HandleInput(engine.AdvanceEvent()) {
		t.Error("advance while playing should be ignored")
	}
	if c.State().SelectedLevel != 1 {
		t.Fatalf("level = %d, want 1", c.State().SelectedLevel)
	}

	c.HandleInput(engine.MoveEvent(engine.DirRight))
	if !c.HandleInput(engine.AdvanceEvent()) {
		t.Fatal("advance after victory should be handled")
	}

	v := c.View()
	if v.SelectedLevel != 2 || v.LevelName != "Second" {
		t.Errorf("level = %d %q, want 2 Second", v.SelectedLevel, v.LevelName)
	}
	if v.Victory || c.Phase() != engine.PhasePlaying {
		t.Error("advance should return to playing")
	}
	if v.Player != engine.C(3, 0) || v.Facing != engine.DirDown {
		t.Errorf("fresh session player=%v facing=%v", v.Player, v.Facing)
	}
}

func TestControllerAdvanceOnLastLevel(t *testing.T) {
	c := engine.NewController(newCatalog(t), 2)

	c.HandleInput(engine.MoveEvent(engine.DirLeft))
	if !c.View().Victory {
		t.Fatal("expected victory on level 2")
	}

	c.HandleInput(engine.AdvanceEvent())

	v := c.View()
	if v.SelectedLevel != 2 {
		t.Errorf("level = %d, want 2 (clamped)", v.SelectedLevel)
	}
	if v.Victory {
		t.Error("advance should start a fresh session")
	}
	if v.Player != engine.C(3, 0) || !v.HasCrate(engine.C(2, 0)) {
		t.Errorf("expected initial layout, player=%v crates=%v", v.Player, v.Crates)
	}
}

func TestControllerReset(t *testing.T) {
	m, _ := engine.ParseMap([]string{"#----X#"})
	big, err := engine.NewCatalog([]engine.LevelDefinition{
		{Map: m, Player: engine.C(1, 0), Crates: []engine.Coord{engine.C(3, 0)}},
	})
	if err != nil {
		t.Fatal(err)
	}

	c := engine.NewController(big, 1)
	c.HandleInput(engine.MoveEvent(engine.DirRight))
	c.HandleInput(engine.MoveEvent(engine.DirRight))

	v := c.View()
	if v.Player != engine.C(3, 0) || !v.HasCrate(engine.C(4, 0)) {
		t.Fatalf("setup failed: player=%v crates=%v", v.Player, v.Crates)
	}

	if !c.HandleInput(engine.ResetEvent()) {
		t.Fatal("reset should be handled")
	}

	v = c.View()
	if v.Player != engine.C(1, 0) {
		t.Errorf("player = %v, want (1,0)", v.Player)
	}
	if len(v.Crates) != 1 || v.Crates[0] != engine.C(3, 0) {
		t.Errorf("crates = %v, want [(3,0)]", v.Crates)
	}
	if v.Facing != engine.DirDown {
		t.Errorf("facing = %v, want down", v.Facing)
	}
	if v.SelectedLevel != 1 {
		t.Errorf("level = %d, want 1", v.SelectedLevel)
	}
}

func TestControllerQuit(t *testing.T) {
	c := engine.NewController(newCatalog(t), 1)

	if !c.HandleInput(engine.QuitEvent()) {
		t.Fatal("quit should be handled")
	}
	if c.State().Running {
		t.Error("Running should be false after quit")
	}
	if c.HandleInput(engine.MoveEvent(engine.DirRight)) {
		t.Error("input after quit should be ignored")
	}
	if c.View().Player != engine.C(1, 0) {
		t.Error("move applied after quit")
	}
}

func TestControllerQuitDuringVictory(t *testing.T) {
	c := engine.NewController(newCatalog(t), 1)
	c.HandleInput(engine.MoveEvent(engine.DirRight))

	if !c.HandleInput(engine.QuitEvent()) {
		t.Fatal("quit should be handled in victory")
	}
	if c.State().Running {
		t.Error("Running should be false after quit")
	}
}

func TestControllerVictoryStaysUntilChange(t *testing.T) {
	c := engine.NewController(newCatalog(t), 1)
	c.HandleInput(engine.MoveEvent(engine.DirRight))

	for i := 0; i < 3; i++ {
		c.HandleInput(engine.MoveEvent(engine.DirLeft))
		if !c.View().Victory {
			t.Fatalf("victory lost after ignored input %d", i)
		}
	}
}

func TestControllerFacingOnBlockedMove(t *testing.T) {
	c := engine.NewController(newCatalog(t), 1)

	c.HandleInput(engine.MoveEvent(engine.DirUp))

	v := c.View()
	if v.Facing != engine.DirUp {
		t.Errorf("facing = %v, want up", v.Facing)
	}
	if v.Player != engine.C(1, 0) {
		t.Errorf("player moved into wall: %v", v.Player)
	}
	if r := c.LastMove(); r.Moved || r.Pushed {
		t.Errorf("LastMove() = %+v, want no change", r)
	}
}

func TestViewIsACopy(t *testing.T) {
	c := engine.NewController(newCatalog(t), 1)

	v := c.View()
	v.Crates[0] = engine.C(0, 0)
	v.Map[0][1] = engine.CellWall

	again := c.View()
	if again.Crates[0] != engine.C(2, 0) {
		t.Errorf("crates changed through view: %v", again.Crates)
	}
	if again.Map.At(engine.C(1, 0)) != engine.CellFloor {
		t.Error("map changed through view")
	}
}

func TestControllerLevelWithoutTargets(t *testing.T) {
	m, err := engine.ParseMap([]string{"#---#"})
	if err != nil {
		t.Fatal(err)
	}
	cat, err := engine.NewCatalog([]engine.LevelDefinition{{Map: m, Player: engine.C(1, 0)}})
	if err != nil {
		t.Fatalf("NewCatalog rejected a level without targets: %v", err)
	}

	ctrl := engine.NewController(cat, 1)
	if ctrl.State().Victory {
		t.Fatal("victory is only checked after a move")
	}
	ctrl.HandleInput(engine.MoveEvent(engine.DirRight))
	if !ctrl.State().Victory {
		t.Error("first move on a level without targets should win")
	}
}
