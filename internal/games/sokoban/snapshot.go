package sokoban

import (
	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying GameStateType = "playing"
	StateVictory GameStateType = "victory"
	StateQuit    GameStateType = "quit"
)

// Snapshot is a plain-data copy of the game state, used by the MCP tools
// and by determinism tests.
type Snapshot struct {
	Level      int // 1-based
	LevelCount int
	LevelName  string
	State      GameStateType
	Player     engine.Coord
	Facing     string
	Crates     []engine.Coord // row-major order
	OnTarget   int            // crates resting on targets
	Targets    int
	Board      []string // default glyphs, one rune per cell
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	v := g.View()

	state := StatePlaying
	switch {
	case !v.Running:
		state = StateQuit
	case v.Victory:
		state = StateVictory
	}

	onTarget := 0
	for _, c := range v.Crates {
		if v.Map.At(c) == engine.CellTarget {
			onTarget++
		}
	}

	return Snapshot{
		Level:      v.SelectedLevel,
		LevelCount: v.LevelCount,
		LevelName:  v.LevelName,
		State:      state,
		Player:     v.Player,
		Facing:     v.Facing.String(),
		Crates:     v.Crates,
		OnTarget:   onTarget,
		Targets:    len(v.Map.Targets()),
		Board:      BoardLines(v, config.DefaultGlyphs()),
	}
}
