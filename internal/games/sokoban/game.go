// Package sokoban adapts the puzzle engine to the platform Game interface:
// it maps input frames to engine events and draws the board onto a core.Screen.
package sokoban

import (
	"sync"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "sokoban"

// Options configures a game instance.
type Options struct {
	Catalog *engine.Catalog      // nil selects the embedded pack
	Display config.DisplayConfig // zero value selects the default display
}

// Game implements registry.Game for Sokoban.
type Game struct {
	catalog *engine.Catalog
	display config.DisplayConfig
	ctrl    *engine.Controller
}

// Package-level defaults used by the registry factory.
var (
	defaultsMu sync.RWMutex
	defaults   Options
)

// Configure sets the options used by games created through the registry.
func Configure(opts Options) {
	defaultsMu.Lock()
	defaults = opts
	defaultsMu.Unlock()
}

// embeddedCatalog loads the built-in pack once.
var embeddedCatalog = sync.OnceValues(func() (*engine.Catalog, error) {
	return levels.Load("")
})

// New creates a game with the given options.
// It panics if opts.Catalog is nil and the embedded pack cannot be loaded.
func New(opts Options) *Game {
	cat := opts.Catalog
	if cat == nil {
		var err error
		if cat, err = embeddedCatalog(); err != nil {
			panic("sokoban: embedded level pack: " + err.Error())
		}
	}
	return &Game{
		catalog: cat,
		display: opts.Display.Normalized(),
	}
}

func init() {
	registry.Register(ID, func() registry.Game {
		defaultsMu.RLock()
		opts := defaults
		defaultsMu.RUnlock()
		return New(opts)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sokoban"
}

// Reset starts a fresh game on cfg.StartLevel.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ctrl = engine.NewController(g.catalog, cfg.StartLevel)
}

// Step applies at most one action from the frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ensureStarted()

	var res core.StepResult
	if ev, ok := eventFor(in); ok {
		res.Changed = g.ctrl.HandleInput(ev)
		if res.Changed && ev.Kind == engine.EventMove {
			last := g.ctrl.LastMove()
			res.Moved = last.Moved
			res.Pushed = last.Pushed
		}
	}
	res.State = g.State()
	return res
}

// State returns the current game status.
func (g *Game) State() core.GameState {
	g.ensureStarted()
	st := g.ctrl.State()
	return core.GameState{
		Level:      st.SelectedLevel,
		LevelCount: g.catalog.Count(),
		Solved:     st.Victory,
		GameOver:   !st.Running,
	}
}

// View returns the engine snapshot of the current session.
func (g *Game) View() engine.View {
	g.ensureStarted()
	return g.ctrl.View()
}

// Catalog returns the levels this game plays.
func (g *Game) Catalog() *engine.Catalog {
	return g.catalog
}

// ensureStarted lazily starts on level 1 when Reset was never called.
func (g *Game) ensureStarted() {
	if g.ctrl == nil {
		g.Reset(core.DefaultConfig())
	}
}

// eventFor picks the event for a frame. Quit wins over everything else,
// then reset, advance and the four moves in a fixed order.
func eventFor(in core.InputFrame) (engine.Event, bool) {
	if in.Empty() {
		return engine.Event{}, false
	}
	switch {
	case in.Has(core.ActionQuit):
		return engine.QuitEvent(), true
	case in.Has(core.ActionRestart):
		return engine.ResetEvent(), true
	case in.Has(core.ActionConfirm):
		return engine.AdvanceEvent(), true
	case in.Has(core.ActionUp):
		return engine.MoveEvent(engine.DirUp), true
	case in.Has(core.ActionDown):
		return engine.MoveEvent(engine.DirDown), true
	case in.Has(core.ActionLeft):
		return engine.MoveEvent(engine.DirLeft), true
	case in.Has(core.ActionRight):
		return engine.MoveEvent(engine.DirRight), true
	}
	return engine.Event{}, false
}

// MoveAction returns the input action that moves the player in direction d.
func MoveAction(d engine.Dir) core.Action {
	switch d {
	case engine.DirUp:
		return core.ActionUp
	case engine.DirDown:
		return core.ActionDown
	case engine.DirLeft:
		return core.ActionLeft
	case engine.DirRight:
		return core.ActionRight
	}
	return core.ActionNone
}
