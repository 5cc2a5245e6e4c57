package engine

import "fmt"

// Phase is the controller state.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseVictory
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// EventKind identifies an input event.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventMove
	EventReset
	EventAdvance
	EventQuit
)

// Event is one input delivered to the controller.
type Event struct {
	Kind EventKind
	Dir  Dir // Only meaningful for EventMove
}

// MoveEvent returns a move request in direction d.
func MoveEvent(d Dir) Event { return Event{Kind: EventMove, Dir: d} }

// ResetEvent returns a request to restart the current level.
func ResetEvent() Event { return Event{Kind: EventReset} }

// AdvanceEvent returns a request to continue after a victory.
func AdvanceEvent() Event { return Event{Kind: EventAdvance} }

// QuitEvent returns a request to end the game.
func QuitEvent() Event { return Event{Kind: EventQuit} }

// GameState is the process-wide game status.
type GameState struct {
	SelectedLevel int // 1-based
	Victory       bool
	Running       bool
}

// View is a read-only snapshot of the controller for renderers.
// Its slices are copies and may be kept or modified freely.
type View struct {
	Map           Map
	Player        Coord
	Crates        []Coord
	Facing        Dir
	Victory       bool
	Running       bool
	SelectedLevel int
	LevelCount    int
	LevelName     string
}

// HasCrate reports whether the snapshot has a crate at c.
func (v View) HasCrate(c Coord) bool {
	for _, crate := range v.Crates {
		if crate == c {
			return true
		}
	}
	return false
}

// Controller drives one game: it owns the active session and applies
// inputs to it one transition at a time. It is not safe for concurrent use.
type Controller struct {
	catalog *Catalog
	session *Session
	state   GameState
	last    MoveResult
}

// NewController starts a game on the given 1-based level.
// The start level is clamped to the catalog range.
func NewController(catalog *Catalog, startLevel int) *Controller {
	if startLevel < 1 {
		startLevel = 1
	}
	if startLevel > catalog.Count() {
		startLevel = catalog.Count()
	}

	c := &Controller{
		catalog: catalog,
		state: GameState{
			SelectedLevel: startLevel,
			Running:       true,
		},
	}
	c.loadSession()
	return c
}

// loadSession replaces the active session with a fresh copy of the
// selected level.
func (c *Controller) loadSession() {
	def, err := c.catalog.Get(c.state.SelectedLevel)
	if err != nil {
		// SelectedLevel is kept inside [1, Count] by construction.
		panic(fmt.Sprintf("engine: %v", err))
	}
	c.session = NewSession(def)
	c.state.Victory = false
	c.last = MoveResult{}
}

// HandleInput applies one event and reports whether it changed anything.
// Events that are not valid in the current phase are ignored.
func (c *Controller) HandleInput(ev Event) bool {
	if !c.state.Running {
		return false
	}

	switch ev.Kind {
	case EventQuit:
		c.state.Running = false
		return true

	case EventMove:
		if c.state.Victory {
			return false
		}
		c.last = Move(c.session, ev.Dir)
		c.state.Victory = IsVictory(c.session)
		return true

	case EventReset:
		if c.state.Victory {
			return false
		}
		c.loadSession()
		return true

	case EventAdvance:
		if !c.state.Victory {
			return false
		}
		if c.state.SelectedLevel < c.catalog.Count() {
			c.state.SelectedLevel++
		}
		c.loadSession()
		return true
	}

	return false
}

// Phase returns the current controller state.
func (c *Controller) Phase() Phase {
	if c.state.Victory {
		return PhaseVictory
	}
	return PhasePlaying
}

// State returns the current game status.
func (c *Controller) State() GameState {
	return c.state
}

// LastMove returns the result of the most recent move in this session.
func (c *Controller) LastMove() MoveResult {
	return c.last
}

// Catalog returns the catalog the controller plays from.
func (c *Controller) Catalog() *Catalog {
	return c.catalog
}

// View returns a snapshot of the current session and status.
func (c *Controller) View() View {
	names := c.catalog.Names()
	return View{
		Map:           c.session.Map.Clone(),
		Player:        c.session.Player,
		Crates:        c.session.Crates.Slice(),
		Facing:        c.session.Facing,
		Victory:       c.state.Victory,
		Running:       c.state.Running,
		SelectedLevel: c.state.SelectedLevel,
		LevelCount:    c.catalog.Count(),
		LevelName:     names[c.state.SelectedLevel-1],
	}
}
