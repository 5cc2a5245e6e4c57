package engine

// Session is the mutable working copy of one level.
type Session struct {
	Map    Map // Shared with the definition, never mutated
	Player Coord
	Crates CrateSet
	Facing Dir
}

// NewSession creates a session from a definition. The player and crates
// are copied, so moves never touch the definition. Facing starts down.
func NewSession(def LevelDefinition) *Session {
	return &Session{
		Map:    def.Map,
		Player: def.Player,
		Crates: NewCrateSet(def.Crates...),
		Facing: DirDown,
	}
}

// Clone returns an independent copy of the session.
func (s *Session) Clone() *Session {
	return &Session{
		Map:    s.Map,
		Player: s.Player,
		Crates: s.Crates.Clone(),
		Facing: s.Facing,
	}
}
