package engine

import (
	"errors"
	"fmt"
)

// LevelDefinition is the immutable starting layout of one level.
type LevelDefinition struct {
	Name   string
	Map    Map
	Player Coord
	Crates []Coord
}

// Clone returns a deep copy of the definition.
func (d LevelDefinition) Clone() LevelDefinition {
	return LevelDefinition{
		Name:   d.Name,
		Map:    d.Map.Clone(),
		Player: d.Player,
		Crates: append([]Coord(nil), d.Crates...),
	}
}

// Validate checks the level invariants: a non-empty map, the player and
// every crate on a walkable cell, no duplicate crates and no crate under
// the player. A map without targets is valid; it is solved by any move.
func (d LevelDefinition) Validate() error {
	if d.Map.Height() == 0 || d.Map.Width() == 0 {
		return errors.New("empty map")
	}
	if !d.Map.At(d.Player).Walkable() {
		return fmt.Errorf("player %v is not on a floor or target cell", d.Player)
	}

	seen := make(map[Coord]bool, len(d.Crates))
	for _, c := range d.Crates {
		if seen[c] {
			return fmt.Errorf("duplicate crate at %v", c)
		}
		seen[c] = true
		if !d.Map.At(c).Walkable() {
			return fmt.Errorf("crate %v is not on a floor or target cell", c)
		}
		if c == d.Player {
			return fmt.Errorf("crate %v overlaps the player", c)
		}
	}
	return nil
}
