package engine

import "fmt"

// Catalog is the ordered, read-only collection of level definitions,
// indexed from 1.
type Catalog struct {
	levels []LevelDefinition
}

// NewCatalog validates the definitions and returns a catalog holding
// private copies of them.
func NewCatalog(defs []LevelDefinition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, ErrNoLevels
	}

	levels := make([]LevelDefinition, len(defs))
	for i, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, &MalformedLevelError{Level: i + 1, Reason: err.Error()}
		}
		levels[i] = def.Clone()
	}
	return &Catalog{levels: levels}, nil
}

// Count returns the number of levels.
func (c *Catalog) Count() int {
	return len(c.levels)
}

// Get returns a copy of the level at the 1-based index.
func (c *Catalog) Get(index int) (LevelDefinition, error) {
	if index < 1 || index > len(c.levels) {
		return LevelDefinition{}, fmt.Errorf("%w: %d not in [1, %d]", ErrIndexOutOfRange, index, len(c.levels))
	}
	return c.levels[index-1].Clone(), nil
}

// Names returns the display name of every level. Unnamed levels are
// reported as "Level N".
func (c *Catalog) Names() []string {
	names := make([]string, len(c.levels))
	for i, lvl := range c.levels {
		names[i] = lvl.Name
		if names[i] == "" {
			names[i] = fmt.Sprintf("Level %d", i+1)
		}
	}
	return names
}

// All returns copies of every definition in order.
func (c *Catalog) All() []LevelDefinition {
	out := make([]LevelDefinition, len(c.levels))
	for i, lvl := range c.levels {
		out[i] = lvl.Clone()
	}
	return out
}
