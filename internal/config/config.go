// Package config provides YAML-based configuration loading for the
// Sokoban game and its level sources.
package config

// SokobanConfig contains all configuration for the game.
type SokobanConfig struct {
	Levels  LevelsConfig  `yaml:"levels"`
	Display DisplayConfig `yaml:"display"`
}

// LevelsConfig selects the level catalog and the starting level.
type LevelsConfig struct {
	Path       string `yaml:"path"`        // File or directory; empty = embedded pack
	Pack       string `yaml:"pack"`        // Level library pack; overrides Path when set
	StartLevel int    `yaml:"start_level"` // 1-based
}

// DisplayConfig controls how the board is drawn.
type DisplayConfig struct {
	Glyphs    Glyphs `yaml:"glyphs"`
	CellWidth int    `yaml:"cell_width"` // Terminal columns per board cell, 1..3
}

// Glyphs holds the character drawn for each board element.
// Only the first rune of each value is used.
type Glyphs struct {
	Wall          string `yaml:"wall"`
	Floor         string `yaml:"floor"`
	Target        string `yaml:"target"`
	Crate         string `yaml:"crate"`
	CrateOnTarget string `yaml:"crate_on_target"`
	PlayerUp      string `yaml:"player_up"`
	PlayerDown    string `yaml:"player_down"`
	PlayerLeft    string `yaml:"player_left"`
	PlayerRight   string `yaml:"player_right"`
}

// Overrides carries command-line values that take precedence over the file.
// Zero values leave the file value untouched.
type Overrides struct {
	LevelsPath string
	Pack       string
	StartLevel int
}

// Apply merges the overrides into the config.
// Selecting a path clears a pack from the file and vice versa.
func (o Overrides) Apply(cfg *SokobanConfig) {
	if o.LevelsPath != "" {
		cfg.Levels.Path = o.LevelsPath
		cfg.Levels.Pack = ""
	}
	if o.Pack != "" {
		cfg.Levels.Pack = o.Pack
		cfg.Levels.Path = ""
	}
	if o.StartLevel > 0 {
		cfg.Levels.StartLevel = o.StartLevel
	}
}
