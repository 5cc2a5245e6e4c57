package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

// Cell width bounds.
const (
	MinCellWidth = 1
	MaxCellWidth = 3
)

// DefaultGlyphs returns the built-in glyph set.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Wall:          "#",
		Floor:         " ",
		Target:        ".",
		Crate:         "$",
		CrateOnTarget: "*",
		PlayerUp:      "^",
		PlayerDown:    "v",
		PlayerLeft:    "<",
		PlayerRight:   ">",
	}
}

// DefaultSokobanConfig returns the default configuration.
func DefaultSokobanConfig() SokobanConfig {
	return SokobanConfig{
		Levels: LevelsConfig{
			StartLevel: 1,
		},
		Display: DisplayConfig{
			Glyphs:    DefaultGlyphs(),
			CellWidth: 2,
		},
	}
}
