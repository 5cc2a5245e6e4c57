package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// FileName is the config file name looked up in the config directories.
const FileName = "sokoban.yaml"

// LoadSokoban loads the game configuration.
// Search order: customPath -> ~/.sokoban/configs/sokoban.yaml -> ./configs/sokoban.yaml -> embedded default
// The result is always normalized.
func LoadSokoban(customPath string) (SokobanConfig, error) {
	cfg := DefaultSokobanConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg.Normalize(), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if parsed, ok := tryFile(userCfgPath); ok {
			return parsed, nil
		}
	}

	// Try local configs directory
	if parsed, ok := tryFile(filepath.Join("configs", FileName)); ok {
		return parsed, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSokobanYAML, &cfg); err != nil {
		return DefaultSokobanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.Normalize(), nil
}

// tryFile reads and parses path, reporting false when it is absent or invalid.
func tryFile(path string) (SokobanConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SokobanConfig{}, false
	}
	cfg := DefaultSokobanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SokobanConfig{}, false
	}
	return cfg.Normalize(), true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sokoban", "configs", filename)
}

// Normalize clamps numeric settings and fills empty glyphs from the defaults.
func (c SokobanConfig) Normalize() SokobanConfig {
	if c.Levels.StartLevel < 1 {
		c.Levels.StartLevel = 1
	}
	c.Display = c.Display.Normalized()
	return c
}

// Normalized returns the display settings with the cell width clamped and
// empty glyphs filled from the defaults.
func (d DisplayConfig) Normalized() DisplayConfig {
	if d.CellWidth == 0 {
		d.CellWidth = DefaultSokobanConfig().Display.CellWidth
	}
	d.CellWidth = core.Clamp(d.CellWidth, MinCellWidth, MaxCellWidth)

	def := DefaultGlyphs()
	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	g := &d.Glyphs
	fill(&g.Wall, def.Wall)
	fill(&g.Floor, def.Floor)
	fill(&g.Target, def.Target)
	fill(&g.Crate, def.Crate)
	fill(&g.CrateOnTarget, def.CrateOnTarget)
	fill(&g.PlayerUp, def.PlayerUp)
	fill(&g.PlayerDown, def.PlayerDown)
	fill(&g.PlayerLeft, def.PlayerLeft)
	fill(&g.PlayerRight, def.PlayerRight)
	return d
}
