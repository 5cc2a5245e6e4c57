package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// An unreadable home and no ./configs directory fall through to the embed.
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadSokoban("")
	if err != nil {
		t.Fatalf("LoadSokoban failed: %v", err)
	}
	if cfg != DefaultSokobanConfig() {
		t.Errorf("embedded config %+v differs from DefaultSokobanConfig %+v", cfg, DefaultSokobanConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
levels:
  path: ./mylevels
  start_level: 3
display:
  cell_width: 9
  glyphs:
    crate: "@"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSokoban(path)
	if err != nil {
		t.Fatalf("LoadSokoban failed: %v", err)
	}
	if cfg.Levels.Path != "./mylevels" || cfg.Levels.StartLevel != 3 {
		t.Errorf("unexpected levels config: %+v", cfg.Levels)
	}
	if cfg.Display.CellWidth != MaxCellWidth {
		t.Errorf("cell_width should clamp to %d, got %d", MaxCellWidth, cfg.Display.CellWidth)
	}
	if cfg.Display.Glyphs.Crate != "@" {
		t.Errorf("crate glyph = %q, want @", cfg.Display.Glyphs.Crate)
	}
	if cfg.Display.Glyphs.Wall != "#" {
		t.Errorf("unset glyphs should keep defaults, wall = %q", cfg.Display.Glyphs.Wall)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadSokoban(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("levels: [unclosed"), 0o644)
	if _, err := LoadSokoban(bad); err == nil {
		t.Error("expected error for invalid custom config")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	local := filepath.Join(work, "configs")
	os.MkdirAll(local, 0o755)
	os.WriteFile(filepath.Join(local, FileName), []byte("levels:\n  start_level: 2\n"), 0o644)

	cfg, _ := LoadSokoban("")
	if cfg.Levels.StartLevel != 2 {
		t.Errorf("expected ./configs to be used, start_level = %d", cfg.Levels.StartLevel)
	}

	user := filepath.Join(home, ".sokoban", "configs")
	os.MkdirAll(user, 0o755)
	os.WriteFile(filepath.Join(user, FileName), []byte("levels:\n  start_level: 4\n"), 0o644)

	cfg, _ = LoadSokoban("")
	if cfg.Levels.StartLevel != 4 {
		t.Errorf("expected user config to win, start_level = %d", cfg.Levels.StartLevel)
	}

	// An invalid user file falls through to ./configs
	os.WriteFile(filepath.Join(user, FileName), []byte("levels: [oops"), 0o644)
	cfg, _ = LoadSokoban("")
	if cfg.Levels.StartLevel != 2 {
		t.Errorf("invalid user config should be skipped, start_level = %d", cfg.Levels.StartLevel)
	}
}

func TestNormalize(t *testing.T) {
	cfg := SokobanConfig{}.Normalize()
	if cfg.Display.CellWidth != 2 {
		t.Errorf("zero cell_width should default to 2, got %d", cfg.Display.CellWidth)
	}
	if cfg.Levels.StartLevel != 1 {
		t.Errorf("start_level should be at least 1, got %d", cfg.Levels.StartLevel)
	}
	if cfg.Display.Glyphs != DefaultGlyphs() {
		t.Errorf("empty glyphs should be filled: %+v", cfg.Display.Glyphs)
	}

	cfg = SokobanConfig{Display: DisplayConfig{CellWidth: -4}}.Normalize()
	if cfg.Display.CellWidth != MinCellWidth {
		t.Errorf("negative cell_width should clamp to %d, got %d", MinCellWidth, cfg.Display.CellWidth)
	}
}

func TestOverridesApply(t *testing.T) {
	cfg := DefaultSokobanConfig()
	cfg.Levels.Pack = "classic"

	Overrides{LevelsPath: "levels/", StartLevel: 5}.Apply(&cfg)
	if cfg.Levels.Path != "levels/" || cfg.Levels.Pack != "" || cfg.Levels.StartLevel != 5 {
		t.Errorf("path override not applied: %+v", cfg.Levels)
	}

	Overrides{Pack: "mine"}.Apply(&cfg)
	if cfg.Levels.Pack != "mine" || cfg.Levels.Path != "" || cfg.Levels.StartLevel != 5 {
		t.Errorf("pack override not applied: %+v", cfg.Levels)
	}
}
