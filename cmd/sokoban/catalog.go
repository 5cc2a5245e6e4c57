package main

import (
	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// Level source flags shared by play, levels, serve and mcp.
var (
	flagLevels string
	flagPack   string
	flagLevel  int
)

// loadConfig loads the config file and applies the level source flags.
func loadConfig() (config.SokobanConfig, error) {
	cfg, err := config.LoadSokoban(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.Overrides{
		LevelsPath: flagLevels,
		Pack:       flagPack,
		StartLevel: flagLevel,
	}.Apply(&cfg)
	return cfg, nil
}

// loadCatalog resolves the configured level source. A pack that cannot be
// read from the library falls back to the embedded pack with a warning;
// an explicit --pack flag makes the failure an error.
func loadCatalog(cfg config.SokobanConfig) (*engine.Catalog, error) {
	if cfg.Levels.Pack == "" {
		logger.Debug("loading levels", "source", describeSource(cfg.Levels.Path))
		return levels.Load(cfg.Levels.Path)
	}

	cat, err := loadPack(cfg.Levels.Pack)
	if err == nil {
		return cat, nil
	}
	if flagPack != "" {
		return nil, err
	}
	logger.Warn("level pack unavailable, using embedded levels", "pack", cfg.Levels.Pack, "err", err)
	return levels.Load("")
}

func loadPack(name string) (*engine.Catalog, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	logger.Debug("loading levels", "pack", name, "db", flagDBPath)
	return levels.LoadPack(store, name)
}

func describeSource(path string) string {
	if path == "" {
		return "embedded " + levels.DefaultSource
	}
	return path
}
