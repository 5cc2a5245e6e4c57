package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
)

var flagPick bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Sokoban",
	Long: `Start playing a level catalog.

Controls:
  Arrows/WASD/hjkl - Move (push crates by walking into them)
  Enter            - Next level (after a level is complete)
  R/Esc            - Restart the level
  B                - Back to the level picker
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Level sources:
  (default)        - The embedded level pack
  --levels <path>  - A level file (.txt, .lvl, .yaml) or a directory of them
  --pack <name>    - A pack stored with 'sokoban import'

Examples:
  sokoban play
  sokoban play --level 3
  sokoban play --levels ./levels --pick
  sokoban play --pack classic`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addSourceFlags(playCmd)
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "1-based level to start on (default from config)")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Start in the level picker")
}

// addSourceFlags registers the level source flags on cmd.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLevels, "levels", "", "Level file or directory")
	cmd.Flags().StringVar(&flagPack, "pack", "", "Level pack from the library")
	cmd.MarkFlagsMutuallyExclusive("levels", "pack")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		fatal("%v", err)
	}

	// Games created by the registry play this catalog
	sokoban.Configure(sokoban.Options{
		Catalog: catalog,
		Display: cfg.Display,
	})

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runCfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		StartLevel: cfg.Levels.StartLevel,
	}
	logger.Debug("starting game", "levels", catalog.Count(), "start", runCfg.StartLevel)

	if err := tui.Run(sokoban.ID, catalog, runCfg, flagPick); err != nil {
		fatal("running game: %v", err)
	}
}
