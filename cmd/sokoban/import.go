package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var flagPackName string

var importCmd = &cobra.Command{
	Use:   "import <file|dir>",
	Short: "Store levels in the level library",
	Long: `Validate a level file (or a directory of level files) and store it
as a named pack in the level library. An existing pack with the same
name is replaced.

The pack name defaults to the file name without its extension.

Examples:
  sokoban import ./classic.txt
  sokoban import ./microban.yaml --name microban
  sokoban play --pack microban`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&flagPackName, "name", "", "Pack name (default: file name)")
}

func runImport(_ *cobra.Command, args []string) {
	path := args[0]

	name := flagPackName
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening level library: %v", err)
	}
	defer store.Close()

	count, err := levels.ImportPack(store, name, path)
	if err != nil {
		store.Close()
		fatal("importing %s: %v", path, err)
	}

	logger.Info("imported pack", "name", name, "levels", count, "db", flagDBPath)
	fmt.Printf("Imported %d levels as pack %q\n", count, name)
	fmt.Printf("Run 'sokoban play --pack %s' to play them.\n", name)
}
