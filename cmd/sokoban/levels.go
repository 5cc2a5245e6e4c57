package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels/formats"
)

var (
	flagPrint  bool
	flagFormat string
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of a catalog",
	Long: `Load a level catalog and list its levels, or print it in a level file format.

Loading validates every level, so this is also a quick way to check a file.

Examples:
  sokoban levels
  sokoban levels --levels ./my-levels.txt
  sokoban levels --pack classic --print
  sokoban levels --print --format yaml > pack.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	addSourceFlags(levelsCmd)
	levelsCmd.Flags().BoolVar(&flagPrint, "print", false, "Print the levels instead of listing them")
	levelsCmd.Flags().StringVar(&flagFormat, "format", "text", "Print format: text or yaml")
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		fatal("%v", err)
	}

	if flagPrint {
		var out []byte
		switch flagFormat {
		case "text":
			out = levels.Encode(catalog.All())
		case "yaml":
			name := cfg.Levels.Pack
			if name == "" {
				name = describeSource(cfg.Levels.Path)
			}
			if out, err = formats.EncodeYAML(name, catalog.All()); err != nil {
				fatal("encoding levels: %v", err)
			}
		default:
			fatal("unknown format %q (want text or yaml)", flagFormat)
		}
		os.Stdout.Write(out)
		return
	}

	names := catalog.Names()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, n := range names {
		maxNameLen = max(maxNameLen, len(n))
	}

	fmt.Printf("%d levels\n\n", catalog.Count())
	fmt.Printf("  %-3s  %-*s  %-7s  %s\n", "#", maxNameLen, "Name", "Size", "Crates")
	fmt.Printf("  %-3s  %-*s  %-7s  %s\n", "-", maxNameLen, "----", "----", "------")

	for i, def := range catalog.All() {
		size := fmt.Sprintf("%dx%d", def.Map.Width(), def.Map.Height())
		fmt.Printf("  %-3d  %-*s  %-7s  %d\n", i+1, maxNameLen, names[i], size, len(def.Crates))
	}
}
