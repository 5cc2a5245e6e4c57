// sokoban is a terminal Sokoban game.
//
// Usage:
//
//	sokoban play                 - Play the level catalog
//	sokoban levels               - List the levels of a catalog
//	sokoban import <file>        - Store a level file in the level library
//	sokoban packs                - List packs in the level library
//	sokoban serve                - Start SSH server for remote play
//	sokoban mcp                  - Serve the game as MCP tools on stdio
//
// Global flags:
//
//	--db <path>         - Level library path (default: ~/.sokoban/levels.db)
//	--config <path>     - Config file (default: search ~/.sokoban/configs, ./configs)
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

var (
	// Global flags
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

// logger writes to stderr so it never mixes with the TUI or the MCP stream.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "sokoban",
	ReportTimestamp: true,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push crates onto targets in your terminal",
	Long: `Sokoban is a terminal puzzle game: push every crate onto a target.

Available commands:
  play     - Play a level catalog
  levels   - List or print the levels of a catalog
  import   - Store a level file in the level library
  packs    - Manage packs in the level library
  serve    - Start SSH server for remote play
  mcp      - Serve the game as MCP tools on stdio

Examples:
  sokoban play
  sokoban play --levels ./my-levels --level 3
  sokoban import ./classic.txt --name classic
  sokoban play --pack classic
  sokoban serve --ssh :2222`,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sokoban/levels.db", "Path to level library database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(packsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return nil
}

// fatal prints an error in the CLI format and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
