package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/platform/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the game as MCP tools on stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout so an AI agent
can play. All clients share one game.

Tools:
  view     - Board and level status
  move     - Move by direction, or a sequence of steps ("UURRD", "up,up,right")
  reset    - Restart the current level
  advance  - Next level after a victory
  levels   - List the catalog

Logs go to stderr; stdout carries the protocol.

Example client config:
  {"command": "sokoban", "args": ["mcp", "--pack", "classic"]}`,
	Args: cobra.NoArgs,
	Run:  runMCP,
}

func init() {
	addSourceFlags(mcpCmd)
	mcpCmd.Flags().IntVar(&flagLevel, "level", 0, "1-based level to start on (default from config)")
}

func runMCP(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		fatal("%v", err)
	}

	server := mcp.NewServer(catalog, cfg.Levels.StartLevel, logger.WithPrefix("sokoban-mcp"))
	if err := server.ServeStdio(); err != nil {
		fatal("mcp server: %v", err)
	}
}
