// Package mcp exposes a Sokoban game as Model Context Protocol tools.
//
// One game is shared by every client of the server and is guarded by
// a mutex, so each tool call is applied as a whole. The tools are:
//   - view: the board as text plus status lines
//   - move: one direction, or a sequence of steps such as "UURRD"
//   - reset: restart the current level
//   - advance: continue to the next level after a victory
//   - levels: list the levels of the catalog
//
// The server speaks MCP over stdio; all logging goes to stderr.
package mcp
