package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
)

const (
	serverName    = "Sokoban"
	serverVersion = "1.0.0"
)

var directionEnum = []string{"up", "down", "left", "right"}

// Server serves one shared game over MCP.
type Server struct {
	mu        sync.Mutex
	game      *sokoban.Game
	logger    *log.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a server playing the catalog from startLevel.
// A nil logger logs to stderr.
func NewServer(catalog *engine.Catalog, startLevel int, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "sokoban-mcp"})
	}
	game := sokoban.New(sokoban.Options{Catalog: catalog})
	game.Reset(core.RuntimeConfig{StartLevel: startLevel})

	s := &Server{
		game:   game,
		logger: logger,
	}
	s.initMCPServer()
	return s
}

// initMCPServer creates the MCP server and registers the tools.
func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Sokoban - push every crate onto a target.

Symbols in the board returned by the tools:
  # wall   . target   $ crate   * crate on target
  ^ v < > the player, facing that way

The player moves one cell per step and can push a single crate into a free
cell. Crates cannot be pulled. When every target holds a crate the level is
complete: call advance to continue. Call reset to restart a stuck level.`),
	)
	s.registerTools()
}

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "view",
		Description: "Show the current board and level status",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleView)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Move the player. Give a single direction, or steps such as \"UURRD\" or \"up,up,right\" applied one at a time",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        directionEnum,
					"description": "Direction to move",
				},
				"steps": map[string]interface{}{
					"type":        "string",
					"description": "Sequence of moves: letters U/D/L/R or comma separated direction names",
				},
			},
		},
	}, s.handleMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "reset",
		Description: "Restart the current level",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleReset)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "advance",
		Description: "Continue to the next level after the current one is complete",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleAdvance)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "levels",
		Description: "List the levels of the catalog",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleLevels)
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves MCP over stdin/stdout until the input is closed.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP on stdio", "level", s.game.State().Level)
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) handleView(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return mcp.NewToolResultText(s.formatView()), nil
}

func (s *Server) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	direction, _ := args["direction"].(string)
	steps, _ := args["steps"].(string)

	var dirs []engine.Dir
	switch {
	case strings.TrimSpace(steps) != "":
		parsed, err := ParseSteps(steps)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dirs = parsed
	case direction != "":
		d, err := engine.ParseDir(direction)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dirs = []engine.Dir{d}
	default:
		return mcp.NewToolResultError("either direction or steps is required"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.State().Solved {
		return mcp.NewToolResultError("level is complete; call advance to continue\n\n" + s.formatView()), nil
	}

	applied, moved, pushed := 0, 0, 0
	for _, d := range dirs {
		if s.game.State().Solved {
			break
		}
		res := s.game.Step(core.FrameOf(sokoban.MoveAction(d)))
		applied++
		if res.Moved {
			moved++
		}
		if res.Pushed {
			pushed++
		}
	}
	s.logger.Debug("move", "steps", len(dirs), "applied", applied, "moved", moved, "pushed", pushed)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Applied %d of %d step(s): %d moved, %d pushed, %d blocked\n",
		applied, len(dirs), moved, pushed, applied-moved)
	if applied < len(dirs) {
		sb.WriteString("Remaining steps were skipped because the level is complete\n")
	}
	sb.WriteString("\n")
	sb.WriteString(s.formatView())
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.game.Step(core.FrameOf(core.ActionRestart)).Changed {
		return mcp.NewToolResultError("level is complete; call advance to continue"), nil
	}
	s.logger.Debug("reset", "level", s.game.State().Level)
	return mcp.NewToolResultText("Level restarted\n\n" + s.formatView()), nil
}

func (s *Server) handleAdvance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.game.Step(core.FrameOf(core.ActionConfirm)).Changed {
		return mcp.NewToolResultError("level is not complete yet"), nil
	}
	s.logger.Debug("advance", "level", s.game.State().Level)
	return mcp.NewToolResultText(s.formatView()), nil
}

func (s *Server) handleLevels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat := s.game.Catalog()
	current := s.game.State().Level
	names := cat.Names()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d level(s)\n", cat.Count())
	for i, def := range cat.All() {
		marker := " "
		if i+1 == current {
			marker = "*"
		}
		fmt.Fprintf(&sb, "%s %d. %s (%dx%d, %d crate(s))\n",
			marker, i+1, names[i], def.Map.Width(), def.Map.Height(), len(def.Crates))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// formatView renders status lines followed by the board. Callers hold s.mu.
func (s *Server) formatView() string {
	snap := s.game.Snapshot()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Level: %d/%d %s\n", snap.Level, snap.LevelCount, snap.LevelName)
	fmt.Fprintf(&sb, "State: %s\n", snap.State)
	fmt.Fprintf(&sb, "Player: (%d,%d) facing %s\n", snap.Player.X, snap.Player.Y, snap.Facing)
	fmt.Fprintf(&sb, "Crates on target: %d/%d\n", snap.OnTarget, snap.Targets)
	if snap.State == sokoban.StateVictory {
		sb.WriteString("Level complete! Call advance to continue\n")
	}
	sb.WriteString("\n")
	for _, line := range snap.Board {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// ParseSteps parses a move sequence. Tokens are separated by commas or
// spaces; a token is either a direction name or a run of U/D/L/R letters.
func ParseSteps(steps string) ([]engine.Dir, error) {
	fields := strings.FieldsFunc(steps, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, errors.New("no steps given")
	}

	var dirs []engine.Dir
	for _, field := range fields {
		if d, err := engine.ParseDir(field); err == nil {
			dirs = append(dirs, d)
			continue
		}
		for _, r := range field {
			d, err := engine.ParseDir(string(r))
			if err != nil {
				return nil, fmt.Errorf("invalid step %q in %q", r, field)
			}
			dirs = append(dirs, d)
		}
	}
	return dirs, nil
}
