package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/wricardo/snakes-ladders/game/engine"
	"github.com/wricardo/snakes-ladders/game/service"
)

// Server exposes the game service as MCP tools
type Server struct {
	svc       service.GameService
	logger    *zap.Logger
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server backed by svc
func NewServer(svc service.GameService, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		svc:    svc,
		logger: logger,
	}
	s.initMCPServer(version)
	return s
}

// initMCPServer initializes the MCP server with all tools
func (s *Server) initMCPServer(version string) {
	s.mcpServer = server.NewMCPServer(
		"Snakes and Ladders",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Snakes and Ladders - MCP Interface

Each session holds one board. Set it up with commands, then move players with the dice sequence.

AVAILABLE TOOLS:
- create_session: Create a new session from a scenario
- list_sessions: List all active sessions
- get_session: Get session details and the rendered board
- delete_session: Remove a session
- exec_commands: Run command lines (board, players, dice, snake, ladder, powerup, move)
- move: Roll and move one player
- render_board: Show the board grid
- move_history: View past moves
- list_scenarios: List available scenarios
- game_instructions: Get the rules and command reference`),
	)

	s.registerTools()
}

func sessionIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	// Session management
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session set up by a scenario",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"scenario": map[string]interface{}{
					"type":        "string",
					"description": "Scenario ID to use (optional, see list_scenarios)",
				},
			},
		},
	}, s.handleCreateSession)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListSessions)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"format": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"text", "json"},
					"description": "text (default) or the full game state as JSON",
				},
			},
			Required: []string{"session_id"},
		},
	}, s.handleGetSession)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "delete_session",
		Description: "Delete a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, s.handleDeleteSession)

	// Game operations
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "exec_commands",
		Description: "Run command lines against a session, one command per line",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"commands": map[string]interface{}{
					"type":        "string",
					"description": "Newline separated commands, e.g. \"ladder 3 11\\nmove A\"",
				},
			},
			Required: []string{"session_id", "commands"},
		},
	}, s.handleExecCommands)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Roll the next die for a player and resolve the move",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"player": map[string]interface{}{
					"type":        "string",
					"description": "Player letter (A, B, ...)",
				},
				"times": map[string]interface{}{
					"type":        "integer",
					"description": "Number of moves (default 1)",
				},
			},
			Required: []string{"session_id", "player"},
		},
	}, s.handleMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "render_board",
		Description: "Render the board as a text grid",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, s.handleRenderBoard)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get move history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"asc", "desc"},
					"description": "Chronological (asc) or newest first (desc, default)",
				},
			},
			Required: []string{"session_id"},
		},
	}, s.handleMoveHistory)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_scenarios",
		Description: "List available scenarios",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListScenarios)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the game rules and command reference",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameInstructions)
}

// ServeStdio serves the tools over stdin/stdout until the input closes
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Argument helpers

func stringArg(args map[string]interface{}, key string) string {
	v, _ := args[key].(string)
	return strings.TrimSpace(v)
}

// intArg reads a JSON number argument, which decodes as float64
func intArg(args map[string]interface{}, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

func (s *Server) toolError(tool string, err error) *mcp.CallToolResult {
	s.logger.Debug("tool failed", zap.String("tool", tool), zap.Error(err))
	return mcp.NewToolResultError(err.Error())
}

// Tool handlers

func (s *Server) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	scenario := stringArg(args, "scenario")

	info, err := s.svc.CreateSession(ctx, scenario)
	if err != nil {
		return s.toolError("create_session", err), nil
	}

	result := fmt.Sprintf("Created session: %s\nScenario: %s\n\n%s", info.ID, info.ScenarioName, info.Board)
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions, err := s.svc.ListSessions(ctx)
	if err != nil {
		return s.toolError("list_sessions", err), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n\n", len(sessions))
	for _, info := range sessions {
		fmt.Fprintf(&b, "- %s (Scenario: %s, Players: %d, Moves: %d, Created: %s)\n",
			info.ID, info.ScenarioName, len(info.GameState.Players), info.GameState.TotalMoves,
			info.CreatedAt.Format("15:04:05"))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	info, err := s.svc.GetSession(ctx, stringArg(args, "session_id"))
	if err != nil {
		return s.toolError("get_session", err), nil
	}
	if stringArg(args, "format") == "json" {
		data, err := marshalState(info.GameState)
		if err != nil {
			return s.toolError("get_session", err), nil
		}
		return mcp.NewToolResultText(data), nil
	}
	return mcp.NewToolResultText(formatSessionInfo(info)), nil
}

func (s *Server) handleDeleteSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	sessionID := stringArg(args, "session_id")

	if err := s.svc.DeleteSession(ctx, sessionID); err != nil {
		return s.toolError("delete_session", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted session: %s", sessionID)), nil
}

func (s *Server) handleExecCommands(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	sessionID := stringArg(args, "session_id")
	commands, _ := args["commands"].(string)

	result, err := s.svc.Exec(ctx, sessionID, commands)
	if err != nil {
		return s.toolError("exec_commands", err), nil
	}

	text := formatExecResult(result)
	if result.Error != "" {
		return mcp.NewToolResultError(text), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	sessionID := stringArg(args, "session_id")
	player := stringArg(args, "player")
	times := intArg(args, "times", 1)

	result, err := s.svc.Move(ctx, sessionID, player, times)
	if err != nil {
		return s.toolError("move", err), nil
	}

	text := formatMoveResult(result)
	if !result.Success {
		return mcp.NewToolResultError(text), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleRenderBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	board, err := s.svc.Render(ctx, stringArg(args, "session_id"))
	if err != nil {
		return s.toolError("render_board", err), nil
	}
	if board == "" {
		board = "No board configured. Use exec_commands with \"board <width> <height>\"."
	}
	return mcp.NewToolResultText(board), nil
}

func (s *Server) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	opts := service.HistoryOptions{
		Page:  intArg(args, "page", 0),
		Limit: intArg(args, "limit", 0),
		Order: stringArg(args, "order"),
	}

	history, err := s.svc.GetMoveHistory(ctx, stringArg(args, "session_id"), opts)
	if err != nil {
		return s.toolError("move_history", err), nil
	}
	return mcp.NewToolResultText(formatHistory(history)), nil
}

func (s *Server) handleListScenarios(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenarios, err := s.svc.ListScenarios(ctx)
	if err != nil {
		return s.toolError("list_scenarios", err), nil
	}

	var b strings.Builder
	b.WriteString("Available Scenarios:\n\n")
	for _, info := range scenarios {
		fmt.Fprintf(&b, "• %s (%s)\n  %s\n  Board: %dx%d, Players: %d\n\n",
			info.ScenarioID, info.Name, info.Description, info.Width, info.Height, info.Players)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(instructions), nil
}

const instructions = `Snakes and Ladders - Instructions

BOARD:
Cells are numbered from 1 in the bottom-left corner. Odd rows (from the bottom)
run left to right, even rows run right to left.

COMMANDS (exec_commands, one per line):
  board <width> <height>        rebuild the board (players and cell contents are cleared)
  players <count>               create players A, B, ... and place them on cell 1 in order
  dice <v1> <v2> ...            set the cyclic roll sequence
  snake <from> <to>             slide down from a higher cell to a lower one
  ladder <from> <to>            climb from a lower cell to a higher one
  powerup <kind> <cell...>      place antivenom, double or escalator on cells
  move <player> [times]         roll and move a player

MOVEMENT:
• A move advances the player by the next die value, stopping at the last cell
• A player already on the landing cell is bumped one cell forward, and so on
• Landing on a powerup collects it
• Antivenom cancels one snake bite; Escalator doubles one ladder climb
• Double doubles one roll when the server runs with double rolls enabled

RENDERING:
Each cell shows the occupant, the powerup marker (d, a, e) and S or L for
snakes and ladders.`

// Formatting helpers

func formatSessionInfo(info *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nScenario: %s\nCreated: %s\n\n%s\n%s",
		info.ID, info.ScenarioName,
		info.CreatedAt.Format("2006-01-02 15:04:05"),
		formatPlayers(info.GameState),
		info.Board)
}

func formatPlayers(state *engine.GameState) string {
	if state == nil || len(state.Players) == 0 {
		return "No players"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Moves: %d | Dice: %v (next #%d)\n", state.TotalMoves, state.Dice, state.NextDie+1)
	for _, p := range state.Players {
		fmt.Fprintf(&b, "%s on %d", p.Name, p.Position)
		if len(p.Powerups) > 0 {
			fmt.Fprintf(&b, " holding %v", p.Powerups)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatMoves(b *strings.Builder, moves []engine.MoveHistoryEntry) {
	for _, m := range moves {
		doubled := ""
		if m.Doubled {
			doubled = " (doubled)"
		}
		fmt.Fprintf(b, "%d. %s rolled %d%s: %d -> %d\n", m.MoveNumber, m.Player, m.Roll, doubled, m.FromPosition, m.ToPosition)
	}
}

func formatExecResult(result *service.ExecResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Applied %d command(s)\n", result.Applied)
	if len(result.Ignored) > 0 {
		fmt.Fprintf(&b, "Ignored: %s\n", strings.Join(result.Ignored, "; "))
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(&b, "Warning: %s\n", w)
	}
	if result.Error != "" {
		fmt.Fprintf(&b, "Error: %s\n", result.Error)
	}
	formatMoves(&b, result.Moves)
	b.WriteString("\n")
	b.WriteString(result.Board)
	return b.String()
}

func formatMoveResult(result *service.MoveResult) string {
	var b strings.Builder
	b.WriteString(result.Message)
	b.WriteString("\n")
	formatMoves(&b, result.Moves)
	b.WriteString("\n")
	b.WriteString(result.Board)
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Move History (Page %d/%d) - Total: %d\n\n", history.Page, history.TotalPages, history.TotalMoves)
	formatMoves(&b, history.Moves)
	return b.String()
}

func marshalState(state *engine.GameState) (string, error) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
