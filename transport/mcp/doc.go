// Package mcp provides the Model Context Protocol server for the snakes and
// ladders simulator.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for game operations
//   - Session-aware command execution
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_session: Create a new session from a scenario
//   - list_sessions: List all active sessions
//   - get_session: Get session details as text or JSON
//   - delete_session: Remove a session
//   - exec_commands: Run command lines against a session
//   - move: Roll and move one player
//   - render_board: Render the board grid
//   - move_history: Retrieve move history with pagination
//   - list_scenarios: List available scenarios
//   - game_instructions: Get rules and the command reference
//
// Errors from the game service come back as tool error results rather than
// protocol failures, so agents can read and correct them.
//
// Usage:
//
//	srv := mcp.NewServer(gameService, version, logger)
//	if err := srv.ServeStdio(); err != nil {
//		log.Fatal(err)
//	}
package mcp
