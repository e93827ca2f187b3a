// Package service provides the business logic layer for the snakes and
// ladders simulator.
//
// The service package implements:
//   - Multi-session game management
//   - Scenario lookup for new sessions
//   - Command script execution and player moves
//   - Move history tracking
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ScenarioManager loads the scripts that set up new sessions.
//
// Architecture:
//
// The service layer sits between the transports (CLI, MCP) and the game
// engine, providing session isolation and scenario management. Each session
// owns its own engine instance with independent state.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	scenarioMgr, _ := config.NewManager("scenarios")
//	gameService := service.NewGameService(sessionMgr, scenarioMgr)
//
//	info, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Move(ctx, info.ID, "A", 3)
//
// Errors:
//
// Unknown sessions and scenarios are returned as errors. Problems inside a
// game (a bad command, a move that does not settle) are reported in the
// result so callers can show them next to the board.
package service
