package service

import (
	"context"
	"time"

	"github.com/wricardo/snakes-ladders/game/command"
	"github.com/wricardo/snakes-ladders/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, scenarioName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Exec(ctx context.Context, sessionID, script string) (*ExecResult, error)
	Move(ctx context.Context, sessionID, player string, times int) (*MoveResult, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	Render(ctx context.Context, sessionID string) (string, error)
	GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Scenarios
	ListScenarios(ctx context.Context) ([]*ScenarioInfo, error)
	LoadScenario(ctx context.Context, scenarioName string) (*command.Script, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, scenario *command.Script) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ScenarioManager handles scenario script loading
type ScenarioManager interface {
	LoadScenario(name string) (*command.Script, error)
	ListScenarios() ([]*ScenarioInfo, error)
	GetDefault() *command.Script
}

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Scenario       *command.Script
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
