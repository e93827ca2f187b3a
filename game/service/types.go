package service

import (
	"time"

	"github.com/wricardo/snakes-ladders/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string            `json:"id"`
	ScenarioName   string            `json:"scenario_name"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
	Board          string            `json:"board"`
}

// ExecResult contains the result of running a command script in a session
type ExecResult struct {
	Applied   int                       `json:"applied"`
	Ignored   []string                  `json:"ignored,omitempty"`
	Warnings  []string                  `json:"warnings,omitempty"`
	Moves     []engine.MoveHistoryEntry `json:"moves,omitempty"`
	Error     string                    `json:"error,omitempty"`
	GameState *engine.GameState         `json:"game_state"`
	Board     string                    `json:"board"`
}

// MoveResult contains the result of moving one player
type MoveResult struct {
	Success   bool                      `json:"success"`
	Moves     []engine.MoveHistoryEntry `json:"moves"`
	Message   string                    `json:"message"`
	GameState *engine.GameState         `json:"game_state"`
	Board     string                    `json:"board"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ScenarioInfo provides information about a scenario script
type ScenarioInfo struct {
	Filename    string `json:"filename"`
	ScenarioID  string `json:"scenario_id"` // The identifier to use for session creation
	Name        string `json:"name"`        // Display name
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Players     int    `json:"players"`
	Commands    int    `json:"commands"`
}
