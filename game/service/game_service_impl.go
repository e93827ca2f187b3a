package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wricardo/snakes-ladders/game/command"
	"github.com/wricardo/snakes-ladders/game/engine"
)

// ErrScenarioNotFound is returned by scenario managers for unknown names
var ErrScenarioNotFound = errors.New("scenario not found")

// Option configures the game service
type Option func(*gameServiceImpl)

// WithLogger sets the logger handed to command runners
func WithLogger(logger *zap.Logger) Option {
	return func(s *gameServiceImpl) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions  SessionManager
	scenarios ScenarioManager
	logger    *zap.Logger
	mu        sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, scenarios ScenarioManager, opts ...Option) GameService {
	s := &gameServiceImpl{
		sessions:  sessions,
		scenarios: scenarios,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// scenarioID returns the scenario_id for a display name, used for consistent responses
func (s *gameServiceImpl) scenarioID(name string) string {
	available, err := s.scenarios.ListScenarios()
	if err == nil {
		for _, info := range available {
			if info.Name == name {
				return info.ScenarioID
			}
		}
	}
	if name == "" {
		return "default"
	}
	return name
}

func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	name := ""
	if sess.Scenario != nil {
		name = sess.Scenario.Name
	}
	return &SessionInfo{
		ID:             sess.ID,
		ScenarioName:   s.scenarioID(name),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.GetState(),
		Board:          sess.Engine.Render(),
	}
}

// CreateSession creates a new game session set up by the named scenario
func (s *gameServiceImpl) CreateSession(ctx context.Context, scenarioName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var scenario *command.Script
	if scenarioName != "" {
		var err error
		scenario, err = s.scenarios.LoadScenario(scenarioName)
		if err != nil {
			if errors.Is(err, ErrScenarioNotFound) {
				available, listErr := s.scenarios.ListScenarios()
				if listErr == nil && len(available) > 0 {
					var ids []string
					for _, info := range available {
						ids = append(ids, info.ScenarioID)
					}
					return nil, fmt.Errorf("scenario '%s' not found. Available scenarios: %v", scenarioName, ids)
				}
			}
			return nil, fmt.Errorf("failed to load scenario %s: %w", scenarioName, err)
		}
	} else {
		scenario = s.scenarios.GetDefault()
	}

	sess, err := s.sessions.Create("", scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	info := s.sessionInfo(sess)
	if scenarioName != "" {
		info.ScenarioName = scenarioName
	}
	return info, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(sess), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Exec runs a command script against a session. A configuration error stops
// the script and is reported in the result; commands before it stay applied.
func (s *gameServiceImpl) Exec(ctx context.Context, sessionID, script string) (*ExecResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	cmds, err := command.ParseString(script)
	if err != nil {
		return nil, err
	}

	runner := command.NewRunner(sess.Engine, command.WithLogger(s.logger.With(zap.String("session", sess.ID))))
	report, runErr := runner.Run(ctx, cmds)

	result := &ExecResult{
		Applied:   report.Applied,
		Moves:     report.Moves,
		GameState: sess.Engine.GetState(),
		Board:     sess.Engine.Render(),
	}
	for _, cmd := range report.Ignored {
		result.Ignored = append(result.Ignored, cmd.String())
	}
	for _, recovered := range report.Recovered {
		result.Warnings = append(result.Warnings, recovered.Error())
	}
	if runErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		result.Error = runErr.Error()
	}
	return result, nil
}

// Move rolls and moves one player times times
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, player string, times int) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if times < 1 {
		times = 1
	}

	moves, moveErr := sess.Engine.MoveTimes(player, times)
	result := &MoveResult{
		Success:   moveErr == nil,
		Moves:     moves,
		GameState: sess.Engine.GetState(),
		Board:     sess.Engine.Render(),
	}
	if result.Moves == nil {
		result.Moves = []engine.MoveHistoryEntry{}
	}

	switch {
	case moveErr == nil:
		last := moves[len(moves)-1]
		result.Message = fmt.Sprintf("%s moved %d time(s), now on cell %d", last.Player, len(moves), last.ToPosition)
	case engine.IsResolutionLoop(moveErr):
		s.logger.Warn("move did not settle, skipped",
			zap.String("session", sess.ID),
			zap.String("player", player),
			zap.Error(moveErr))
		result.Message = fmt.Sprintf("move %d did not settle and was skipped: %v", len(moves)+1, moveErr)
	default:
		result.Message = moveErr.Error()
	}
	return result, nil
}

// GetGameState returns the current state of a session
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.GetState(), nil
}

// Render returns the text grid of a session's board
func (s *gameServiceImpl) Render(ctx context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.Render(), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetMoveHistory()
	total := len(history)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	var moves []engine.MoveHistoryEntry
	// Pages past the end are empty; checking first keeps start from overflowing
	if opts.Page <= totalPages {
		start := (opts.Page - 1) * opts.Limit
		end := start + opts.Limit
		if end > total {
			end = total
		}

		if opts.Order == "desc" {
			// most recent first
			for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
				moves = append(moves, history[i])
			}
		} else if start < total {
			moves = history[start:end]
		}
	}
	if moves == nil {
		moves = []engine.MoveHistoryEntry{}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListScenarios returns the available scenarios
func (s *gameServiceImpl) ListScenarios(ctx context.Context) ([]*ScenarioInfo, error) {
	return s.scenarios.ListScenarios()
}

// LoadScenario returns a scenario script by name
func (s *gameServiceImpl) LoadScenario(ctx context.Context, scenarioName string) (*command.Script, error) {
	return s.scenarios.LoadScenario(scenarioName)
}
