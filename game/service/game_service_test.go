package service_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/wricardo/snakes-ladders/game/command"
	"github.com/wricardo/snakes-ladders/game/engine"
	"github.com/wricardo/snakes-ladders/game/service"
)

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
	}
}

func (m *MockSessionManager) Create(id string, scenario *command.Script) (*service.Session, error) {
	// Generate ID if empty (mimics real session manager behavior)
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}
	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	eng := engine.NewEngineWithDefaults()
	if scenario != nil {
		if _, err := command.NewRunner(eng).Run(context.Background(), scenario.Commands); err != nil {
			return nil, err
		}
	}

	session := &service.Session{
		ID:             id,
		Engine:         eng,
		Scenario:       scenario,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}
	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, errors.New("session not found")
	}
	return session, nil
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	if session, exists := m.sessions[id]; exists {
		session.LastAccessedAt = time.Now()
		return nil
	}
	return errors.New("session not found")
}

// MockScenarioManager implements service.ScenarioManager for testing
type MockScenarioManager struct {
	scenarios map[string]*command.Script
	def       *command.Script
}

func NewMockScenarioManager(t *testing.T) *MockScenarioManager {
	t.Helper()
	m := &MockScenarioManager{scenarios: make(map[string]*command.Script)}
	m.add(t, "small", "Small", "board 3 2\nplayers 2\ndice 1 2\nladder 2 5\nsnake 6 1\n")
	m.add(t, "loop", "Loop", "board 5 1\nladder 2 4\nsnake 4 2\nplayers 1\ndice 1\n")
	m.def = m.scenarios["small"]
	return m
}

func (m *MockScenarioManager) add(t *testing.T, id, name, script string) {
	cmds, err := command.ParseString(script)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m.scenarios[id] = &command.Script{Name: name, Commands: cmds}
}

func (m *MockScenarioManager) LoadScenario(name string) (*command.Script, error) {
	script, exists := m.scenarios[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q", service.ErrScenarioNotFound, name)
	}
	return script, nil
}

func (m *MockScenarioManager) ListScenarios() ([]*service.ScenarioInfo, error) {
	var infos []*service.ScenarioInfo
	for id, script := range m.scenarios {
		infos = append(infos, &service.ScenarioInfo{ScenarioID: id, Name: script.Name, Filename: id + ".snl"})
	}
	return infos, nil
}

func (m *MockScenarioManager) GetDefault() *command.Script {
	return m.def
}

func newTestService(t *testing.T) service.GameService {
	t.Helper()
	return service.NewGameService(NewMockSessionManager(), NewMockScenarioManager(t))
}

func TestGameService_CreateSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("named scenario", func(t *testing.T) {
		info, err := svc.CreateSession(ctx, "loop")
		if err != nil {
			t.Fatalf("CreateSession: %v", err)
		}
		if info.ScenarioName != "loop" {
			t.Errorf("Expected scenario loop, got %q", info.ScenarioName)
		}
		if info.GameState.Width != 5 || len(info.GameState.Players) != 1 {
			t.Errorf("Unexpected state %+v", info.GameState)
		}
	})

	t.Run("default scenario", func(t *testing.T) {
		info, err := svc.CreateSession(ctx, "")
		if err != nil {
			t.Fatalf("CreateSession: %v", err)
		}
		if info.ScenarioName != "small" {
			t.Errorf("Expected the default scenario id small, got %q", info.ScenarioName)
		}
		if !strings.Contains(info.Board, "|B  |A L|   |") {
			t.Errorf("Expected rendered board in session info, got:\n%s", info.Board)
		}
	})

	t.Run("unknown scenario lists alternatives", func(t *testing.T) {
		_, err := svc.CreateSession(ctx, "missing")
		if err == nil {
			t.Fatal("Expected error for unknown scenario")
		}
		if !strings.Contains(err.Error(), "Available scenarios") {
			t.Errorf("Expected available scenarios in error, got %v", err)
		}
	})
}

func TestGameService_SessionLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	info, _ := svc.CreateSession(ctx, "small")

	got, err := svc.GetSession(ctx, info.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.ID != info.ID {
		t.Errorf("Expected session %s, got %s", info.ID, got.ID)
	}

	sessions, _ := svc.ListSessions(ctx)
	if len(sessions) != 1 {
		t.Errorf("Expected 1 session, got %d", len(sessions))
	}

	if err := svc.DeleteSession(ctx, info.ID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if _, err := svc.GetSession(ctx, info.ID); err == nil {
		t.Error("Expected deleted session to be gone")
	}
	if _, err := svc.Render(ctx, info.ID); err == nil {
		t.Error("Expected Render to fail for a deleted session")
	}
}

func TestGameService_Exec(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	info, _ := svc.CreateSession(ctx, "small")

	t.Run("applies commands", func(t *testing.T) {
		result, err := svc.Exec(ctx, info.ID, "powerup antivenom 4\nteleport A 6\nmove A\n")
		if err != nil {
			t.Fatalf("Exec: %v", err)
		}
		if result.Applied != 2 || len(result.Ignored) != 1 || result.Error != "" {
			t.Errorf("Unexpected result %+v", result)
		}
		if len(result.Moves) != 1 || result.Moves[0].ToPosition != 3 {
			t.Errorf("Expected A to move to 3, got %+v", result.Moves)
		}
	})

	t.Run("configuration error reported in result", func(t *testing.T) {
		result, err := svc.Exec(ctx, info.ID, "dice 4\nsnake 2 9\nmove B\n")
		if err != nil {
			t.Fatalf("Exec: %v", err)
		}
		if !strings.Contains(result.Error, "line 2") {
			t.Errorf("Expected error on line 2, got %q", result.Error)
		}
		if result.Applied != 1 || len(result.Moves) != 0 {
			t.Errorf("Expected the run to stop at line 2, got %+v", result)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		if _, err := svc.Exec(ctx, "nope", "players 1"); err == nil {
			t.Error("Expected error for unknown session")
		}
	})
}

func TestGameService_ExecRecoversLoop(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	info, _ := svc.CreateSession(ctx, "loop")

	result, err := svc.Exec(ctx, info.ID, "move A\n")
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if result.Error != "" || len(result.Warnings) != 1 {
		t.Errorf("Expected one warning and no error, got %+v", result)
	}
}

func TestGameService_Move(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	info, _ := svc.CreateSession(ctx, "small")

	result, err := svc.Move(ctx, info.ID, "b", 2)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	// B bumps A off the ladder foot and climbs to 5, then 5+2 clamps to 6 and the snake drops B to 1
	if !result.Success || len(result.Moves) != 2 {
		t.Fatalf("Unexpected result %+v", result)
	}
	if result.Moves[0].ToPosition != 5 || result.Moves[1].ToPosition != 1 {
		t.Errorf("Expected B on 5 then 1, got %d then %d", result.Moves[0].ToPosition, result.Moves[1].ToPosition)
	}

	result, err = svc.Move(ctx, info.ID, "Z", 0)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if result.Success || !strings.Contains(result.Message, "unknown player") {
		t.Errorf("Expected unknown player failure, got %+v", result)
	}

	info, _ = svc.CreateSession(ctx, "loop")
	result, _ = svc.Move(ctx, info.ID, "A", 1)
	if result.Success || !strings.Contains(result.Message, "did not settle") {
		t.Errorf("Expected loop failure, got %+v", result)
	}
}

func TestGameService_GetMoveHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	info, _ := svc.CreateSession(ctx, "small")
	svc.Exec(ctx, info.ID, "board 10 10\nplayers 1\ndice 1\nmove A 5\n")

	tests := []struct {
		name      string
		opts      service.HistoryOptions
		firstMove int
		count     int
		hasNext   bool
	}{
		{"defaults newest first", service.HistoryOptions{}, 5, 5, false},
		{"ascending page 1", service.HistoryOptions{Limit: 2, Order: "asc"}, 1, 2, true},
		{"ascending page 3", service.HistoryOptions{Page: 3, Limit: 2, Order: "asc"}, 5, 1, false},
		{"descending page 2", service.HistoryOptions{Page: 2, Limit: 2}, 3, 2, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			history, err := svc.GetMoveHistory(ctx, info.ID, test.opts)
			if err != nil {
				t.Fatalf("GetMoveHistory: %v", err)
			}
			if history.TotalMoves != 5 {
				t.Errorf("Expected 5 total moves, got %d", history.TotalMoves)
			}
			if len(history.Moves) != test.count {
				t.Fatalf("Expected %d moves, got %d", test.count, len(history.Moves))
			}
			if history.Moves[0].MoveNumber != test.firstMove {
				t.Errorf("Expected first move %d, got %d", test.firstMove, history.Moves[0].MoveNumber)
			}
			if history.HasNext != test.hasNext {
				t.Errorf("Expected HasNext=%v", test.hasNext)
			}
		})
	}
}

func TestGameService_GetMoveHistoryPastLastPage(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	info, _ := svc.CreateSession(ctx, "small")
	svc.Exec(ctx, info.ID, "board 10 10\nplayers 1\ndice 1\nmove A 3\n")

	for _, order := range []string{"asc", "desc"} {
		for _, page := range []int{3, 500000000000000000, math.MaxInt} {
			t.Run(fmt.Sprintf("%s page %d", order, page), func(t *testing.T) {
				history, err := svc.GetMoveHistory(ctx, info.ID, service.HistoryOptions{Page: page, Limit: 2, Order: order})
				if err != nil {
					t.Fatalf("GetMoveHistory: %v", err)
				}
				if len(history.Moves) != 0 {
					t.Errorf("Expected an empty page, got %d moves", len(history.Moves))
				}
				if history.TotalMoves != 3 || history.TotalPages != 2 {
					t.Errorf("Expected 3 moves over 2 pages, got %d over %d", history.TotalMoves, history.TotalPages)
				}
				if history.HasNext || !history.HasPrevious {
					t.Errorf("Expected only a previous page, got HasNext=%v HasPrevious=%v", history.HasNext, history.HasPrevious)
				}
			})
		}
	}
}

func TestGameService_MoveCountLimit(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	info, _ := svc.CreateSession(ctx, "small")

	result, err := svc.Move(ctx, info.ID, "A", 2000000000)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if result.Success || !strings.Contains(result.Message, "move count out of range") {
		t.Errorf("Expected the move count to be rejected, got %+v", result)
	}
	if result.GameState.TotalMoves != 0 {
		t.Errorf("Expected no moves recorded, got %d", result.GameState.TotalMoves)
	}
}

func TestGameService_Scenarios(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	infos, err := svc.ListScenarios(ctx)
	if err != nil || len(infos) != 2 {
		t.Fatalf("Expected 2 scenarios, got %d (%v)", len(infos), err)
	}

	script, err := svc.LoadScenario(ctx, "small")
	if err != nil || script.Name != "Small" {
		t.Errorf("Expected Small scenario, got %+v (%v)", script, err)
	}
	if _, err := svc.LoadScenario(ctx, "missing"); !errors.Is(err, service.ErrScenarioNotFound) {
		t.Errorf("Expected ErrScenarioNotFound, got %v", err)
	}
}
