package engine

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Setup
	Configure(width, height int) error
	ConfigurePlayers(count int) error
	SetDice(values []int) error
	SetSpecial(from, to int) error
	SetPowerup(kind PowerupKind, cells ...int) error

	// Movement operations
	RollAndMove(name string) (*MoveHistoryEntry, error)

	// Game state
	GetState() *GameState
	GetBoard() *Board
	GetPlayer(name string) (*PlayerState, error)
	GetRules() Rules
	Render() string

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// Option configures a GameEngine
type Option func(*GameEngine)

// WithLogger sets the logger used for resolver diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(e *GameEngine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// GameEngine implements the Engine interface
type GameEngine struct {
	board   *Board
	players []*Player
	dice    Dice
	rules   Rules
	history []MoveHistoryEntry
	logger  *zap.Logger
}

// NewEngine creates a new game engine with the provided rules
func NewEngine(rules Rules, opts ...Option) (*GameEngine, error) {
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}

	e := &GameEngine{
		rules:   rules,
		logger:  zap.NewNop(),
		history: []MoveHistoryEntry{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// NewEngineWithDefaults creates a new game engine with default rules
func NewEngineWithDefaults() *GameEngine {
	e, _ := NewEngine(DefaultRules())
	return e
}

// Configure (re)builds the board. Existing players are discarded together with
// all cell state; the dice sequence is kept and rewound.
func (e *GameEngine) Configure(width, height int) error {
	board, err := NewBoard(width, height)
	if err != nil {
		return err
	}

	if len(e.players) > 0 {
		e.logger.Info("board resized, discarding players",
			zap.Int("players", len(e.players)))
	}

	e.board = board
	e.players = nil
	e.dice.Rewind()
	return nil
}

// ConfigurePlayers replaces the player list with count players named A, B, ...
// and places each of them on the first cell in name order.
func (e *GameEngine) ConfigurePlayers(count int) error {
	if e.board == nil {
		return ErrBoardNotConfigured
	}
	if count < 0 || count > MaxPlayers {
		return fmt.Errorf("%w: %d requested, at most %d supported", ErrTooManyPlayers, count, MaxPlayers)
	}
	if count > e.board.Size() {
		return fmt.Errorf("%w: %d players do not fit on %d cells", ErrTooManyPlayers, count, e.board.Size())
	}

	restore := e.snapshot()

	e.board.clearOccupants()
	e.players = make([]*Player, count)
	for i := range e.players {
		e.players[i] = &Player{
			ID:       PlayerID(i + 1),
			Name:     string(rune(FirstPlayerLetter + i)),
			Powerups: Inventory{},
		}
	}

	for _, p := range e.players {
		if err := e.place(p.ID, StartPosition); err != nil {
			restore()
			return err
		}
	}
	return nil
}

// SetDice replaces the roll sequence
func (e *GameEngine) SetDice(values []int) error {
	dice, err := NewDice(values)
	if err != nil {
		return err
	}
	e.dice = dice
	return nil
}

// SetSpecial adds a snake or ladder from one cell to another
func (e *GameEngine) SetSpecial(from, to int) error {
	if e.board == nil {
		return ErrBoardNotConfigured
	}
	return e.board.SetSpecial(from, to)
}

// SetPowerup places a powerup on each listed cell
func (e *GameEngine) SetPowerup(kind PowerupKind, cells ...int) error {
	if e.board == nil {
		return ErrBoardNotConfigured
	}
	return e.board.SetPowerup(kind, cells...)
}

// GetBoard returns the current board, or nil before Configure
func (e *GameEngine) GetBoard() *Board {
	return e.board
}

// GetRules returns the engine rules
func (e *GameEngine) GetRules() Rules {
	return e.rules
}

// GetPlayer returns a snapshot of the named player
func (e *GameEngine) GetPlayer(name string) (*PlayerState, error) {
	p, err := e.lookup(name)
	if err != nil {
		return nil, err
	}
	state := playerState(p)
	return &state, nil
}

// GetPlayers returns snapshots of every player in name order
func (e *GameEngine) GetPlayers() []PlayerState {
	states := make([]PlayerState, 0, len(e.players))
	for _, p := range e.players {
		states = append(states, playerState(p))
	}
	return states
}

// GetState returns a serializable snapshot of the whole game
func (e *GameEngine) GetState() *GameState {
	state := &GameState{
		Players:    e.GetPlayers(),
		Dice:       e.dice.Values(),
		NextDie:    e.dice.Next(),
		TotalMoves: len(e.history),
		History:    e.GetMoveHistory(),
	}
	if e.board != nil {
		state.Width = e.board.Width()
		state.Height = e.board.Height()
		state.Cells = e.board.Cells()
	}
	return state
}

// Render returns the serpentine text grid of the current board
func (e *GameEngine) Render() string {
	if e.board == nil {
		return ""
	}
	return RenderBoard(e.board, e.nameOf)
}

// GetMoveHistory returns the complete move history
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	out := make([]MoveHistoryEntry, len(e.history))
	copy(out, e.history)
	return out
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.history) == 0 {
		return nil
	}
	last := e.history[len(e.history)-1]
	return &last
}

// lookup resolves a player name (case-insensitive letter) to its arena entry
func (e *GameEngine) lookup(name string) (*Player, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) != 1 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
	p, ok := e.player(PlayerID(name[0]-FirstPlayerLetter) + 1)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
	return p, nil
}

// player resolves a handle to its arena entry
func (e *GameEngine) player(id PlayerID) (*Player, bool) {
	if id < 1 || int(id) > len(e.players) {
		return nil, false
	}
	return e.players[id-1], true
}

// nameOf returns the display name for a handle, or "" if unknown
func (e *GameEngine) nameOf(id PlayerID) string {
	if p, ok := e.player(id); ok {
		return p.Name
	}
	return ""
}

func playerState(p *Player) PlayerState {
	return PlayerState{
		Name:     p.Name,
		Position: p.Position,
		Powerups: p.Powerups.Held(),
	}
}

// IsResolutionLoop reports whether err came from a move that could not settle
func IsResolutionLoop(err error) bool {
	return errors.Is(err, ErrResolutionLoop)
}
