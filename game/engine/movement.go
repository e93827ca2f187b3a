package engine

import (
	"fmt"
	"time"
)

// RollAndMove rolls the next die for the named player and resolves the move.
// A move that cannot settle leaves the game exactly as it was.
func (e *GameEngine) RollAndMove(name string) (*MoveHistoryEntry, error) {
	if e.board == nil {
		return nil, ErrBoardNotConfigured
	}
	player, err := e.lookup(name)
	if err != nil {
		return nil, err
	}
	if e.dice.Len() == 0 {
		return nil, ErrNoDice
	}

	restore := e.snapshot()

	roll, err := e.dice.Roll()
	if err != nil {
		return nil, err
	}

	steps := roll
	doubled := false
	if e.rules.DoubleRollEnabled && player.Powerups.Consume(DoubleRoll) {
		steps = roll * 2
		doubled = true
	}

	from := player.Position
	e.vacate(player)
	if err := e.place(player.ID, e.board.Clamp(from+steps)); err != nil {
		restore()
		return nil, err
	}

	entry := MoveHistoryEntry{
		Player:       player.Name,
		Roll:         roll,
		Doubled:      doubled,
		FromPosition: from,
		ToPosition:   player.Position,
		Timestamp:    time.Now().Unix(),
		MoveNumber:   len(e.history) + 1,
	}
	e.history = append(e.history, entry)
	return &entry, nil
}

// MaxMovesPerCall bounds a single MoveTimes call
const MaxMovesPerCall = 1000

// MoveTimes rolls and moves the named player repeatedly, stopping at the first
// failure. The completed moves are returned either way.
func (e *GameEngine) MoveTimes(name string, times int) ([]MoveHistoryEntry, error) {
	if times < 1 || times > MaxMovesPerCall {
		return nil, fmt.Errorf("%w: got %d, want 1 to %d", ErrMoveCount, times, MaxMovesPerCall)
	}

	var moves []MoveHistoryEntry
	for i := 0; i < times; i++ {
		entry, err := e.RollAndMove(name)
		if err != nil {
			return moves, err
		}
		moves = append(moves, *entry)
	}
	return moves, nil
}
