package engine

import (
	"fmt"

	"go.uber.org/zap"
)

// placement is one pending unit of resolver work: put player on target
type placement struct {
	player PlayerID
	target int
}

// place puts a player on target and resolves everything that follows: residents
// are bumped forward first, then the player settles, collects the cell's powerup
// and follows any snake or ladder. The player must not be marked on the board.
//
// Work is kept on an explicit stack. The frame on top is always the next
// placement to finish; a bumped resident is pushed above the player that
// bumped it, so the resident is fully resolved before the cell is claimed.
func (e *GameEngine) place(id PlayerID, target int) error {
	if _, ok := e.player(id); !ok {
		return fmt.Errorf("%w: handle %d", ErrUnknownPlayer, id)
	}

	limit := e.rules.resolveStepLimit(e.board.Size(), len(e.players))
	stack := []placement{{player: id, target: target}}

	for steps := 1; len(stack) > 0; steps++ {
		if steps > limit {
			return fmt.Errorf("%w: placing %s at %d exceeded %d steps",
				ErrResolutionLoop, e.nameOf(id), target, limit)
		}

		top := stack[len(stack)-1]
		cell := e.board.at(top.target)

		if cell.Occupied() && cell.Occupant != top.player {
			resident := cell.Occupant
			cell.Occupant = NoPlayer

			if _, ok := e.player(resident); ok {
				next := e.bumpTarget(top.target)
				e.logger.Debug("bumping resident",
					zap.String("resident", e.nameOf(resident)),
					zap.String("by", e.nameOf(top.player)),
					zap.Int("from", top.target),
					zap.Int("to", next))
				stack = append(stack, placement{player: resident, target: next})
				continue
			}
			e.logger.Debug("skipping displacement of unknown occupant",
				zap.Int("occupant", int(resident)),
				zap.Int("cell", top.target))
		}

		stack = stack[:len(stack)-1]
		if next, moved := e.settle(top); moved {
			stack = append(stack, next)
		}
	}

	return nil
}

// settle claims the cell, grants its powerup and applies its offset. It returns
// the follow-up placement when the player has to keep moving.
func (e *GameEngine) settle(p placement) (placement, bool) {
	player := e.players[p.player-1]
	cell := e.board.at(p.target)

	cell.Occupant = player.ID
	player.Position = p.target
	player.Powerups.Grant(cell.Powerup)

	if cell.Offset == 0 {
		return placement{}, false
	}

	dest := e.board.Clamp(p.target + cell.Offset)

	if cell.Offset < 0 {
		if player.Powerups.Consume(Antivenom) {
			e.logger.Debug("antivenom blocks snake",
				zap.String("player", player.Name),
				zap.Int("cell", p.target))
			return placement{}, false
		}
	} else if player.Powerups.Consume(Escalator) {
		dest = e.board.Clamp(dest + cell.Offset)
		e.logger.Debug("escalator extends ladder",
			zap.String("player", player.Name),
			zap.Int("cell", p.target),
			zap.Int("to", dest))
	}

	cell.Occupant = NoPlayer
	return placement{player: player.ID, target: dest}, true
}

// bumpTarget returns where a resident pushed off index goes: the next cell, or
// for the last cell the nearest free cell below it
func (e *GameEngine) bumpTarget(index int) int {
	if index < e.board.Size() {
		return index + 1
	}
	for i := index - 1; i >= 1; i-- {
		if !e.board.at(i).Occupied() {
			return i
		}
	}
	return e.board.Clamp(index - 1)
}

// vacate removes the player's occupancy mark, keeping its position
func (e *GameEngine) vacate(player *Player) {
	if !e.board.InRange(player.Position) {
		return
	}
	if cell := e.board.at(player.Position); cell.Occupant == player.ID {
		cell.Occupant = NoPlayer
	}
}

// snapshot captures the mutable game state and returns a function restoring it
func (e *GameEngine) snapshot() func() {
	board := e.board.clone()
	players := make([]*Player, len(e.players))
	for i, p := range e.players {
		players[i] = p.clone()
	}
	dice := e.dice

	return func() {
		e.board = board
		e.players = players
		e.dice = dice
	}
}
