// Package engine provides the core game logic for the snakes and ladders simulator.
//
// The engine package implements the game mechanics including:
//   - Board construction with serpentine (boustrophedon) cell numbering
//   - Snakes, ladders and powerups placed on individual cells
//   - Player placement with cascading displacement of residents
//   - Dice-driven movement from a fixed, cyclic roll sequence
//   - Text rendering of the board
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. Board holds the cells, Player holds a position and
// a powerup Inventory, and Dice holds the roll sequence. Cells refer to players
// through PlayerID handles into the engine's player list.
//
// Usage:
//
//	eng := engine.NewEngineWithDefaults()
//	if err := eng.Configure(5, 4); err != nil {
//		log.Fatal(err)
//	}
//	eng.SetSpecial(17, 4)
//	eng.ConfigurePlayers(2)
//	eng.SetDice([]int{3, 5})
//
//	// Move player A by the next die value
//	entry, err := eng.RollAndMove("A")
//	fmt.Print(eng.Render())
//
// Placement Rules:
//
// A player landing on an occupied cell pushes the resident one cell forward
// first, which may push further residents in turn. The arriving player then
// collects the cell's powerup and follows a snake or ladder. Antivenom cancels
// one snake; Escalator doubles the climb of one ladder. Placements that never
// settle are abandoned and the game is restored to its state before the move.
package engine
