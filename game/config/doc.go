// Package config provides scenario management for the snakes and ladders
// simulator.
//
// The config package handles:
//   - Loading scenario scripts from .snl files
//   - Scenario validation by dry-running the script
//   - Default scenario management
//   - Scenario discovery and listing
//
// Scenario Format:
//
// A scenario is a command script (see package command) stored as
// <name>.snl in the scenario directory. Optional header comments give the
// display name and a description:
//
//	# name: Classic
//	# description: 10x10 board with the usual snakes and ladders
//	board 10 10
//	players 2
//	dice 1 2 3 4 5 6
//	ladder 4 14
//	snake 17 7
//
// Usage:
//
//	manager, err := config.NewManager("scenarios")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific scenario
//	script, err := manager.LoadScenario("classic")
//
//	// Get default scenario
//	script = manager.GetDefault()
//
//	// List available scenarios
//	infos, err := manager.ListScenarios()
//
// Validation:
//
// A scenario is valid when every command applies cleanly on a fresh board.
// Moves that do not settle are tolerated, just as they are during play.
package config
