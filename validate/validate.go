// Command validate provides a small CLI that validates scenario files in the
// ../scenarios directory. It checks:
//   - Every line parses and runs without a configuration error
//   - No line is an unknown command (a likely typo in a scenario file)
//   - A board is configured and at least one player is placed
//   - Dice are set whenever players are present
//   - No snake/ladder chain loops back on itself
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/snakes-ladders/game/command"
	"github.com/wricardo/snakes-ladders/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) info(format string, args ...interface{}) {
	r.Errors = append(r.Errors, "✓ "+fmt.Sprintf(format, args...))
}

// validateScenario loads and validates a single scenario file.
func validateScenario(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	f, err := os.Open(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}
	defer f.Close()

	name := strings.TrimSuffix(result.File, filepath.Ext(result.File))
	script, err := command.ParseScript(name, f)
	if err != nil {
		result.fail("Failed to parse: %v", err)
		return result
	}
	if script.Name == name {
		result.info("No name header, using %q", name)
	} else {
		result.info("Name: %s", script.Name)
	}

	e := engine.NewEngineWithDefaults()
	report, err := command.NewRunner(e).Run(context.Background(), script.Commands)
	if err != nil {
		result.fail("%v", err)
		return result
	}

	for _, cmd := range report.Ignored {
		result.fail("line %d: unknown command %q", cmd.Line, cmd.Name)
	}
	for _, recovered := range report.Recovered {
		result.fail("%v", recovered)
	}

	board := e.GetBoard()
	if board == nil {
		result.fail("No board configured")
		return result
	}
	result.info("Board: %dx%d", board.Width(), board.Height())

	players := e.GetPlayers()
	if len(players) == 0 {
		result.fail("No players placed")
	} else {
		result.info("Players: %d", len(players))
	}

	state := e.GetState()
	if len(players) > 0 && len(state.Dice) == 0 {
		result.fail("Players are placed but no dice are set")
	}

	chains := validateChains(board)
	result.Errors = append(result.Errors, chains.Errors...)
	if !chains.Valid {
		result.Valid = false
	}

	return result
}

// validateChains reports every snake/ladder chain that never settles
func validateChains(board *engine.Board) ValidationResult {
	result := ValidationResult{Valid: true, Errors: []string{}}

	loops := engine.FindSpecialLoops(board)
	for _, start := range loops {
		result.fail("Snake/ladder chain starting at cell %d loops", start)
	}
	if len(loops) == 0 {
		cells := board.Cells()
		result.info("Snakes: %d, Ladders: %d, all chains settle",
			engine.CountCellType(cells, engine.Snake),
			engine.CountCellType(cells, engine.Ladder))
	}
	return result
}

func main() {
	scenarioDir := "../scenarios"
	if len(os.Args) > 1 {
		scenarioDir = os.Args[1]
	}
	files, err := filepath.Glob(filepath.Join(scenarioDir, "*.snl"))
	if err != nil {
		fmt.Printf("Error finding scenario files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateScenario(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All scenarios are valid!")
	} else {
		fmt.Println("❌ Some scenarios have errors")
		os.Exit(1)
	}
}
