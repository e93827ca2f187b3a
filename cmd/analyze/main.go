// Command analyze prints quick, human-readable heuristics about the scenario
// files in the project's scenarios directory. It summarizes dimensions,
// players and dice, counts snakes, ladders and powerups, and highlights
// snake/ladder chains that would trap a player in a loop.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wricardo/snakes-ladders/game/command"
	"github.com/wricardo/snakes-ladders/game/engine"
)

// ScenarioSummary is what analysis reports for one scenario file.
type ScenarioSummary struct {
	Name        string
	Description string
	Width       int
	Height      int
	Players     int
	Dice        []int
	Snakes      int
	Ladders     int
	Powerups    map[engine.PowerupKind]int
	Loops       []int
}

func main() {
	dir := "scenarios"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.snl"))
	if err != nil || len(files) == 0 {
		fmt.Printf("No scenario files found in %s\n", dir)
		return
	}
	sort.Strings(files)

	for _, path := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(path))
		analyzeScenario(path, os.Stdout)
	}
}

func analyzeScenario(path string, out io.Writer) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(out, "Error reading file: %v\n", err)
		return
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	summary, err := summarize(name, f)
	if err != nil {
		fmt.Fprintf(out, "Error running scenario: %v\n", err)
		return
	}
	printSummary(out, summary)
}

// summarize runs a scenario on a scratch engine and inspects the result
func summarize(name string, r io.Reader) (*ScenarioSummary, error) {
	script, err := command.ParseScript(name, r)
	if err != nil {
		return nil, err
	}

	e := engine.NewEngineWithDefaults()
	if _, err := command.NewRunner(e).Run(context.Background(), script.Commands); err != nil {
		return nil, err
	}

	state := e.GetState()
	summary := &ScenarioSummary{
		Name:        script.Name,
		Description: script.Description,
		Width:       state.Width,
		Height:      state.Height,
		Players:     len(state.Players),
		Dice:        state.Dice,
		Snakes:      engine.CountCellType(state.Cells, engine.Snake),
		Ladders:     engine.CountCellType(state.Cells, engine.Ladder),
		Powerups:    make(map[engine.PowerupKind]int),
	}
	for _, kind := range engine.PowerupKinds {
		summary.Powerups[kind] = engine.CountPowerup(state.Cells, kind)
	}
	if board := e.GetBoard(); board != nil {
		summary.Loops = engine.FindSpecialLoops(board)
	}
	return summary, nil
}

func printSummary(out io.Writer, s *ScenarioSummary) {
	fmt.Fprintf(out, "Name: %s\n", s.Name)
	if s.Description != "" {
		fmt.Fprintf(out, "Description: %s\n", s.Description)
	}
	fmt.Fprintf(out, "Board: %d x %d (%d cells)\n", s.Width, s.Height, s.Width*s.Height)
	fmt.Fprintf(out, "Players: %d\n", s.Players)
	fmt.Fprintf(out, "Dice: %v\n", s.Dice)
	fmt.Fprintf(out, "Snakes: %d, Ladders: %d\n", s.Snakes, s.Ladders)
	for _, kind := range engine.PowerupKinds {
		fmt.Fprintf(out, "Powerup %s: %d\n", kind, s.Powerups[kind])
	}

	if s.Width == 0 {
		fmt.Fprintf(out, "⚠️  WARNING: scenario never configures a board\n")
		return
	}
	if s.Players > 0 && len(s.Dice) == 0 {
		fmt.Fprintf(out, "⚠️  WARNING: players are placed but no dice are set, moves will fail\n")
	}

	if len(s.Loops) > 0 {
		fmt.Fprintf(out, "⚠️  WARNING: %d snake/ladder chains loop and will not settle!\n", len(s.Loops))
		for i, start := range s.Loops {
			if i < 5 { // Show first 5 loops
				fmt.Fprintf(out, "   Loop starts at cell %d\n", start)
			}
		}
		if len(s.Loops) > 5 {
			fmt.Fprintf(out, "   ... and %d more\n", len(s.Loops)-5)
		}
	} else {
		fmt.Fprintf(out, "✅ Every snake and ladder chain settles\n")
	}
}
