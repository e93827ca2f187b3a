package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/snakes-ladders/game/engine"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.snl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scenario: %v", err)
	}
	return path
}

func hasMessage(result ValidationResult, substr string) bool {
	for _, msg := range result.Errors {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

func TestValidateScenario_Valid(t *testing.T) {
	path := writeScenario(t, `# name: Test Scenario
board 4 4
players 2
dice 1 2 3
ladder 3 10
snake 14 5
powerup antivenom 7
`)

	result := validateScenario(path)
	if !result.Valid {
		t.Errorf("Expected valid scenario, but got errors: %v", result.Errors)
	}
	if result.File != "test.snl" {
		t.Errorf("Expected file name test.snl, got %s", result.File)
	}
	if !hasMessage(result, "Name: Test Scenario") || !hasMessage(result, "Board: 4x4") {
		t.Errorf("Expected informational messages, got %v", result.Errors)
	}
}

func TestValidateScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"config error", "board 3 3\nplayers 1\ndice 1\nsnake 2 8\n", "line 4"},
		{"unknown command", "board 3 3\nplayers 1\ndice 1\nteleprot A 9\n", "unknown command \"teleprot\""},
		{"no board", "# name: Empty\n", "No board configured"},
		{"no players", "board 3 3\ndice 1\n", "No players placed"},
		{"no dice", "board 3 3\nplayers 2\n", "no dice are set"},
		{"loop", "board 5 1\nplayers 1\ndice 1\nladder 2 4\nsnake 4 2\n", "chain starting at cell 2 loops"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := validateScenario(writeScenario(t, test.content))
			if result.Valid {
				t.Fatal("Expected invalid scenario")
			}
			if !hasMessage(result, test.message) {
				t.Errorf("Expected %q in errors, got %v", test.message, result.Errors)
			}
		})
	}
}

func TestValidateScenario_NoNameHeader(t *testing.T) {
	result := validateScenario(writeScenario(t, "board 2 2\nplayers 1\ndice 1\n"))
	if !result.Valid {
		t.Fatalf("Expected valid scenario, got %v", result.Errors)
	}
	if !hasMessage(result, `No name header, using "test"`) {
		t.Errorf("Expected file name fallback message, got %v", result.Errors)
	}
}

func TestValidateScenario_MissingFile(t *testing.T) {
	result := validateScenario(filepath.Join(t.TempDir(), "nonexistent.snl"))
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if !hasMessage(result, "Failed to read file") {
		t.Errorf("Expected read error, got %v", result.Errors)
	}
}

func TestValidateChains(t *testing.T) {
	board, err := engine.NewBoard(4, 2)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	board.SetSpecial(2, 7)
	board.SetSpecial(8, 3)

	result := validateChains(board)
	if !result.Valid {
		t.Errorf("Expected chains to settle, got %v", result.Errors)
	}
	if !hasMessage(result, "Snakes: 1, Ladders: 1") {
		t.Errorf("Expected counts, got %v", result.Errors)
	}

	board.SetSpecial(7, 2)
	result = validateChains(board)
	if result.Valid {
		t.Error("Expected a loop between cells 2 and 7")
	}
}

func TestShippedScenarios(t *testing.T) {
	files, _ := filepath.Glob(filepath.Join("..", "scenarios", "*.snl"))
	if len(files) == 0 {
		t.Skip("Skipping test - scenarios directory not found")
	}
	for _, file := range files {
		if result := validateScenario(file); !result.Valid {
			t.Errorf("%s: %v", filepath.Base(file), result.Errors)
		}
	}
}
