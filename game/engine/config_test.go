package engine

import (
	"strings"
	"testing"
)

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name        string
		rules       Rules
		expectError bool
	}{
		{"defaults", DefaultRules(), false},
		{"double roll", Rules{DoubleRollEnabled: true}, false},
		{"explicit step cap", Rules{MaxResolveSteps: 10}, false},
		{"negative step cap", Rules{MaxResolveSteps: -1}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateRules(test.rules)
			if test.expectError && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !test.expectError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if err != nil && !strings.Contains(err.Error(), "max_resolve_steps") {
				t.Errorf("Expected error to name the field, got %v", err)
			}
		})
	}
}

func TestNewEngine_RejectsInvalidRules(t *testing.T) {
	if _, err := NewEngine(Rules{MaxResolveSteps: -5}); err == nil {
		t.Error("Expected NewEngine to reject invalid rules")
	}
}

func TestResolveStepLimit(t *testing.T) {
	tests := []struct {
		name      string
		rules     Rules
		boardSize int
		players   int
		expected  int
	}{
		{"derived from board", Rules{}, 12, 2, 72},
		{"single player", Rules{}, 5, 1, 20},
		{"explicit cap wins", Rules{MaxResolveSteps: 7}, 100, 4, 7},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.rules.resolveStepLimit(test.boardSize, test.players); got != test.expected {
				t.Errorf("Expected limit %d, got %d", test.expected, got)
			}
		})
	}
}
