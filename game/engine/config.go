package engine

import "fmt"

// Rules holds the tunable game rules
type Rules struct {
	// DoubleRollEnabled makes a held DoubleRoll powerup double the next die value.
	// When false DoubleRoll is only collected and shown.
	DoubleRollEnabled bool `json:"double_roll_enabled"`

	// MaxResolveSteps caps resolver work per placement. Zero selects
	// 2 * size * (players + 1).
	MaxResolveSteps int `json:"max_resolve_steps"`
}

// DefaultRules returns the rules used when none are supplied
func DefaultRules() Rules {
	return Rules{}
}

// ValidateRules checks rule values for correctness
func ValidateRules(rules Rules) error {
	if rules.MaxResolveSteps < 0 {
		return fmt.Errorf("rules validation: max_resolve_steps must not be negative, got %d", rules.MaxResolveSteps)
	}
	return nil
}

// resolveStepLimit returns the work cap for a single placement
func (r Rules) resolveStepLimit(boardSize, players int) int {
	if r.MaxResolveSteps > 0 {
		return r.MaxResolveSteps
	}
	return 2 * boardSize * (players + 1)
}
