package command

import (
	"errors"
	"fmt"

	"github.com/wricardo/snakes-ladders/game/engine"
)

var (
	ErrArity           = errors.New("wrong number of arguments")
	ErrInvalidArgument = errors.New("arguments must be positive integers")
	ErrWrongDirection  = errors.New("special cell points the wrong way")
)

// Error reports a command that could not be applied
type Error struct {
	Line    int
	Command string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Command, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is a configuration error rather than a
// resolution anomaly
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	return !engine.IsResolutionLoop(err)
}
