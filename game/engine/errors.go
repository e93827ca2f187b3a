package engine

import "errors"

var (
	ErrInvalidDimensions  = errors.New("board dimensions must be positive and within the cell limit")
	ErrBoardNotConfigured = errors.New("board not configured")
	ErrCellOutOfRange     = errors.New("cell index out of range")
	ErrTooManyPlayers     = errors.New("too many players")
	ErrNoDice             = errors.New("dice sequence is empty")
	ErrInvalidDie         = errors.New("die values must be positive")
	ErrUnknownPlayer      = errors.New("unknown player")
	ErrUnknownPowerup     = errors.New("unknown powerup")
	ErrMoveCount          = errors.New("move count out of range")
	ErrResolutionLoop     = errors.New("board resolution did not settle")
)

var configErrors = []error{
	ErrInvalidDimensions,
	ErrBoardNotConfigured,
	ErrCellOutOfRange,
	ErrTooManyPlayers,
	ErrNoDice,
	ErrInvalidDie,
	ErrUnknownPlayer,
	ErrUnknownPowerup,
	ErrMoveCount,
}

// IsConfigError reports whether err stems from invalid game setup rather than
// from a resolution anomaly
func IsConfigError(err error) bool {
	for _, target := range configErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
