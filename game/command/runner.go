package command

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/wricardo/snakes-ladders/game/engine"
)

// Report summarises a run
type Report struct {
	Applied   int                       `json:"applied"`
	Ignored   []Command                 `json:"ignored,omitempty"`
	Recovered []*Error                  `json:"-"`
	Moves     []engine.MoveHistoryEntry `json:"moves,omitempty"`
}

// Option configures a Runner
type Option func(*Runner)

// WithLogger sets the runner logger
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithKeepGoing makes configuration errors skip the offending line instead of
// stopping the run
func WithKeepGoing(keepGoing bool) Option {
	return func(r *Runner) {
		r.keepGoing = keepGoing
	}
}

// Runner applies commands to a game engine
type Runner struct {
	engine    *engine.GameEngine
	logger    *zap.Logger
	keepGoing bool
}

// NewRunner creates a runner driving e
func NewRunner(e *engine.GameEngine, opts ...Option) *Runner {
	r := &Runner{
		engine: e,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run applies cmds in order. Unknown commands are ignored. Resolution loops
// are logged and the run continues; configuration errors stop the run unless
// the runner keeps going. The report covers everything applied so far even
// when an error is returned.
func (r *Runner) Run(ctx context.Context, cmds []Command) (*Report, error) {
	report := &Report{}

	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if !Known(cmd.Name) {
			r.logger.Debug("ignoring unknown command",
				zap.Int("line", cmd.Line),
				zap.String("command", cmd.Name))
			report.Ignored = append(report.Ignored, cmd)
			continue
		}

		moves, err := r.Apply(cmd)
		report.Moves = append(report.Moves, moves...)
		if err == nil {
			report.Applied++
			continue
		}

		cmdErr := asError(cmd, err)
		if !IsConfigError(err) {
			r.logger.Warn("move did not settle, skipped",
				zap.Int("line", cmd.Line),
				zap.String("command", cmd.String()),
				zap.Error(err))
			report.Recovered = append(report.Recovered, cmdErr)
			continue
		}
		if r.keepGoing {
			r.logger.Warn("skipping invalid command",
				zap.Int("line", cmd.Line),
				zap.String("command", cmd.String()),
				zap.Error(err))
			report.Recovered = append(report.Recovered, cmdErr)
			continue
		}
		return report, cmdErr
	}

	return report, nil
}

// Apply executes one command. Unknown commands are a no-op.
func (r *Runner) Apply(cmd Command) ([]engine.MoveHistoryEntry, error) {
	var (
		moves []engine.MoveHistoryEntry
		err   error
	)

	switch cmd.Name {
	case Board:
		err = r.board(cmd.Args)
	case Players:
		err = r.players(cmd.Args)
	case Dice:
		err = r.dice(cmd.Args)
	case Snake:
		err = r.special(cmd.Args, false)
	case Ladder:
		err = r.special(cmd.Args, true)
	case Powerup:
		err = r.powerup(cmd.Args)
	case Move:
		moves, err = r.move(cmd.Args)
	default:
		return nil, nil
	}

	if err != nil {
		return moves, asError(cmd, err)
	}
	return moves, nil
}

func (r *Runner) board(args []string) error {
	values, err := exactly(args, 2)
	if err != nil {
		return err
	}
	return r.engine.Configure(values[0], values[1])
}

func (r *Runner) players(args []string) error {
	values, err := exactly(args, 1)
	if err != nil {
		return err
	}
	return r.engine.ConfigurePlayers(values[0])
}

func (r *Runner) dice(args []string) error {
	if len(args) == 0 {
		return engine.ErrNoDice
	}
	values, err := positiveInts(args)
	if err != nil {
		return err
	}
	return r.engine.SetDice(values)
}

func (r *Runner) special(args []string, ascending bool) error {
	values, err := exactly(args, 2)
	if err != nil {
		return err
	}
	from, to := values[0], values[1]
	if ascending && to <= from {
		return fmt.Errorf("%w: ladder from %d to %d", ErrWrongDirection, from, to)
	}
	if !ascending && to >= from {
		return fmt.Errorf("%w: snake from %d to %d", ErrWrongDirection, from, to)
	}
	return r.engine.SetSpecial(from, to)
}

func (r *Runner) powerup(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: expected a powerup and at least one cell", ErrArity)
	}
	kind, ok := engine.ParsePowerupKind(args[0])
	if !ok {
		return fmt.Errorf("%w: %q", engine.ErrUnknownPowerup, args[0])
	}
	cells, err := positiveInts(args[1:])
	if err != nil {
		return err
	}
	return r.engine.SetPowerup(kind, cells...)
}

func (r *Runner) move(args []string) ([]engine.MoveHistoryEntry, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, fmt.Errorf("%w: expected a player and an optional count", ErrArity)
	}
	times := 1
	if len(args) == 2 {
		values, err := positiveInts(args[1:])
		if err != nil {
			return nil, err
		}
		times = values[0]
		if times > engine.MaxMovesPerCall {
			return nil, fmt.Errorf("%w: move count %d exceeds %d", ErrInvalidArgument, times, engine.MaxMovesPerCall)
		}
	}
	return r.engine.MoveTimes(args[0], times)
}

// exactly parses exactly n positive integer arguments
func exactly(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrArity, n, len(args))
	}
	return positiveInts(args)
}

func positiveInts(args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidArgument, arg)
		}
		values[i] = v
	}
	return values, nil
}

func asError(cmd Command, err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Line: cmd.Line, Command: cmd.Name, Err: err}
}
