// Package command implements the line-oriented command language that drives
// a snakes and ladders game.
//
// Each line holds one whitespace-separated command:
//
//	board <width> <height>
//	players <count>
//	dice <v1> <v2> ... <vn>
//	snake <from> <to>
//	ladder <from> <to>
//	powerup <antivenom|double|escalator> <cell...>
//	move <player> [times]
//
// Blank lines and lines starting with '#' are skipped, and unknown commands
// are ignored. Scripts may start with "# name:" and "# description:" headers.
//
// Usage:
//
//	cmds, err := command.Parse(os.Stdin)
//	if err != nil {
//		return err
//	}
//
//	e := engine.NewEngineWithDefaults()
//	runner := command.NewRunner(e, command.WithLogger(logger))
//	if _, err := runner.Run(ctx, cmds); err != nil {
//		return err
//	}
//	fmt.Print(e.Render())
//
// Error Handling:
//
// Failures are reported as *Error values carrying the line number and command
// name. A move that cannot settle is logged and skipped; any other error is a
// configuration error and stops the run unless WithKeepGoing is set.
package command
