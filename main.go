// Command snl runs the snakes and ladders simulator.
//
// It supports three modes:
//  1. "play" (default): reads commands from files or stdin and prints the board once
//  2. "scenarios": lists the scenario files in the scenario directory, and
//     "scenarios save" checks a command file and stores it as a scenario
//  3. "mcp": runs an MCP stdio server with in-memory sessions
//
// Flags control logging, the scenario directory and the engine rules. Every
// global flag can also be set from the environment or a .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/wricardo/snakes-ladders/game/command"
	"github.com/wricardo/snakes-ladders/game/config"
	"github.com/wricardo/snakes-ladders/game/engine"
	"github.com/wricardo/snakes-ladders/game/service"
	"github.com/wricardo/snakes-ladders/game/session"
	"github.com/wricardo/snakes-ladders/internal/logx"
	"github.com/wricardo/snakes-ladders/transport/mcp"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Snakes and Ladders Simulator"
)

const (
	sessionCleanupInterval = 10 * time.Minute
	sessionMaxAge          = 24 * time.Hour
)

// main loads the environment, builds the command tree and runs it.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the CLI. Flags are inherited by the subcommands, and the
// root action is play, so "snl game.txt" and "snl play game.txt" match.
func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	play := func(ctx context.Context, cmd *cli.Command) error {
		logger := newLogger(cmd, stderr)
		defer logger.Sync()

		opts := playOptions{
			Rules:       rulesFromFlags(cmd),
			ScenarioDir: cmd.String("scenario-dir"),
			Scenario:    cmd.String("scenario"),
			KeepGoing:   cmd.Bool("keep-going"),
			Logger:      logger,
		}
		paths := cmd.Args().Slice()
		if len(paths) == 0 && opts.Scenario != "" {
			// A scenario on its own is a complete game
			stdin = strings.NewReader("")
		}
		inputs, closeAll, err := openInputs(paths, stdin)
		if err != nil {
			return err
		}
		defer closeAll()
		return runPlay(ctx, opts, inputs, stdout)
	}

	return &cli.Command{
		Name:    "snl",
		Usage:   AppName,
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("SNL_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "also write JSON logs to this file, rotated by size",
				Sources: cli.EnvVars("SNL_LOG_FILE"),
			},
			&cli.StringFlag{
				Name:    "scenario-dir",
				Value:   "scenarios",
				Usage:   "directory containing scenario files",
				Sources: cli.EnvVars("SCENARIO_DIR"),
			},
			&cli.BoolFlag{
				Name:    "double-roll",
				Usage:   "let a held double powerup double the next roll",
				Sources: cli.EnvVars("SNL_DOUBLE_ROLL"),
			},
			&cli.IntFlag{
				Name:    "max-resolve-steps",
				Usage:   "cap on placement steps per move (0 uses a limit derived from the board)",
				Sources: cli.EnvVars("SNL_MAX_RESOLVE_STEPS"),
			},
			&cli.StringFlag{
				Name:    "default-scenario",
				Usage:   "scenario for MCP sessions created without one (classic when empty)",
				Sources: cli.EnvVars("SNL_DEFAULT_SCENARIO"),
			},
			&cli.StringFlag{
				Name:  "scenario",
				Usage: "run the named scenario before the input commands",
			},
			&cli.BoolFlag{
				Name:  "keep-going",
				Usage: "skip lines with configuration errors instead of stopping",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "play",
				Usage:     "run commands from files or stdin and print the board",
				ArgsUsage: "[file...]",
				Action:    play,
			},
			{
				Name:  "scenarios",
				Usage: "list available scenarios",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return listScenarios(cmd.String("scenario-dir"), stdout)
				},
				Commands: []*cli.Command{
					{
						Name:      "save",
						Usage:     "validate a command file and store it as a scenario",
						ArgsUsage: "<name> <file>",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							if cmd.Args().Len() != 2 {
								return fmt.Errorf("usage: snl scenarios save <name> <file>")
							}
							return saveScenario(cmd.String("scenario-dir"), cmd.Args().Get(0), cmd.Args().Get(1), stdout)
						},
					},
				},
			},
			{
				Name:  "mcp",
				Usage: "run an MCP stdio server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					logger := newLogger(cmd, stderr)
					defer logger.Sync()
					return runStdioMCP(ctx, cmd, logger)
				},
			},
		},
		ArgsUsage: "[file...]",
		Action:    play,
	}
}

func newLogger(cmd *cli.Command, stderr io.Writer) *zap.Logger {
	level := cmd.String("log-level")
	return logx.New("snl", logx.Config{
		Level:      level,
		File:       cmd.String("log-file"),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
		Dev:        logx.ParseLevel(level) == zap.DebugLevel,
	}, stderr)
}

func rulesFromFlags(cmd *cli.Command) engine.Rules {
	rules := engine.DefaultRules()
	rules.DoubleRollEnabled = cmd.Bool("double-roll")
	rules.MaxResolveSteps = int(cmd.Int("max-resolve-steps"))
	return rules
}

// openInputs opens the named files, or returns stdin when there are none
func openInputs(paths []string, stdin io.Reader) ([]io.Reader, func(), error) {
	if len(paths) == 0 {
		return []io.Reader{stdin}, func() {}, nil
	}

	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}

	inputs := make([]io.Reader, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		files = append(files, f)
		inputs = append(inputs, f)
	}
	return inputs, closeAll, nil
}

// playOptions configures a single play run
type playOptions struct {
	Rules       engine.Rules
	ScenarioDir string
	Scenario    string
	KeepGoing   bool
	Logger      *zap.Logger
}

// runPlay feeds the scenario (if any) and every input through one engine,
// then writes the rendered board to out.
func runPlay(ctx context.Context, opts playOptions, inputs []io.Reader, out io.Writer) error {
	logger := logx.OrNop(opts.Logger)

	e, err := engine.NewEngine(opts.Rules, engine.WithLogger(logger))
	if err != nil {
		return err
	}
	runner := command.NewRunner(e,
		command.WithLogger(logger),
		command.WithKeepGoing(opts.KeepGoing))

	if opts.Scenario != "" {
		scenarios, err := config.NewManager(opts.ScenarioDir)
		if err != nil {
			return err
		}
		script, err := scenarios.LoadScenario(opts.Scenario)
		if err != nil {
			return err
		}
		logger.Info("running scenario", zap.String("scenario", script.Name))
		if _, err := runner.Run(ctx, script.Commands); err != nil {
			return fmt.Errorf("scenario %s: %w", opts.Scenario, err)
		}
	}

	for _, in := range inputs {
		cmds, err := command.Parse(in)
		if err != nil {
			return err
		}
		report, err := runner.Run(ctx, cmds)
		if err != nil {
			return err
		}
		logger.Debug("input consumed",
			zap.Int("applied", report.Applied),
			zap.Int("ignored", len(report.Ignored)),
			zap.Int("recovered", len(report.Recovered)),
			zap.Int("moves", len(report.Moves)))
	}

	_, err = io.WriteString(out, e.Render())
	return err
}

// listScenarios prints one line per valid scenario file
func listScenarios(dir string, out io.Writer) error {
	scenarios, err := config.NewManager(dir)
	if err != nil {
		return err
	}
	infos, err := scenarios.ListScenarios()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintf(out, "No scenarios in %s\n", dir)
		return nil
	}
	for _, info := range infos {
		fmt.Fprintf(out, "%-12s %dx%d, %d player(s)  %s\n",
			info.ScenarioID, info.Width, info.Height, info.Players, info.Description)
	}
	return nil
}

// saveScenario copies a command file into the scenario directory once it
// runs cleanly
func saveScenario(dir, name, path string, out io.Writer) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	scenarios, err := config.NewManager(dir)
	if err != nil {
		return err
	}
	if err := scenarios.SaveScenario(name, string(content)); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved scenario %s\n", strings.TrimSuffix(name, config.Extension))
	return nil
}

// initializeServices wires the scenario and session managers into the game
// service. An empty defaultScenario keeps the manager's own choice.
func initializeServices(scenarioDir, defaultScenario string, rules engine.Rules, logger *zap.Logger) (service.GameService, *session.Manager, error) {
	scenarios, err := config.NewManager(scenarioDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create scenario manager: %w", err)
	}
	if defaultScenario != "" {
		if err := scenarios.SetDefault(defaultScenario); err != nil {
			return nil, nil, fmt.Errorf("failed to set default scenario: %w", err)
		}
	}
	sessions := session.NewManager(session.WithRules(rules), session.WithLogger(logger))
	svc := service.NewGameService(sessions, scenarios, service.WithLogger(logger))
	return svc, sessions, nil
}

// runStdioMCP serves MCP over stdin/stdout until the client disconnects
func runStdioMCP(ctx context.Context, cmd *cli.Command, logger *zap.Logger) error {
	svc, sessions, err := initializeServices(cmd.String("scenario-dir"), cmd.String("default-scenario"), rulesFromFlags(cmd), logger)
	if err != nil {
		return err
	}

	cleanupCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go sessions.RunCleanup(cleanupCtx, sessionCleanupInterval, sessionMaxAge)

	logger.Info("starting MCP stdio server", zap.String("version", Version))
	srv := mcp.NewServer(svc, Version, logger)
	if err := srv.ServeStdio(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("MCP server error: %w", err)
	}
	logger.Info("MCP server stopped", zap.Int("sessions", sessions.Count()))
	return nil
}
