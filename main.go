// Command santorini plays a two-player game of Santorini on the terminal.
//
// The four arguments place the pawns as name;row;col, the first two for p1
// and the last two for p2:
//
//	santorini a;0;0 b;0;1 c;4;4 d;4;3
//
// Commands are then read from standard input, one per line, and every reply
// is written to standard output. Logs go to standard error and, with
// --log-file, to a rotated JSON file. The rulesets subcommand lists the
// rulesets found in the config directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/wricardo/santorini/game/command"
	"github.com/wricardo/santorini/game/config"
	"github.com/wricardo/santorini/game/service"
	"github.com/wricardo/santorini/game/session"
	"github.com/wricardo/santorini/logs"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "santorini"
)

// defaultConfigDir is used when neither the flag nor the environment names one
const defaultConfigDir = "configs"

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env file: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdin, os.Stdout).Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stdout, "Error, %v\n", err)
		os.Exit(1)
	}
}

func newApp(in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      AppName,
		Usage:     "play Santorini on the terminal",
		Version:   Version,
		ArgsUsage: "<pawn> <pawn> <pawn> <pawn>",
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   defaultConfigDir,
				Usage:   "directory containing ruleset files",
				Sources: cli.EnvVars("SANTORINI_CONFIG_DIR"),
			},
			&cli.BoolFlag{
				Name:    "builtin",
				Usage:   "ignore the config directory and use the built-in standard ruleset",
				Sources: cli.EnvVars("SANTORINI_BUILTIN"),
			},
			&cli.StringFlag{
				Name:    "ruleset",
				Usage:   "ruleset to play, the config directory default when empty",
				Sources: cli.EnvVars("SANTORINI_RULESET"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars("SANTORINI_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "also write JSON logs to this file",
				Sources: cli.EnvVars("SANTORINI_LOG_FILE"),
			},
			&cli.BoolFlag{
				Name:    "log-dev",
				Usage:   "development logging with stack traces",
				Sources: cli.EnvVars("SANTORINI_LOG_DEV"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "rulesets",
				Usage: "list the available rulesets",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return listRulesets(ctx, cmd, out)
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return play(ctx, cmd, in, out)
		},
	}
}

// play starts a game from the pawn arguments and runs the console until the
// game ends or input runs out
func play(ctx context.Context, cmd *cli.Command, in io.Reader, out io.Writer) error {
	logger := newLogger(cmd)
	defer logger.Sync()

	gameService, err := initializeServices(configDir(cmd), logger)
	if err != nil {
		return err
	}

	info, err := gameService.NewGame(ctx, cmd.String("ruleset"), cmd.Args().Slice())
	if err != nil {
		return err
	}

	return command.NewConsole(gameService, info.ID, out, logger).Run(ctx, in)
}

func listRulesets(ctx context.Context, cmd *cli.Command, out io.Writer) error {
	logger := newLogger(cmd)
	defer logger.Sync()

	gameService, err := initializeServices(configDir(cmd), logger)
	if err != nil {
		return err
	}
	rulesets, err := gameService.ListRulesets(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBAG\tDRAWS\tCARDS\tDESCRIPTION")
	for _, r := range rulesets {
		fmt.Fprintf(w, "%s\t%s\tC;%dD;%d\t%d\t%d\t%s\n",
			r.RulesetID, r.Name, r.BlockSupply, r.CapSupply, r.MaxCardDraws, r.Cards, r.Description)
	}
	return w.Flush()
}

func newLogger(cmd *cli.Command) *zap.Logger {
	return logs.New(AppName, logs.Config{
		Level:      cmd.String("log-level"),
		File:       cmd.String("log-file"),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Dev:        cmd.Bool("log-dev"),
	})
}

// configDir returns the configured ruleset directory, or "" for the built-in
// rules. The default directory is optional: without it the built-in standard
// ruleset is used.
func configDir(cmd *cli.Command) string {
	if cmd.Bool("builtin") {
		return ""
	}
	dir := cmd.String("config-dir")
	if cmd.IsSet("config-dir") {
		return dir
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return dir
}

// initializeServices wires the ruleset and session managers into the game service
func initializeServices(configDir string, logger *zap.Logger) (service.GameService, error) {
	rulesets, err := config.NewManager(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	logger.Debug("rulesets ready",
		zap.String("config_dir", configDir),
		zap.String("default", rulesets.GetDefault().Name),
	)

	return service.NewGameService(session.NewManager(), rulesets, logger), nil
}
