// Command analyze replays recorded game transcripts and prints a summary of
// each one: accepted and rejected actions, the reasons for rejections, cards
// drawn, special events and the winner.
//
// A transcript is a text file whose first line holds the four pawn
// descriptors separated by spaces, followed by one console command per line.
// Blank lines and lines starting with # are ignored.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/wricardo/santorini/game/command"
	"github.com/wricardo/santorini/game/config"
	"github.com/wricardo/santorini/game/engine"
	"github.com/wricardo/santorini/game/service"
	"github.com/wricardo/santorini/game/session"
	"github.com/wricardo/santorini/logs"
)

// Summary is the analysis of one transcript
type Summary struct {
	File        string
	Ruleset     string
	Commands    int
	Accepted    map[engine.ActionType]int
	Rejected    map[string]int // reason -> count
	Unparsable  int
	Queries     int
	Unplayed    int // lines after the game ended or quit
	Cards       []string
	Events      map[string]int
	Turns       int
	Winner      string
	EndReason   engine.EndReason
	FinalBoard  string
	FinalSupply string
}

// transcript is a parsed transcript file
type transcript struct {
	pawns    []string
	commands []string
}

func readTranscript(r io.Reader) (*transcript, error) {
	t := &transcript{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if t.pawns == nil {
			t.pawns = strings.Fields(line)
			continue
		}
		t.commands = append(t.commands, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if t.pawns == nil {
		return nil, fmt.Errorf("transcript has no pawn line")
	}
	return t, nil
}

// analyze replays a transcript against a fresh game
func analyze(ctx context.Context, svc service.GameService, ruleset string, r io.Reader) (*Summary, error) {
	t, err := readTranscript(r)
	if err != nil {
		return nil, err
	}

	info, err := svc.NewGame(ctx, ruleset, t.pawns)
	if err != nil {
		return nil, fmt.Errorf("failed to set up game: %w", err)
	}
	defer svc.DeleteSession(ctx, info.ID)

	summary := &Summary{
		Ruleset:  info.RulesetName,
		Commands: len(t.commands),
		Accepted: make(map[engine.ActionType]int),
		Rejected: make(map[string]int),
		Events:   make(map[string]int),
	}

	for i, line := range t.commands {
		cmd, err := command.Parse(line)
		if err != nil {
			summary.Unparsable++
			continue
		}

		var result *service.ActionResult
		switch cmd.Name {
		case command.Quit:
			summary.Unplayed = len(t.commands) - i - 1
		case command.Print, command.CellPrint, command.Bag:
			summary.Queries++
			continue
		case command.Move:
			result, err = svc.Move(ctx, info.ID, cmd.Pawn, cmd.At)
		case command.Build:
			result, err = svc.Build(ctx, info.ID, cmd.Piece, cmd.At)
		case command.DrawCard:
			result, err = svc.DrawCard(ctx, info.ID, cmd.Card)
		case command.Turn:
			result, err = svc.EndTurn(ctx, info.ID)
		case command.Surrender:
			result, err = svc.Surrender(ctx, info.ID)
		}
		if err != nil {
			return nil, err
		}
		if result == nil {
			break
		}

		if !result.Success {
			summary.Rejected[result.Message]++
		} else {
			summary.Accepted[result.Action]++
			for _, ev := range result.Events {
				summary.Events[ev.Type]++
				if ev.Type == service.EventCard {
					summary.Cards = append(summary.Cards, fmt.Sprintf("%s %s", result.Player, cmd.Card))
				}
			}
		}
		if result.GameOver {
			summary.Unplayed = len(t.commands) - i - 1
			break
		}
	}

	state, err := svc.GetGameState(ctx, info.ID)
	if err != nil {
		return nil, err
	}
	summary.Turns = state.TurnNumber
	summary.Winner = state.Winner
	summary.EndReason = state.EndReason
	if summary.FinalBoard, err = svc.RenderBoard(ctx, info.ID); err != nil {
		return nil, err
	}
	if summary.FinalSupply, err = svc.Bag(ctx, info.ID); err != nil {
		return nil, err
	}
	return summary, nil
}

// printSummary writes a human readable report
func printSummary(w io.Writer, s *Summary) {
	accepted := 0
	for _, n := range s.Accepted {
		accepted += n
	}
	rejected := 0
	for _, n := range s.Rejected {
		rejected += n
	}

	fmt.Fprintf(w, "\n=== %s ===\n", s.File)
	fmt.Fprintf(w, "Ruleset: %s\n", s.Ruleset)
	fmt.Fprintf(w, "Commands: %d (%d accepted, %d rejected, %d unparsable, %d queries, %d unplayed)\n",
		s.Commands, accepted, rejected, s.Unparsable, s.Queries, s.Unplayed)
	fmt.Fprintf(w, "Turns: %d\n", s.Turns)
	for _, action := range []engine.ActionType{engine.ActionMove, engine.ActionBuild, engine.ActionDrawCard, engine.ActionEndTurn, engine.ActionSurrender} {
		if n := s.Accepted[action]; n > 0 {
			fmt.Fprintf(w, "  %s: %d\n", action, n)
		}
	}

	if len(s.Cards) > 0 {
		fmt.Fprintf(w, "Cards drawn: %s\n", strings.Join(s.Cards, ", "))
	}
	for _, ev := range []string{service.EventSwap, service.EventAthenaRestriction} {
		if n := s.Events[ev]; n > 0 {
			fmt.Fprintf(w, "Events %s: %d\n", ev, n)
		}
	}

	if rejected > 0 {
		fmt.Fprintln(w, "Rejections:")
		reasons := make([]string, 0, len(s.Rejected))
		for reason := range s.Rejected {
			reasons = append(reasons, reason)
		}
		sort.Slice(reasons, func(i, j int) bool {
			if s.Rejected[reasons[i]] != s.Rejected[reasons[j]] {
				return s.Rejected[reasons[i]] > s.Rejected[reasons[j]]
			}
			return reasons[i] < reasons[j]
		})
		for _, reason := range reasons {
			fmt.Fprintf(w, "  %s: %d\n", reason, s.Rejected[reason])
		}
	}

	if s.Winner != "" {
		fmt.Fprintf(w, "Winner: %s (%s)\n", s.Winner, s.EndReason)
	} else {
		fmt.Fprintln(w, "Winner: none, game unfinished")
	}
	fmt.Fprintf(w, "Bag: %s\n", s.FinalSupply)
	fmt.Fprintln(w, s.FinalBoard)
}

func analyzeFile(ctx context.Context, svc service.GameService, ruleset, path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	summary, err := analyze(ctx, svc, ruleset, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	summary.File = filepath.Base(path)
	return summary, nil
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "replay game transcripts and summarize them",
		ArgsUsage: "<transcript> [transcript ...]",
		Writer:    out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Usage:   "directory containing ruleset files",
				Sources: cli.EnvVars("SANTORINI_CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "ruleset",
				Usage:   "ruleset the transcripts were played with",
				Sources: cli.EnvVars("SANTORINI_RULESET"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Sources: cli.EnvVars("SANTORINI_LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return fmt.Errorf("at least one transcript is required")
			}

			logger := logs.New("analyze", logs.Config{Level: cmd.String("log-level")})
			defer logger.Sync()

			rulesets, err := config.NewManager(cmd.String("config-dir"))
			if err != nil {
				return fmt.Errorf("failed to create config manager: %w", err)
			}
			svc := service.NewGameService(session.NewManager(), rulesets, logger)

			for _, path := range cmd.Args().Slice() {
				summary, err := analyzeFile(ctx, svc, cmd.String("ruleset"), path)
				if err != nil {
					logger.Error("analysis failed", zap.String("file", path), zap.Error(err))
					fmt.Fprintf(out, "\n=== %s ===\nError: %v\n", filepath.Base(path), err)
					continue
				}
				printSummary(out, summary)
			}
			return nil
		},
	}
}

func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
