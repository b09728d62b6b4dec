package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/wricardo/santorini/game/engine"
	"github.com/wricardo/santorini/game/service"
)

// Console plays one game over a line protocol
type Console struct {
	svc    service.GameService
	gameID string
	out    io.Writer
	logger *zap.Logger
}

// NewConsole binds a console to a running game. Replies go to out.
func NewConsole(svc service.GameService, gameID string, out io.Writer, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		svc:    svc,
		gameID: gameID,
		out:    out,
		logger: logger.Named("console").With(zap.String("game_id", gameID)),
	}
}

// Run executes commands read from in until quit, end of input or the end of
// the game.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := c.Execute(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	c.logger.Debug("input closed")
	return nil
}

// Execute runs a single line and writes its reply. done reports that the
// session is finished, either by quit or because the game ended. Rejected
// commands are printed, not returned; the error is reserved for failures of
// the game service.
func (c *Console) Execute(ctx context.Context, line string) (done bool, err error) {
	cmd, err := Parse(line)
	if err != nil {
		c.logger.Debug("parse failed", zap.String("line", line), zap.Error(err))
		return false, c.errorf(err)
	}

	var result *service.ActionResult
	switch cmd.Name {
	case Quit:
		c.logger.Debug("quit")
		return true, nil
	case Print:
		board, err := c.svc.RenderBoard(ctx, c.gameID)
		if err != nil {
			return false, err
		}
		return false, c.println(board)
	case CellPrint:
		cell, err := c.svc.RenderCell(ctx, c.gameID, cmd.At)
		if errors.Is(err, engine.ErrOutOfBounds) {
			return false, c.errorf(err)
		}
		if err != nil {
			return false, err
		}
		return false, c.println(cell)
	case Bag:
		bag, err := c.svc.Bag(ctx, c.gameID)
		if err != nil {
			return false, err
		}
		return false, c.println(bag)
	case Move:
		result, err = c.svc.Move(ctx, c.gameID, cmd.Pawn, cmd.At)
	case Build:
		result, err = c.svc.Build(ctx, c.gameID, cmd.Piece, cmd.At)
	case DrawCard:
		result, err = c.svc.DrawCard(ctx, c.gameID, cmd.Card)
	case Turn:
		result, err = c.svc.EndTurn(ctx, c.gameID)
	case Surrender:
		result, err = c.svc.Surrender(ctx, c.gameID)
	}
	if err != nil {
		return false, err
	}
	return c.report(result)
}

func (c *Console) report(result *service.ActionResult) (bool, error) {
	if !result.Success {
		return result.GameOver, c.println("Error, " + result.Message)
	}
	return result.GameOver, c.println(result.Message)
}

func (c *Console) errorf(err error) error {
	return c.println("Error, " + err.Error())
}

func (c *Console) println(s string) error {
	_, err := fmt.Fprintln(c.out, s)
	return err
}
