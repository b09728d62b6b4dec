package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wricardo/santorini/game/engine"
)

// Parse failures. ErrUnknownCommand carries the exact text the console prints.
var (
	ErrUnknownCommand   = errors.New("unknown command.")
	ErrInvalidArguments = errors.New("invalid arguments")
)

// Name identifies a console command
type Name string

const (
	Move      Name = "move"
	Build     Name = "build"
	DrawCard  Name = "draw-card"
	Turn      Name = "turn"
	Print     Name = "print"
	CellPrint Name = "cellprint"
	Bag       Name = "bag"
	Surrender Name = "surrender"
	Quit      Name = "quit"
)

// usage lists the argument format of every command that takes one
var usage = map[Name]string{
	Move:      "<pawn>;<row>;<col>",
	Build:     "<C|D>;<row>;<col>",
	DrawCard:  "<card>",
	CellPrint: "<row>;<col>",
}

// Command is one parsed console line
type Command struct {
	Name  Name
	Pawn  string          // move
	Piece string          // build, C or D
	Card  string          // draw-card
	At    engine.Position // move, build, cellprint
}

// Parse reads a single command line. Words are separated by whitespace and
// fields of the argument by semicolons.
func Parse(line string) (Command, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return Command{}, ErrUnknownCommand
	}

	cmd := Command{Name: Name(words[0])}
	args := words[1:]

	switch cmd.Name {
	case Turn, Print, Bag, Surrender, Quit:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrInvalidArguments, cmd.Name)
		}
		return cmd, nil
	case Move, Build, DrawCard, CellPrint:
	default:
		return Command{}, ErrUnknownCommand
	}

	if len(args) != 1 {
		return Command{}, cmd.badArgs()
	}
	fields := strings.Split(args[0], ";")

	switch cmd.Name {
	case DrawCard:
		if fields[0] == "" || len(fields) != 1 {
			return Command{}, cmd.badArgs()
		}
		cmd.Card = fields[0]
	case CellPrint:
		if len(fields) != 2 {
			return Command{}, cmd.badArgs()
		}
		at, err := parsePosition(fields[0], fields[1])
		if err != nil {
			return Command{}, cmd.badArgs()
		}
		cmd.At = at
	default:
		if len(fields) != 3 || fields[0] == "" {
			return Command{}, cmd.badArgs()
		}
		at, err := parsePosition(fields[1], fields[2])
		if err != nil {
			return Command{}, cmd.badArgs()
		}
		if cmd.Name == Move {
			cmd.Pawn = fields[0]
		} else {
			cmd.Piece = fields[0]
		}
		cmd.At = at
	}
	return cmd, nil
}

func (c Command) badArgs() error {
	return fmt.Errorf("%w: expected %s %s", ErrInvalidArguments, c.Name, usage[c.Name])
}

func parsePosition(row, col string) (engine.Position, error) {
	r, err := strconv.Atoi(row)
	if err != nil {
		return engine.Position{}, err
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return engine.Position{}, err
	}
	return engine.Position{Row: r, Col: c}, nil
}

// String renders the command back into console syntax
func (c Command) String() string {
	switch c.Name {
	case Move:
		return fmt.Sprintf("move %s;%d;%d", c.Pawn, c.At.Row, c.At.Col)
	case Build:
		return fmt.Sprintf("build %s;%d;%d", c.Piece, c.At.Row, c.At.Col)
	case DrawCard:
		return "draw-card " + c.Card
	case CellPrint:
		return fmt.Sprintf("cellprint %d;%d", c.At.Row, c.At.Col)
	default:
		return string(c.Name)
	}
}
