package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/santorini/game/engine"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"move a;1;0", Command{Name: Move, Pawn: "a", At: engine.Position{Row: 1, Col: 0}}},
		{"build C;2;3", Command{Name: Build, Piece: "C", At: engine.Position{Row: 2, Col: 3}}},
		{"build D;0;4", Command{Name: Build, Piece: "D", At: engine.Position{Row: 0, Col: 4}}},
		{"draw-card Hermes", Command{Name: DrawCard, Card: "Hermes"}},
		{"cellprint 4;4", Command{Name: CellPrint, At: engine.Position{Row: 4, Col: 4}}},
		{"turn", Command{Name: Turn}},
		{"print", Command{Name: Print}},
		{"bag", Command{Name: Bag}},
		{"surrender", Command{Name: Surrender}},
		{"quit", Command{Name: Quit}},
		{"  move   b;0;2  ", Command{Name: Move, Pawn: "b", At: engine.Position{Row: 0, Col: 2}}},
		// range checks belong to the engine
		{"move a;9;-1", Command{Name: Move, Pawn: "a", At: engine.Position{Row: 9, Col: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"", ErrUnknownCommand},
		{"jump a;1;1", ErrUnknownCommand},
		{"MOVE a;1;1", ErrUnknownCommand},
		{"move", ErrInvalidArguments},
		{"move a;1", ErrInvalidArguments},
		{"move a;x;1", ErrInvalidArguments},
		{"move ;1;1", ErrInvalidArguments},
		{"move a;1;1 extra", ErrInvalidArguments},
		{"build C;1", ErrInvalidArguments},
		{"draw-card", ErrInvalidArguments},
		{"draw-card Apollo;Atlas", ErrInvalidArguments},
		{"cellprint 1;1;1", ErrInvalidArguments},
		{"cellprint a;b", ErrInvalidArguments},
		{"turn now", ErrInvalidArguments},
		{"quit please", ErrInvalidArguments},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Parse(tt.line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseErrorText(t *testing.T) {
	_, err := Parse("fly")
	assert.EqualError(t, err, "unknown command.")

	_, err = Parse("move a")
	assert.EqualError(t, err, "invalid arguments: expected move <pawn>;<row>;<col>")
}

func TestCommandString(t *testing.T) {
	for _, line := range []string{"move a;1;0", "build D;3;3", "draw-card Atlas", "cellprint 0;4", "bag", "turn"} {
		cmd, err := Parse(line)
		require.NoError(t, err)
		assert.Equal(t, line, cmd.String())
	}
}
