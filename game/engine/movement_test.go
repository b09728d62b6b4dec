package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var standardPawns = []string{"a;0;0", "b;0;1", "c;4;4", "d;4;3"}

func newTestGame(t *testing.T, args ...string) *GameState {
	t.Helper()
	if len(args) == 0 {
		args = standardPawns
	}
	specs, err := ParsePawnSpecs(args)
	require.NoError(t, err)
	gs, err := InitGameState(nil, specs)
	require.NoError(t, err)
	return gs
}

func pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// stack places n blocks at p outside of any turn
func stack(t *testing.T, gs *GameState, p Position, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.True(t, gs.Board.Place(Block(), p))
	}
}

// playTurn moves, builds a block and ends the turn
func playTurn(t *testing.T, gs *GameState, pawn string, to, build Position) {
	t.Helper()
	_, err := gs.Move(pawn, to)
	require.NoError(t, err)
	_, err = gs.Build(BlockSymbol, build)
	require.NoError(t, err)
	_, err = gs.EndTurn()
	require.NoError(t, err)
}

func TestMoveChecks(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, gs *GameState)
		pawn  string
		to    Position
		want  error
	}{
		{name: "out of bounds", pawn: "a", to: pos(5, 0), want: ErrOutOfBounds},
		{name: "negative coordinate", pawn: "a", to: pos(0, -1), want: ErrOutOfBounds},
		{name: "opponent pawn", pawn: "c", to: pos(3, 4), want: ErrUnknownPawn},
		{name: "no such pawn", pawn: "zz", to: pos(1, 0), want: ErrUnknownPawn},
		{
			name:  "two levels up",
			setup: func(t *testing.T, gs *GameState) { stack(t, gs, pos(1, 1), 2) },
			pawn:  "a", to: pos(1, 1), want: ErrDestinationTooHigh,
		},
		{name: "not adjacent", pawn: "a", to: pos(2, 2), want: ErrNotAdjacent},
		{name: "own pawn in the way", pawn: "a", to: pos(0, 1), want: ErrCellBlocked},
		{name: "onto itself", pawn: "a", to: pos(0, 0), want: ErrNotAdjacent},
		{
			name:  "capped cell",
			setup: func(t *testing.T, gs *GameState) { require.True(t, gs.Board.PlaceCapIgnoringTower(pos(1, 0))) },
			pawn:  "a", to: pos(1, 0), want: ErrCellBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newTestGame(t)
			if tt.setup != nil {
				tt.setup(t, gs)
			}
			before := gs.Board.Print()

			_, err := gs.Move(tt.pawn, tt.to)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, gs.Board.Print())
			assert.Equal(t, 0, gs.Turn.MovesDone)
			assert.Empty(t, gs.History)
		})
	}
}

func TestMoveOnGround(t *testing.T) {
	gs := newTestGame(t)

	out, err := gs.Move("a", pos(1, 0))
	require.NoError(t, err)
	assert.Equal(t, ActionMove, out.Action)
	assert.Equal(t, "p1", out.Player)
	assert.Equal(t, 1, out.Level)
	assert.False(t, out.GameOver)

	pawn, owner := gs.FindPawn("a")
	require.NotNil(t, pawn)
	assert.Equal(t, "p1", owner.Name)
	assert.Equal(t, pos(1, 0), pawn.Position)
	assert.Equal(t, gs.Board.Level(pos(1, 0)), pawn.Level)
	assert.Equal(t, 0, gs.Board.Level(pos(0, 0)))

	_, err = gs.Move("b", pos(1, 1))
	assert.ErrorIs(t, err, ErrMoveLimitReached)

	require.Len(t, gs.History, 1)
	assert.Equal(t, ActionMove, gs.History[0].Action)
	assert.Equal(t, 1, gs.History[0].Turn)
}

func TestMoveClimbAndDescend(t *testing.T) {
	gs := newTestGame(t)
	stack(t, gs, pos(1, 0), 1)

	out, err := gs.Move("a", pos(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, out.Level)
	_, err = gs.Build(BlockSymbol, pos(2, 0))
	require.NoError(t, err)
	_, err = gs.EndTurn()
	require.NoError(t, err)

	playTurn(t, gs, "c", pos(3, 4), pos(2, 4))

	out, err = gs.Move("a", pos(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, out.Level)
}

func TestMoveAfterBuildNeedsArtemis(t *testing.T) {
	gs := newTestGame(t)

	_, err := gs.DrawCard(string(Artemis))
	require.NoError(t, err)
	_, err = gs.Move("a", pos(1, 0))
	require.NoError(t, err)
	_, err = gs.Build(BlockSymbol, pos(2, 0))
	require.NoError(t, err)

	_, err = gs.Move("a", pos(1, 1))
	assert.ErrorIs(t, err, ErrAlreadyBuilt)
}

func TestArtemisMovesTwice(t *testing.T) {
	gs := newTestGame(t)

	_, err := gs.DrawCard(string(Artemis))
	require.NoError(t, err)
	_, err = gs.Move("a", pos(1, 0))
	require.NoError(t, err)
	_, err = gs.Move("a", pos(2, 0))
	require.NoError(t, err)
	_, err = gs.Move("b", pos(1, 1))
	assert.ErrorIs(t, err, ErrMoveLimitReached)
}

func TestHermesLateralMove(t *testing.T) {
	t.Run("same level ignores distance", func(t *testing.T) {
		gs := newTestGame(t)
		_, err := gs.DrawCard(string(Hermes))
		require.NoError(t, err)

		out, err := gs.Move("a", pos(3, 0))
		require.NoError(t, err)
		assert.Equal(t, 1, out.Level)
		assert.Equal(t, pos(3, 0), gs.Players[0].Pawn("a").Position)
	})

	t.Run("blocked destination", func(t *testing.T) {
		gs := newTestGame(t)
		_, err := gs.DrawCard(string(Hermes))
		require.NoError(t, err)

		_, err = gs.Move("a", pos(4, 4))
		assert.ErrorIs(t, err, ErrCellBlocked)
		assert.Equal(t, 0, gs.Turn.MovesDone)
	})

	t.Run("climbing still needs adjacency", func(t *testing.T) {
		gs := newTestGame(t)
		stack(t, gs, pos(2, 2), 1)
		_, err := gs.DrawCard(string(Hermes))
		require.NoError(t, err)

		_, err = gs.Move("a", pos(2, 2))
		assert.ErrorIs(t, err, ErrNotAdjacent)
	})
}

func TestApolloSwap(t *testing.T) {
	gs := newTestGame(t, "a;0;0", "b;0;4", "c;1;1", "d;4;4")

	_, err := gs.DrawCard(string(Apollo))
	require.NoError(t, err)

	out, err := gs.Move("a", pos(1, 1))
	require.NoError(t, err)
	assert.Equal(t, "c", out.Swapped)

	cell, err := gs.Board.CellPrint(pos(1, 1))
	require.NoError(t, err)
	assert.Equal(t, "a", cell)
	cell, err = gs.Board.CellPrint(pos(0, 0))
	require.NoError(t, err)
	assert.Equal(t, "c", cell)

	c, owner := gs.FindPawn("c")
	assert.Equal(t, "p2", owner.Name)
	assert.Equal(t, pos(0, 0), c.Position)
	assert.Equal(t, 1, c.Level)
	assert.Equal(t, "c", gs.History[len(gs.History)-1].Swapped)
}

func TestApolloCannotSwapOwnPawn(t *testing.T) {
	gs := newTestGame(t)
	_, err := gs.DrawCard(string(Apollo))
	require.NoError(t, err)

	_, err = gs.Move("a", pos(0, 1))
	assert.ErrorIs(t, err, ErrCellBlocked)
}

func TestAthenaRestrictsOnlyTheNextTurn(t *testing.T) {
	gs := newTestGame(t)
	stack(t, gs, pos(1, 0), 1)
	stack(t, gs, pos(3, 4), 1)

	_, err := gs.DrawCard(string(Athena))
	require.NoError(t, err)
	out, err := gs.Move("a", pos(1, 0))
	require.NoError(t, err)
	assert.True(t, out.AthenaRestriction)
	assert.True(t, gs.Turn.CanMoveUpThisTurn)
	_, err = gs.Build(BlockSymbol, pos(2, 1))
	require.NoError(t, err)

	end, err := gs.EndTurn()
	require.NoError(t, err)
	assert.Equal(t, "p2", end.NextPlayer)
	assert.True(t, end.AthenaRestriction)

	// p2 may not climb
	assert.False(t, gs.Turn.CanMoveUpThisTurn)
	_, err = gs.Move("c", pos(3, 4))
	assert.ErrorIs(t, err, ErrUpwardMoveForbidden)
	playTurn(t, gs, "c", pos(3, 3), pos(2, 3))

	// p1 is unrestricted again
	assert.True(t, gs.Turn.CanMoveUpThisTurn)
	playTurn(t, gs, "a", pos(0, 0), pos(0, 2))

	// and so is p2's following turn
	out, err = gs.Move("c", pos(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 2, out.Level)
}

func TestAthenaFlatMoveDoesNotRestrict(t *testing.T) {
	gs := newTestGame(t)
	_, err := gs.DrawCard(string(Athena))
	require.NoError(t, err)

	out, err := gs.Move("a", pos(1, 0))
	require.NoError(t, err)
	assert.False(t, out.AthenaRestriction)
	assert.False(t, gs.Turn.RestrictNextTurn)
}

func TestReachingLevelFourWins(t *testing.T) {
	gs := newTestGame(t)
	stack(t, gs, pos(1, 0), 1)
	stack(t, gs, pos(2, 0), 2)
	stack(t, gs, pos(3, 0), 3)

	playTurn(t, gs, "a", pos(1, 0), pos(0, 4))
	playTurn(t, gs, "c", pos(3, 4), pos(2, 4))
	playTurn(t, gs, "a", pos(2, 0), pos(0, 3))
	playTurn(t, gs, "c", pos(4, 4), pos(1, 4))

	out, err := gs.Move("a", pos(3, 0))
	require.NoError(t, err)
	assert.Equal(t, WinningLevel, out.Level)
	assert.True(t, out.GameOver)
	assert.Equal(t, "p1", out.Winner)
	assert.Equal(t, EndReasonVictory, out.EndReason)

	assert.True(t, gs.GameOver)
	assert.Equal(t, "p1", gs.Winner)

	_, err = gs.Move("b", pos(1, 1))
	assert.ErrorIs(t, err, ErrGameOver)
	_, err = gs.Build(BlockSymbol, pos(4, 0))
	assert.ErrorIs(t, err, ErrGameOver)
	_, err = gs.EndTurn()
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestImmobilizingTheOpponentWins(t *testing.T) {
	gs := newTestGame(t)
	for _, p := range []Position{pos(3, 4), pos(4, 2), pos(3, 2)} {
		require.True(t, gs.Board.PlaceCapIgnoringTower(p))
	}

	_, err := gs.DrawCard(string(Atlas))
	require.NoError(t, err)
	_, err = gs.Move("a", pos(1, 0))
	require.NoError(t, err)

	out, err := gs.Build(CapSymbol, pos(3, 3))
	require.NoError(t, err)
	assert.True(t, out.GameOver)
	assert.Equal(t, "p1", out.Winner)
	assert.Equal(t, EndReasonImmobilized, out.EndReason)
}

func TestPawnLevelMatchesCell(t *testing.T) {
	gs := newTestGame(t)
	stack(t, gs, pos(1, 1), 1)

	playTurn(t, gs, "a", pos(1, 1), pos(2, 2))
	playTurn(t, gs, "d", pos(3, 3), pos(3, 2))
	playTurn(t, gs, "a", pos(2, 2), pos(1, 1))

	for _, player := range gs.Players {
		for _, pawn := range player.Pawns {
			assert.Equal(t, gs.Board.Level(pawn.Position), pawn.Level, pawn.Name)
		}
	}
}
