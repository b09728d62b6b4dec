package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardPlace(t *testing.T) {
	t.Run("blocks stack and consume supply", func(t *testing.T) {
		b := NewBoard(DefaultBlockSupply, DefaultCapSupply)
		pos := Position{Row: 2, Col: 2}

		require.True(t, b.Place(Block(), pos))
		require.True(t, b.Place(Block(), pos))

		assert.Equal(t, 2, b.Level(pos))
		assert.Equal(t, DefaultBlockSupply-2, b.AvailableBlocks)
		assert.Equal(t, DefaultCapSupply, b.AvailableCaps)
	})

	t.Run("block refused on a tower", func(t *testing.T) {
		b := NewBoard(DefaultBlockSupply, DefaultCapSupply)
		pos := Position{Row: 0, Col: 0}
		for i := 0; i < TowerHeight; i++ {
			require.True(t, b.Place(Block(), pos))
		}

		assert.True(t, b.Cell(pos).HasTower())
		assert.False(t, b.Place(Block(), pos))
		assert.True(t, b.Place(Cap(), pos))
		assert.Equal(t, 4, b.Level(pos))
	})

	t.Run("nothing lands on a blocked cell", func(t *testing.T) {
		b := NewBoard(DefaultBlockSupply, DefaultCapSupply)
		pos := Position{Row: 1, Col: 1}
		require.True(t, b.Place(PawnPiece("a"), pos))

		assert.False(t, b.Place(Block(), pos))
		assert.False(t, b.Place(PawnPiece("b"), pos))
		assert.Equal(t, DefaultBlockSupply, b.AvailableBlocks)
	})

	t.Run("empty supply refuses placement", func(t *testing.T) {
		b := NewBoard(0, 0)
		assert.False(t, b.Place(Block(), Position{}))
		assert.Equal(t, 0, b.AvailableBlocks)
	})

	t.Run("off the board", func(t *testing.T) {
		b := NewBoard(DefaultBlockSupply, DefaultCapSupply)
		assert.False(t, b.Place(Block(), Position{Row: 5, Col: 0}))
		assert.Nil(t, b.Cell(Position{Row: -1, Col: 0}))
	})
}

func TestPlaceCapIgnoringTower(t *testing.T) {
	b := NewBoard(DefaultBlockSupply, 6)
	pos := Position{Row: 3, Col: 3}

	require.True(t, b.PlaceCapIgnoringTower(pos))
	assert.True(t, b.Cell(pos).IsBlocked())
	assert.False(t, b.Cell(pos).HasTower())

	for i := 1; i < MaxStackHeight; i++ {
		require.True(t, b.PlaceCapIgnoringTower(pos))
	}
	assert.True(t, b.Cell(pos).IsFull())
	assert.False(t, b.PlaceCapIgnoringTower(pos))
	assert.Equal(t, 1, b.AvailableCaps)

	occupied := Position{Row: 0, Col: 0}
	require.True(t, b.Place(PawnPiece("a"), occupied))
	assert.False(t, b.PlaceCapIgnoringTower(occupied))
}

func TestHasTowerNeedsConsecutiveBlocks(t *testing.T) {
	cell := &Cell{Stack: []Piece{Block(), Block(), Cap()}}
	assert.False(t, cell.HasTower())

	cell = &Cell{Stack: []Piece{Block(), Block(), Block(), Cap()}}
	assert.True(t, cell.HasTower())
	assert.Equal(t, 4, cell.Height())
	assert.Equal(t, 5, cell.LandingLevel())
}

func TestRemovePawnKeepsOrder(t *testing.T) {
	b := NewBoard(DefaultBlockSupply, DefaultCapSupply)
	pos := Position{Row: 4, Col: 4}
	require.True(t, b.Place(Block(), pos))
	require.True(t, b.Place(PawnPiece("z"), pos))

	require.True(t, b.RemovePawn(pos, "z"))
	assert.Equal(t, []Piece{Block()}, b.Cell(pos).Stack)
	assert.False(t, b.RemovePawn(pos, "z"))
}

func TestSwapPawn(t *testing.T) {
	b := NewBoard(DefaultBlockSupply, DefaultCapSupply)
	pos := Position{Row: 2, Col: 3}
	require.True(t, b.Place(Block(), pos))
	require.True(t, b.Place(PawnPiece("c"), pos))

	displaced, ok := b.SwapPawn(pos, PawnPiece("a"))
	require.True(t, ok)
	assert.Equal(t, "c", displaced.Name)
	assert.Equal(t, []Piece{Block(), PawnPiece("a")}, b.Cell(pos).Stack)

	_, ok = b.SwapPawn(Position{Row: 0, Col: 0}, PawnPiece("a"))
	assert.False(t, ok)
}

func TestMovePawn(t *testing.T) {
	b := NewBoard(DefaultBlockSupply, DefaultCapSupply)
	from, to := Position{Row: 0, Col: 0}, Position{Row: 0, Col: 1}
	require.True(t, b.Place(PawnPiece("a"), from))
	require.True(t, b.Place(Block(), to))

	require.True(t, b.MovePawn("a", from, to))
	assert.Equal(t, 0, b.Level(from))
	assert.Equal(t, 2, b.Level(to))

	require.True(t, b.PlaceCapIgnoringTower(from))
	assert.False(t, b.MovePawn("a", to, from))
	assert.Equal(t, 2, b.Level(to))
}

func TestNeighbors(t *testing.T) {
	b := NewBoard(DefaultBlockSupply, DefaultCapSupply)

	assert.Equal(t, []Position{
		{Row: 3, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 3}, {Row: 2, Col: 1},
		{Row: 1, Col: 3}, {Row: 3, Col: 1}, {Row: 3, Col: 3}, {Row: 1, Col: 1},
	}, b.Neighbors(Position{Row: 2, Col: 2}))

	assert.Len(t, b.Neighbors(Position{Row: 0, Col: 0}), 3)
	assert.Len(t, b.Neighbors(Position{Row: 0, Col: 2}), 5)

	require.True(t, b.Place(PawnPiece("a"), Position{Row: 1, Col: 0}))
	require.True(t, b.PlaceCapIgnoringTower(Position{Row: 0, Col: 1}))
	assert.Equal(t, []Position{{Row: 1, Col: 1}}, b.UnblockedNeighbors(Position{Row: 0, Col: 0}))
}

func TestHasUnblockedCell(t *testing.T) {
	b := NewBoard(DefaultBlockSupply, GridSize*GridSize)
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			assert.True(t, b.HasUnblockedCell())
			require.True(t, b.PlaceCapIgnoringTower(Position{Row: r, Col: c}))
		}
	}
	assert.False(t, b.HasUnblockedCell())
}

func TestRendering(t *testing.T) {
	b := NewBoard(DefaultBlockSupply, DefaultCapSupply)
	pos := Position{Row: 1, Col: 1}
	for i := 0; i < TowerHeight; i++ {
		require.True(t, b.Place(Block(), pos))
	}
	require.True(t, b.Place(Cap(), pos))
	require.True(t, b.Place(PawnPiece("a"), Position{Row: 0, Col: 4}))

	assert.Equal(t, "C;51D;17", b.Bag())
	assert.Equal(t, ".,.,.,.,a\n.,D,.,.,.\n.,.,.,.,.\n.,.,.,.,.\n.,.,.,.,.", b.Print())

	out, err := b.CellPrint(pos)
	require.NoError(t, err)
	assert.Equal(t, "C,C,C,D", out)

	out, err = b.CellPrint(Position{Row: 4, Col: 4})
	require.NoError(t, err)
	assert.Equal(t, EmptyCell, out)

	_, err = b.CellPrint(Position{Row: 7, Col: 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	assert.Equal(t, 3, b.CountPieces(KindBlock))
	assert.Equal(t, 1, b.CountPieces(KindPawn))
	assert.Equal(t, 1, b.CountTowers())
}
