package engine

import (
	"fmt"
	"strings"
)

// Rows renders the board as one line per row, each cell showing the symbol of
// its top piece or "." when empty
func (b *Board) Rows() []string {
	rows := make([]string, GridSize)
	for r := 0; r < GridSize; r++ {
		symbols := make([]string, GridSize)
		for c := 0; c < GridSize; c++ {
			symbols[c] = EmptySymbol
			if top, ok := b.Cells[r][c].Top(); ok {
				symbols[c] = top.Symbol()
			}
		}
		rows[r] = strings.Join(symbols, ",")
	}
	return rows
}

// Print renders the whole board, rows separated by newlines
func (b *Board) Print() string {
	return strings.Join(b.Rows(), "\n")
}

// CellPrint lists the symbols of a cell bottom to top, or "Empty"
func (b *Board) CellPrint(pos Position) (string, error) {
	cell := b.Cell(pos)
	if cell == nil {
		return "", fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	if len(cell.Stack) == 0 {
		return EmptyCell, nil
	}
	symbols := make([]string, len(cell.Stack))
	for i, p := range cell.Stack {
		symbols[i] = p.Symbol()
	}
	return strings.Join(symbols, ","), nil
}

// Bag reports the remaining supplies as C;<blocks>D;<caps>
func (b *Board) Bag() string {
	return fmt.Sprintf("%s;%d%s;%d", BlockSymbol, b.AvailableBlocks, CapSymbol, b.AvailableCaps)
}

// CountPieces counts the pieces of the given kind on the board
func (b *Board) CountPieces(kind PieceKind) int {
	count := 0
	for r := range b.Cells {
		for c := range b.Cells[r] {
			for _, p := range b.Cells[r][c].Stack {
				if p.Kind == kind {
					count++
				}
			}
		}
	}
	return count
}

// CountTowers counts the cells holding a completed tower
func (b *Board) CountTowers() int {
	count := 0
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if b.Cells[r][c].HasTower() {
				count++
			}
		}
	}
	return count
}
