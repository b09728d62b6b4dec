package engine

// neighborOffsets lists the eight king-move directions
var neighborOffsets = []struct{ dr, dc int }{
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
	{-1, 1},
	{1, -1},
	{1, 1},
	{-1, -1},
}

// Cell is one square of the board. Stack is ordered bottom to top and never
// has gaps, so its length is the cell level.
type Cell struct {
	Position Position `json:"position"`
	Stack    []Piece  `json:"stack"`
}

// Level returns the number of pieces stacked on the cell
func (c *Cell) Level() int {
	return len(c.Stack)
}

// Height counts the blocks and caps of the stack, ignoring any pawn
func (c *Cell) Height() int {
	h := 0
	for _, p := range c.Stack {
		if p.Kind != KindPawn {
			h++
		}
	}
	return h
}

// LandingLevel is the level a pawn would have after stepping onto the cell
func (c *Cell) LandingLevel() int {
	return c.Height() + 1
}

// Top returns the last piece of the stack
func (c *Cell) Top() (Piece, bool) {
	if len(c.Stack) == 0 {
		return Piece{}, false
	}
	return c.Stack[len(c.Stack)-1], true
}

// IsBlocked reports whether the stack holds a pawn or a cap anywhere
func (c *Cell) IsBlocked() bool {
	for _, p := range c.Stack {
		if p.Kind == KindPawn || p.Kind == KindCap {
			return true
		}
	}
	return false
}

// IsOccupied reports whether a pawn stands on the cell
func (c *Cell) IsOccupied() bool {
	_, ok := c.Occupant()
	return ok
}

// Occupant returns the pawn standing on the cell, if any
func (c *Cell) Occupant() (Piece, bool) {
	for _, p := range c.Stack {
		if p.Kind == KindPawn {
			return p, true
		}
	}
	return Piece{}, false
}

// HasTower reports whether any three consecutive stack slots hold building blocks
func (c *Cell) HasTower() bool {
	run := 0
	for _, p := range c.Stack {
		if p.Kind != KindBlock {
			run = 0
			continue
		}
		run++
		if run >= TowerHeight {
			return true
		}
	}
	return false
}

// IsFull reports whether the stack reached MaxStackHeight
func (c *Cell) IsFull() bool {
	return len(c.Stack) >= MaxStackHeight
}

func (c *Cell) push(p Piece) {
	c.Stack = append(c.Stack, p)
}

// removePawn drops the named pawn and keeps the order of everything else
func (c *Cell) removePawn(name string) bool {
	for i, p := range c.Stack {
		if p.Kind == KindPawn && p.Name == name {
			c.Stack = append(c.Stack[:i], c.Stack[i+1:]...)
			return true
		}
	}
	return false
}

// Board is the 5x5 grid plus the shared piece supplies
type Board struct {
	Cells           [GridSize][GridSize]Cell `json:"cells"`
	AvailableBlocks int                      `json:"available_blocks"`
	AvailableCaps   int                      `json:"available_caps"`
}

// NewBoard creates an empty board with the given supplies
func NewBoard(blocks, caps int) *Board {
	b := &Board{
		AvailableBlocks: blocks,
		AvailableCaps:   caps,
	}
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			b.Cells[r][c] = Cell{Position: Position{Row: r, Col: c}, Stack: []Piece{}}
		}
	}
	return b
}

// Cell returns the cell at pos, or nil when pos is off the board
func (b *Board) Cell(pos Position) *Cell {
	if !pos.InBounds() {
		return nil
	}
	return &b.Cells[pos.Row][pos.Col]
}

// Level returns the level of the cell at pos
func (b *Board) Level(pos Position) int {
	if cell := b.Cell(pos); cell != nil {
		return cell.Level()
	}
	return 0
}

// Place appends a piece to the cell at pos and consumes the matching supply.
// It refuses a blocked cell, a full stack, and a building block on a tower;
// callers validate first, so false signals a broken precondition.
func (b *Board) Place(piece Piece, pos Position) bool {
	cell := b.Cell(pos)
	if cell == nil || cell.IsBlocked() || cell.IsFull() {
		return false
	}
	if piece.Kind == KindBlock && cell.HasTower() {
		return false
	}

	switch piece.Kind {
	case KindBlock:
		if b.AvailableBlocks <= 0 {
			return false
		}
		b.AvailableBlocks--
	case KindCap:
		if b.AvailableCaps <= 0 {
			return false
		}
		b.AvailableCaps--
	}

	cell.push(piece)
	return true
}

// PlaceCapIgnoringTower adds a cap under the Atlas effect. Only a pawn or a
// full stack stops it.
func (b *Board) PlaceCapIgnoringTower(pos Position) bool {
	cell := b.Cell(pos)
	if cell == nil || cell.IsOccupied() || cell.IsFull() || b.AvailableCaps <= 0 {
		return false
	}
	b.AvailableCaps--
	cell.push(Cap())
	return true
}

// RemovePawn takes the named pawn off the cell at pos
func (b *Board) RemovePawn(pos Position, name string) bool {
	cell := b.Cell(pos)
	if cell == nil {
		return false
	}
	return cell.removePawn(name)
}

// SwapPawn replaces the pawn standing at pos with incoming and returns the
// displaced pawn for the caller to relocate
func (b *Board) SwapPawn(pos Position, incoming Piece) (Piece, bool) {
	cell := b.Cell(pos)
	if cell == nil {
		return Piece{}, false
	}
	displaced, ok := cell.Occupant()
	if !ok {
		return Piece{}, false
	}
	cell.removePawn(displaced.Name)
	cell.push(incoming)
	return displaced, true
}

// MovePawn relocates a pawn between two cells. The destination must accept
// the pawn, otherwise nothing changes.
func (b *Board) MovePawn(name string, from, to Position) bool {
	dst := b.Cell(to)
	if dst == nil || dst.IsBlocked() || dst.IsFull() {
		return false
	}
	if !b.RemovePawn(from, name) {
		return false
	}
	dst.push(PawnPiece(name))
	return true
}

// Neighbors returns the in-bounds king-move neighbours of pos
func (b *Board) Neighbors(pos Position) []Position {
	if !pos.InBounds() {
		return nil
	}
	neighbors := make([]Position, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := Position{Row: pos.Row + off.dr, Col: pos.Col + off.dc}
		if n.InBounds() {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// UnblockedNeighbors returns the neighbours of pos that hold neither pawn nor cap
func (b *Board) UnblockedNeighbors(pos Position) []Position {
	var free []Position
	for _, n := range b.Neighbors(pos) {
		if !b.Cell(n).IsBlocked() {
			free = append(free, n)
		}
	}
	return free
}

// HasUnblockedCell reports whether any cell on the board is still unblocked
func (b *Board) HasUnblockedCell() bool {
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if !b.Cells[r][c].IsBlocked() {
				return true
			}
		}
	}
	return false
}
