package engine

import "fmt"

// PieceKind discriminates the pieces that can sit in a cell stack
type PieceKind int

const (
	KindBlock PieceKind = iota + 1
	KindCap
	KindPawn
)

const (
	// Board geometry
	GridSize       = 5
	MaxStackHeight = 5
	TowerHeight    = 3
	WinningLevel   = 4

	// Default supplies and limits
	DefaultBlockSupply  = 54
	DefaultCapSupply    = 18
	DefaultMaxCardDraws = 3

	// Symbols used by the textual protocol
	BlockSymbol = "C"
	CapSymbol   = "D"
	EmptySymbol = "."
	EmptyCell   = "Empty"
)

var kindNames = map[PieceKind]string{
	KindBlock: "block",
	KindCap:   "cap",
	KindPawn:  "pawn",
}

func (k PieceKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND_%d", int(k))
}

// Piece is one entry of a cell stack. Name is only set for pawns.
type Piece struct {
	Kind PieceKind `json:"kind"`
	Name string    `json:"name,omitempty"`
}

// Block returns a building block piece
func Block() Piece { return Piece{Kind: KindBlock} }

// Cap returns a capping piece
func Cap() Piece { return Piece{Kind: KindCap} }

// PawnPiece returns the stack entry for the named pawn
func PawnPiece(name string) Piece { return Piece{Kind: KindPawn, Name: name} }

// Symbol returns the piece as printed by print and cellprint
func (p Piece) Symbol() string {
	switch p.Kind {
	case KindBlock:
		return BlockSymbol
	case KindCap:
		return CapSymbol
	default:
		return p.Name
	}
}

// ParsePieceKind maps a build token (C or D) to a buildable piece kind
func ParsePieceKind(token string) (PieceKind, error) {
	switch token {
	case BlockSymbol:
		return KindBlock, nil
	case CapSymbol:
		return KindCap, nil
	default:
		return 0, ErrInvalidPieceType
	}
}

// Position represents row,col coordinates on the board
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the position lies on the board
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < GridSize && p.Col >= 0 && p.Col < GridSize
}

// IsAdjacent reports whether o is one king move away from p
func (p Position) IsAdjacent(o Position) bool {
	if p == o {
		return false
	}
	return abs(p.Row-o.Row) <= 1 && abs(p.Col-o.Col) <= 1
}

func (p Position) String() string {
	return fmt.Sprintf("%d;%d", p.Row, p.Col)
}

// GameState is the complete state of one game. Every rules operation reads and
// mutates exactly this value; nothing lives in package-level variables.
type GameState struct {
	ID         string         `json:"id"`
	Board      *Board         `json:"board"`
	Players    [2]*Player     `json:"players"`
	Turn       *Turn          `json:"turn"`
	Cards      *CardSet       `json:"cards"`
	TurnNumber int            `json:"turn_number"`
	GameOver   bool           `json:"game_over"`
	Winner     string         `json:"winner,omitempty"`
	EndReason  EndReason      `json:"end_reason,omitempty"`
	History    []HistoryEntry `json:"history"`
}

// EndReason records why a game finished
type EndReason string

const (
	EndReasonNone        EndReason = ""
	EndReasonVictory     EndReason = "victory"
	EndReasonImmobilized EndReason = "immobilized"
	EndReasonStalemate   EndReason = "stalemate"
	EndReasonSurrender   EndReason = "surrender"
)

// ActionType names the accepted actions recorded in the history
type ActionType string

const (
	ActionMove      ActionType = "move"
	ActionBuild     ActionType = "build"
	ActionDrawCard  ActionType = "draw-card"
	ActionEndTurn   ActionType = "turn"
	ActionSurrender ActionType = "surrender"
)

// HistoryEntry represents a single accepted action
type HistoryEntry struct {
	Number    int        `json:"number"`
	Turn      int        `json:"turn"`
	Player    string     `json:"player"`
	Action    ActionType `json:"action"`
	Pawn      string     `json:"pawn,omitempty"`
	From      *Position  `json:"from,omitempty"`
	To        *Position  `json:"to,omitempty"`
	Piece     string     `json:"piece,omitempty"`
	Card      Card       `json:"card,omitempty"`
	Swapped   string     `json:"swapped,omitempty"`
	Timestamp int64      `json:"timestamp"`
}
