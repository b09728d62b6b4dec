package engine

import "errors"

// Rule rejections. The text is the reason shown to the player.
var (
	ErrGameOver = errors.New("the game is already over")

	// Moves
	ErrMoveLimitReached    = errors.New("move limit reached this turn")
	ErrUnknownPawn         = errors.New("unknown pawn")
	ErrAlreadyBuilt        = errors.New("already built this turn")
	ErrDestinationTooHigh  = errors.New("destination too high")
	ErrUpwardMoveForbidden = errors.New("opponent's Athena restricts upward movement")
	ErrNotAdjacent         = errors.New("not adjacent")
	ErrCellBlocked         = errors.New("cell blocked by dome or pawn")
	ErrOutOfBounds         = errors.New("coordinates are outside the board")

	// Builds
	ErrInvalidPieceType  = errors.New("invalid piece type, use C or D")
	ErrMustMoveFirst     = errors.New("must move before building")
	ErrBuildLimitReached = errors.New("build limit reached")
	ErrTowerComplete     = errors.New("tower already complete")
	ErrCellOccupied      = errors.New("cell is occupied by a pawn")
	ErrNoCapsLeft        = errors.New("no caps left")
	ErrNoBlocksLeft      = errors.New("no building blocks left")
	ErrCapRequiresTower  = errors.New("caps require a completed tower")
	ErrStackFull         = errors.New("cell stack is full")

	// Cards
	ErrCardAlreadyDrawn = errors.New("a card was already drawn this turn")
	ErrAlreadyActed     = errors.New("cards must be drawn before moving or building")
	ErrDrawQuotaReached = errors.New("card draw limit reached")
	ErrCardUnavailable  = errors.New("card is not available")

	// Turns
	ErrTurnIncomplete = errors.New("each turn needs at least one move and one build")

	// Setup
	ErrWrongPawnCount  = errors.New("four pawn descriptors are required")
	ErrInvalidPawnSpec = errors.New("pawn descriptor must be name;row;col")
	ErrInvalidPawnName = errors.New("pawn names must be lowercase alphanumeric")
	ErrDuplicatePawn   = errors.New("pawn names and positions must be distinct")
)
