package engine

import "fmt"

// Build places a block (C) or a cap (D) after the turn's move
func (gs *GameState) Build(token string, pos Position) (*Outcome, error) {
	if gs.GameOver {
		return nil, ErrGameOver
	}
	if !pos.InBounds() {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}

	kind, err := ParsePieceKind(token)
	if err != nil {
		return nil, err
	}

	turn := gs.Turn
	board := gs.Board
	cell := board.Cell(pos)

	if turn.MovesDone == 0 {
		return nil, ErrMustMoveFirst
	}
	if !turn.CanBuild() {
		return nil, ErrBuildLimitReached
	}
	if kind == KindBlock && cell.HasTower() {
		return nil, ErrTowerComplete
	}
	if cell.IsOccupied() {
		return nil, ErrCellOccupied
	}
	if kind == KindCap && board.AvailableCaps == 0 {
		return nil, ErrNoCapsLeft
	}
	if kind == KindBlock && board.AvailableBlocks == 0 {
		return nil, ErrNoBlocksLeft
	}

	if turn.AtlasActive && kind == KindCap {
		if cell.IsFull() {
			return nil, ErrStackFull
		}
		board.PlaceCapIgnoringTower(pos)
		return gs.finishBuild(kind, pos), nil
	}

	if kind == KindCap && !cell.HasTower() {
		return nil, ErrCapRequiresTower
	}
	if cell.IsBlocked() {
		return nil, ErrCellBlocked
	}
	if cell.IsFull() {
		return nil, ErrStackFull
	}

	board.Place(Piece{Kind: kind}, pos)
	return gs.finishBuild(kind, pos), nil
}

func (gs *GameState) finishBuild(kind PieceKind, pos Position) *Outcome {
	gs.Turn.RecordBuild()
	outcome := &Outcome{
		Action: ActionBuild,
		Player: gs.ActivePlayer().Name,
		To:     &pos,
		Piece:  kind,
		Level:  gs.Board.Level(pos),
	}
	gs.record(HistoryEntry{
		Action: ActionBuild,
		To:     &pos,
		Piece:  Piece{Kind: kind}.Symbol(),
	})
	gs.checkGameOver(outcome)
	return outcome
}

// DrawCard gives the active player a power card for the current turn. Cards
// must be drawn before any move or build and are gone for the rest of the game.
func (gs *GameState) DrawCard(symbol string) (*Outcome, error) {
	if gs.GameOver {
		return nil, ErrGameOver
	}

	turn := gs.Turn
	active := gs.ActivePlayer()

	if turn.HasDrawnCardThisTurn {
		return nil, ErrCardAlreadyDrawn
	}
	if turn.HasActed() {
		return nil, ErrAlreadyActed
	}
	if !active.CanDrawCard() {
		return nil, ErrDrawQuotaReached
	}
	if !gs.Cards.Contains(symbol) {
		return nil, fmt.Errorf("%w: %s", ErrCardUnavailable, symbol)
	}

	card := Card(symbol)
	turn.ApplyCard(card)
	turn.RecordCardDraw()
	active.RecordCardDraw()
	gs.Cards.Remove(symbol)

	gs.record(HistoryEntry{Action: ActionDrawCard, Card: card})
	return &Outcome{Action: ActionDrawCard, Player: active.Name, Card: card}, nil
}

// EndTurn hands the turn over once at least one move and one build happened.
// The new turn inherits an Athena restriction from the outgoing one.
func (gs *GameState) EndTurn() (*Outcome, error) {
	if gs.GameOver {
		return nil, ErrGameOver
	}
	if !gs.Turn.CanEnd() {
		return nil, ErrTurnIncomplete
	}

	outgoing := gs.ActivePlayer()
	gs.record(HistoryEntry{Action: ActionEndTurn})

	gs.Turn = gs.Turn.Next()
	gs.flipActive()
	gs.TurnNumber++

	next := gs.ActivePlayer()
	return &Outcome{
		Action:            ActionEndTurn,
		Player:            outgoing.Name,
		NextPlayer:        next.Name,
		AthenaRestriction: !gs.Turn.CanMoveUpThisTurn,
	}, nil
}

// Surrender ends the game in favour of the player who did not surrender
func (gs *GameState) Surrender() (*Outcome, error) {
	if gs.GameOver {
		return nil, ErrGameOver
	}

	loser := gs.ActivePlayer()
	gs.record(HistoryEntry{Action: ActionSurrender})
	gs.flipActive()
	winner := gs.ActivePlayer()
	gs.endGame(winner.Name, EndReasonSurrender)

	return &Outcome{
		Action:    ActionSurrender,
		Player:    loser.Name,
		GameOver:  true,
		Winner:    winner.Name,
		EndReason: EndReasonSurrender,
	}, nil
}

func (gs *GameState) flipActive() {
	for _, p := range gs.Players {
		p.IsActiveTurn = !p.IsActiveTurn
	}
}
