package engine

import (
	"fmt"
	"time"
)

// Outcome describes what an accepted action changed
type Outcome struct {
	Action            ActionType `json:"action"`
	Player            string     `json:"player"`
	Pawn              string     `json:"pawn,omitempty"`
	From              *Position  `json:"from,omitempty"`
	To                *Position  `json:"to,omitempty"`
	Level             int        `json:"level,omitempty"`
	Swapped           string     `json:"swapped,omitempty"`
	Piece             PieceKind  `json:"piece,omitempty"`
	Card              Card       `json:"card,omitempty"`
	AthenaRestriction bool       `json:"athena_restriction,omitempty"`
	NextPlayer        string     `json:"next_player,omitempty"`
	GameOver          bool       `json:"game_over"`
	Winner            string     `json:"winner,omitempty"`
	EndReason         EndReason  `json:"end_reason,omitempty"`
}

// ActivePlayer returns the player whose turn it is
func (gs *GameState) ActivePlayer() *Player {
	if gs.Players[1].IsActiveTurn {
		return gs.Players[1]
	}
	return gs.Players[0]
}

// InactivePlayer returns the player waiting for their turn
func (gs *GameState) InactivePlayer() *Player {
	if gs.Players[1].IsActiveTurn {
		return gs.Players[0]
	}
	return gs.Players[1]
}

// FindPawn returns the pawn with the given name and its owner
func (gs *GameState) FindPawn(name string) (*Pawn, *Player) {
	for _, player := range gs.Players {
		if pawn := player.Pawn(name); pawn != nil {
			return pawn, player
		}
	}
	return nil, nil
}

// Move moves one of the active player's pawns. Checks run in a fixed order and
// the first failing one is returned; nothing is mutated on rejection.
func (gs *GameState) Move(pawnName string, to Position) (*Outcome, error) {
	if gs.GameOver {
		return nil, ErrGameOver
	}
	if !to.InBounds() {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, to)
	}

	turn := gs.Turn
	active := gs.ActivePlayer()

	if !turn.CanMove() {
		return nil, ErrMoveLimitReached
	}
	pawn := active.Pawn(pawnName)
	if pawn == nil {
		return nil, ErrUnknownPawn
	}
	if turn.BuildsDone > 0 {
		return nil, ErrAlreadyBuilt
	}

	from := pawn.Position
	dst := gs.Board.Cell(to)
	landing := dst.LandingLevel()

	if landing > pawn.Level+1 {
		return nil, ErrDestinationTooHigh
	}
	if !turn.CanMoveUpThisTurn && landing > pawn.Level {
		return nil, ErrUpwardMoveForbidden
	}

	outcome := &Outcome{
		Action: ActionMove,
		Player: active.Name,
		Pawn:   pawnName,
		From:   &from,
		To:     &to,
	}

	// Hermes: same-level relocation anywhere on the board
	if turn.HermesActive && landing == pawn.Level {
		if dst.IsBlocked() || dst.IsFull() {
			return nil, ErrCellBlocked
		}
		gs.relocate(active, pawn, to)
		return gs.finishMove(outcome, pawn), nil
	}

	if !from.IsAdjacent(to) {
		return nil, ErrNotAdjacent
	}

	if turn.ApolloActive {
		if occupant, ok := dst.Occupant(); ok && !active.Owns(occupant.Name) {
			return gs.swap(active, pawn, occupant.Name, outcome), nil
		}
	}

	if dst.IsBlocked() || dst.IsFull() {
		return nil, ErrCellBlocked
	}

	if turn.AthenaActive && landing == pawn.Level+1 {
		turn.RestrictNextTurn = true
		outcome.AthenaRestriction = true
	}

	gs.relocate(active, pawn, to)
	return gs.finishMove(outcome, pawn), nil
}

// relocate moves a pawn on the board and refreshes its cached level
func (gs *GameState) relocate(owner *Player, pawn *Pawn, to Position) {
	gs.Board.MovePawn(pawn.Name, pawn.Position, to)
	owner.MovePawn(pawn.Name, to, gs.Board.Level(to))
}

// swap exchanges the mover with the opponent pawn standing on its destination
func (gs *GameState) swap(active *Player, pawn *Pawn, opponentName string, outcome *Outcome) *Outcome {
	from, to := pawn.Position, *outcome.To
	opponentPawn, opponent := gs.FindPawn(opponentName)

	gs.Board.RemovePawn(from, pawn.Name)
	displaced, _ := gs.Board.SwapPawn(to, PawnPiece(pawn.Name))
	gs.Board.Place(displaced, from)

	active.MovePawn(pawn.Name, to, gs.Board.Level(to))
	opponent.MovePawn(opponentPawn.Name, from, gs.Board.Level(from))

	outcome.Swapped = opponentPawn.Name
	return gs.finishMove(outcome, pawn)
}

func (gs *GameState) finishMove(outcome *Outcome, pawn *Pawn) *Outcome {
	gs.Turn.RecordMove()
	outcome.Level = pawn.Level
	gs.record(HistoryEntry{
		Action:  ActionMove,
		Pawn:    pawn.Name,
		From:    outcome.From,
		To:      outcome.To,
		Swapped: outcome.Swapped,
	})
	gs.checkGameOver(outcome)
	return outcome
}

// checkGameOver runs after every accepted move or build. The active player
// wins on reaching the winning level, when both opponent pawns are boxed in,
// or when no free cell is left anywhere.
func (gs *GameState) checkGameOver(outcome *Outcome) {
	active := gs.ActivePlayer()
	opponent := gs.InactivePlayer()

	switch {
	case active.HasReachedLevel(WinningLevel):
		gs.endGame(active.Name, EndReasonVictory)
	case gs.isImmobilized(opponent):
		gs.endGame(active.Name, EndReasonImmobilized)
	case !gs.Board.HasUnblockedCell():
		gs.endGame(active.Name, EndReasonStalemate)
	default:
		return
	}

	outcome.GameOver = true
	outcome.Winner = gs.Winner
	outcome.EndReason = gs.EndReason
}

func (gs *GameState) isImmobilized(player *Player) bool {
	for _, pawn := range player.Pawns {
		if len(gs.Board.UnblockedNeighbors(pawn.Position)) > 0 {
			return false
		}
	}
	return true
}

func (gs *GameState) endGame(winner string, reason EndReason) {
	gs.GameOver = true
	gs.Winner = winner
	gs.EndReason = reason
}

// record appends an accepted action to the history
func (gs *GameState) record(entry HistoryEntry) {
	entry.Number = len(gs.History) + 1
	entry.Turn = gs.TurnNumber
	if entry.Player == "" {
		entry.Player = gs.ActivePlayer().Name
	}
	entry.Timestamp = time.Now().Unix()
	gs.History = append(gs.History, entry)
}
