package engine

import "fmt"

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() (*GameState, error)
	IsGameOver() bool
	GetWinner() string
	GetActivePlayer() *Player

	// Actions
	Move(pawnName string, to Position) (*Outcome, error)
	Build(token string, pos Position) (*Outcome, error)
	DrawCard(symbol string) (*Outcome, error)
	EndTurn() (*Outcome, error)
	Surrender() (*Outcome, error)

	// Rendering
	Print() string
	CellPrint(pos Position) (string, error)
	Bag() string

	// Configuration
	GetRuleset() *Ruleset

	// History
	GetHistory() []HistoryEntry
	GetLastAction() *HistoryEntry
}

// GameEngine implements the Engine interface
type GameEngine struct {
	state   *GameState
	ruleset *Ruleset
	pawns   [4]PawnSpec
}

// NewEngine creates a new game engine with the given ruleset and pawn placement
func NewEngine(ruleset *Ruleset, pawns [4]PawnSpec) (*GameEngine, error) {
	if ruleset == nil {
		ruleset = DefaultRuleset()
	}
	state, err := InitGameState(ruleset, pawns)
	if err != nil {
		return nil, err
	}
	return &GameEngine{
		state:   state,
		ruleset: ruleset,
		pawns:   pawns,
	}, nil
}

// NewEngineFromArgs parses four name;row;col descriptors and creates an engine
func NewEngineFromArgs(ruleset *Ruleset, args []string) (*GameEngine, error) {
	pawns, err := ParsePawnSpecs(args)
	if err != nil {
		return nil, err
	}
	return NewEngine(ruleset, pawns)
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState replaces the game state
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	e.state = state
	return nil
}

// Reset starts a new game with the same ruleset and pawn placement
func (e *GameEngine) Reset() (*GameState, error) {
	state, err := InitGameState(e.ruleset, e.pawns)
	if err != nil {
		return nil, err
	}
	e.state = state
	return e.state, nil
}

// IsGameOver returns whether the game is over
func (e *GameEngine) IsGameOver() bool {
	return e.state.GameOver
}

// GetWinner returns the winner's name, empty while the game runs
func (e *GameEngine) GetWinner() string {
	return e.state.Winner
}

// GetActivePlayer returns the player whose turn it is
func (e *GameEngine) GetActivePlayer() *Player {
	return e.state.ActivePlayer()
}

func (e *GameEngine) Move(pawnName string, to Position) (*Outcome, error) {
	return e.state.Move(pawnName, to)
}

func (e *GameEngine) Build(token string, pos Position) (*Outcome, error) {
	return e.state.Build(token, pos)
}

func (e *GameEngine) DrawCard(symbol string) (*Outcome, error) {
	return e.state.DrawCard(symbol)
}

func (e *GameEngine) EndTurn() (*Outcome, error) {
	return e.state.EndTurn()
}

func (e *GameEngine) Surrender() (*Outcome, error) {
	return e.state.Surrender()
}

// Print renders the board
func (e *GameEngine) Print() string {
	return e.state.Board.Print()
}

// CellPrint renders the stack of one cell
func (e *GameEngine) CellPrint(pos Position) (string, error) {
	return e.state.Board.CellPrint(pos)
}

// Bag reports the remaining supplies
func (e *GameEngine) Bag() string {
	return e.state.Board.Bag()
}

// GetRuleset returns the ruleset the game was created with
func (e *GameEngine) GetRuleset() *Ruleset {
	return e.ruleset
}

// GetHistory returns every accepted action
func (e *GameEngine) GetHistory() []HistoryEntry {
	return e.state.History
}

// GetLastAction returns the last accepted action, or nil if none
func (e *GameEngine) GetLastAction() *HistoryEntry {
	if len(e.state.History) == 0 {
		return nil
	}
	return &e.state.History[len(e.state.History)-1]
}
