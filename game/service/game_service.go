package service

import (
	"context"
	"time"

	"github.com/wricardo/santorini/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	NewGame(ctx context.Context, rulesetName string, pawns []string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Move(ctx context.Context, sessionID, pawn string, to engine.Position) (*ActionResult, error)
	Build(ctx context.Context, sessionID, piece string, at engine.Position) (*ActionResult, error)
	DrawCard(ctx context.Context, sessionID, card string) (*ActionResult, error)
	EndTurn(ctx context.Context, sessionID string) (*ActionResult, error)
	Surrender(ctx context.Context, sessionID string) (*ActionResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	RenderBoard(ctx context.Context, sessionID string) (string, error)
	RenderCell(ctx context.Context, sessionID string, at engine.Position) (string, error)
	Bag(ctx context.Context, sessionID string) (string, error)
	GetHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListRulesets(ctx context.Context) ([]*RulesetInfo, error)
	LoadRuleset(ctx context.Context, name string) (*engine.Ruleset, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, ruleset *engine.Ruleset, pawns [4]engine.PawnSpec) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// RulesetManager handles ruleset loading
type RulesetManager interface {
	LoadRuleset(name string) (*engine.Ruleset, error)
	ListRulesets() ([]*RulesetInfo, error)
	GetDefault() *engine.Ruleset
}

// Session represents an active game
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Ruleset        *engine.Ruleset
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
