package service

import (
	"time"

	"github.com/wricardo/santorini/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string            `json:"id"`
	RulesetName    string            `json:"ruleset_name"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
	Ruleset        *engine.Ruleset   `json:"ruleset"`
}

// ActionResult contains the result of a move, build, card draw, turn end or surrender
type ActionResult struct {
	Success   bool              `json:"success"`
	Action    engine.ActionType `json:"action"`
	Player    string            `json:"player"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`
	GameOver  bool              `json:"game_over"`
	Winner    string            `json:"winner,omitempty"`
	EndReason engine.EndReason  `json:"end_reason,omitempty"`
	GameState *engine.GameState `json:"game_state"`

	// Err is the rule that rejected the action, nil on success
	Err error `json:"-"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string           `json:"type"` // "move", "swap", "build", "card", "turn", "athena_restriction", "victory", "immobilized", "stalemate", "surrender"
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Player    string           `json:"player,omitempty"`
	Position  *engine.Position `json:"position,omitempty"`
}

// Event types
const (
	EventMove              = "move"
	EventSwap              = "swap"
	EventBuild             = "build"
	EventCard              = "card"
	EventTurn              = "turn"
	EventAthenaRestriction = "athena_restriction"
	EventVictory           = "victory"
	EventImmobilized       = "immobilized"
	EventStalemate         = "stalemate"
	EventSurrender         = "surrender"
)

// HistoryOptions configures action history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated action history
type HistoryResponse struct {
	Actions      []engine.HistoryEntry `json:"actions"`
	TotalActions int                   `json:"total_actions"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
	TotalPages   int                   `json:"total_pages"`
	HasNext      bool                  `json:"has_next"`
	HasPrevious  bool                  `json:"has_previous"`
}

// RulesetInfo provides information about a ruleset file
type RulesetInfo struct {
	Filename     string `json:"filename"`
	RulesetID    string `json:"ruleset_id"` // The identifier to pass to NewGame
	Name         string `json:"name"`
	Description  string `json:"description"`
	BlockSupply  int    `json:"block_supply"`
	CapSupply    int    `json:"cap_supply"`
	MaxCardDraws int    `json:"max_card_draws"`
	Cards        int    `json:"cards"`
}
