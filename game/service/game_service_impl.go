package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wricardo/santorini/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	rulesets RulesetManager
	logger   *zap.Logger
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance. A nil logger discards
// all log output.
func NewGameService(sessions SessionManager, rulesets RulesetManager, logger *zap.Logger) GameService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &gameServiceImpl{
		sessions: sessions,
		rulesets: rulesets,
		logger:   logger.Named("service"),
	}
}

// NewGame parses the four pawn descriptors and starts a game with the named
// ruleset, or the default one when the name is empty
func (s *gameServiceImpl) NewGame(ctx context.Context, rulesetName string, pawns []string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	specs, err := engine.ParsePawnSpecs(pawns)
	if err != nil {
		return nil, err
	}

	var ruleset *engine.Ruleset
	if rulesetName != "" {
		ruleset, err = s.rulesets.LoadRuleset(rulesetName)
		if err != nil {
			return nil, fmt.Errorf("failed to load ruleset %s: %w", rulesetName, err)
		}
	} else {
		ruleset = s.rulesets.GetDefault()
	}

	session, err := s.sessions.Create("", ruleset, specs)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("game started",
		zap.String("game_id", session.ID),
		zap.String("ruleset", ruleset.Name),
		zap.Strings("pawns", pawns),
	)

	return toSessionInfo(session), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return toSessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, toSessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Move moves one of the active player's pawns
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, pawn string, to engine.Position) (*ActionResult, error) {
	return s.apply(sessionID, engine.ActionMove, func(e *engine.GameEngine) (*engine.Outcome, error) {
		return e.Move(pawn, to)
	})
}

// Build places a block or a cap
func (s *gameServiceImpl) Build(ctx context.Context, sessionID, piece string, at engine.Position) (*ActionResult, error) {
	return s.apply(sessionID, engine.ActionBuild, func(e *engine.GameEngine) (*engine.Outcome, error) {
		return e.Build(piece, at)
	})
}

// DrawCard draws a power card for the current turn
func (s *gameServiceImpl) DrawCard(ctx context.Context, sessionID, card string) (*ActionResult, error) {
	return s.apply(sessionID, engine.ActionDrawCard, func(e *engine.GameEngine) (*engine.Outcome, error) {
		return e.DrawCard(card)
	})
}

// EndTurn passes the turn to the other player
func (s *gameServiceImpl) EndTurn(ctx context.Context, sessionID string) (*ActionResult, error) {
	return s.apply(sessionID, engine.ActionEndTurn, func(e *engine.GameEngine) (*engine.Outcome, error) {
		return e.EndTurn()
	})
}

// Surrender ends the game in favour of the waiting player
func (s *gameServiceImpl) Surrender(ctx context.Context, sessionID string) (*ActionResult, error) {
	return s.apply(sessionID, engine.ActionSurrender, func(e *engine.GameEngine) (*engine.Outcome, error) {
		return e.Surrender()
	})
}

// apply runs one engine action. A rule rejection is not an error of the
// service: it comes back as an unsuccessful result carrying the reason.
func (s *gameServiceImpl) apply(sessionID string, action engine.ActionType, fn func(*engine.GameEngine) (*engine.Outcome, error)) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	player := sess.Engine.GetActivePlayer().Name
	outcome, err := fn(sess.Engine)
	state := sess.Engine.GetState()

	if err != nil {
		s.logger.Debug("action rejected",
			zap.String("game_id", sess.ID),
			zap.String("player", player),
			zap.String("action", string(action)),
			zap.String("reason", err.Error()),
		)
		return &ActionResult{
			Success:   false,
			Action:    action,
			Player:    player,
			Message:   err.Error(),
			GameOver:  state.GameOver,
			Winner:    state.Winner,
			EndReason: state.EndReason,
			GameState: state,
			Err:       err,
		}, nil
	}

	result := &ActionResult{
		Success:   true,
		Action:    action,
		Player:    player,
		Message:   "OK",
		Events:    extractEvents(outcome),
		GameOver:  outcome.GameOver,
		Winner:    outcome.Winner,
		EndReason: outcome.EndReason,
		GameState: state,
	}
	if action == engine.ActionEndTurn {
		result.Message = outcome.NextPlayer
	}
	if result.GameOver {
		result.Message = fmt.Sprintf("%s wins", result.Winner)
	}

	fields := []zap.Field{
		zap.String("game_id", sess.ID),
		zap.String("player", player),
		zap.String("action", string(action)),
		zap.Int("turn", state.TurnNumber),
	}
	s.logger.Info("action accepted", fields...)
	if result.GameOver {
		s.logger.Info("game over", append(fields,
			zap.String("winner", result.Winner),
			zap.String("reason", string(result.EndReason)),
		)...)
	}

	return result, nil
}

// Reset restarts a game with its original ruleset and pawn placement
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	state, err := sess.Engine.Reset()
	if err != nil {
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}
	s.logger.Info("game reset", zap.String("game_id", sess.ID))
	return state, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	sess, err := s.read(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Engine.GetState(), nil
}

// RenderBoard renders the top piece of every cell
func (s *gameServiceImpl) RenderBoard(ctx context.Context, sessionID string) (string, error) {
	sess, err := s.read(sessionID)
	if err != nil {
		return "", err
	}
	return sess.Engine.Print(), nil
}

// RenderCell renders the full stack of one cell
func (s *gameServiceImpl) RenderCell(ctx context.Context, sessionID string, at engine.Position) (string, error) {
	sess, err := s.read(sessionID)
	if err != nil {
		return "", err
	}
	return sess.Engine.CellPrint(at)
}

// Bag reports the remaining block and cap supplies
func (s *gameServiceImpl) Bag(ctx context.Context, sessionID string) (string, error) {
	sess, err := s.read(sessionID)
	if err != nil {
		return "", err
	}
	return sess.Engine.Bag(), nil
}

func (s *gameServiceImpl) read(sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sess, nil
}

// GetHistory returns paginated action history
func (s *gameServiceImpl) GetHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var actions []engine.HistoryEntry
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			actions = append(actions, history[i])
		}
	} else if start < total {
		actions = history[start:end]
	}

	if actions == nil {
		actions = []engine.HistoryEntry{}
	}

	return &HistoryResponse{
		Actions:      actions,
		TotalActions: total,
		Page:         opts.Page,
		PageSize:     opts.Limit,
		TotalPages:   totalPages,
		HasNext:      opts.Page < totalPages,
		HasPrevious:  opts.Page > 1,
	}, nil
}

// ListRulesets returns the available rulesets
func (s *gameServiceImpl) ListRulesets(ctx context.Context) ([]*RulesetInfo, error) {
	return s.rulesets.ListRulesets()
}

// LoadRuleset loads a specific ruleset
func (s *gameServiceImpl) LoadRuleset(ctx context.Context, name string) (*engine.Ruleset, error) {
	return s.rulesets.LoadRuleset(name)
}

func toSessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		RulesetName:    sess.Ruleset.Name,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.GetState(),
		Ruleset:        sess.Ruleset,
	}
}

// extractEvents turns an accepted outcome into game events
func extractEvents(out *engine.Outcome) []GameEvent {
	now := time.Now()
	events := []GameEvent{}
	add := func(typ, msg string, at *engine.Position) {
		events = append(events, GameEvent{Type: typ, Message: msg, Timestamp: now, Player: out.Player, Position: at})
	}

	switch out.Action {
	case engine.ActionMove:
		add(EventMove, fmt.Sprintf("%s moved %s to %s, level %d", out.Player, out.Pawn, out.To, out.Level), out.To)
		if out.Swapped != "" {
			add(EventSwap, fmt.Sprintf("%s swapped places with %s", out.Pawn, out.Swapped), out.From)
		}
		if out.AthenaRestriction {
			add(EventAthenaRestriction, "the opponent may not move up next turn", nil)
		}
	case engine.ActionBuild:
		add(EventBuild, fmt.Sprintf("%s built a %s at %s", out.Player, out.Piece, out.To), out.To)
	case engine.ActionDrawCard:
		add(EventCard, fmt.Sprintf("%s drew %s", out.Player, out.Card), nil)
	case engine.ActionEndTurn:
		add(EventTurn, fmt.Sprintf("%s to play", out.NextPlayer), nil)
		if out.AthenaRestriction {
			add(EventAthenaRestriction, fmt.Sprintf("%s may not move up this turn", out.NextPlayer), nil)
		}
	case engine.ActionSurrender:
		add(EventSurrender, fmt.Sprintf("%s surrendered", out.Player), nil)
	}

	switch out.EndReason {
	case engine.EndReasonVictory:
		add(EventVictory, fmt.Sprintf("%s reached level %d", out.Winner, engine.WinningLevel), nil)
	case engine.EndReasonImmobilized:
		add(EventImmobilized, fmt.Sprintf("%s boxed in both opposing pawns", out.Winner), nil)
	case engine.EndReasonStalemate:
		add(EventStalemate, "no free cell is left on the board", nil)
	}

	return events
}
