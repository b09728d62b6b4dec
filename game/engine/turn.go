package engine

// Turn holds the counters and power flags of the turn being played. A new
// Turn replaces it at every turn boundary.
type Turn struct {
	MovesDone            int  `json:"moves_done"`
	BuildsDone           int  `json:"builds_done"`
	MaxMoves             int  `json:"max_moves"`
	MaxBuilds            int  `json:"max_builds"`
	HasDrawnCardThisTurn bool `json:"has_drawn_card_this_turn"`
	ApolloActive         bool `json:"apollo_active"`
	HermesActive         bool `json:"hermes_active"`
	AtlasActive          bool `json:"atlas_active"`
	AthenaActive         bool `json:"athena_active"`
	CanMoveUpThisTurn    bool `json:"can_move_up_this_turn"`

	// RestrictNextTurn is set when an Athena climb happened this turn; it
	// only affects the turn that follows.
	RestrictNextTurn bool `json:"restrict_next_turn"`
}

// NewTurn creates a turn with the default limits of one move and one build
func NewTurn(canMoveUp bool) *Turn {
	return &Turn{
		MaxMoves:          1,
		MaxBuilds:         1,
		CanMoveUpThisTurn: canMoveUp,
	}
}

// Next creates the turn that follows t, carrying the Athena restriction over
func (t *Turn) Next() *Turn {
	return NewTurn(!t.RestrictNextTurn)
}

// CanMove reports whether another move is allowed
func (t *Turn) CanMove() bool {
	return t.MovesDone < t.MaxMoves
}

// CanBuild reports whether another build is allowed
func (t *Turn) CanBuild() bool {
	return t.BuildsDone < t.MaxBuilds
}

// CanEnd reports whether the turn did at least one move and one build
func (t *Turn) CanEnd() bool {
	return t.MovesDone >= 1 && t.BuildsDone >= 1
}

// HasActed reports whether a move or build already happened
func (t *Turn) HasActed() bool {
	return t.MovesDone > 0 || t.BuildsDone > 0
}

func (t *Turn) RecordMove() {
	t.MovesDone++
}

func (t *Turn) RecordBuild() {
	t.BuildsDone++
}

func (t *Turn) RecordCardDraw() {
	t.HasDrawnCardThisTurn = true
}

// ApplyCard switches on the effect of a freshly drawn card
func (t *Turn) ApplyCard(card Card) {
	switch card {
	case Apollo:
		t.ApolloActive = true
	case Artemis:
		t.MaxMoves = 2
	case Athena:
		t.AthenaActive = true
	case Atlas:
		t.AtlasActive = true
	case Demeter:
		t.MaxBuilds = 2
	case Hermes:
		t.HermesActive = true
	}
}
