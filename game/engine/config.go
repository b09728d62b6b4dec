package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	MaxBlockSupply = 125
	MaxCapSupply   = 125
)

var pawnNamePattern = regexp.MustCompile(`^[0-9a-z]+$`)

// Ruleset describes the adjustable parts of a game
type Ruleset struct {
	Name         string   `json:"name" mapstructure:"name"`
	Description  string   `json:"description" mapstructure:"description"`
	BlockSupply  int      `json:"block_supply" mapstructure:"block_supply"`
	CapSupply    int      `json:"cap_supply" mapstructure:"cap_supply"`
	MaxCardDraws int      `json:"max_card_draws" mapstructure:"max_card_draws"`
	PlayerNames  []string `json:"player_names" mapstructure:"player_names"`
	Cards        []string `json:"cards" mapstructure:"cards"`
}

// DefaultRuleset returns the standard rules: 54 blocks, 18 caps, three draws
// per player and all six cards
func DefaultRuleset() *Ruleset {
	cards := make([]string, len(AllCards))
	for i, c := range AllCards {
		cards[i] = string(c)
	}
	return &Ruleset{
		Name:         "standard",
		Description:  "Standard rules with all six power cards",
		BlockSupply:  DefaultBlockSupply,
		CapSupply:    DefaultCapSupply,
		MaxCardDraws: DefaultMaxCardDraws,
		PlayerNames:  []string{"p1", "p2"},
		Cards:        cards,
	}
}

// ValidateRuleset checks a ruleset for correctness
func ValidateRuleset(rules *Ruleset) error {
	if rules == nil {
		return fmt.Errorf("ruleset validation: ruleset is nil")
	}
	if rules.Name == "" {
		return fmt.Errorf("ruleset validation: name is required")
	}
	if rules.BlockSupply < 1 || rules.BlockSupply > MaxBlockSupply {
		return fmt.Errorf("ruleset validation: block_supply must be between 1 and %d, got %d", MaxBlockSupply, rules.BlockSupply)
	}
	if rules.CapSupply < 1 || rules.CapSupply > MaxCapSupply {
		return fmt.Errorf("ruleset validation: cap_supply must be between 1 and %d, got %d", MaxCapSupply, rules.CapSupply)
	}
	if rules.MaxCardDraws < 0 || rules.MaxCardDraws > len(AllCards) {
		return fmt.Errorf("ruleset validation: max_card_draws must be between 0 and %d, got %d", len(AllCards), rules.MaxCardDraws)
	}

	if len(rules.PlayerNames) != 2 {
		return fmt.Errorf("ruleset validation: exactly 2 player_names are required, got %d", len(rules.PlayerNames))
	}
	if rules.PlayerNames[0] == "" || rules.PlayerNames[1] == "" {
		return fmt.Errorf("ruleset validation: player_names must not be empty")
	}
	if rules.PlayerNames[0] == rules.PlayerNames[1] {
		return fmt.Errorf("ruleset validation: player_names must be distinct, got %q twice", rules.PlayerNames[0])
	}

	seen := make(map[string]bool, len(rules.Cards))
	for _, card := range rules.Cards {
		if !IsKnownCard(card) {
			return fmt.Errorf("ruleset validation: unknown card %q", card)
		}
		if seen[card] {
			return fmt.Errorf("ruleset validation: card %q listed twice", card)
		}
		seen[card] = true
	}

	return nil
}

// PawnSpec is a parsed name;row;col descriptor
type PawnSpec struct {
	Name     string
	Position Position
}

// ParsePawnSpec parses a single name;row;col descriptor
func ParsePawnSpec(raw string) (PawnSpec, error) {
	parts := strings.Split(raw, ";")
	if len(parts) != 3 {
		return PawnSpec{}, fmt.Errorf("%w: %q", ErrInvalidPawnSpec, raw)
	}
	if !pawnNamePattern.MatchString(parts[0]) {
		return PawnSpec{}, fmt.Errorf("%w: %q", ErrInvalidPawnName, parts[0])
	}

	row, err := strconv.Atoi(parts[1])
	if err != nil {
		return PawnSpec{}, fmt.Errorf("%w: bad row in %q", ErrInvalidPawnSpec, raw)
	}
	col, err := strconv.Atoi(parts[2])
	if err != nil {
		return PawnSpec{}, fmt.Errorf("%w: bad col in %q", ErrInvalidPawnSpec, raw)
	}

	pos := Position{Row: row, Col: col}
	if !pos.InBounds() {
		return PawnSpec{}, fmt.Errorf("%w: %q", ErrOutOfBounds, raw)
	}

	return PawnSpec{Name: parts[0], Position: pos}, nil
}

// ParsePawnSpecs parses the four descriptors given at start-up. The first two
// belong to the starting player.
func ParsePawnSpecs(raw []string) ([4]PawnSpec, error) {
	var specs [4]PawnSpec
	if len(raw) != len(specs) {
		return specs, fmt.Errorf("%w, got %d", ErrWrongPawnCount, len(raw))
	}

	names := make(map[string]bool, len(specs))
	cells := make(map[Position]bool, len(specs))
	for i, r := range raw {
		spec, err := ParsePawnSpec(r)
		if err != nil {
			return specs, err
		}
		if names[spec.Name] || cells[spec.Position] {
			return specs, fmt.Errorf("%w: %q", ErrDuplicatePawn, r)
		}
		names[spec.Name] = true
		cells[spec.Position] = true
		specs[i] = spec
	}

	return specs, nil
}

// InitGameState creates a fresh game with the pawns placed on the board. A nil
// ruleset means DefaultRuleset.
func InitGameState(rules *Ruleset, specs [4]PawnSpec) (*GameState, error) {
	if rules == nil {
		rules = DefaultRuleset()
	}
	if err := ValidateRuleset(rules); err != nil {
		return nil, err
	}

	board := NewBoard(rules.BlockSupply, rules.CapSupply)
	pawns := make([]*Pawn, len(specs))
	for i, spec := range specs {
		if !board.Place(PawnPiece(spec.Name), spec.Position) {
			return nil, fmt.Errorf("%w: %s at %s", ErrDuplicatePawn, spec.Name, spec.Position)
		}
		pawns[i] = &Pawn{
			Name:     spec.Name,
			Position: spec.Position,
			Level:    board.Level(spec.Position),
		}
	}

	first := NewPlayer(rules.PlayerNames[0], pawns[0], pawns[1], rules.MaxCardDraws)
	second := NewPlayer(rules.PlayerNames[1], pawns[2], pawns[3], rules.MaxCardDraws)
	first.IsActiveTurn = true

	cards := make([]Card, 0, len(rules.Cards))
	for _, c := range rules.Cards {
		cards = append(cards, Card(c))
	}
	cardSet := NewCardSet(cards...)
	if len(rules.Cards) == 0 {
		cardSet = &CardSet{Remaining: []Card{}}
	}

	return &GameState{
		ID:         uuid.NewString(),
		Board:      board,
		Players:    [2]*Player{first, second},
		Turn:       NewTurn(true),
		Cards:      cardSet,
		TurnNumber: 1,
		History:    []HistoryEntry{},
	}, nil
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
