package engine

// Pawn is one of the two movable pieces of a player. Level caches the level
// of the cell it stands on.
type Pawn struct {
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Level    int      `json:"level"`
}

// Player represents one side of the game
type Player struct {
	Name           string   `json:"name"`
	Pawns          [2]*Pawn `json:"pawns"`
	DrawnCardCount int      `json:"drawn_card_count"`
	MaxCardDraws   int      `json:"max_card_draws"`
	IsActiveTurn   bool     `json:"is_active_turn"`
}

// NewPlayer creates a player owning the two given pawns
func NewPlayer(name string, first, second *Pawn, maxCardDraws int) *Player {
	return &Player{
		Name:         name,
		Pawns:        [2]*Pawn{first, second},
		MaxCardDraws: maxCardDraws,
	}
}

// Pawn returns the player's pawn with the given name, or nil
func (p *Player) Pawn(name string) *Pawn {
	for _, pawn := range p.Pawns {
		if pawn != nil && pawn.Name == name {
			return pawn
		}
	}
	return nil
}

// Owns reports whether the player has a pawn with the given name
func (p *Player) Owns(name string) bool {
	return p.Pawn(name) != nil
}

// CanDrawCard reports whether the player still has draw quota left
func (p *Player) CanDrawCard() bool {
	return p.DrawnCardCount < p.MaxCardDraws
}

func (p *Player) RecordCardDraw() {
	p.DrawnCardCount++
}

// MovePawn records a new position and level for the named pawn
func (p *Player) MovePawn(name string, to Position, level int) bool {
	pawn := p.Pawn(name)
	if pawn == nil {
		return false
	}
	pawn.Position = to
	pawn.Level = level
	return true
}

// HasReachedLevel reports whether any pawn stands at the given level or higher
func (p *Player) HasReachedLevel(level int) bool {
	for _, pawn := range p.Pawns {
		if pawn != nil && pawn.Level >= level {
			return true
		}
	}
	return false
}
