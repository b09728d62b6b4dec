package engine

// Card is a power card symbol
type Card string

const (
	Apollo  Card = "Apollo"
	Artemis Card = "Artemis"
	Athena  Card = "Athena"
	Atlas   Card = "Atlas"
	Demeter Card = "Demeter"
	Hermes  Card = "Hermes"
)

// AllCards lists the six power cards in their canonical order
var AllCards = []Card{Apollo, Artemis, Athena, Atlas, Demeter, Hermes}

// IsKnownCard reports whether symbol names one of the six power cards
func IsKnownCard(symbol string) bool {
	for _, c := range AllCards {
		if string(c) == symbol {
			return true
		}
	}
	return false
}

// CardSet holds the cards that have not been drawn yet. A drawn card never
// comes back.
type CardSet struct {
	Remaining []Card `json:"remaining"`
}

// NewCardSet creates a set holding the given cards, or all six when none are given
func NewCardSet(cards ...Card) *CardSet {
	if len(cards) == 0 {
		cards = AllCards
	}
	remaining := make([]Card, len(cards))
	copy(remaining, cards)
	return &CardSet{Remaining: remaining}
}

// Contains reports whether symbol is still available
func (cs *CardSet) Contains(symbol string) bool {
	for _, c := range cs.Remaining {
		if string(c) == symbol {
			return true
		}
	}
	return false
}

// Remove takes the card out of the set for the rest of the game
func (cs *CardSet) Remove(symbol string) bool {
	for i, c := range cs.Remaining {
		if string(c) == symbol {
			cs.Remaining = append(cs.Remaining[:i], cs.Remaining[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns how many cards are left
func (cs *CardSet) Len() int {
	return len(cs.Remaining)
}
