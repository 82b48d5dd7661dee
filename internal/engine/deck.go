package engine

// Deck sizing. A full spider deck is 104 cards; excluding aces removes
// one card per suit copy, leaving 96.
const (
	FullDeckSize   = 104
	NoAcesDeckSize = 96
)

// deckSuits returns the suits used by a difficulty variant.
func deckSuits(d Difficulty) []Suit {
	switch d {
	case OneSuit:
		return []Suit{Spades}
	case TwoSuit:
		return []Suit{Spades, Hearts}
	default:
		return []Suit{Spades, Hearts, Diamonds, Clubs}
	}
}

// suitCopies returns how many full rank runs each suit contributes:
// 8 copies of one suit, 4 each of two, or 2 each of four.
func suitCopies(d Difficulty) int {
	return 8 / int(d)
}

// BuildDeck constructs the card multiset for a difficulty variant.
// IDs are sequential from 0 and stay unique (but not contiguous) after
// ace removal; identity, not value, is what containment tracking uses.
func BuildDeck(d Difficulty, includeAces bool) []Card {
	deck := make([]Card, 0, FullDeckSize)
	id := 0
	for _, suit := range deckSuits(d) {
		for rep := 0; rep < suitCopies(d); rep++ {
			for rank := RankAce; rank <= RankKing; rank++ {
				deck = append(deck, Card{ID: id, Suit: suit, Rank: rank})
				id++
			}
		}
	}
	if !includeAces {
		kept := deck[:0]
		for _, c := range deck {
			if c.Rank != RankAce {
				kept = append(kept, c)
			}
		}
		deck = kept
	}
	return deck
}
