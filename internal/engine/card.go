// Package engine implements the rules and state of Spider Solitaire:
// deterministic seeded deals, move legality, run completion, undo/redo,
// hints, and inventory diagnostics. It contains pure game logic with no
// UI dependencies; the platform layer renders state and calls operations.
package engine

import "fmt"

// Suit identifies one of the four card suits.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the suit name.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return "unknown"
	}
}

// Glyph returns the suit symbol for display.
func (s Suit) Glyph() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Red reports whether the suit renders red.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Rank bounds. Rank 1 is the Ace, 13 the King.
const (
	RankAce  = 1
	RankKing = 13
)

// Card is a single playing card. Identity is by ID; suit and rank never
// change after creation. Exactly one container (a tableau column, the
// stock, or the foundations list) holds each card at any time.
type Card struct {
	ID     int  `json:"id"`
	Suit   Suit `json:"suit"`
	Rank   int  `json:"rank"`
	FaceUp bool `json:"faceUp"`
}

var rankNames = [...]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// RankName returns the display name for a rank (A, 2..10, J, Q, K).
func RankName(rank int) string {
	if rank < RankAce || rank > RankKing {
		return "?"
	}
	return rankNames[rank]
}

// Label returns a short display label like "K♠" or "10♥".
func (c Card) Label() string {
	return RankName(c.Rank) + c.Suit.Glyph()
}

// Difficulty is the suit-count variant of the game.
type Difficulty int

const (
	OneSuit  Difficulty = 1
	TwoSuit  Difficulty = 2
	FourSuit Difficulty = 4
)

// Label returns the canonical difficulty label. It is part of the seed
// derivation, so it must never change for an existing variant.
func (d Difficulty) Label() string {
	switch d {
	case OneSuit:
		return "1-suit"
	case TwoSuit:
		return "2-suit"
	case FourSuit:
		return "4-suit"
	default:
		return "unknown"
	}
}

// ParseDifficulty accepts a label ("4-suit") or a bare suit count ("4").
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "1-suit", "1":
		return OneSuit, nil
	case "2-suit", "2":
		return TwoSuit, nil
	case "4-suit", "4":
		return FourSuit, nil
	default:
		return 0, fmt.Errorf("engine: unknown difficulty %q", s)
	}
}
