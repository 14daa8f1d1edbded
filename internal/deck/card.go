package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Spades
	Hearts
)

// AllSuits lists the suits in deck construction order
var AllSuits = []Suit{Clubs, Diamonds, Spades, Hearts}

// String returns the lowercase suit name used in card labels
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	default:
		return "?"
	}
}

// Symbol returns the suit glyph
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// AllRanks lists the thirteen ranks from Two to Ace
var AllRanks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// String returns the rank label ("2".."10", "J", "Q", "K", "A")
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// PointValue returns the blackjack value of the rank. Aces count 11.
func (r Rank) PointValue() int {
	switch {
	case r >= Two && r <= Ten:
		return int(r)
	case r >= Jack && r <= King:
		return 10
	case r == Ace:
		return 11
	default:
		return 0
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the card label, e.g. "A-diamonds" or "10-clubs"
func (c Card) String() string {
	return c.Rank.String() + "-" + c.Suit.String()
}

// Short returns the compact form used in log lines (e.g., "A♦")
func (c Card) Short() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// PointValue returns the blackjack value of the card
func (c Card) PointValue() int {
	return c.Rank.PointValue()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsFaceCard returns true if the card is a face card (J, Q, K)
func (c Card) IsFaceCard() bool {
	return c.Rank >= Jack && c.Rank <= King
}

// ParseCard parses a label produced by Card.String, e.g. "K-hearts"
func ParseCard(s string) (Card, error) {
	rankStr, suitStr, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Card{}, fmt.Errorf("invalid card %q: expected <rank>-<suit>", s)
	}

	var rank Rank
	for _, r := range AllRanks {
		if strings.EqualFold(r.String(), rankStr) {
			rank = r
			break
		}
	}
	if rank == 0 {
		return Card{}, fmt.Errorf("invalid rank %q in card %q", rankStr, s)
	}

	for _, suit := range AllSuits {
		if strings.EqualFold(suit.String(), suitStr) {
			return NewCard(suit, rank), nil
		}
	}
	return Card{}, fmt.Errorf("invalid suit %q in card %q", suitStr, s)
}

// MustParseCards parses a list of card labels and panics on error.
// Intended for tests and fixed fixtures.
func MustParseCards(labels ...string) []Card {
	cards := make([]Card, 0, len(labels))
	for _, label := range labels {
		c, err := ParseCard(label)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}

// FormatCards joins cards in short form, e.g. "A♦ 10♣"
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Short()
	}
	return strings.Join(parts, " ")
}
