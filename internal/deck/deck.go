package deck

import "errors"

// ErrEmptyDeck is returned when dealing from a deck with no cards left
var ErrEmptyDeck = errors.New("deck is empty")

// Size is the number of cards in a full deck
const Size = 52

// RandSource provides uniform random integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Deck represents a deck of playing cards. Cards are dealt from the front.
type Deck struct {
	cards []Card
}

// New creates a standard 52-card deck shuffled with the provided source.
// The source is required to make randomness explicit and testing deterministic.
func New(rng RandSource) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}

	d := &Deck{cards: make([]Card, 0, Size)}
	for _, suit := range AllSuits {
		for _, rank := range AllRanks {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	d.shuffle(rng)
	return d
}

// NewStacked creates a deck that deals the given cards in order.
// Used for tests and replays where the card sequence must be fixed.
func NewStacked(cards ...Card) *Deck {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked}
}

// shuffle applies a Fisher-Yates shuffle
func (d *Deck) shuffle(rng RandSource) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, top card first
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
