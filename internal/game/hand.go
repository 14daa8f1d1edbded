package game

import "github.com/lox/blackjack/internal/deck"

// Hand holds the cards dealt to one side, in deal order
type Hand struct {
	cards []deck.Card
}

// NewHand creates an empty hand
func NewHand() *Hand {
	return &Hand{cards: make([]deck.Card, 0, 4)}
}

// Hit draws the top card of d into the hand.
// The hand is unchanged if the deck is empty.
func (h *Hand) Hit(d *deck.Deck) (deck.Card, error) {
	card, err := d.Deal()
	if err != nil {
		return deck.Card{}, err
	}
	h.cards = append(h.cards, card)
	return card, nil
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// Total returns the sum of the cards' point values, counting Aces as 11
func (h *Hand) Total() int {
	total := 0
	for _, c := range h.cards {
		total += c.PointValue()
	}
	return total
}

// SoftTotal returns the total with Aces dropped to 1, one at a time,
// while the hand would otherwise bust
func (h *Hand) SoftTotal() int {
	total := 0
	aces := 0
	for _, c := range h.cards {
		total += c.PointValue()
		if c.IsAce() {
			aces++
		}
	}

	for total > BlackjackTotal && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsBust reports whether the fixed-Ace total exceeds 21
func (h *Hand) IsBust() bool {
	return h.Total() > BlackjackTotal
}

// PlayAsDealer draws until the total reaches 17, using default rules.
// A busted total also stops the loop. Returns deck.ErrEmptyDeck if the
// deck runs out first.
func (h *Hand) PlayAsDealer(d *deck.Deck) error {
	return h.playDealer(d, DefaultRules())
}

// playDealer is the dealer's fixed policy: hit while below the stand total.
// Every card adds at least 1 and the deck only shrinks, so the loop is bounded.
func (h *Hand) playDealer(d *deck.Deck, rules Rules) error {
	for rules.Value(h) < rules.DealerStandsOn {
		if _, err := h.Hit(d); err != nil {
			return err
		}
	}
	return nil
}

// String returns the cards in short form, e.g. "A♦ 10♣"
func (h *Hand) String() string {
	return deck.FormatCards(h.cards)
}
