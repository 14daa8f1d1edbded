package game

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/stretchr/testify/require"
)

// stacked builds a deck that deals the labelled cards in order
func stacked(labels ...string) *deck.Deck {
	return deck.NewStacked(deck.MustParseCards(labels...)...)
}

// newStackedGame creates a game over a fixed deck. The first two cards go to
// the player and the next two to the dealer.
func newStackedGame(t *testing.T, labels []string, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithDeck(stacked(labels...))}, opts...)
	g, err := NewGame(nil, opts...)
	require.NoError(t, err)
	return g
}

// hitN hits the hand n times from d, failing the test on error
func hitN(t *testing.T, h *Hand, d *deck.Deck, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := h.Hit(d)
		require.NoError(t, err)
	}
}
