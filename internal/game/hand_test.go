package game

import (
	"errors"
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandTotal(t *testing.T) {
	t.Parallel()

	d := stacked("4-clubs", "10-diamonds")
	h := NewHand()
	hitN(t, h, d, 2)

	assert.Equal(t, 14, h.Total())
	assert.Equal(t, 2, h.Len())
}

func TestHandTakesFromTop(t *testing.T) {
	t.Parallel()

	d := stacked("4-clubs", "7-diamonds", "K-clubs")
	h := NewHand()
	hitN(t, h, d, 2)

	assert.Equal(t, deck.MustParseCards("4-clubs", "7-diamonds"), h.Cards())
	assert.Equal(t, 1, d.Remaining())
}

func TestHandTotalMatchesSum(t *testing.T) {
	t.Parallel()

	d := deck.New(randutil.New(5))
	h := NewHand()
	for i := 0; i < 10; i++ {
		hitN(t, h, d, 1)

		sum := 0
		for _, c := range h.Cards() {
			sum += c.PointValue()
		}
		assert.Equal(t, sum, h.Total())
	}
}

func TestHandHitEmptyDeck(t *testing.T) {
	t.Parallel()

	h := NewHand()
	_, err := h.Hit(deck.NewStacked())

	assert.True(t, errors.Is(err, deck.ErrEmptyDeck))
	assert.Zero(t, h.Len())
}

func TestHandCardsReturnsCopy(t *testing.T) {
	h := NewHand()
	hitN(t, h, stacked("5-hearts"), 1)

	cards := h.Cards()
	cards[0] = deck.NewCard(deck.Spades, deck.Ace)

	assert.Equal(t, 5, h.Total())
}

func TestSoftTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards []string
		total int
		soft  int
	}{
		{name: "ace and nine", cards: []string{"A-spades", "9-hearts"}, total: 20, soft: 20},
		{name: "ace drops to one", cards: []string{"A-spades", "9-hearts", "2-diamonds"}, total: 22, soft: 12},
		{name: "two aces", cards: []string{"A-spades", "A-hearts"}, total: 22, soft: 12},
		{name: "two aces and nine", cards: []string{"A-spades", "A-hearts", "9-diamonds"}, total: 31, soft: 21},
		{name: "no aces bust", cards: []string{"K-spades", "Q-hearts", "5-clubs"}, total: 25, soft: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHand()
			hitN(t, h, stacked(tt.cards...), len(tt.cards))

			assert.Equal(t, tt.total, h.Total())
			assert.Equal(t, tt.soft, h.SoftTotal())
			assert.Equal(t, tt.total > 21, h.IsBust())
		})
	}
}

func TestPlayAsDealer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cards    []string
		expected int
		len      int
	}{
		{
			name:     "hits below 17",
			cards:    []string{"4-clubs", "4-diamonds", "2-clubs", "7-hearts"},
			expected: 17,
			len:      4,
		},
		{
			name:     "does not hit on 18",
			cards:    []string{"8-clubs", "Q-diamonds"},
			expected: 18,
			len:      2,
		},
		{
			name:     "stops on 21",
			cards:    []string{"4-clubs", "7-diamonds", "K-clubs"},
			expected: 21,
			len:      3,
		},
		{
			name:     "stops after busting",
			cards:    []string{"10-clubs", "6-diamonds", "K-clubs", "2-hearts"},
			expected: 26,
			len:      3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := stacked(tt.cards...)
			h := NewHand()
			hitN(t, h, d, 2)

			require.NoError(t, h.PlayAsDealer(d))
			assert.Equal(t, tt.expected, h.Total())
			assert.Equal(t, tt.len, h.Len())
		})
	}
}

func TestPlayAsDealerEmptyDeck(t *testing.T) {
	t.Parallel()

	d := stacked("2-clubs", "3-clubs")
	h := NewHand()
	hitN(t, h, d, 2)

	err := h.PlayAsDealer(d)
	assert.True(t, errors.Is(err, deck.ErrEmptyDeck))
	assert.Equal(t, 5, h.Total())
	assert.Equal(t, 2, h.Len())
}

func TestPlayAsDealerNeverHitsAtSeventeen(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 200; seed++ {
		d := deck.New(randutil.New(seed))
		h := NewHand()

		require.NoError(t, h.PlayAsDealer(d))
		assert.GreaterOrEqual(t, h.Total(), 17, "seed %d", seed)

		// Every prefix before the last card must have been below 17
		running := 0
		cards := h.Cards()
		for _, c := range cards[:len(cards)-1] {
			running += c.PointValue()
			assert.Less(t, running, 17, "seed %d: dealer hit at %d", seed, running)
		}
	}
}

func TestPlayDealerSoftAces(t *testing.T) {
	t.Parallel()

	labels := []string{"A-clubs", "5-hearts", "K-spades", "3-diamonds"}

	t.Run("fixed aces stop on bust", func(t *testing.T) {
		d := stacked(labels...)
		h := NewHand()
		hitN(t, h, d, 2)

		require.NoError(t, h.playDealer(d, DefaultRules()))
		assert.Equal(t, 26, h.Total())
		assert.Equal(t, 3, h.Len())
	})

	t.Run("soft aces keep drawing", func(t *testing.T) {
		d := stacked(labels...)
		h := NewHand()
		hitN(t, h, d, 2)

		rules := Rules{DealerStandsOn: 17, SoftAces: true}
		require.NoError(t, h.playDealer(d, rules))
		assert.Equal(t, 19, rules.Value(h))
		assert.Equal(t, 4, h.Len())
	})

	t.Run("soft seventeen stands", func(t *testing.T) {
		d := stacked("A-clubs", "6-hearts", "K-spades")
		h := NewHand()
		hitN(t, h, d, 2)

		require.NoError(t, h.playDealer(d, Rules{DealerStandsOn: 17, SoftAces: true}))
		assert.Equal(t, 2, h.Len())
	})
}

func TestHandString(t *testing.T) {
	h := NewHand()
	hitN(t, h, stacked("A-diamonds", "10-clubs"), 2)
	assert.Equal(t, "A♦ 10♣", h.String())
}
