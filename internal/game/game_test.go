package game

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/roundid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Parallel()

	t.Run("deals two cards each", func(t *testing.T) {
		for seed := int64(0); seed < 50; seed++ {
			g, err := NewGame(randutil.New(seed))
			require.NoError(t, err)

			status := g.Status()
			assert.Len(t, status.PlayerCards, 2)
			assert.Len(t, status.DealerCards, 2)
			assert.Equal(t, 48, g.CardsRemaining())
			assert.Equal(t, OutcomeNone, status.Outcome)
			assert.False(t, status.Resolved)
		}
	})

	t.Run("player is dealt first", func(t *testing.T) {
		g := newStackedGame(t, []string{"10-clubs", "7-hearts", "9-spades", "8-clubs"})

		status := g.Status()
		assert.Equal(t, deck.MustParseCards("10-clubs", "7-hearts"), status.PlayerCards)
		assert.Equal(t, deck.MustParseCards("9-spades", "8-clubs"), status.DealerCards)
		assert.Equal(t, 17, status.PlayerTotal)
		assert.Equal(t, 17, status.DealerTotal)
	})

	t.Run("requires RNG without a deck", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = NewGame(nil)
		})
	})

	t.Run("short deck fails the opening deal", func(t *testing.T) {
		_, err := NewGame(nil, WithDeck(stacked("2-clubs", "3-clubs", "4-clubs")))
		assert.True(t, errors.Is(err, deck.ErrEmptyDeck))
	})

	t.Run("rejects invalid rules", func(t *testing.T) {
		_, err := NewGame(randutil.New(1), WithRules(Rules{DealerStandsOn: 30}))
		assert.Error(t, err)
	})

	t.Run("generates a round id", func(t *testing.T) {
		g, err := NewGame(randutil.New(1))
		require.NoError(t, err)
		assert.NoError(t, roundid.Validate(g.ID()))
		assert.Equal(t, g.ID(), g.Status().ID)
	})

	t.Run("uses the given id", func(t *testing.T) {
		g, err := NewGame(randutil.New(1), WithID("round-1"))
		require.NoError(t, err)
		assert.Equal(t, "round-1", g.ID())
	})

	t.Run("same seed deals the same cards", func(t *testing.T) {
		a, err := NewGame(randutil.New(77))
		require.NoError(t, err)
		b, err := NewGame(randutil.New(77))
		require.NoError(t, err)

		assert.Equal(t, a.Status().PlayerCards, b.Status().PlayerCards)
		assert.Equal(t, a.Status().DealerCards, b.Status().DealerCards)
	})
}

func TestGameHit(t *testing.T) {
	t.Parallel()

	g := newStackedGame(t, []string{"2-clubs", "3-hearts", "9-spades", "8-clubs", "5-diamonds"})

	card, err := g.Hit()
	require.NoError(t, err)

	assert.Equal(t, deck.NewCard(deck.Diamonds, deck.Five), card)
	assert.Len(t, g.Status().PlayerCards, 3)
	assert.Equal(t, 10, g.PlayerTotal())
	assert.False(t, g.IsResolved())
}

func TestGameHitEmptyDeck(t *testing.T) {
	t.Parallel()

	g := newStackedGame(t, []string{"2-clubs", "3-hearts", "9-spades", "8-clubs"})

	_, err := g.Hit()
	assert.True(t, errors.Is(err, deck.ErrEmptyDeck))
	assert.Len(t, g.Status().PlayerCards, 2)
	assert.False(t, g.IsResolved())
}

func TestGameStand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cards    []string
		hits     int
		expected Outcome
		dealer   int
	}{
		{
			name:     "push on equal totals",
			cards:    []string{"10-clubs", "7-hearts", "9-spades", "8-clubs"},
			expected: OutcomePush,
			dealer:   17,
		},
		{
			name:     "dealer draws then busts",
			cards:    []string{"10-clubs", "8-hearts", "10-spades", "6-clubs", "K-diamonds"},
			expected: OutcomePlayer,
			dealer:   26,
		},
		{
			name:     "dealer draws to a higher total",
			cards:    []string{"10-clubs", "8-hearts", "4-spades", "6-clubs", "9-diamonds"},
			expected: OutcomeDealer,
			dealer:   19,
		},
		{
			name:     "player bust loses even if the dealer busts",
			cards:    []string{"10-clubs", "K-clubs", "2-spades", "3-clubs", "Q-diamonds", "10-hearts", "9-spades"},
			hits:     1,
			expected: OutcomeDealer,
			dealer:   24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newStackedGame(t, tt.cards)
			for i := 0; i < tt.hits; i++ {
				_, err := g.Hit()
				require.NoError(t, err)
			}

			outcome, err := g.Stand()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, outcome)

			status := g.Status()
			assert.True(t, status.Resolved)
			assert.Equal(t, tt.expected, status.Outcome)
			assert.Equal(t, tt.dealer, status.DealerTotal)
		})
	}
}

func TestGameStandSetsOutcome(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 100; seed++ {
		g, err := NewGame(randutil.New(seed))
		require.NoError(t, err)
		assert.Equal(t, OutcomeNone, g.Status().Outcome)

		outcome, err := g.Stand()
		require.NoError(t, err)
		assert.Contains(t, []Outcome{OutcomePlayer, OutcomeDealer, OutcomePush}, outcome)
		assert.GreaterOrEqual(t, g.DealerTotal(), 17)
		assert.Equal(t, DetermineWinner(g.PlayerTotal(), g.DealerTotal()), outcome)
	}
}

func TestGameInvalidActions(t *testing.T) {
	t.Parallel()

	t.Run("hit after stand", func(t *testing.T) {
		g, err := NewGame(randutil.New(3))
		require.NoError(t, err)
		_, err = g.Stand()
		require.NoError(t, err)

		before := g.Status()
		_, err = g.Hit()
		assert.True(t, errors.Is(err, ErrInvalidAction))
		assert.Equal(t, before, g.Status())
	})

	t.Run("stand twice", func(t *testing.T) {
		g, err := NewGame(randutil.New(4))
		require.NoError(t, err)
		first, err := g.Stand()
		require.NoError(t, err)

		before := g.Status()
		again, err := g.Stand()
		assert.True(t, errors.Is(err, ErrInvalidAction))
		assert.Equal(t, first, again)
		assert.Equal(t, before, g.Status())
	})
}

func TestGameStandEmptyDeck(t *testing.T) {
	t.Parallel()

	g := newStackedGame(t, []string{"10-clubs", "9-hearts", "2-spades", "3-clubs"})

	_, err := g.Stand()
	assert.True(t, errors.Is(err, deck.ErrEmptyDeck))
	assert.False(t, g.IsResolved())
	assert.Equal(t, OutcomeNone, g.Status().Outcome)
}

func TestGameRules(t *testing.T) {
	t.Parallel()

	t.Run("dealer stands on configured total", func(t *testing.T) {
		g := newStackedGame(t, []string{"10-clubs", "9-clubs", "10-diamonds", "2-hearts", "K-spades"},
			WithRules(Rules{DealerStandsOn: 12}))

		outcome, err := g.Stand()
		require.NoError(t, err)
		assert.Equal(t, OutcomePlayer, outcome)
		assert.Equal(t, 12, g.DealerTotal())
		assert.Equal(t, 1, g.CardsRemaining())
	})

	t.Run("soft aces change totals", func(t *testing.T) {
		cards := []string{"A-clubs", "A-hearts", "10-spades", "8-clubs"}

		fixed := newStackedGame(t, cards)
		assert.Equal(t, 22, fixed.PlayerTotal())

		soft := newStackedGame(t, cards, WithRules(Rules{DealerStandsOn: 17, SoftAces: true}))
		assert.Equal(t, 12, soft.PlayerTotal())
		assert.True(t, soft.Rules().SoftAces)
	})
}

func TestGameLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	g := newStackedGame(t, []string{"10-clubs", "7-hearts", "9-spades", "8-clubs"}, WithLogger(logger))
	_, err := g.Stand()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Dealt opening hands")
	assert.Contains(t, buf.String(), "Round resolved")
}
