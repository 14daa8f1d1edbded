package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/roundid"
)

// ErrInvalidAction is returned for actions not allowed in the round's current state
var ErrInvalidAction = errors.New("invalid action")

// Game is a single blackjack round
type Game struct {
	id       string
	deck     *deck.Deck
	player   *Hand
	dealer   *Hand
	rules    Rules
	outcome  Outcome
	resolved bool
	logger   *log.Logger
}

// Status is a read-only snapshot of a round
type Status struct {
	ID          string
	PlayerCards []deck.Card
	PlayerTotal int
	DealerCards []deck.Card
	DealerTotal int
	Outcome     Outcome // OutcomeNone until the round is resolved
	Resolved    bool
}

// NewGame shuffles a deck with rng and deals two cards to the player, then
// two to the dealer. The RNG is required unless a deck is supplied WithDeck.
func NewGame(rng deck.RandSource, opts ...Option) (*Game, error) {
	cfg := &gameConfig{
		rules: DefaultRules(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.rules.Validate(); err != nil {
		return nil, err
	}

	if cfg.deck == nil {
		if rng == nil {
			panic("rng is required for game creation")
		}
		cfg.deck = deck.New(rng)
	}
	if cfg.logger == nil {
		cfg.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if cfg.id == "" {
		cfg.id = roundid.Generate()
	}

	g := &Game{
		id:     cfg.id,
		deck:   cfg.deck,
		player: NewHand(),
		dealer: NewHand(),
		rules:  cfg.rules,
		logger: cfg.logger,
	}

	if err := g.dealOpening(); err != nil {
		return nil, fmt.Errorf("initial deal: %w", err)
	}

	g.logger.Debug("Dealt opening hands",
		"round", g.id,
		"player", g.player,
		"player_total", g.PlayerTotal(),
		"dealer", g.dealer,
		"dealer_total", g.DealerTotal())

	return g, nil
}

func (g *Game) dealOpening() error {
	for _, h := range []*Hand{g.player, g.player, g.dealer, g.dealer} {
		if _, err := h.Hit(g.deck); err != nil {
			return err
		}
	}
	return nil
}

// ID returns the round identifier
func (g *Game) ID() string {
	return g.id
}

// Rules returns the rules in force for this round
func (g *Game) Rules() Rules {
	return g.rules
}

// PlayerTotal returns the player's total under the round's rules
func (g *Game) PlayerTotal() int {
	return g.rules.Value(g.player)
}

// DealerTotal returns the dealer's total under the round's rules
func (g *Game) DealerTotal() int {
	return g.rules.Value(g.dealer)
}

// IsResolved reports whether Stand has completed
func (g *Game) IsResolved() bool {
	return g.resolved
}

// Hit draws one card into the player's hand
func (g *Game) Hit() (deck.Card, error) {
	if g.resolved {
		return deck.Card{}, fmt.Errorf("%w: hit after stand", ErrInvalidAction)
	}

	card, err := g.player.Hit(g.deck)
	if err != nil {
		return deck.Card{}, fmt.Errorf("player hit: %w", err)
	}

	g.logger.Debug("Player hit",
		"round", g.id,
		"card", card.Short(),
		"player_total", g.PlayerTotal())

	return card, nil
}

// Stand ends the player's turn, plays the dealer's hand and fixes the outcome.
// If the deck runs out during dealer play the round stays open.
func (g *Game) Stand() (Outcome, error) {
	if g.resolved {
		return g.outcome, fmt.Errorf("%w: round already resolved", ErrInvalidAction)
	}

	if err := g.dealer.playDealer(g.deck, g.rules); err != nil {
		return OutcomeNone, fmt.Errorf("dealer play: %w", err)
	}

	g.outcome = DetermineWinner(g.PlayerTotal(), g.DealerTotal())
	g.resolved = true

	g.logger.Debug("Round resolved",
		"round", g.id,
		"outcome", g.outcome,
		"player_total", g.PlayerTotal(),
		"dealer", g.dealer,
		"dealer_total", g.DealerTotal())

	return g.outcome, nil
}

// Status returns a snapshot of the round
func (g *Game) Status() Status {
	return Status{
		ID:          g.id,
		PlayerCards: g.player.Cards(),
		PlayerTotal: g.PlayerTotal(),
		DealerCards: g.dealer.Cards(),
		DealerTotal: g.DealerTotal(),
		Outcome:     g.outcome,
		Resolved:    g.resolved,
	}
}

// CardsRemaining returns the number of undealt cards
func (g *Game) CardsRemaining() int {
	return g.deck.Remaining()
}
