package game

import (
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
)

// Option configures a Game during creation.
type Option func(*gameConfig)

// gameConfig holds all configuration for creating a game.
type gameConfig struct {
	deck   *deck.Deck // If provided, used instead of a fresh shuffled deck
	rules  Rules
	logger *log.Logger
	id     string
}

// WithDeck uses the given deck instead of shuffling a new one.
// Useful for tests and replays that need a fixed card order.
func WithDeck(d *deck.Deck) Option {
	return func(c *gameConfig) {
		c.deck = d
	}
}

// WithRules sets the valuation and dealer rules for the round.
func WithRules(r Rules) Option {
	return func(c *gameConfig) {
		c.rules = r
	}
}

// WithLogger sets the logger used for round events.
func WithLogger(l *log.Logger) Option {
	return func(c *gameConfig) {
		c.logger = l
	}
}

// WithID sets the round ID instead of generating one.
func WithID(id string) Option {
	return func(c *gameConfig) {
		c.id = id
	}
}
