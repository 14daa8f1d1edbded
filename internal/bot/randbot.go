package bot

import (
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// RandBot flips a coin between hit and stand, standing once it holds 21
type RandBot struct {
	rng deck.RandSource
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng deck.RandSource) *RandBot {
	return &RandBot{rng: rng}
}

func (r *RandBot) MakeDecision(view game.Status) Decision {
	if view.PlayerTotal >= game.BlackjackTotal {
		return Decision{Action: Stand, Reasoning: "rand-bot holding 21"}
	}
	if r.rng.IntN(2) == 0 {
		return Decision{Action: Stand, Reasoning: "rand-bot random stand"}
	}
	return Decision{Action: Hit, Reasoning: "rand-bot random hit"}
}
