package bot

import (
	"fmt"

	"github.com/lox/blackjack/internal/game"
)

// ThresholdBot hits until its total reaches a fixed stand total,
// the same policy the dealer follows
type ThresholdBot struct {
	standOn int
}

// NewThresholdBot creates a ThresholdBot. A non-positive standOn uses the dealer's 17.
func NewThresholdBot(standOn int) *ThresholdBot {
	if standOn <= 0 {
		standOn = game.DefaultDealerStandsOn
	}
	return &ThresholdBot{standOn: standOn}
}

// StandOn returns the total the bot stands on
func (b *ThresholdBot) StandOn() int {
	return b.standOn
}

func (b *ThresholdBot) MakeDecision(view game.Status) Decision {
	if view.PlayerTotal < b.standOn {
		return Decision{Action: Hit, Reasoning: fmt.Sprintf("threshold-bot hitting %d below %d", view.PlayerTotal, b.standOn)}
	}
	return Decision{Action: Stand, Reasoning: fmt.Sprintf("threshold-bot standing on %d", view.PlayerTotal)}
}
