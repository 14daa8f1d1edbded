package bot

import "github.com/lox/blackjack/internal/game"

// StandBot always stands on its opening hand
type StandBot struct{}

// NewStandBot creates a new StandBot instance
func NewStandBot() *StandBot {
	return &StandBot{}
}

func (s *StandBot) MakeDecision(view game.Status) Decision {
	return Decision{Action: Stand, Reasoning: "stand-bot always stands"}
}
