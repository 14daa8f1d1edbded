package main

import (
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
)

type RoundCmd struct {
	Seed           *int64 `help:"RNG seed (random when unset)"`
	Strategy       string `default:"threshold" enum:"threshold,stand,random" help:"Player strategy"`
	StandOn        int    `default:"17" help:"Total the threshold strategy stands on"`
	DealerStandsOn int    `default:"17" help:"Total the dealer stands on"`
	SoftAces       bool   `help:"Count aces as 1 when 11 would bust"`
}

func (c *RoundCmd) Run(logger *log.Logger) error {
	seed := randutil.Seed(c.Seed)

	sim := simulator.New(simulator.Config{
		Rounds:   1,
		Strategy: c.Strategy,
		StandOn:  c.StandOn,
		Seed:     seed,
		Rules:    game.Rules{DealerStandsOn: c.DealerStandsOn, SoftAces: c.SoftAces},
		Logger:   logger,
	})

	g, err := sim.Replay(seed)
	if err != nil {
		return err
	}

	status := g.Status()
	logger.Info("Round complete",
		"id", status.ID,
		"seed", seed,
		"player", deck.FormatCards(status.PlayerCards),
		"player_total", status.PlayerTotal,
		"dealer", deck.FormatCards(status.DealerCards),
		"dealer_total", status.DealerTotal,
		"outcome", status.Outcome)
	return nil
}
