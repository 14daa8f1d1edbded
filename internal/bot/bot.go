// Package bot provides automated player strategies for blackjack rounds.
package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Action is a player action
type Action int

const (
	Stand Action = iota
	Hit
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// Decision represents a player's decision with reasoning
type Decision struct {
	Action    Action
	Reasoning string // Human-readable explanation
}

// Agent decides the player's next action from a read-only snapshot of the round.
// Agents never mutate the game; Play applies their decisions.
type Agent interface {
	MakeDecision(view game.Status) Decision
}

// Strategy names accepted by New
const (
	StrategyThreshold = "threshold"
	StrategyStand     = "stand"
	StrategyRandom    = "random"
)

// Names lists the available strategies
func Names() []string {
	return []string{StrategyThreshold, StrategyStand, StrategyRandom}
}

// New creates an agent by strategy name. standOn is used by the threshold
// strategy; rng is used by the random strategy.
func New(name string, standOn int, rng deck.RandSource) (Agent, error) {
	switch strings.ToLower(name) {
	case StrategyThreshold:
		return NewThresholdBot(standOn), nil
	case StrategyStand:
		return NewStandBot(), nil
	case StrategyRandom:
		if rng == nil {
			return nil, errors.New("random strategy requires an rng")
		}
		return NewRandBot(rng), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (available: %s)", name, strings.Join(Names(), ", "))
	}
}

// Play drives an open round to resolution using agent's decisions.
// A busted player stands without consulting the agent.
func Play(g *game.Game, agent Agent, logger *log.Logger) (game.Outcome, error) {
	for {
		view := g.Status()
		if view.PlayerTotal > game.BlackjackTotal {
			break
		}

		decision := agent.MakeDecision(view)
		if logger != nil {
			logger.Debug("Player decision",
				"round", view.ID,
				"player_total", view.PlayerTotal,
				"action", decision.Action,
				"reasoning", decision.Reasoning)
		}

		if decision.Action != Hit {
			break
		}
		if _, err := g.Hit(); err != nil {
			return game.OutcomeNone, err
		}
	}

	return g.Stand()
}
