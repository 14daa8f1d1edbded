package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/report"
	"github.com/lox/blackjack/internal/simulator"
)

type SimulateCmd struct {
	Config string `default:"blackjack.hcl" help:"HCL config file (defaults apply when missing)"`

	// Overrides for values in the config file
	Rounds         *int           `help:"Number of rounds to simulate"`
	Strategy       *string        `help:"Player strategy (threshold, stand, random)"`
	StandOn        *int           `help:"Total the threshold strategy stands on"`
	Seed           *int64         `help:"Base RNG seed, round i uses seed+i (random when unset)"`
	Workers        *int           `help:"Number of parallel workers"`
	Timeout        *time.Duration `help:"Abort the simulation after this long"`
	DealerStandsOn *int           `help:"Total the dealer stands on"`
	SoftAces       *bool          `help:"Count aces as 1 when 11 would bust"`

	Report string `help:"Write a TOML summary to this path"`
}

// resolve loads the config file and applies flag overrides on top
func (c *SimulateCmd) resolve() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}

	sim := cfg.Simulation
	if c.Rounds != nil {
		sim.Rounds = *c.Rounds
	}
	if c.Strategy != nil {
		sim.Strategy = *c.Strategy
	}
	if c.StandOn != nil {
		sim.StandOn = *c.StandOn
	}
	if c.Seed != nil {
		sim.Seed = c.Seed
	}
	if c.Workers != nil {
		sim.Workers = *c.Workers
	}
	if c.DealerStandsOn != nil {
		cfg.Rules.DealerStandsOn = *c.DealerStandsOn
	}
	if c.SoftAces != nil {
		cfg.Rules.SoftAces = *c.SoftAces
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SimulateCmd) Run(logger *log.Logger) error {
	cfg, err := c.resolve()
	if err != nil {
		return err
	}

	timeout := cfg.Timeout()
	if c.Timeout != nil {
		timeout = *c.Timeout
	}

	sim := simulator.New(simulator.Config{
		Rounds:   cfg.Simulation.Rounds,
		Strategy: cfg.Simulation.Strategy,
		StandOn:  cfg.Simulation.StandOn,
		Seed:     randutil.Seed(cfg.Simulation.Seed),
		Workers:  cfg.Simulation.Workers,
		Timeout:  timeout,
		Rules:    cfg.GameRules(),
		Logger:   logger.WithPrefix("simulator"),
	})

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	result, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	stats := result.Stats
	low, high := stats.ConfidenceInterval95()
	logger.Info("Results",
		"rounds", stats.Rounds,
		"player_wins", stats.PlayerWins,
		"dealer_wins", stats.DealerWins,
		"pushes", stats.Pushes,
		"player_busts", stats.PlayerBusts,
		"dealer_busts", stats.DealerBusts)
	logger.Info("Expectation",
		"mean", fmt.Sprintf("%+.4f", stats.Mean()),
		"std_dev", fmt.Sprintf("%.4f", stats.StdDev()),
		"ci95", fmt.Sprintf("[%+.4f, %+.4f]", low, high),
		"seed", result.Seed)

	if c.Report == "" {
		return nil
	}

	summary, err := report.FromResult(result)
	if err != nil {
		return err
	}
	if err := report.WriteFile(c.Report, summary); err != nil {
		return err
	}
	logger.Info("Wrote report", "path", c.Report, "run_id", summary.RunID)
	return nil
}
