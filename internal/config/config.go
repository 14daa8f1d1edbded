// Package config loads blackjack simulation settings from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/game"
)

// Config represents the complete configuration file
type Config struct {
	Rules      *RulesBlock      `hcl:"rules,block"`
	Simulation *SimulationBlock `hcl:"simulation,block"`
}

// RulesBlock configures table rules
type RulesBlock struct {
	DealerStandsOn int  `hcl:"dealer_stands_on,optional"`
	SoftAces       bool `hcl:"soft_aces,optional"`
}

// SimulationBlock configures a simulation run
type SimulationBlock struct {
	Rounds         int    `hcl:"rounds,optional"`
	Strategy       string `hcl:"strategy,optional"`
	StandOn        int    `hcl:"stand_on,optional"`
	Seed           *int64 `hcl:"seed,optional"`
	Workers        int    `hcl:"workers,optional"`
	TimeoutSeconds int    `hcl:"timeout_seconds,optional"`
}

const (
	DefaultRounds  = 10000
	DefaultWorkers = 1
)

// Default returns the configuration used when no file is present
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Rules == nil {
		c.Rules = &RulesBlock{}
	}
	if c.Rules.DealerStandsOn == 0 {
		c.Rules.DealerStandsOn = game.DefaultDealerStandsOn
	}

	if c.Simulation == nil {
		c.Simulation = &SimulationBlock{}
	}
	if c.Simulation.Rounds == 0 {
		c.Simulation.Rounds = DefaultRounds
	}
	if c.Simulation.Strategy == "" {
		c.Simulation.Strategy = bot.StrategyThreshold
	}
	if c.Simulation.StandOn == 0 {
		c.Simulation.StandOn = game.DefaultDealerStandsOn
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = DefaultWorkers
	}
}

// Validate checks the configuration for values the simulator cannot run with
func (c *Config) Validate() error {
	if err := c.GameRules().Validate(); err != nil {
		return err
	}

	sim := c.Simulation
	if sim.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", sim.Rounds)
	}
	if sim.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", sim.Workers)
	}
	if sim.StandOn < 2 || sim.StandOn > game.BlackjackTotal {
		return fmt.Errorf("stand_on must be between 2 and %d, got %d", game.BlackjackTotal, sim.StandOn)
	}
	if sim.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds cannot be negative, got %d", sim.TimeoutSeconds)
	}
	if !isKnownStrategy(sim.Strategy) {
		return fmt.Errorf("unknown strategy %q (available: %v)", sim.Strategy, bot.Names())
	}
	return nil
}

// GameRules converts the rules block to game rules
func (c *Config) GameRules() game.Rules {
	return game.Rules{
		DealerStandsOn: c.Rules.DealerStandsOn,
		SoftAces:       c.Rules.SoftAces,
	}
}

// Timeout returns the simulation time limit, zero when unset
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Simulation.TimeoutSeconds) * time.Second
}

func isKnownStrategy(name string) bool {
	for _, n := range bot.Names() {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
