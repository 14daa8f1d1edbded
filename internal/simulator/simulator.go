package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds   int
	Strategy string
	StandOn  int // Stand total for the threshold strategy
	Seed     int64
	Workers  int
	Timeout  time.Duration // Zero means no limit
	Rules    game.Rules
	Logger   *log.Logger
	Clock    quartz.Clock
}

// Result is the outcome of a simulation run
type Result struct {
	Stats    *statistics.Statistics
	Strategy string
	StandOn  int
	Rounds   int
	Workers  int
	Seed     int64
	Rules    game.Rules
	Elapsed  time.Duration
}

// Simulator plays many independent blackjack rounds with an automated player
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Strategy == "" {
		config.Strategy = bot.StrategyThreshold
	}
	if config.StandOn <= 0 {
		config.StandOn = game.DefaultDealerStandsOn
	}
	if config.Rules == (game.Rules{}) {
		config.Rules = game.DefaultRules()
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run executes the simulation and returns the aggregated results.
// Round i is played with seed Seed+i, so results do not depend on the
// number of workers. Each worker owns every game it creates.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	cfg := s.config

	if cfg.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", cfg.Rounds)
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}
	if _, err := bot.New(cfg.Strategy, cfg.StandOn, randutil.New(cfg.Seed)); err != nil {
		return nil, err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	workers := min(cfg.Workers, cfg.Rounds)
	start := cfg.Clock.Now()

	cfg.Logger.Info("Starting simulation",
		"rounds", cfg.Rounds,
		"strategy", cfg.Strategy,
		"stand_on", cfg.StandOn,
		"seed", cfg.Seed,
		"workers", workers,
		"soft_aces", cfg.Rules.SoftAces,
		"dealer_stands_on", cfg.Rules.DealerStandsOn)

	perWorker := make([]*statistics.Statistics, workers)
	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			stats := &statistics.Statistics{}
			for i := w; i < cfg.Rounds; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}

				roundSeed := cfg.Seed + int64(i)
				result, err := s.playRound(roundSeed)
				if err != nil {
					return fmt.Errorf("round %d (seed %d): %w", i+1, roundSeed, err)
				}
				stats.Add(result)
			}
			perWorker[w] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("simulation timed out after %v: %w", cfg.Timeout, err)
		}
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, ws := range perWorker {
		stats.Merge(ws)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	result := &Result{
		Stats:    stats,
		Strategy: cfg.Strategy,
		StandOn:  cfg.StandOn,
		Rounds:   cfg.Rounds,
		Workers:  workers,
		Seed:     cfg.Seed,
		Rules:    cfg.Rules,
		Elapsed:  cfg.Clock.Since(start),
	}

	cfg.Logger.Info("Simulation complete",
		"rounds", stats.Rounds,
		"win_rate", fmt.Sprintf("%.4f", stats.WinRate()),
		"loss_rate", fmt.Sprintf("%.4f", stats.LossRate()),
		"push_rate", fmt.Sprintf("%.4f", stats.PushRate()),
		"mean", fmt.Sprintf("%.4f", stats.Mean()),
		"elapsed", result.Elapsed)

	return result, nil
}

// playRound plays one round from its own seed and summarises it
func (s *Simulator) playRound(seed int64) (statistics.RoundResult, error) {
	g, err := s.Replay(seed)
	if err != nil {
		return statistics.RoundResult{}, err
	}

	status := g.Status()
	return statistics.RoundResult{
		Seed:        seed,
		Outcome:     status.Outcome,
		PlayerTotal: status.PlayerTotal,
		DealerTotal: status.DealerTotal,
		PlayerCards: len(status.PlayerCards),
		DealerCards: len(status.DealerCards),
	}, nil
}

// Replay plays the round for a single seed and returns the resolved game.
// The deck shuffle and the strategy draw from the same RNG, so a seed
// reported by a simulation replays that round exactly.
func (s *Simulator) Replay(seed int64) (*game.Game, error) {
	rng := randutil.New(seed)

	g, err := game.NewGame(rng,
		game.WithRules(s.config.Rules),
		game.WithLogger(s.config.Logger))
	if err != nil {
		return nil, err
	}

	agent, err := bot.New(s.config.Strategy, s.config.StandOn, rng)
	if err != nil {
		return nil, err
	}

	if _, err := bot.Play(g, agent, s.config.Logger); err != nil {
		return nil, err
	}
	return g, nil
}
