// Package report writes simulation summaries as TOML.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/roundid"
	"github.com/lox/blackjack/internal/simulator"
)

// Summary is the persisted form of a simulation run
type Summary struct {
	RunID     string  `toml:"run_id"`
	Strategy  string  `toml:"strategy"`
	StandOn   int     `toml:"stand_on,omitempty"`
	Seed      int64   `toml:"seed"`
	Rounds    int     `toml:"rounds"`
	Workers   int     `toml:"workers"`
	ElapsedMS int64   `toml:"elapsed_ms"`
	Rules     Rules   `toml:"rules"`
	Results   Results `toml:"results"`
}

// Rules records the table rules the run was played under
type Rules struct {
	DealerStandsOn int  `toml:"dealer_stands_on"`
	SoftAces       bool `toml:"soft_aces"`
}

// Results holds aggregate outcomes from the player's point of view
type Results struct {
	PlayerWins     int     `toml:"player_wins"`
	DealerWins     int     `toml:"dealer_wins"`
	Pushes         int     `toml:"pushes"`
	PlayerBusts    int     `toml:"player_busts"`
	DealerBusts    int     `toml:"dealer_busts"`
	WinRate        float64 `toml:"win_rate"`
	LossRate       float64 `toml:"loss_rate"`
	PushRate       float64 `toml:"push_rate"`
	Mean           float64 `toml:"mean"`
	StdDev         float64 `toml:"std_dev"`
	CI95Low        float64 `toml:"ci95_low"`
	CI95High       float64 `toml:"ci95_high"`
	AvgPlayerCards float64 `toml:"avg_player_cards"`
	AvgDealerCards float64 `toml:"avg_dealer_cards"`
}

// FromResult builds a summary from a finished simulation
func FromResult(result *simulator.Result) (*Summary, error) {
	if result == nil || result.Stats == nil {
		return nil, errors.New("report: simulation result is nil")
	}

	stats := result.Stats
	low, high := stats.ConfidenceInterval95()

	var avgPlayer, avgDealer float64
	if stats.Rounds > 0 {
		avgPlayer = float64(stats.PlayerCards) / float64(stats.Rounds)
		avgDealer = float64(stats.DealerCards) / float64(stats.Rounds)
	}

	return &Summary{
		RunID:     roundid.Generate(),
		Strategy:  result.Strategy,
		StandOn:   result.StandOn,
		Seed:      result.Seed,
		Rounds:    result.Rounds,
		Workers:   result.Workers,
		ElapsedMS: result.Elapsed.Milliseconds(),
		Rules: Rules{
			DealerStandsOn: result.Rules.DealerStandsOn,
			SoftAces:       result.Rules.SoftAces,
		},
		Results: Results{
			PlayerWins:     stats.PlayerWins,
			DealerWins:     stats.DealerWins,
			Pushes:         stats.Pushes,
			PlayerBusts:    stats.PlayerBusts,
			DealerBusts:    stats.DealerBusts,
			WinRate:        stats.WinRate(),
			LossRate:       stats.LossRate(),
			PushRate:       stats.PushRate(),
			Mean:           stats.Mean(),
			StdDev:         stats.StdDev(),
			CI95Low:        low,
			CI95High:       high,
			AvgPlayerCards: avgPlayer,
			AvgDealerCards: avgDealer,
		},
	}, nil
}

// Encode writes the summary to w in TOML format
func Encode(w io.Writer, s *Summary) error {
	if s == nil {
		return errors.New("report: summary is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(s)
}

// Decode reads a summary previously written by Encode
func Decode(r io.Reader) (*Summary, error) {
	var s Summary
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("report: decode: %w", err)
	}
	return &s, nil
}

// WriteFile encodes the summary and writes it atomically to path
func WriteFile(path string, s *Summary) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
