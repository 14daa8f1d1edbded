package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/blackjack/internal/game"
)

// RoundResult represents the outcome of a single resolved round
type RoundResult struct {
	Seed        int64 // RNG seed for this round (for replay)
	Outcome     game.Outcome
	PlayerTotal int
	DealerTotal int
	PlayerCards int // Cards held by the player at resolution
	DealerCards int // Cards held by the dealer at resolution
}

// Net scores the round from the player's side: +1 win, 0 push, -1 loss
func (r RoundResult) Net() float64 {
	switch r.Outcome {
	case game.OutcomePlayer:
		return 1
	case game.OutcomeDealer:
		return -1
	default:
		return 0
	}
}

// Statistics tracks aggregate results over many rounds
type Statistics struct {
	Rounds  int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // Store all values for median/percentile calculation

	PlayerWins int
	DealerWins int
	Pushes     int

	PlayerBusts int
	DealerBusts int

	PlayerCards int // Total cards drawn into player hands
	DealerCards int // Total cards drawn into dealer hands
}

// Add incorporates a new round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	net := result.Net()
	s.Rounds++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)

	switch result.Outcome {
	case game.OutcomePlayer:
		s.PlayerWins++
	case game.OutcomeDealer:
		s.DealerWins++
	case game.OutcomePush:
		s.Pushes++
	}

	if result.PlayerTotal > game.BlackjackTotal {
		s.PlayerBusts++
	}
	if result.DealerTotal > game.BlackjackTotal {
		s.DealerBusts++
	}

	s.PlayerCards += result.PlayerCards
	s.DealerCards += result.DealerCards
}

// Merge folds other into s. Used to combine per-worker statistics.
func (s *Statistics) Merge(other *Statistics) {
	if other == nil {
		return
	}
	s.Rounds += other.Rounds
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.Values = append(s.Values, other.Values...)
	s.PlayerWins += other.PlayerWins
	s.DealerWins += other.DealerWins
	s.Pushes += other.Pushes
	s.PlayerBusts += other.PlayerBusts
	s.DealerBusts += other.DealerBusts
	s.PlayerCards += other.PlayerCards
	s.DealerCards += other.DealerCards
}

// Mean returns the average net result per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

func (s *Statistics) rate(n int) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(n) / float64(s.Rounds)
}

// WinRate returns the fraction of rounds the player won
func (s *Statistics) WinRate() float64 { return s.rate(s.PlayerWins) }

// LossRate returns the fraction of rounds the dealer won
func (s *Statistics) LossRate() float64 { return s.rate(s.DealerWins) }

// PushRate returns the fraction of tied rounds
func (s *Statistics) PushRate() float64 { return s.rate(s.Pushes) }

// PlayerBustRate returns the fraction of rounds the player busted
func (s *Statistics) PlayerBustRate() float64 { return s.rate(s.PlayerBusts) }

// DealerBustRate returns the fraction of rounds the dealer busted
func (s *Statistics) DealerBustRate() float64 { return s.rate(s.DealerBusts) }

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks that the tallies reconcile
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}

	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds count (%d)",
			len(s.Values), s.Rounds)
	}

	if total := s.PlayerWins + s.DealerWins + s.Pushes; total != s.Rounds {
		return fmt.Errorf("outcome total (%d) does not match rounds count (%d)", total, s.Rounds)
	}

	if net := float64(s.PlayerWins - s.DealerWins); math.Abs(s.SumNet-net) > 1e-6 {
		return fmt.Errorf("net mismatch: SumNet=%.1f, wins-losses=%.1f", s.SumNet, net)
	}

	// A player bust is always a dealer win
	if s.PlayerBusts > s.DealerWins {
		return fmt.Errorf("player busts (%d) exceed dealer wins (%d)", s.PlayerBusts, s.DealerWins)
	}

	return nil
}
