package game

import "fmt"

const (
	// BlackjackTotal is the highest total a hand can hold without busting
	BlackjackTotal = 21

	// DefaultDealerStandsOn is the total at which the dealer stops drawing
	DefaultDealerStandsOn = 17
)

// Rules configures hand valuation and the dealer's drawing policy
type Rules struct {
	// DealerStandsOn is the lowest total the dealer stands on
	DealerStandsOn int

	// SoftAces counts an Ace as 1 when 11 would bust the hand
	SoftAces bool
}

// DefaultRules returns fixed-Ace rules with the dealer standing on 17
func DefaultRules() Rules {
	return Rules{DealerStandsOn: DefaultDealerStandsOn}
}

// Value returns the hand's total under these rules
func (r Rules) Value(h *Hand) int {
	if r.SoftAces {
		return h.SoftTotal()
	}
	return h.Total()
}

// Validate checks the rules are playable
func (r Rules) Validate() error {
	if r.DealerStandsOn < 2 || r.DealerStandsOn > BlackjackTotal {
		return fmt.Errorf("dealer stand total must be between 2 and %d, got %d", BlackjackTotal, r.DealerStandsOn)
	}
	return nil
}
