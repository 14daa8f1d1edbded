package game

// Outcome is the result of a resolved round
type Outcome int

const (
	// OutcomeNone means the round has not been resolved
	OutcomeNone Outcome = iota
	OutcomePlayer
	OutcomeDealer
	OutcomePush
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomePlayer:
		return "player"
	case OutcomeDealer:
		return "dealer"
	case OutcomePush:
		return "push"
	default:
		return "none"
	}
}

// ParseOutcome is the inverse of Outcome.String
func ParseOutcome(s string) Outcome {
	switch s {
	case "player":
		return OutcomePlayer
	case "dealer":
		return OutcomeDealer
	case "push":
		return OutcomePush
	default:
		return OutcomeNone
	}
}

// DetermineWinner decides a round from the final totals.
// A player bust loses even when the dealer also busts, so the player's
// bust is checked before the dealer's.
func DetermineWinner(playerTotal, dealerTotal int) Outcome {
	switch {
	case playerTotal > BlackjackTotal:
		return OutcomeDealer
	case dealerTotal > BlackjackTotal:
		return OutcomePlayer
	case playerTotal == dealerTotal:
		return OutcomePush
	case playerTotal > dealerTotal:
		return OutcomePlayer
	default:
		return OutcomeDealer
	}
}
