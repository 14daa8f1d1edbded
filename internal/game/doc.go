// Package game implements a single round of blackjack between one player and the dealer.
//
// The main type is Game, which owns the deck and both hands for one round.
// A Game starts Open with two cards dealt to each side, accepts Hit while
// Open, and becomes Resolved after Stand, when the dealer plays out its hand
// and the outcome is fixed.
//
// # Basic Usage
//
//	g, err := game.NewGame(randutil.New(seed))
//	if err != nil {
//	    return err
//	}
//	if _, err := g.Hit(); err != nil {
//	    return err
//	}
//	outcome, err := g.Stand()
//
// # Deterministic Testing
//
// The RNG is required so shuffles are reproducible from a seed. For complete
// control over the card sequence, pass a stacked deck:
//
//	d := deck.NewStacked(deck.MustParseCards("10-clubs", "7-hearts", "9-spades", "8-clubs")...)
//	g, err := game.NewGame(nil, game.WithDeck(d))
//
// # Rules
//
// DefaultRules counts every Ace as 11 and has the dealer stand on 17. Rules
// with SoftAces enabled count an Ace as 1 whenever 11 would bust the hand.
//
// A Game is not safe for concurrent use. Callers running many rounds at
// once give each goroutine its own games.
package game
