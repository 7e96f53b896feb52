package draw

import (
	"drawpoker/pkg/playable/poker/handanalyzer"
	"errors"
)

const (
	minPlayers = 2
	// five cards dealt plus at most five exchanged per player must fit in one deck
	maxPlayers = 5
)

// Options configures how the table plays
type Options struct {
	// StartingMoney is every player's initial stack
	StartingMoney int
	// BetAmount is the fixed increment for every bet and raise
	BetAmount int
	// MaxRaises caps the raises in a single betting round, 0 means no cap
	MaxRaises int
	// Evaluator scores hands at showdown, defaults to handanalyzer.Classic
	Evaluator handanalyzer.Evaluator
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		StartingMoney: 100,
		BetAmount:     10,
		MaxRaises:     0,
		Evaluator:     handanalyzer.Classic{},
	}
}

func validateOptions(opts Options) error {
	if opts.StartingMoney <= 0 {
		return errors.New("starting money must be greater than zero")
	}

	if opts.BetAmount <= 0 {
		return errors.New("bet amount must be greater than zero")
	}

	if opts.MaxRaises < 0 {
		return errors.New("max raises must be >= 0")
	}

	return nil
}
