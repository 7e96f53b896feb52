package draw

import (
	"context"
	"drawpoker/pkg/deck"
	"drawpoker/pkg/playable/poker/action"
	"fmt"
)

// DecisionContext is what a player can see when it is their turn to act
type DecisionContext struct {
	HandID       string
	Round        string
	Hand         deck.Hand
	Stack        int
	Pot          int
	HighestBet   int
	Contribution int
	ToCall       int
	BetAmount    int
}

// Cost returns how much the action would take from the player's stack
func (d DecisionContext) Cost(a action.Action) int {
	switch a {
	case action.Bet:
		return d.BetAmount
	case action.Call:
		return d.ToCall
	case action.Raise:
		return d.ToCall + d.BetAmount
	}

	return 0
}

// CanAfford returns true if the player's stack covers the action
func (d DecisionContext) CanAfford(a action.Action) bool {
	return d.Cost(a) <= d.Stack
}

// DecisionSource supplies betting decisions for a seat
// It must return one of the legal actions; anything else is rejected and requested again.
type DecisionSource interface {
	RequestAction(ctx context.Context, p *Player, legal []action.Action, dc DecisionContext) (action.Action, error)
}

// ExchangeSource supplies the hand positions a seat wants to replace
// Positions are zero-based; an empty slice keeps every card.
type ExchangeSource interface {
	RequestExchangeIndices(ctx context.Context, p *Player, hand deck.Hand) ([]int, error)
}

// Strategy makes every decision for a seat
type Strategy interface {
	DecisionSource
	ExchangeSource
}

// ValidateExchange checks that every position is within the hand and appears once
func ValidateExchange(indices []int) error {
	if len(indices) > deck.HandSize {
		return fmt.Errorf("%w: you can exchange at most %d cards", ErrInvalidExchange, deck.HandSize)
	}

	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= deck.HandSize {
			return fmt.Errorf("%w: position %d is outside of the hand", ErrInvalidExchange, i+1)
		}

		if seen[i] {
			return fmt.Errorf("%w: position %d was chosen twice", ErrInvalidExchange, i+1)
		}

		seen[i] = true
	}

	return nil
}
