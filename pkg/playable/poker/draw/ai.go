package draw

import (
	"context"
	"drawpoker/internal/rng"
	"drawpoker/pkg/deck"
	"drawpoker/pkg/playable/poker/action"
	"sort"
)

// RandomStrategy picks uniformly among the affordable legal actions and exchanges a random set of cards
type RandomStrategy struct {
	gen rng.Generator
}

// NewRandomStrategy returns a strategy for an automated seat
func NewRandomStrategy(gen rng.Generator) *RandomStrategy {
	return &RandomStrategy{gen: gen}
}

// RequestAction samples an action the player can pay for
func (r *RandomStrategy) RequestAction(_ context.Context, _ *Player, legal []action.Action, dc DecisionContext) (action.Action, error) {
	affordable := make([]action.Action, 0, len(legal))
	for _, a := range legal {
		if dc.CanAfford(a) {
			affordable = append(affordable, a)
		}
	}

	if len(affordable) == 0 {
		// folding is always free
		return action.Fold, nil
	}

	return affordable[r.gen.Intn(len(affordable))], nil
}

// RequestExchangeIndices picks how many cards to replace (0-5), then that many distinct positions
func (r *RandomStrategy) RequestExchangeIndices(_ context.Context, _ *Player, hand deck.Hand) ([]int, error) {
	positions := make([]int, len(hand))
	for i := range positions {
		positions[i] = i
	}

	count := r.gen.Intn(len(positions) + 1)
	for i := 0; i < count; i++ {
		j := i + r.gen.Intn(len(positions)-i)
		positions[i], positions[j] = positions[j], positions[i]
	}

	chosen := positions[:count]
	sort.Ints(chosen)

	return chosen, nil
}
