package draw

import (
	"context"
	"drawpoker/internal/rng"
	"drawpoker/pkg/deck"
	"drawpoker/pkg/playable/poker/action"
	"github.com/stretchr/testify/assert"
	"sort"
	"testing"
)

func TestRandomStrategy_RequestAction(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()
	s := NewRandomStrategy(rng.NewSeeded(1))

	legal := []action.Action{action.Call, action.Raise, action.Fold}
	dc := DecisionContext{Stack: 100, ToCall: 10, BetAmount: 10}
	seen := make(map[action.Action]bool)
	for i := 0; i < 200; i++ {
		choice, err := s.RequestAction(ctx, nil, legal, dc)
		a.NoError(err)
		a.True(action.Contains(legal, choice))
		seen[choice] = true
	}

	a.Len(seen, 3)

	// only folding is affordable
	dc.Stack = 5
	for i := 0; i < 20; i++ {
		choice, _ := s.RequestAction(ctx, nil, legal, dc)
		a.Equal(action.Fold, choice)
	}

	// nothing the player can pay for was offered
	choice, err := s.RequestAction(ctx, nil, []action.Action{action.Call}, dc)
	a.NoError(err)
	a.Equal(action.Fold, choice)

	dc = DecisionContext{Stack: 15, ToCall: 10, BetAmount: 10}
	for i := 0; i < 50; i++ {
		choice, _ := s.RequestAction(ctx, nil, legal, dc)
		a.NotEqual(action.Raise, choice)
	}
}

func TestRandomStrategy_RequestExchangeIndices(t *testing.T) {
	a := assert.New(t)
	hand := deck.HandFromString("2c,3c,4c,5c,6c")

	counts := make(map[int]bool)
	for seed := int64(1); seed <= 200; seed++ {
		s := NewRandomStrategy(rng.NewSeeded(seed))
		indices, err := s.RequestExchangeIndices(context.Background(), nil, hand)
		a.NoError(err)
		a.NoError(ValidateExchange(indices))
		a.True(sort.IntsAreSorted(indices))
		counts[len(indices)] = true
	}

	for i := 0; i <= deck.HandSize; i++ {
		a.True(counts[i], "never exchanged %d cards", i)
	}
}
