package draw

import (
	"context"
	"drawpoker/internal/rng"
	"drawpoker/pkg/deck"
	"drawpoker/pkg/playable"
	"drawpoker/pkg/playable/poker/action"
	"errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"testing"
)

// scriptedStrategy replays a fixed list of actions and exchanges
type scriptedStrategy struct {
	actions   []action.Action
	exchanges [][]int
	// seen records the legal actions offered on each request
	seen [][]action.Action
	err  error
}

var errScriptExhausted = errors.New("script exhausted")

func (s *scriptedStrategy) RequestAction(_ context.Context, _ *Player, legal []action.Action, _ DecisionContext) (action.Action, error) {
	s.seen = append(s.seen, legal)
	if s.err != nil {
		return "", s.err
	}

	if len(s.actions) == 0 {
		return "", errScriptExhausted
	}

	a := s.actions[0]
	s.actions = s.actions[1:]
	return a, nil
}

func (s *scriptedStrategy) RequestExchangeIndices(_ context.Context, _ *Player, _ deck.Hand) ([]int, error) {
	if len(s.exchanges) == 0 {
		return []int{}, nil
	}

	e := s.exchanges[0]
	s.exchanges = s.exchanges[1:]
	return e, nil
}

func script(actions ...action.Action) *scriptedStrategy {
	return &scriptedStrategy{actions: actions}
}

// stackedDeck returns a deck that deals the given cards first, followed by the rest of an unshuffled deck
func stackedDeck(t *testing.T, top string) func() *deck.Deck {
	t.Helper()

	first := deck.HandFromString(top)
	return func() *deck.Deck {
		d := &deck.Deck{Cards: append(deck.Hand{}, first...)}
		for _, card := range deck.New().Cards {
			if !first.HasCard(card) {
				d.Cards = append(d.Cards, card)
			}
		}

		return d
	}
}

func newTestTable(t *testing.T, opts Options, strategies ...Strategy) (*Table, *playable.Recorder) {
	t.Helper()

	return newLoggedTestTable(t, logrus.StandardLogger(), opts, strategies...)
}

func newLoggedTestTable(t *testing.T, logger logrus.FieldLogger, opts Options, strategies ...Strategy) (*Table, *playable.Recorder) {
	t.Helper()

	players := make([]*Player, len(strategies))
	for i, s := range strategies {
		players[i] = NewPlayer(int64(i+1), string(rune('A'+i)), false, s)
	}

	rec := &playable.Recorder{}
	table, err := NewTable(logger, players, opts, rng.NewSeeded(1), rec)
	require.NoError(t, err)

	return table, rec
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.StartingMoney = 100
	opts.BetAmount = 10
	return opts
}

func stacks(table *Table) []int {
	s := make([]int, len(table.players))
	for i, p := range table.players {
		s[i] = p.stack
	}

	return s
}

func totalChips(table *Table) int {
	total := 0
	for _, p := range table.players {
		total += p.stack
	}

	return total
}

// preferStrategy picks the first preferred action that is legal, otherwise the first legal action
type preferStrategy struct {
	prefer []action.Action
}

func prefer(actions ...action.Action) *preferStrategy {
	return &preferStrategy{prefer: actions}
}

func (p *preferStrategy) RequestAction(_ context.Context, _ *Player, legal []action.Action, _ DecisionContext) (action.Action, error) {
	for _, a := range p.prefer {
		if action.Contains(legal, a) {
			return a, nil
		}
	}

	return legal[0], nil
}

func (p *preferStrategy) RequestExchangeIndices(_ context.Context, _ *Player, _ deck.Hand) ([]int, error) {
	return []int{}, nil
}

// seated returns players as the table would seat them, with the given stacks
func seated(stacks ...int) []*Player {
	players := make([]*Player, len(stacks))
	for i, stack := range stacks {
		players[i] = NewPlayer(int64(i+1), string(rune('A'+i)), false, script())
		players[i].seat = i
		players[i].stack = stack
	}

	return players
}
