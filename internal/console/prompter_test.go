package console

import (
	"bytes"
	"context"
	"drawpoker/pkg/deck"
	"drawpoker/pkg/playable/poker/action"
	"drawpoker/pkg/playable/poker/draw"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func init() {
	pterm.DisableColor()
}

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(logrus.StandardLogger(), strings.NewReader(input), out), out
}

func TestParseAction(t *testing.T) {
	a := assert.New(t)
	legal := []action.Action{action.Call, action.Raise, action.Fold}

	choice, err := ParseAction(" Raise ", legal)
	a.NoError(err)
	a.Equal(action.Raise, choice)

	choice, err = ParseAction("pass", legal)
	a.NoError(err)
	a.Equal(action.Fold, choice)

	_, err = ParseAction("check", legal)
	a.ErrorIs(err, ErrInvalidInput)
	a.EqualError(err, "invalid input: you cannot check now, choose 'call', 'raise', or 'fold'")

	_, err = ParseAction("allin", legal)
	a.ErrorIs(err, ErrInvalidInput)
	a.EqualError(err, "invalid input: unknown action for identifier: allin")
}

func TestParseExchange(t *testing.T) {
	a := assert.New(t)

	indices, err := ParseExchange("")
	a.NoError(err)
	a.Empty(indices)

	indices, err = ParseExchange(" 1 3  5 ")
	a.NoError(err)
	a.Equal([]int{0, 2, 4}, indices)

	_, err = ParseExchange("6")
	a.ErrorIs(err, ErrInvalidInput)
	a.ErrorIs(err, draw.ErrInvalidExchange)

	_, err = ParseExchange("0")
	a.ErrorIs(err, ErrInvalidInput)

	_, err = ParseExchange("2 2")
	a.EqualError(err, "invalid input: invalid exchange: position 2 was chosen twice")

	_, err = ParseExchange("one")
	a.EqualError(err, `invalid input: "one" is not a card position`)

	_, err = ParseExchange("1 2 3 4 5 1")
	a.ErrorIs(err, ErrInvalidInput)
}

func TestPrompter_RequestAction(t *testing.T) {
	a := assert.New(t)

	p, out := newTestPrompter("dance\ncheck\nraise\n")
	player := draw.NewPlayer(1, "You", true, p)
	dc := draw.DecisionContext{
		Hand:      deck.HandFromString("14s,14h,5c,7d,9c"),
		Stack:     90,
		Pot:       20,
		ToCall:    10,
		BetAmount: 10,
	}

	choice, err := p.RequestAction(context.Background(), player, []action.Action{action.Call, action.Raise, action.Fold}, dc)
	a.NoError(err)
	a.Equal(action.Raise, choice)

	output := out.String()
	a.Contains(output, "Money: $90, pot: $20, to call: $10")
	a.Contains(output, "Choose 'call', 'raise', or 'fold': ")
	a.Contains(output, "unknown action for identifier: dance")
	a.Contains(output, "you cannot check now")
	a.Equal(3, strings.Count(output, "Choose "))
}

func TestPrompter_RequestAction_inputClosed(t *testing.T) {
	a := assert.New(t)

	p, _ := newTestPrompter("bet\n")
	player := draw.NewPlayer(1, "You", true, p)
	legal := []action.Action{action.Check, action.Bet}

	choice, err := p.RequestAction(context.Background(), player, legal, draw.DecisionContext{})
	a.NoError(err)
	a.Equal(action.Bet, choice)

	_, err = p.RequestAction(context.Background(), player, legal, draw.DecisionContext{})
	a.Equal(ErrInputClosed, err)
}

func TestPrompter_RequestAction_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, _ := newTestPrompter("check\n")
	_, err := p.RequestAction(ctx, draw.NewPlayer(1, "You", true, p), []action.Action{action.Check}, draw.DecisionContext{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrompter_RequestExchangeIndices(t *testing.T) {
	a := assert.New(t)

	p, out := newTestPrompter("7\n4 5\n\n")
	player := draw.NewPlayer(1, "You", true, p)
	hand := deck.HandFromString("14s,14h,5c,7d,9c")

	indices, err := p.RequestExchangeIndices(context.Background(), player, hand)
	a.NoError(err)
	a.Equal([]int{3, 4}, indices)
	a.Contains(out.String(), "1:A♠  2:A♥  3:5♣  4:7♦  5:9♣")
	a.Contains(out.String(), "position 7 is outside of the hand")

	indices, err = p.RequestExchangeIndices(context.Background(), player, hand)
	a.NoError(err)
	a.Empty(indices)

	// no trailing newline on the last answer
	p, _ = newTestPrompter("2")
	indices, err = p.RequestExchangeIndices(context.Background(), player, hand)
	a.NoError(err)
	a.Equal([]int{1}, indices)
}

func TestPrompter_AskYesNo(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	p, out := newTestPrompter("maybe\nY\n\nno\n\n")
	ok, err := p.AskYesNo(ctx, "Play another hand?", true)
	a.NoError(err)
	a.True(ok)
	a.Contains(out.String(), "Play another hand? (Y/n): ")
	a.Contains(out.String(), "please answer yes or no")

	ok, err = p.AskYesNo(ctx, "Play another hand?", false)
	a.NoError(err)
	a.False(ok)

	ok, err = p.AskYesNo(ctx, "Play another hand?", true)
	a.NoError(err)
	a.False(ok)

	ok, err = p.AskYesNo(ctx, "Play another hand?", true)
	a.NoError(err)
	a.True(ok)

	_, err = p.AskYesNo(ctx, "Play another hand?", true)
	a.Equal(ErrInputClosed, err)
}

func TestPrompter_AskInt(t *testing.T) {
	a := assert.New(t)

	p, out := newTestPrompter("ten\n9\n3\n")
	n, err := p.AskInt(context.Background(), "How many AI players?", 1, 4)
	a.NoError(err)
	a.Equal(3, n)
	a.Equal(2, strings.Count(out.String(), "enter a number from 1 to 4"))
}
