package console

import (
	"bufio"
	"context"
	"drawpoker/pkg/deck"
	"drawpoker/pkg/playable/poker/action"
	"drawpoker/pkg/playable/poker/draw"
	"errors"
	"fmt"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when a response cannot be understood
// The prompter reports it and asks again; it never reaches the table.
var ErrInvalidInput = errors.New("invalid input")

// ErrInputClosed is returned when the input ends before a response is read
var ErrInputClosed = errors.New("input closed")

// Prompter asks the person at the keyboard for decisions
// It is the strategy for the human seat.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	logger logrus.FieldLogger
}

var _ draw.Strategy = &Prompter{}

// NewPrompter returns a prompter reading answers from in and writing questions to out
func NewPrompter(logger logrus.FieldLogger, in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// readLine asks the question and returns the trimmed answer
func (p *Prompter) readLine(question string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s: ", question)

	str, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && str != "" {
			return strings.TrimSpace(str), nil
		}

		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(p.out)
			return "", ErrInputClosed
		}

		return "", err
	}

	return strings.TrimSpace(str), nil
}

// ask keeps asking until parse accepts the answer
func (p *Prompter) ask(ctx context.Context, question string, parse func(answer string) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		answer, err := p.readLine(question)
		if err != nil {
			return err
		}

		err = parse(answer)
		if err == nil {
			return nil
		}

		if !errors.Is(err, ErrInvalidInput) {
			return err
		}

		p.logger.WithError(err).WithField("answer", answer).Debug("re-prompting")
		_, _ = fmt.Fprint(p.out, pterm.Error.Sprintln(err.Error()))
	}
}

// RequestAction asks for one of the legal actions
func (p *Prompter) RequestAction(ctx context.Context, player *draw.Player, legal []action.Action, dc draw.DecisionContext) (action.Action, error) {
	_, _ = fmt.Fprint(p.out, pterm.Sprintfln("%s: %s", pterm.LightCyan(player.Name), dc.Hand.String()))
	status := fmt.Sprintf("Money: $%d, pot: $%d", dc.Stack, dc.Pot)
	if dc.ToCall > 0 {
		status += fmt.Sprintf(", to call: $%d", dc.ToCall)
	}
	_, _ = fmt.Fprintln(p.out, status)

	var chosen action.Action
	err := p.ask(ctx, fmt.Sprintf("Choose %s", action.Join(legal)), func(answer string) error {
		a, err := ParseAction(answer, legal)
		if err != nil {
			return err
		}

		chosen = a
		return nil
	})

	return chosen, err
}

// RequestExchangeIndices asks which cards to replace
func (p *Prompter) RequestExchangeIndices(ctx context.Context, player *draw.Player, hand deck.Hand) ([]int, error) {
	_, _ = fmt.Fprint(p.out, pterm.Sprintfln("%s: %s", pterm.LightCyan(player.Name), FormatPositions(hand)))

	var indices []int
	err := p.ask(ctx, "Cards to exchange (1-5 separated by spaces, blank keeps all)", func(answer string) error {
		i, err := ParseExchange(answer)
		if err != nil {
			return err
		}

		indices = i
		return nil
	})

	return indices, err
}

// AskYesNo asks a yes or no question; a blank answer returns def
func (p *Prompter) AskYesNo(ctx context.Context, question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	answer := def
	err := p.ask(ctx, fmt.Sprintf("%s (%s)", question, hint), func(s string) error {
		switch strings.ToLower(s) {
		case "":
		case "y", "yes":
			answer = true
		case "n", "no":
			answer = false
		default:
			return fmt.Errorf("%w: please answer yes or no", ErrInvalidInput)
		}

		return nil
	})

	return answer, err
}

// AskInt asks for a whole number between lo and hi, inclusive
func (p *Prompter) AskInt(ctx context.Context, question string, lo, hi int) (int, error) {
	var n int
	err := p.ask(ctx, fmt.Sprintf("%s (%d-%d)", question, lo, hi), func(s string) error {
		i, err := strconv.Atoi(s)
		if err != nil || i < lo || i > hi {
			return fmt.Errorf("%w: enter a number from %d to %d", ErrInvalidInput, lo, hi)
		}

		n = i
		return nil
	})

	return n, err
}

// ParseAction reads an action name and checks it is one of the legal actions
func ParseAction(answer string, legal []action.Action) (action.Action, error) {
	a, err := action.FromString(answer)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !action.Contains(legal, a) {
		return "", fmt.Errorf("%w: you cannot %s now, choose %s", ErrInvalidInput, string(a), action.Join(legal))
	}

	return a, nil
}

// ParseExchange reads space separated card positions, starting from 1, and returns them zero-based
func ParseExchange(answer string) ([]int, error) {
	fields := strings.Fields(answer)
	indices := make([]int, len(fields))
	for i, field := range fields {
		pos, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a card position", ErrInvalidInput, field)
		}

		indices[i] = pos - 1
	}

	if err := draw.ValidateExchange(indices); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return indices, nil
}

// FormatPositions renders a hand with the position of each card, i.e., 1:A♠ 2:10♦
func FormatPositions(hand deck.Hand) string {
	parts := make([]string, len(hand))
	for i, card := range hand {
		parts[i] = fmt.Sprintf("%d:%s", i+1, card)
	}

	return strings.Join(parts, "  ")
}
