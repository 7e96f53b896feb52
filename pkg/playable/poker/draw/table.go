package draw

import (
	"context"
	"drawpoker/internal/rng"
	"drawpoker/pkg/deck"
	"drawpoker/pkg/playable"
	"drawpoker/pkg/playable/poker/handanalyzer"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
)

// Table owns the players and plays hands of five-card draw, one at a time
type Table struct {
	options Options
	players []*Player
	gen     rng.Generator
	logger  logrus.FieldLogger
	sink    playable.EventSink

	// newDeck builds the deck for each hand; overridden in tests
	newDeck func() *deck.Deck

	handsPlayed int
	corrupted   bool
}

// NewTable seats the players in the order given and gives each the starting money
func NewTable(logger logrus.FieldLogger, players []*Player, options Options, gen rng.Generator, sink playable.EventSink) (*Table, error) {
	if err := validateOptions(options); err != nil {
		return nil, err
	}

	if options.Evaluator == nil {
		options.Evaluator = handanalyzer.Classic{}
	}

	if len(players) < minPlayers || len(players) > maxPlayers {
		return nil, PlayerCountError{Min: minPlayers, Max: maxPlayers, Got: len(players)}
	}

	if gen == nil {
		return nil, errors.New("a random number generator is required")
	}

	if sink == nil {
		sink = playable.Discard
	}

	ids := make(map[int64]bool, len(players))
	humans := 0
	for i, p := range players {
		if p.PlayerID <= 0 {
			return nil, fmt.Errorf("player %q must have a positive ID", p.Name)
		}

		if ids[p.PlayerID] {
			return nil, fmt.Errorf("player ID %d is used twice", p.PlayerID)
		}
		ids[p.PlayerID] = true

		if p.strategy == nil {
			return nil, fmt.Errorf("player %q has no strategy", p.Name)
		}

		if p.Human {
			humans++
		}

		p.seat = i
		p.stack = options.StartingMoney
	}

	if humans > 1 {
		return nil, errors.New("only one human player is supported")
	}

	t := &Table{
		options: options,
		players: players,
		gen:     gen,
		logger:  logger,
		sink:    sink,
	}
	t.newDeck = func() *deck.Deck {
		return deck.NewShuffled(t.gen)
	}

	return t, nil
}

// Players returns every seated player in table order, including those without money
func (t *Table) Players() []*Player {
	p := make([]*Player, len(t.players))
	copy(p, t.players)

	return p
}

// Options returns the table options
func (t *Table) Options() Options {
	return t.options
}

// HandsPlayed returns the number of completed hands
func (t *Table) HandsPlayed() int {
	return t.handsPlayed
}

// Standings returns each player's stack keyed by player ID
func (t *Table) Standings() map[int64]int {
	stacks := make(map[int64]int, len(t.players))
	for _, p := range t.players {
		stacks[p.PlayerID] = p.stack
	}

	return stacks
}

func (t *Table) eligiblePlayers() []*Player {
	eligible := make([]*Player, 0, len(t.players))
	for _, p := range t.players {
		if p.IsEligible() {
			eligible = append(eligible, p)
		}
	}

	return eligible
}

func (t *Table) human() *Player {
	for _, p := range t.players {
		if p.Human {
			return p
		}
	}

	return nil
}

// IsOver returns true, along with the reason, if no further hand can be played
//
// With a human seated the game continues while the human has money and at least
// one automated player does too. Without a human, it continues while two players
// have money.
func (t *Table) IsOver() (bool, string) {
	if t.corrupted {
		return true, "the table was closed after an error"
	}

	if human := t.human(); human != nil {
		if !human.IsEligible() {
			return true, fmt.Sprintf("%s ran out of money", human.Name)
		}

		for _, p := range t.players {
			if !p.Human && p.IsEligible() {
				return false, ""
			}
		}

		return true, "all AI players ran out of money"
	}

	if eligible := t.eligiblePlayers(); len(eligible) < minPlayers {
		if len(eligible) == 1 {
			return true, fmt.Sprintf("%s has all the money", eligible[0].Name)
		}

		return true, "nobody has any money left"
	}

	return false, ""
}

// PlayHand plays a single hand to completion
// Any error aborts the hand; chips already in the pot cannot be recovered, so the
// table refuses to play further hands.
func (t *Table) PlayHand(ctx context.Context) (*HandResult, error) {
	if t.corrupted {
		return nil, ErrTableCorrupted
	}

	eligible := t.eligiblePlayers()
	if len(eligible) < minPlayers {
		return nil, ErrNotEnoughPlayers
	}

	h, err := newHand(t, eligible)
	if err != nil {
		return nil, err
	}

	result, err := h.play(ctx)
	if err != nil {
		t.corrupted = true
		h.logger.WithError(err).Error("hand aborted")
		return nil, err
	}

	t.handsPlayed++
	h.emitStacks()

	return result, nil
}

// Run plays hands until the game is over, or keepPlaying returns false
// keepPlaying is called after each hand; a nil function plays until the game is over.
func (t *Table) Run(ctx context.Context, keepPlaying func(result *HandResult) (bool, error)) error {
	for {
		if over, reason := t.IsOver(); over {
			t.logger.WithField("reason", reason).Info("game over")
			e := playable.NewEvent(playable.EventGameOver, "", 0, "Game over: %s", reason)
			e.Stacks = t.Standings()
			t.sink.Emit(e)
			return nil
		}

		result, err := t.PlayHand(ctx)
		if err != nil {
			return err
		}

		if keepPlaying == nil {
			continue
		}

		ok, err := keepPlaying(result)
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}
	}
}
