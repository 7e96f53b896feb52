package draw

import (
	"context"
	"drawpoker/pkg/deck"
	"drawpoker/pkg/playable/poker/action"
	"drawpoker/pkg/playable/poker/handanalyzer"
	"drawpoker/pkg/playable/poker/ledger"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// maxDecisionAttempts is how many times a seat is asked again after returning something illegal
const maxDecisionAttempts = 3

// round names
const (
	firstBettingRound  = "First Betting Round"
	secondBettingRound = "Second Betting Round"
)

// ShowdownEntry is a hand revealed at showdown
type ShowdownEntry struct {
	Player *Player
	Hand   deck.Hand
	Score  handanalyzer.RankScore
}

// HandResult describes how a hand ended
type HandResult struct {
	ID     string
	Winner *Player
	Pot    int
	// ByDefault is true if everybody else folded
	ByDefault bool
	// Showdown is in table order; empty if the hand was won by default
	Showdown []ShowdownEntry
	// Exchanged is how many cards each player replaced
	Exchanged map[int64]int
	Rounds    [][]Turn
}

// hand is a single hand of five-card draw
// It is discarded once the pot has been settled.
type hand struct {
	id        string
	table     *Table
	logger    logrus.FieldLogger
	deck      *deck.Deck
	ledger    *ledger.Ledger
	players   []*Player
	cards     map[int64]deck.Hand
	active    *ActivePlayers
	exchanged map[int64]int
	rounds    [][]Turn
}

func newHand(t *Table, players []*Player) (*hand, error) {
	participants := make([]ledger.Participant, len(players))
	for i, p := range players {
		participants[i] = p
	}

	l, err := ledger.New(t.options.BetAmount, participants...)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	return &hand{
		id:        id,
		table:     t,
		logger:    t.logger.WithField("hand", id),
		deck:      t.newDeck(),
		ledger:    l,
		players:   players,
		cards:     make(map[int64]deck.Hand, len(players)),
		active:    newActivePlayers(players),
		exchanged: make(map[int64]int, len(players)),
	}, nil
}

// play runs the hand: deal, bet, exchange, bet, and showdown
// The hand ends early as soon as a single player remains.
func (h *hand) play(ctx context.Context) (*HandResult, error) {
	h.logger.WithFields(logrus.Fields{
		"players": len(h.players),
		"deck":    h.deck.HashCode(),
	}).Debug("hand started")
	h.emitHandStarted()

	if err := h.deal(); err != nil {
		return nil, err
	}

	if done, err := h.bettingRound(ctx, firstBettingRound); err != nil {
		return nil, err
	} else if done {
		return h.winByDefault()
	}

	if err := h.exchangePhase(ctx); err != nil {
		return nil, err
	}

	if done, err := h.bettingRound(ctx, secondBettingRound); err != nil {
		return nil, err
	} else if done {
		return h.winByDefault()
	}

	return h.showdown()
}

func (h *hand) draw() (deck.Card, error) {
	card, err := h.deck.Draw()
	if err != nil {
		return deck.Card{}, fmt.Errorf("%w: %v", ErrDeckExhausted, err)
	}

	return card, nil
}

// deal gives every player five cards, one at a time around the table
func (h *hand) deal() error {
	for _, p := range h.players {
		h.cards[p.PlayerID] = make(deck.Hand, 0, deck.HandSize)
	}

	for i := 0; i < deck.HandSize; i++ {
		for _, p := range h.players {
			card, err := h.draw()
			if err != nil {
				return err
			}

			cards := h.cards[p.PlayerID]
			cards.AddCard(card)
			h.cards[p.PlayerID] = cards
		}
	}

	for _, p := range h.players {
		h.emitCardsDealt(p)
	}

	return nil
}

// bettingRound runs one betting round to completion
// Returns true if the hand is over because only one player remains.
func (h *hand) bettingRound(ctx context.Context, name string) (bool, error) {
	br, err := NewBettingRound(name, h.ledger, h.active, h.table.options.BetAmount, h.table.options.MaxRaises)
	if err != nil {
		return false, err
	}

	logger := h.logger.WithField("round", name)
	h.emitRoundStarted(br)

	for !br.IsSettled() {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		p := br.InTurn()
		a, err := h.decide(ctx, br, p, logger)
		if err != nil {
			return false, err
		}

		turn, err := br.Apply(p, a)
		if err != nil {
			return false, err
		}

		logger.WithFields(logrus.Fields{
			"player": p.Name,
			"action": string(turn.Action),
			"amount": turn.Amount,
			"pot":    h.ledger.Pot(),
		}).Debug("player acted")
		h.emitTurn(turn)
	}

	h.rounds = append(h.rounds, br.Turns())
	h.emitRoundSettled(br)

	return h.active.Len() == 1, nil
}

// decide asks the player's strategy for an action until it returns a legal one
// An action the player cannot pay for is resolved to a check, or a fold if checking is not allowed.
func (h *hand) decide(ctx context.Context, br *BettingRound, p *Player, logger logrus.FieldLogger) (action.Action, error) {
	legal := br.LegalActions(p)
	dc := h.decisionContext(br, p)

	for attempt := 0; attempt < maxDecisionAttempts; attempt++ {
		a, err := p.strategy.RequestAction(ctx, p, legal, dc)
		if err != nil {
			return "", fmt.Errorf("could not get an action for %s: %w", p.Name, err)
		}

		if action.Contains(legal, a) {
			return a, nil
		}

		if br.IsUnaffordable(p, a) {
			fallback := action.Fold
			if action.Contains(legal, action.Check) {
				fallback = action.Check
			}

			logger.WithFields(logrus.Fields{
				"player":   p.Name,
				"action":   string(a),
				"stack":    p.stack,
				"fallback": string(fallback),
			}).Warn(ledger.ErrInsufficientFunds.Error())
			h.emitInsufficientFunds(p, a, fallback, dc.Cost(a))

			return fallback, nil
		}

		logger.WithFields(logrus.Fields{
			"player":  p.Name,
			"action":  string(a),
			"attempt": attempt + 1,
		}).Warn("rejected illegal action")
	}

	return "", fmt.Errorf("%w: %s did not choose %s", ErrIllegalAction, p.Name, action.Join(legal))
}

func (h *hand) decisionContext(br *BettingRound, p *Player) DecisionContext {
	return DecisionContext{
		HandID:       h.id,
		Round:        br.Name(),
		Hand:         h.cards[p.PlayerID].Clone(),
		Stack:        p.stack,
		Pot:          h.ledger.Pot(),
		HighestBet:   h.ledger.HighestBet(),
		Contribution: h.ledger.Contribution(p),
		ToCall:       h.ledger.ToCall(p),
		BetAmount:    h.table.options.BetAmount,
	}
}

// exchangePhase lets every active player replace up to five cards, in table order
func (h *hand) exchangePhase(ctx context.Context) error {
	for _, p := range h.active.Players() {
		if err := ctx.Err(); err != nil {
			return err
		}

		indices, err := h.requestExchange(ctx, p)
		if err != nil {
			return err
		}

		cards := h.cards[p.PlayerID]
		for _, i := range indices {
			card, err := h.draw()
			if err != nil {
				return err
			}

			if _, err := cards.Replace(i, card); err != nil {
				return err
			}
		}

		h.exchanged[p.PlayerID] = len(indices)
		h.logger.WithFields(logrus.Fields{
			"player":    p.Name,
			"exchanged": len(indices),
			"cardsLeft": h.deck.CardsLeft(),
		}).Debug("player exchanged cards")
		h.emitExchange(p, len(indices))
	}

	return nil
}

func (h *hand) requestExchange(ctx context.Context, p *Player) ([]int, error) {
	for attempt := 0; attempt < maxDecisionAttempts; attempt++ {
		indices, err := p.strategy.RequestExchangeIndices(ctx, p, h.cards[p.PlayerID].Clone())
		if err != nil {
			return nil, fmt.Errorf("could not get an exchange for %s: %w", p.Name, err)
		}

		err = ValidateExchange(indices)
		if err == nil {
			return indices, nil
		}

		h.logger.WithError(err).WithField("player", p.Name).Warn("rejected exchange")
	}

	return nil, fmt.Errorf("%w: %s did not choose valid positions", ErrInvalidExchange, p.Name)
}

// winByDefault awards the pot to the last player standing
func (h *hand) winByDefault() (*HandResult, error) {
	winner := h.active.Sole()
	if winner == nil {
		return nil, errors.New("cannot win by default with more than one active player")
	}

	amount, err := h.ledger.Settle(winner)
	if err != nil {
		return nil, err
	}

	h.logger.WithFields(logrus.Fields{"winner": winner.Name, "pot": amount}).Info("pot won by default")
	h.emitWinner(winner, amount, "{} wins the pot of $%d by default", amount)

	return h.result(winner, amount, true, nil), nil
}

// showdown evaluates the remaining hands in table order and pays the strongest
// Equal scores go to the player seated first.
func (h *hand) showdown() (*HandResult, error) {
	active := h.active.Players()
	entries := make([]ShowdownEntry, len(active))
	scores := make([]handanalyzer.RankScore, len(active))
	for i, p := range active {
		cards := h.cards[p.PlayerID]
		score, err := h.table.options.Evaluator.Evaluate(cards)
		if err != nil {
			return nil, fmt.Errorf("could not evaluate the hand of %s: %w", p.Name, err)
		}

		scores[i] = score
		entries[i] = ShowdownEntry{Player: p, Hand: cards.Clone(), Score: score}
	}

	h.emitShowdown(entries)

	winner := entries[handanalyzer.Best(scores)]
	amount, err := h.ledger.Settle(winner.Player)
	if err != nil {
		return nil, err
	}

	h.logger.WithFields(logrus.Fields{
		"winner": winner.Player.Name,
		"pot":    amount,
		"score":  winner.Score.Description,
	}).Info("showdown")
	h.emitWinner(winner.Player, amount, "{} wins $%d with %s", amount, winner.Score.Description)

	return h.result(winner.Player, amount, false, entries), nil
}

func (h *hand) result(winner *Player, pot int, byDefault bool, showdown []ShowdownEntry) *HandResult {
	return &HandResult{
		ID:        h.id,
		Winner:    winner,
		Pot:       pot,
		ByDefault: byDefault,
		Showdown:  showdown,
		Exchanged: h.exchanged,
		Rounds:    h.rounds,
	}
}
