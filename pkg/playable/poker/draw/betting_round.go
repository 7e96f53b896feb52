package draw

import (
	"drawpoker/pkg/playable/poker/action"
	"drawpoker/pkg/playable/poker/ledger"
	"fmt"
)

// RoundState is the state of a betting round
type RoundState int

// round states
const (
	AwaitingAction RoundState = iota
	RoundSettled
)

func (r RoundState) String() string {
	if r == RoundSettled {
		return "settled"
	}

	return "awaiting action"
}

// Turn is a single action taken during a betting round
type Turn struct {
	Player *Player
	Action action.Action
	// Amount is what the action moved into the pot
	Amount int
	// Increment is how much a bet or raise lifted the highest bet
	Increment int
}

// BettingRound drives one betting phase among the active players
//
// The round keeps a queue of players still to act, seeded with every active
// player in table order. Checks, calls, and folds pop the head of the queue.
// A bet or a raise re-opens the action: the queue becomes every other active
// player, starting with the seat after the aggressor.
type BettingRound struct {
	name      string
	ledger    *ledger.Ledger
	active    *ActivePlayers
	limit     int
	maxRaises int
	raises    int
	queue     []*Player
	turns     []Turn
}

// NewBettingRound opens a betting round on the ledger
func NewBettingRound(name string, l *ledger.Ledger, active *ActivePlayers, limit, maxRaises int) (*BettingRound, error) {
	if err := l.OpenRound(); err != nil {
		return nil, err
	}

	return &BettingRound{
		name:      name,
		ledger:    l,
		active:    active,
		limit:     limit,
		maxRaises: maxRaises,
		queue:     active.Players(),
		turns:     make([]Turn, 0),
	}, nil
}

// Name returns the name of the round, i.e., First Betting Round
func (b *BettingRound) Name() string {
	return b.name
}

// State returns whether the round is waiting on a player or settled
func (b *BettingRound) State() RoundState {
	if len(b.queue) == 0 || b.active.Len() <= 1 {
		return RoundSettled
	}

	return AwaitingAction
}

// IsSettled returns true if nobody is left to act, or a single player remains in the hand
func (b *BettingRound) IsSettled() bool {
	return b.State() == RoundSettled
}

// InTurn returns the player who must act next, or nil if the round is settled
func (b *BettingRound) InTurn() *Player {
	if b.IsSettled() {
		return nil
	}

	return b.queue[0]
}

// Queue returns the players still to act, in order
func (b *BettingRound) Queue() []*Player {
	q := make([]*Player, len(b.queue))
	copy(q, b.queue)

	return q
}

// Turns returns every action taken in the round
func (b *BettingRound) Turns() []Turn {
	return b.turns
}

// LegalActions returns the actions the in-turn player can take and afford
func (b *BettingRound) LegalActions(p *Player) []action.Action {
	if p == nil || p != b.InTurn() {
		return nil
	}

	return b.actionsFor(p, true)
}

// IsUnaffordable returns true if the action is only illegal because the player cannot pay for it
func (b *BettingRound) IsUnaffordable(p *Player, a action.Action) bool {
	if p == nil || p != b.InTurn() || !a.MovesChips() {
		return false
	}

	return action.Contains(b.actionsFor(p, false), a) && !action.Contains(b.actionsFor(p, true), a)
}

func (b *BettingRound) actionsFor(p *Player, checkFunds bool) []action.Action {
	canPay := func(amount int) bool {
		return !checkFunds || b.ledger.CanAfford(p, amount)
	}

	if b.ledger.HighestBet() == 0 {
		actions := []action.Action{action.Check}
		if canPay(b.limit) {
			actions = append(actions, action.Bet)
		}

		return actions
	}

	actions := make([]action.Action, 0, 3)
	toCall := b.ledger.ToCall(p)
	if toCall > 0 {
		if canPay(toCall) {
			actions = append(actions, action.Call)
		}
	} else {
		actions = append(actions, action.Check)
	}

	if (b.maxRaises == 0 || b.raises < b.maxRaises) && canPay(toCall+b.limit) {
		actions = append(actions, action.Raise)
	}

	return append(actions, action.Fold)
}

// Apply performs the action for the in-turn player
// The action must be one of LegalActions(p)
func (b *BettingRound) Apply(p *Player, a action.Action) (Turn, error) {
	if b.IsSettled() {
		return Turn{}, errBettingRoundIsOver
	}

	if p != b.InTurn() {
		return Turn{}, ErrNotYourTurn
	}

	if !action.Contains(b.LegalActions(p), a) {
		if b.IsUnaffordable(p, a) {
			return Turn{}, fmt.Errorf("%w: %s cannot afford to %s", ledger.ErrInsufficientFunds, p.Name, string(a))
		}

		return Turn{}, fmt.Errorf("%w: cannot %s, expected %s", ErrIllegalAction, string(a), action.Join(b.LegalActions(p)))
	}

	turn := Turn{Player: p, Action: a}
	highestBet := b.ledger.HighestBet()
	switch a {
	case action.Check:
		b.pop()
	case action.Bet:
		if err := b.ledger.Bet(p, b.limit); err != nil {
			return Turn{}, err
		}

		turn.Amount = b.limit
		b.queue = b.active.After(p)
	case action.Raise:
		paid, err := b.ledger.Raise(p, b.limit)
		if err != nil {
			return Turn{}, err
		}

		turn.Amount = paid
		b.raises++
		b.queue = b.active.After(p)
	case action.Call:
		paid, err := b.ledger.Call(p)
		if err != nil {
			return Turn{}, err
		}

		turn.Amount = paid
		b.pop()
	case action.Fold:
		b.active.Remove(p)
		b.pop()
	}

	turn.Increment = b.ledger.HighestBet() - highestBet
	b.turns = append(b.turns, turn)
	return turn, nil
}

func (b *BettingRound) pop() {
	b.queue = b.queue[1:]
}
