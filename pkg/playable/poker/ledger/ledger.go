package ledger

import (
	"errors"
	"fmt"
)

// Ledger keeps track of stacks, per-round contributions, and the pot for a single hand
//
// The sum of every stack plus the pot never changes while the hand is in
// progress. Every mutation re-checks that and refuses to let a stack go negative.
type Ledger struct {
	limit        int
	participants map[int64]*participantInLedger
	tableOrder   []*participantInLedger
	pot          int
	highestBet   int
	chipsInPlay  int
	settled      bool
}

// New returns a ledger for the participants in table order
// limit is the fixed amount every bet and raise must use
func New(limit int, participants ...Participant) (*Ledger, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be greater than zero")
	}

	l := &Ledger{
		limit:        limit,
		participants: make(map[int64]*participantInLedger, len(participants)),
		tableOrder:   make([]*participantInLedger, 0, len(participants)),
	}

	for _, pt := range participants {
		if _, ok := l.participants[pt.ID()]; ok {
			return nil, fmt.Errorf("participant %d is seated twice", pt.ID())
		}

		if pt.Balance() < 0 {
			return nil, fmt.Errorf("participant %d has a negative balance", pt.ID())
		}

		pil := &participantInLedger{
			Participant: pt,
			tableIndex:  len(l.tableOrder),
		}
		l.participants[pt.ID()] = pil
		l.tableOrder = append(l.tableOrder, pil)
		l.chipsInPlay += pt.Balance()
	}

	return l, nil
}

// OpenRound starts a new betting round
// Contributions and the highest bet go back to zero; the pot carries over.
func (l *Ledger) OpenRound() error {
	if l.settled {
		return ErrSettled
	}

	for _, pil := range l.tableOrder {
		pil.reset()
	}

	l.highestBet = 0
	return nil
}

// Bet opens the betting for the round
func (l *Ledger) Bet(pt Participant, amount int) error {
	pil, err := l.get(pt)
	if err != nil {
		return err
	}

	if l.highestBet > 0 {
		return newParticipantError("you cannot bet with an active bet of $%d", l.highestBet)
	}

	if amount != l.limit {
		return fmt.Errorf("%w: bet of $%d, limit is $%d", ErrNotFixedLimit, amount, l.limit)
	}

	if err := l.pay(pil, amount); err != nil {
		return err
	}

	l.highestBet = pil.contribution
	return l.verify()
}

// Call matches the highest bet and returns how much was paid
func (l *Ledger) Call(pt Participant) (int, error) {
	pil, err := l.get(pt)
	if err != nil {
		return 0, err
	}

	toCall := l.highestBet - pil.contribution
	if toCall <= 0 {
		return 0, newParticipantError("you cannot call without an active bet")
	}

	if err := l.pay(pil, toCall); err != nil {
		return 0, err
	}

	return toCall, l.verify()
}

// Raise calls the highest bet and adds one increment on top of it
// Returns the total amount paid
func (l *Ledger) Raise(pt Participant, increment int) (int, error) {
	pil, err := l.get(pt)
	if err != nil {
		return 0, err
	}

	if l.highestBet == 0 {
		return 0, newParticipantError("you cannot raise without an active bet")
	}

	if increment != l.limit {
		return 0, fmt.Errorf("%w: raise of $%d, limit is $%d", ErrNotFixedLimit, increment, l.limit)
	}

	total := l.highestBet - pil.contribution + increment
	if err := l.pay(pil, total); err != nil {
		return 0, err
	}

	l.highestBet += increment
	return total, l.verify()
}

// Settle awards the entire pot to the winner and returns the amount
// The ledger cannot be used after it has been settled
func (l *Ledger) Settle(winner Participant) (int, error) {
	pil, err := l.get(winner)
	if err != nil {
		return 0, err
	}

	amount := l.pot
	pil.AdjustBalance(amount)
	l.pot = 0
	l.settled = true

	return amount, l.verify()
}

// pay moves chips from the participant's stack into the pot
func (l *Ledger) pay(pil *participantInLedger, amount int) error {
	if balance := pil.Balance(); amount > balance {
		return fmt.Errorf("%w: need $%d, have $%d", ErrInsufficientFunds, amount, balance)
	}

	pil.pay(amount)
	l.pot += amount
	return nil
}

// verify checks that no stack is negative and that no chips were created or destroyed
func (l *Ledger) verify() error {
	if l.pot < 0 {
		return fmt.Errorf("%w: pot is $%d", ErrConservation, l.pot)
	}

	total := l.pot
	for _, pil := range l.tableOrder {
		balance := pil.Balance()
		if balance < 0 {
			return fmt.Errorf("%w: participant %d has $%d", ErrConservation, pil.ID(), balance)
		}

		total += balance
	}

	if total != l.chipsInPlay {
		return fmt.Errorf("%w: expected $%d on the table, found $%d", ErrConservation, l.chipsInPlay, total)
	}

	return nil
}

func (l *Ledger) get(pt Participant) (*participantInLedger, error) {
	if l.settled {
		return nil, ErrSettled
	}

	pil, ok := l.participants[pt.ID()]
	if !ok {
		return nil, ErrParticipantNotFound
	}

	return pil, nil
}

// CanAfford returns true if the participant's stack covers the amount
func (l *Ledger) CanAfford(pt Participant, amount int) bool {
	return pt.Balance() >= amount
}

// ToCall returns how much the participant needs to put in to match the highest bet
func (l *Ledger) ToCall(pt Participant) int {
	pil, ok := l.participants[pt.ID()]
	if !ok {
		return 0
	}

	return l.highestBet - pil.contribution
}

// Contribution returns how much the participant has put in during the current round
func (l *Ledger) Contribution(pt Participant) int {
	if pil, ok := l.participants[pt.ID()]; ok {
		return pil.contribution
	}

	return 0
}

// Committed returns how much the participant has put in during the entire hand
func (l *Ledger) Committed(pt Participant) int {
	if pil, ok := l.participants[pt.ID()]; ok {
		return pil.committed
	}

	return 0
}

// Pot returns the amount in the pot
func (l *Ledger) Pot() int {
	return l.pot
}

// HighestBet returns the highest contribution in the current round
func (l *Ledger) HighestBet() int {
	return l.highestBet
}

// Limit returns the fixed bet and raise increment
func (l *Ledger) Limit() int {
	return l.limit
}

// ChipsInPlay returns the sum of every stack and the pot
func (l *Ledger) ChipsInPlay() int {
	return l.chipsInPlay
}

// IsSettled returns true once the pot was awarded
func (l *Ledger) IsSettled() bool {
	return l.settled
}
