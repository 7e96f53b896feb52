package draw

import (
	"drawpoker/pkg/playable/poker/ledger"
	"errors"
	"fmt"
)

// ErrNotYourTurn is returned when a player acts out of turn
var ErrNotYourTurn = ledger.ParticipantError("it is not your turn")

// ErrIllegalAction is returned when a decision source keeps choosing actions outside the legal set
var ErrIllegalAction = errors.New("illegal action")

// ErrInvalidExchange is returned when exchange positions are out of range or repeated
var ErrInvalidExchange = errors.New("invalid exchange")

// ErrDeckExhausted is returned when the deck runs out of cards mid-hand
// This is a fatal internal error; the hand is aborted.
var ErrDeckExhausted = errors.New("deck exhausted")

// ErrTableCorrupted is returned when a hand is started after a previous hand failed
var ErrTableCorrupted = errors.New("table is in a corrupted state after a failed hand")

// ErrNotEnoughPlayers is returned when fewer than two players have money
var ErrNotEnoughPlayers = errors.New("need at least two players with money")

var errBettingRoundIsOver = errors.New("betting round is over")

// PlayerCountError is an error on the number of players at the table
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d-%d players, got %d", p.Min, p.Max, p.Got)
}
