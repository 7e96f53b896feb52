package ledger

import (
	"errors"
	"fmt"
)

// ParticipantError is an error caused by an action the participant is not allowed to take
type ParticipantError string

func (p ParticipantError) Error() string {
	return string(p)
}

func newParticipantError(format string, a ...interface{}) ParticipantError {
	return ParticipantError(fmt.Sprintf(format, a...))
}

// ErrInsufficientFunds is returned when a bet, call, or raise would drive a stack below zero
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrNotFixedLimit is returned when a bet or raise is not exactly the table limit
var ErrNotFixedLimit = errors.New("bets and raises must equal the fixed limit")

// ErrSettled is returned when the ledger is mutated after the pot was awarded
var ErrSettled = errors.New("pot has already been settled")

// ErrParticipantNotFound is returned when a participant is not seated in the ledger
var ErrParticipantNotFound = errors.New("participant not found")

// ErrConservation is returned when the chips on the table no longer add up
// This is a fatal error. The hand must not continue.
var ErrConservation = errors.New("chip conservation violated")
