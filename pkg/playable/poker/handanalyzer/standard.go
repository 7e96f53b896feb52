package handanalyzer

import (
	"drawpoker/pkg/deck"
	"fmt"
	"github.com/paulhankin/poker"
)

// Standard scores hands with the full poker ranking, including straights,
// flushes and kickers
// Every score shares the HighCard category so that Strength alone orders hands.
type Standard struct{}

// Evaluate returns the score for the hand
func (Standard) Evaluate(hand deck.Hand) (RankScore, error) {
	if err := validate(hand); err != nil {
		return RankScore{}, err
	}

	var cards [5]poker.Card
	for i, card := range hand {
		c, err := toLibraryCard(card)
		if err != nil {
			return RankScore{}, err
		}

		cards[i] = c
	}

	description, err := poker.Describe(cards[:])
	if err != nil {
		return RankScore{}, fmt.Errorf("could not describe hand %s: %w", hand, err)
	}

	return RankScore{
		Category:    HighCard,
		Strength:    int(poker.Eval5(&cards)),
		Description: description,
	}, nil
}

// toLibraryCard converts to the evaluator library's card, which ranks the ace as 1
func toLibraryCard(card deck.Card) (poker.Card, error) {
	var suit poker.Suit
	var zero poker.Card
	switch card.Suit {
	case deck.Clubs:
		suit = poker.Club
	case deck.Diamonds:
		suit = poker.Diamond
	case deck.Hearts:
		suit = poker.Heart
	case deck.Spades:
		suit = poker.Spade
	default:
		return zero, fmt.Errorf("unknown suit: %s", card.Suit)
	}

	rank := poker.Rank(card.Rank)
	if card.Rank == deck.Ace {
		rank = poker.Rank(1)
	}

	return poker.MakeCard(suit, rank)
}

// NewEvaluator returns the evaluator for a configured name
func NewEvaluator(name string) (Evaluator, error) {
	switch name {
	case "", "classic":
		return Classic{}, nil
	case "standard":
		return Standard{}, nil
	}

	return nil, fmt.Errorf("unknown evaluator: %s", name)
}
