package handanalyzer

import "drawpoker/pkg/deck"

// RankScore is a comparable summary of a hand's strength
// Scores are only comparable when produced by the same Evaluator
type RankScore struct {
	Category    Hand   `json:"category"`
	Strength    int    `json:"strength"`
	Description string `json:"description"`
}

// Compare returns -1 if r is weaker than other, 1 if it is stronger, and 0 on a tie
func (r RankScore) Compare(other RankScore) int {
	switch {
	case r.Category < other.Category:
		return -1
	case r.Category > other.Category:
		return 1
	case r.Strength < other.Strength:
		return -1
	case r.Strength > other.Strength:
		return 1
	}

	return 0
}

// Beats returns true if r is strictly stronger than other
func (r RankScore) Beats(other RankScore) bool {
	return r.Compare(other) > 0
}

func (r RankScore) String() string {
	return r.Description
}

// Evaluator maps five cards to a RankScore
type Evaluator interface {
	Evaluate(hand deck.Hand) (RankScore, error)
}

// Classic scores hands by rank multiplicity only
// Equal categories always tie; kickers are never compared.
type Classic struct{}

// Evaluate returns the score for the hand
func (Classic) Evaluate(hand deck.Hand) (RankScore, error) {
	h, err := New(hand)
	if err != nil {
		return RankScore{}, err
	}

	return RankScore{
		Category:    h.GetHand(),
		Description: h.GetHand().String(),
	}, nil
}

// Best returns the index of the strongest score
// When several scores are equally strong, the first one encountered wins.
// Returns -1 for an empty slice.
func Best(scores []RankScore) int {
	best := -1
	for i, score := range scores {
		if best == -1 || score.Beats(scores[best]) {
			best = i
		}
	}

	return best
}
