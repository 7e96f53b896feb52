package handanalyzer

import (
	"drawpoker/pkg/deck"
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateCard is returned when the same card appears twice in a hand
var ErrDuplicateCard = errors.New("hand contains a duplicate card")

// HandSizeError is returned when a hand does not hold exactly five cards
type HandSizeError struct {
	Got int
}

func (h HandSizeError) Error() string {
	return fmt.Sprintf("expected %d cards, got %d", deck.HandSize, h.Got)
}

// HandAnalyzer counts rank multiplicities in a five-card hand
type HandAnalyzer struct {
	cards deck.Hand
	quads []deck.Rank
	trips []deck.Rank
	pairs []deck.Rank

	hand Hand
}

// New will return a new HandAnalyzer instance
func New(cards deck.Hand) (*HandAnalyzer, error) {
	if err := validate(cards); err != nil {
		return nil, err
	}

	h := &HandAnalyzer{
		cards: cards.Clone(),
	}

	h.analyzeHand()
	h.calculateHand()

	return h, nil
}

func validate(cards deck.Hand) error {
	if len(cards) != deck.HandSize {
		return HandSizeError{Got: len(cards)}
	}

	seen := make(map[deck.Card]bool, len(cards))
	for _, card := range cards {
		if !card.Rank.IsValid() {
			return fmt.Errorf("invalid card rank: %d", card.Rank)
		}

		if seen[card] {
			return ErrDuplicateCard
		}

		seen[card] = true
	}

	return nil
}

// analyzeHand builds the rank-frequency map and buckets each rank by how often it appears
func (h *HandAnalyzer) analyzeHand() {
	counts := make(map[deck.Rank]int)
	for _, card := range h.cards {
		counts[card.Rank]++
	}

	for rank, count := range counts {
		switch count {
		case 4:
			h.quads = append(h.quads, rank)
		case 3:
			h.trips = append(h.trips, rank)
		case 2:
			h.pairs = append(h.pairs, rank)
		}
	}

	// best first
	sort.Sort(sort.Reverse(byRank(h.quads)))
	sort.Sort(sort.Reverse(byRank(h.trips)))
	sort.Sort(sort.Reverse(byRank(h.pairs)))
}

func (h *HandAnalyzer) calculateHand() {
	switch {
	case len(h.quads) > 0:
		h.hand = FourOfAKind
	case len(h.trips) > 0 && len(h.pairs) > 0:
		h.hand = FullHouse
	case len(h.trips) > 0:
		h.hand = ThreeOfAKind
	case len(h.pairs) == 2:
		h.hand = TwoPair
	case len(h.pairs) == 1:
		h.hand = OnePair
	default:
		h.hand = HighCard
	}
}

// GetHand will return the best possible hand the cards can make
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// GetFourOfAKind will return the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (deck.Rank, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the trips and the pair of a full house, if possible
func (h *HandAnalyzer) GetFullHouse() ([]deck.Rank, bool) {
	if len(h.trips) == 0 || len(h.pairs) == 0 {
		return nil, false
	}

	return []deck.Rank{h.trips[0], h.pairs[0]}, true
}

// GetThreeOfAKind will return the three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (deck.Rank, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return both pairs, higher first, if possible
func (h *HandAnalyzer) GetTwoPair() ([]deck.Rank, bool) {
	if len(h.pairs) == 2 {
		return h.pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (deck.Rank, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}

type byRank []deck.Rank

func (b byRank) Len() int           { return len(b) }
func (b byRank) Less(i, j int) bool { return b[i] < b[j] }
func (b byRank) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
