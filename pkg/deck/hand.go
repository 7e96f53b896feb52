package deck

import (
	"fmt"
	"sort"
	"strings"
)

// HandSize is the number of cards each player holds in five-card draw
const HandSize = 5

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if h[i].Rank != h[j].Rank {
		return h[i].Rank < h[j].Rank
	}

	return strings.Compare(string(h[i].Suit), string(h[j].Suit)) < 0
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// Replace swaps the card at position i for the supplied card and returns the old card
func (h Hand) Replace(i int, card Card) (Card, error) {
	if i < 0 || i >= len(h) {
		return Card{}, fmt.Errorf("position %d is outside of the hand", i)
	}

	old := h[i]
	h[i] = card

	return old, nil
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// Sorted returns a copy of the hand ordered by rank
func (h Hand) Sorted() Hand {
	h2 := h.Clone()
	sort.Sort(h2)

	return h2
}

func (h Hand) String() string {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = card.String()
	}

	return strings.Join(c, " ")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// HandFromString builds a hand from the 2c,3h,... format
// This should only be used with literals, i.e., in tests
func HandFromString(s string) Hand {
	cards, err := CardsFromString(s)
	if err != nil {
		panic(err)
	}

	return cards
}
