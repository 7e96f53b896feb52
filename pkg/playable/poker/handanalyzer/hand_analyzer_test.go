package handanalyzer

import (
	"drawpoker/pkg/deck"
	"github.com/stretchr/testify/assert"
	"testing"
)

func mustNew(t *testing.T, cards string) *HandAnalyzer {
	t.Helper()

	h, err := New(deck.HandFromString(cards))
	if err != nil {
		t.Fatal(err)
	}

	return h
}

func TestHandAnalyzer_GetFourOfAKind(t *testing.T) {
	h := mustNew(t, "2c,3c,3d,3h,3s")
	r, ok := h.GetFourOfAKind()
	assert.True(t, ok)
	assert.Equal(t, deck.Rank(3), r)
	assert.Equal(t, FourOfAKind, h.GetHand())
	_, ok = h.GetThreeOfAKind()
	assert.False(t, ok)
	_, ok = h.GetPair()
	assert.False(t, ok)

	h = mustNew(t, "9s,4h,5c,4d,4c")
	r, ok = h.GetFourOfAKind()
	assert.False(t, ok)
	assert.Equal(t, deck.Rank(0), r)
}

func TestHandAnalyzer_GetFullHouse(t *testing.T) {
	h := mustNew(t, "14c,2c,14d,2d,14h")
	r, ok := h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []deck.Rank{14, 2}, r)
	assert.Equal(t, FullHouse, h.GetHand())

	h = mustNew(t, "3c,3d,3h,4c,5d")
	r, ok = h.GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, r)
	assert.Equal(t, ThreeOfAKind, h.GetHand())
}

func TestHandAnalyzer_GetTwoPair(t *testing.T) {
	h := mustNew(t, "3s,3c,9h,9d,13s")
	r, ok := h.GetTwoPair()
	assert.True(t, ok)
	assert.Equal(t, []deck.Rank{9, 3}, r)
	assert.Equal(t, TwoPair, h.GetHand())

	h = mustNew(t, "3s,3c,8h,9d,13s")
	_, ok = h.GetTwoPair()
	assert.False(t, ok)
	p, ok := h.GetPair()
	assert.True(t, ok)
	assert.Equal(t, deck.Rank(3), p)
	assert.Equal(t, OnePair, h.GetHand())
}

func TestHandAnalyzer_HighCard(t *testing.T) {
	h := mustNew(t, "4s,6c,8h,11d,14s")
	assert.Equal(t, HighCard, h.GetHand())
}

func TestHandAnalyzer_StraightsAndFlushesAreNotRecognized(t *testing.T) {
	a := assert.New(t)

	// a straight is just a high card hand here
	a.Equal(HighCard, mustNew(t, "2c,3d,4h,5s,6c").GetHand())

	// so is a flush
	a.Equal(HighCard, mustNew(t, "2h,5h,9h,11h,13h").GetHand())

	// a straight flush as well
	a.Equal(HighCard, mustNew(t, "9s,10s,11s,12s,13s").GetHand())
}

func TestNew_validation(t *testing.T) {
	a := assert.New(t)

	_, err := New(deck.HandFromString("2c,3c,4c,5c"))
	a.EqualError(err, "expected 5 cards, got 4")

	_, err = New(deck.HandFromString("2c,3c,4c,5c,6c,7c"))
	a.Equal(HandSizeError{Got: 6}, err)

	_, err = New(deck.HandFromString("2c,3c,4c,5c,5c"))
	a.Equal(ErrDuplicateCard, err)

	_, err = New(deck.Hand{{Rank: 1, Suit: deck.Clubs}, {Rank: 2, Suit: deck.Clubs}, {Rank: 3, Suit: deck.Clubs}, {Rank: 4, Suit: deck.Clubs}, {Rank: 5, Suit: deck.Clubs}})
	a.EqualError(err, "invalid card rank: 1")
}

func TestHand_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("High card", HighCard.String())
	a.Equal("Pair", OnePair.String())
	a.Equal("Two pair", TwoPair.String())
	a.Equal("Three of a kind", ThreeOfAKind.String())
	a.Equal("Full house", FullHouse.String())
	a.Equal("Four of a kind", FourOfAKind.String())
	a.Panics(func() {
		_ = Hand(4).String()
	})
}
