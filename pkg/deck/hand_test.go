package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHand_HasCard(t *testing.T) {
	hand := HandFromString("2c,3c,4d")
	assert.True(t, hand.HasCard(MustCardFromString("3c")))
	assert.False(t, hand.HasCard(MustCardFromString("3s")))
}

func TestHand_Replace(t *testing.T) {
	a := assert.New(t)

	hand := HandFromString("2c,3c,4d,5h,6s")
	old, err := hand.Replace(1, MustCardFromString("14s"))
	a.NoError(err)
	a.Equal(MustCardFromString("3c"), old)
	a.Equal("2c,14s,4d,5h,6s", CardsToString(hand))

	_, err = hand.Replace(5, MustCardFromString("13s"))
	a.EqualError(err, "position 5 is outside of the hand")

	_, err = hand.Replace(-1, MustCardFromString("13s"))
	a.Error(err)
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(MustCardFromString("14s"))
	h.AddCard(MustCardFromString("3c"))
	assert.Equal(t, "14s,3c", CardsToString(h))
}

func TestHand_Sorted(t *testing.T) {
	a := assert.New(t)

	h := HandFromString("14s,3c,10h,3d")
	a.Equal("3c,3d,10h,14s", CardsToString(h.Sorted()))
	a.Equal("14s,3c,10h,3d", CardsToString(h), "original is untouched")
	a.Equal("A♠ 3♣ 10♥ 3♦", h.String())
}
