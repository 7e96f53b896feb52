package handanalyzer

import "fmt"

// Hand is a poker hand category, i.e., two pair
//
// The numbering is part of the scoring contract. Five-card draw at this table
// only recognizes rank multiplicities, so there is no straight (4) or flush (5),
// and full house and four of a kind keep the values 6 and 7.
type Hand int

// Constants for hand
const (
	HighCard     Hand = 0
	OnePair      Hand = 1
	TwoPair      Hand = 2
	ThreeOfAKind Hand = 3
	FullHouse    Hand = 6
	FourOfAKind  Hand = 7
)

// String returns the string representation of a hand
func (h Hand) String() string {
	switch h {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	default:
		panic(fmt.Sprintf("unknown hand: %d", h))
	}
}
