package poker

import (
	"fmt"
	"strings"
)

// Category enumerates the poker hand categories ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// NumCategories is the number of hand categories.
const NumCategories = 10

// Categories lists every category from strongest to weakest, the order in
// which Evaluate tries them.
var Categories = [NumCategories]Category{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPairs, Pair, HighCard,
}

// payloadLen is the number of tie-break ranks each category carries.
var payloadLen = [NumCategories]int{
	HighCard:      5,
	Pair:          2,
	TwoPairs:      3,
	ThreeOfAKind:  2,
	Straight:      1,
	Flush:         5,
	FullHouse:     1,
	FourOfAKind:   2,
	StraightFlush: 1,
	RoyalFlush:    0,
}

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPairs:
		return "Two Pairs"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c < NumCategories
}

// Combination is the best hand found in a set of cards: a category plus the
// ranks needed to break ties within it, most significant first.
//
// Only the leading payload slots defined for the category are populated; the
// rest stay zero so that == agrees with Compare.
//
// Pair, ThreeOfAKind and FourOfAKind keep a single kicker, TwoPairs keeps one
// kicker and FullHouse keeps only the rank of its triple. Hands that match
// through those ranks compare as tied even if further kickers would differ.
type Combination struct {
	Category Category
	payload  [5]Rank
}

// HighCardOf returns a HighCard combination. Ranks are given highest first.
func HighCardOf(r1, r2, r3, r4, r5 Rank) Combination {
	return Combination{Category: HighCard, payload: [5]Rank{r1, r2, r3, r4, r5}}
}

// PairOf returns a Pair combination.
func PairOf(pair, kicker Rank) Combination {
	return Combination{Category: Pair, payload: [5]Rank{pair, kicker}}
}

// TwoPairsOf returns a TwoPairs combination.
func TwoPairsOf(high, low, kicker Rank) Combination {
	return Combination{Category: TwoPairs, payload: [5]Rank{high, low, kicker}}
}

// ThreeOfAKindOf returns a ThreeOfAKind combination.
func ThreeOfAKindOf(trips, kicker Rank) Combination {
	return Combination{Category: ThreeOfAKind, payload: [5]Rank{trips, kicker}}
}

// StraightOf returns a Straight combination topped by top.
func StraightOf(top Rank) Combination {
	return Combination{Category: Straight, payload: [5]Rank{top}}
}

// FlushOf returns a Flush combination. Ranks are given highest first.
func FlushOf(r1, r2, r3, r4, r5 Rank) Combination {
	return Combination{Category: Flush, payload: [5]Rank{r1, r2, r3, r4, r5}}
}

// FullHouseOf returns a FullHouse combination.
func FullHouseOf(trips Rank) Combination {
	return Combination{Category: FullHouse, payload: [5]Rank{trips}}
}

// FourOfAKindOf returns a FourOfAKind combination.
func FourOfAKindOf(quads, kicker Rank) Combination {
	return Combination{Category: FourOfAKind, payload: [5]Rank{quads, kicker}}
}

// StraightFlushOf returns a StraightFlush combination topped by top.
func StraightFlushOf(top Rank) Combination {
	return Combination{Category: StraightFlush, payload: [5]Rank{top}}
}

// RoyalFlushOf returns the RoyalFlush combination.
func RoyalFlushOf() Combination {
	return Combination{Category: RoyalFlush}
}

// Ranks returns the tie-break ranks carried by the combination, most
// significant first.
func (c Combination) Ranks() []Rank {
	if !c.Category.Valid() {
		return nil
	}
	out := make([]Rank, payloadLen[c.Category])
	copy(out, c.payload[:])
	return out
}

// Compare returns 1 if c beats other, -1 if other beats c and 0 on a tie.
// Categories are compared first; within a category the payload ranks are
// compared in order.
func (c Combination) Compare(other Combination) int {
	if c.Category != other.Category {
		if c.Category > other.Category {
			return 1
		}
		return -1
	}

	n := 0
	if c.Category.Valid() {
		n = payloadLen[c.Category]
	}
	for i := 0; i < n; i++ {
		switch {
		case c.payload[i] > other.payload[i]:
			return 1
		case c.payload[i] < other.payload[i]:
			return -1
		}
	}
	return 0
}

// Beats returns true if c is strictly stronger than other.
func (c Combination) Beats(other Combination) bool {
	return c.Compare(other) > 0
}

// Ties returns true if c and other are equal in strength.
func (c Combination) Ties(other Combination) bool {
	return c.Compare(other) == 0
}

// String describes the combination, e.g. "Pair of Eights, Nine kicker".
func (c Combination) String() string {
	p := c.payload
	switch c.Category {
	case HighCard:
		return fmt.Sprintf("High Card %s", joinRanks(p[:5]))
	case Pair:
		return fmt.Sprintf("Pair of %s, %s kicker", p[0].Plural(), p[1])
	case TwoPairs:
		return fmt.Sprintf("Two Pairs, %s and %s, %s kicker", p[0].Plural(), p[1].Plural(), p[2])
	case ThreeOfAKind:
		return fmt.Sprintf("Three %s, %s kicker", p[0].Plural(), p[1])
	case Straight:
		return fmt.Sprintf("Straight, %s high", p[0])
	case Flush:
		return fmt.Sprintf("Flush %s", joinRanks(p[:5]))
	case FullHouse:
		return fmt.Sprintf("Full House, %s full", p[0].Plural())
	case FourOfAKind:
		return fmt.Sprintf("Four %s, %s kicker", p[0].Plural(), p[1])
	case StraightFlush:
		return fmt.Sprintf("Straight Flush, %s high", p[0])
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

func joinRanks(ranks []Rank) string {
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}
