package poker

import "fmt"

// MinCards is the smallest number of cards Evaluate accepts.
const MinCards = 5

type detector struct {
	category Category
	find     func([]Card) (Combination, bool)
}

// detectors are ordered strongest first. Evaluate relies on this order since
// the categories are not mutually exclusive.
var detectors = [NumCategories]detector{
	{RoyalFlush, findRoyalFlush},
	{StraightFlush, findStraightFlush},
	{FourOfAKind, findFourOfAKind},
	{FullHouse, findFullHouse},
	{Flush, findFlush},
	{Straight, findStraight},
	{ThreeOfAKind, findThreeOfAKind},
	{TwoPairs, findTwoPairs},
	{Pair, findPair},
	{HighCard, findHighCard},
}

// Evaluate returns the best combination that can be formed from cards.
//
// At least MinCards cards are required; typically that is two hole cards plus
// three to five board cards. The result depends only on the multiset of
// cards, not on their order. Duplicate cards are not rejected.
func Evaluate(cards []Card) (Combination, error) {
	if len(cards) < MinCards {
		return Combination{}, fmt.Errorf("%w: got %d, need at least %d", ErrTooFewCards, len(cards), MinCards)
	}
	if err := validate(cards); err != nil {
		return Combination{}, err
	}

	for _, d := range detectors[:len(detectors)-1] {
		if combo, ok := d.find(cards); ok {
			return combo, nil
		}
	}
	combo, _ := findHighCard(cards)
	return combo, nil
}

// Detect runs the detector for a single category against cards, regardless
// of whether a stronger category is also present.
func Detect(category Category, cards []Card) (Combination, bool) {
	if validate(cards) != nil {
		return Combination{}, false
	}
	for _, d := range detectors {
		if d.category == category {
			return d.find(cards)
		}
	}
	return Combination{}, false
}

// DetectAll returns every category present in cards, strongest first.
func DetectAll(cards []Card) []Combination {
	if validate(cards) != nil {
		return nil
	}
	var found []Combination
	for _, d := range detectors {
		if combo, ok := d.find(cards); ok {
			found = append(found, combo)
		}
	}
	return found
}

func validate(cards []Card) error {
	for i, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: card %d has suit %d rank %d", ErrInvalidCard, i, c.Suit, c.Rank)
		}
	}
	return nil
}
