package poker

import "fmt"

// ShowdownResult holds every player's best combination and the indices of the
// players sharing the best one.
type ShowdownResult struct {
	Combinations []Combination
	Winners      []int
}

// IsSplit reports whether more than one player tied for the best hand.
func (r *ShowdownResult) IsSplit() bool {
	return len(r.Winners) > 1
}

// Showdown evaluates each player's hole cards together with the shared board
// and identifies the winners. Ties are reported, not broken: callers decide
// how to split the pot.
func Showdown(board []Card, holes [][]Card) (*ShowdownResult, error) {
	if len(holes) == 0 {
		return nil, ErrNoPlayers
	}

	result := &ShowdownResult{
		Combinations: make([]Combination, len(holes)),
	}

	cards := make([]Card, 0, len(board)+2)
	for i, hole := range holes {
		cards = append(cards[:0], hole...)
		cards = append(cards, board...)

		combo, err := Evaluate(cards)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
		result.Combinations[i] = combo
	}

	result.Winners = Winners(result.Combinations)
	return result, nil
}

// Winners returns the indices of every combination that ties for the best.
func Winners(combos []Combination) []int {
	if len(combos) == 0 {
		return nil
	}

	best := combos[0]
	winners := []int{0}
	for i := 1; i < len(combos); i++ {
		switch cmp := combos[i].Compare(best); {
		case cmp > 0:
			best = combos[i]
			winners = winners[:0]
			winners = append(winners, i)
		case cmp == 0:
			winners = append(winners, i)
		}
	}
	return winners
}

// SplitPot divides amount evenly between winners. The remainder is what
// cannot be split evenly and is left for the caller to assign.
func SplitPot(amount, winners int) (share, remainder int) {
	if winners <= 0 {
		return 0, amount
	}
	return amount / winners, amount % winners
}
