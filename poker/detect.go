package poker

import "slices"

// Each detector scans the full card set and reports whether its category can
// be formed. Detectors are independent: a set that holds a flush may also hold
// a pair, and only the order used by Evaluate picks the right answer.

func findRoyalFlush(cards []Card) (Combination, bool) {
	sf, ok := findStraightFlush(cards)
	if !ok || sf.payload[0] != Ace {
		return Combination{}, false
	}
	return RoyalFlushOf(), true
}

func findStraightFlush(cards []Card) (Combination, bool) {
	var best Rank
	for _, suit := range flushSuits(cards) {
		if top, ok := topOfRun(suitRanks(cards, suit)); ok && top > best {
			best = top
		}
	}
	if best == 0 {
		return Combination{}, false
	}
	return StraightFlushOf(best), true
}

func findFourOfAKind(cards []Card) (Combination, bool) {
	ranks := sortedRanks(cards)
	quads, ok := findGroup(ranks, 4)
	if !ok {
		return Combination{}, false
	}
	kicker, ok := highestExcluding(ranks, quads)
	if !ok {
		return Combination{}, false
	}
	return FourOfAKindOf(quads, kicker), true
}

func findFullHouse(cards []Card) (Combination, bool) {
	ranks := sortedRanks(cards)
	trips, ok := findGroup(ranks, 3)
	if !ok {
		return Combination{}, false
	}
	// A second set of trips counts as the pair.
	if _, ok := findGroup(ranks, 2, trips); !ok {
		return Combination{}, false
	}
	return FullHouseOf(trips), true
}

func findFlush(cards []Card) (Combination, bool) {
	var (
		best  Combination
		found bool
	)
	for _, suit := range flushSuits(cards) {
		r := suitRanks(cards, suit)
		combo := FlushOf(r[0], r[1], r[2], r[3], r[4])
		if !found || combo.Beats(best) {
			best, found = combo, true
		}
	}
	return best, found
}

func findStraight(cards []Card) (Combination, bool) {
	top, ok := topOfRun(sortedRanks(cards))
	if !ok {
		return Combination{}, false
	}
	return StraightOf(top), true
}

func findThreeOfAKind(cards []Card) (Combination, bool) {
	ranks := sortedRanks(cards)
	trips, ok := findGroup(ranks, 3)
	if !ok {
		return Combination{}, false
	}
	kicker, ok := highestExcluding(ranks, trips)
	if !ok {
		return Combination{}, false
	}
	return ThreeOfAKindOf(trips, kicker), true
}

func findTwoPairs(cards []Card) (Combination, bool) {
	ranks := sortedRanks(cards)
	high, ok := findGroup(ranks, 2)
	if !ok {
		return Combination{}, false
	}
	low, ok := findGroup(ranks, 2, high)
	if !ok {
		return Combination{}, false
	}
	kicker, ok := highestExcluding(ranks, high, low)
	if !ok {
		return Combination{}, false
	}
	return TwoPairsOf(high, low, kicker), true
}

func findPair(cards []Card) (Combination, bool) {
	ranks := sortedRanks(cards)
	pair, ok := findGroup(ranks, 2)
	if !ok {
		return Combination{}, false
	}
	kicker, ok := highestExcluding(ranks, pair)
	if !ok {
		return Combination{}, false
	}
	return PairOf(pair, kicker), true
}

// findHighCard succeeds for any set of at least five cards.
func findHighCard(cards []Card) (Combination, bool) {
	if len(cards) < MinCards {
		return Combination{}, false
	}
	r := sortedRanks(cards)
	return HighCardOf(r[0], r[1], r[2], r[3], r[4]), true
}

// sortedRanks returns the rank of every card, highest first.
func sortedRanks(cards []Card) []Rank {
	ranks := make([]Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	slices.SortFunc(ranks, descending)
	return ranks
}

// suitRanks returns the ranks of the cards of one suit, highest first.
func suitRanks(cards []Card, suit Suit) []Rank {
	ranks := make([]Rank, 0, len(cards))
	for _, c := range cards {
		if c.Suit == suit {
			ranks = append(ranks, c.Rank)
		}
	}
	slices.SortFunc(ranks, descending)
	return ranks
}

// flushSuits returns every suit held at least five times.
func flushSuits(cards []Card) []Suit {
	var counts [NumSuits]int
	for _, c := range cards {
		counts[c.Suit]++
	}

	var suits []Suit
	for _, s := range AllSuits {
		if counts[s] >= 5 {
			suits = append(suits, s)
		}
	}
	return suits
}

// findGroup slides a window of the given size over ranks (sorted highest
// first) and returns the rank of the first window whose entries are all
// equal. Ranks listed in exclude are skipped.
func findGroup(ranks []Rank, size int, exclude ...Rank) (Rank, bool) {
	filtered := ranks
	if len(exclude) > 0 {
		filtered = make([]Rank, 0, len(ranks))
		for _, r := range ranks {
			if !slices.Contains(exclude, r) {
				filtered = append(filtered, r)
			}
		}
	}

	for i := 0; i+size <= len(filtered); i++ {
		if filtered[i] == filtered[i+size-1] {
			return filtered[i], true
		}
	}
	return 0, false
}

// highestExcluding returns the highest rank in ranks (sorted highest first)
// that is not listed in exclude.
func highestExcluding(ranks []Rank, exclude ...Rank) (Rank, bool) {
	for _, r := range ranks {
		if !slices.Contains(exclude, r) {
			return r, true
		}
	}
	return 0, false
}

// topOfRun returns the top rank of the highest run of five consecutive ranks
// in ranks (sorted highest first, duplicates allowed). Adjacency does not
// wrap, except that A-2-3-4-5 counts as a run topped by Five.
func topOfRun(ranks []Rank) (Rank, bool) {
	distinct := slices.Compact(slices.Clone(ranks))

	for i := 0; i+5 <= len(distinct); i++ {
		if isRun(distinct[i : i+5]) {
			return distinct[i], true
		}
	}

	if slices.Contains(distinct, Ace) &&
		slices.Contains(distinct, Two) &&
		slices.Contains(distinct, Three) &&
		slices.Contains(distinct, Four) &&
		slices.Contains(distinct, Five) {
		return Five, true
	}
	return 0, false
}

// isRun reports whether each rank in window (highest first) sits directly
// above the next one.
func isRun(window []Rank) bool {
	for i := 0; i+1 < len(window); i++ {
		if !window[i+1].Precedes(window[i]) {
			return false
		}
	}
	return true
}

func descending(a, b Rank) int {
	return int(b) - int(a)
}
