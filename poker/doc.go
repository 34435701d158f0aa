// Package poker evaluates sets of playing cards and ranks the resulting hands.
//
// # Evaluation
//
// Evaluate takes five or more cards (usually two hole cards plus the board)
// and returns the best Combination they contain. Detectors for the ten
// categories run strongest first and the first match wins:
//
//	RoyalFlush > StraightFlush > FourOfAKind > FullHouse > Flush >
//	Straight > ThreeOfAKind > TwoPairs > Pair > HighCard
//
// Combinations are ordered with Compare: category first, then the ranks the
// category carries. Runs use non-wrapping rank adjacency, with A-2-3-4-5
// accepted as a Five-high straight.
//
// # Dealing
//
// Deck draws uniformly at random without replacement from an injected
// *rand.Rand, so tests can deal reproducibly. Showdown evaluates several
// players against a shared board and reports every player tied for best.
//
// Everything in this package except Deck is immutable and safe for
// concurrent use.
package poker
