package poker

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		expected Combination
	}{
		{"Royal Flush", "4cJhKh3sAhQhTh", RoyalFlushOf()},
		{"Straight Flush", "8hJh9h3sAsQhTh", StraightFlushOf(Queen)},
		{"Four of a Kind", "8c8h9c8d4c9d8s", FourOfAKindOf(Eight, Nine)},
		{"Full House", "8c8h9c8d4c9d7h", FullHouseOf(Eight)},
		{"Flush", "8c3h9c2d4c6c7c", FlushOf(Nine, Eight, Seven, Six, Four)},
		{"Straight", "8c9h7s9d5h6d3h", StraightOf(Nine)},
		{"Three of a Kind", "8c8h8s9d4h6d3h", ThreeOfAKindOf(Eight, Nine)},
		{"Two Pairs", "8c3h9s9d4h6d8h", TwoPairsOf(Nine, Eight, Six)},
		{"Pair", "8c3h9s2d4h6d8h", PairOf(Eight, Nine)},
		{"High Card", "8c3h9s2d4h6d7c", HighCardOf(Nine, Eight, Seven, Six, Four)},

		{"Wheel", "Ah2c3d4s5h9cKd", StraightOf(Five)},
		{"Six high beats wheel", "Ah2c3d4s5h6cKd", StraightOf(Six)},
		{"Steel wheel", "As2s3s4s5sKhKd", StraightFlushOf(Five)},
		{"Broadway straight", "AhKcQdJsTh2c3d", StraightOf(Ace)},
		{"No wraparound straight", "QhKcAd2s3h8c9d", HighCardOf(Ace, King, Queen, Nine, Eight)},
		{"Duplicate rank inside run", "9h8c8d7s6h5c2d", StraightOf(Nine)},
		{"Two trips make a full house", "8c8h8s9d9h9c2d", FullHouseOf(Nine)},
		{"Three pairs keeps best two", "KcKh8s8d4h4c2d", TwoPairsOf(King, Eight, Four)},
		{"Quads kicker from a pair", "7c7h7s7d9h9c2d", FourOfAKindOf(Seven, Nine)},
		{"Flush beats straight", "2h4h6h8h9hTc7d", FlushOf(Nine, Eight, Six, Four, Two)},
		{"Six card flush keeps top five", "2h4h6h8h9hKhTc", FlushOf(King, Nine, Eight, Six, Four)},
		{"Full house beats flush", "2h4h8h9hKh8c8d2c", FullHouseOf(Eight)},
		{"Straight flush below a higher straight", "5h6h7h8h9hTcJd", StraightFlushOf(Nine)},
		{"Exactly five cards", "Kh9c7d4s2h", HighCardOf(King, Nine, Seven, Four, Two)},
		{"Two flush suits keep the straight flush", "2h3h4h5h6hAsKsQsJs9s", StraightFlushOf(Six)},
		{"Two flush suits keep the higher flush", "2h4h6h8hThAsKs9s7s3s", FlushOf(Ace, King, Nine, Seven, Three)},
		{"Repeated card has no quads kicker", "AsAsAsAsAs", FlushOf(Ace, Ace, Ace, Ace, Ace)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Evaluate(MustParseCards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got, "got %s, want %s", got, tt.expected)
		})
	}
}

func TestDetectors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		find  func([]Card) (Combination, bool)
		cards string
		want  Combination
		ok    bool
	}{
		{"royal flush", findRoyalFlush, "4cJhKh3sAhQhTh", RoyalFlushOf(), true},
		{"royal flush absent", findRoyalFlush, "8hJh9h3sAsQhTh", Combination{}, false},
		{"straight flush", findStraightFlush, "8hJh9h3sAsQhTh", StraightFlushOf(Queen), true},
		{"four of a kind", findFourOfAKind, "8c8h9c8d4c9d8s", FourOfAKindOf(Eight, Nine), true},
		{"full house", findFullHouse, "8c8h9c8d4c9d7h", FullHouseOf(Eight), true},
		{"full house needs a pair", findFullHouse, "8c8h8d4c9d7h2s", Combination{}, false},
		{"flush", findFlush, "8c3h9c2d4c6c7c", FlushOf(Nine, Eight, Seven, Six, Four), true},
		{"straight", findStraight, "8c9h7s9d5h6d3h", StraightOf(Nine), true},
		{"three of a kind", findThreeOfAKind, "8c8h8s9d4h6d3h", ThreeOfAKindOf(Eight, Nine), true},
		{"two pairs", findTwoPairs, "8c3h9s9d4h6d8h", TwoPairsOf(Nine, Eight, Six), true},
		{"two pairs needs a second pair", findTwoPairs, "8c3h9s2d4h6d8h", Combination{}, false},
		{"pair", findPair, "8c3h9s2d4h6d8h", PairOf(Eight, Nine), true},
		{"high card", findHighCard, "8c3h9s2d4h6d7c", HighCardOf(Nine, Eight, Seven, Six, Four), true},
		{"high card too few", findHighCard, "8c3h9s2d", Combination{}, false},
		{"four of a kind needs a kicker", findFourOfAKind, "AsAsAsAsAs", Combination{}, false},
		{"three of a kind needs kickers", findThreeOfAKind, "AsAsAsAsAs", Combination{}, false},
		{"pair needs kickers", findPair, "AsAsAsAsAs", Combination{}, false},
		{"straight flush in the second flush suit", findStraightFlush, "2h3h4h5h6hAsKsQsJs9s", StraightFlushOf(Six), true},

		// Detectors do not exclude each other.
		{"pair inside a flush", findPair, "8c8h9c2c4c6c7d", PairOf(Eight, Nine), true},
		{"trips inside quads", findThreeOfAKind, "8c8h8s8d4h6d3h", ThreeOfAKindOf(Eight, Six), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tt.find(MustParseCards(tt.cards))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	t.Parallel()

	_, err := Evaluate(nil)
	require.ErrorIs(t, err, ErrTooFewCards)

	_, err = Evaluate(MustParseCards("AsKsQsJs"))
	require.ErrorIs(t, err, ErrTooFewCards)
	assert.Contains(t, err.Error(), "got 4")

	cards := MustParseCards("AsKsQsJs")
	cards = append(cards, Card{Suit: Spades, Rank: 1})
	_, err = Evaluate(cards)
	require.ErrorIs(t, err, ErrInvalidCard)

	cards[4] = Card{Suit: 7, Rank: Ten}
	_, err = Evaluate(cards)
	require.ErrorIs(t, err, ErrInvalidCard)
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("8c3h9s2d4h6d7c")
	before := append([]Card(nil), cards...)
	_, err := Evaluate(cards)
	require.NoError(t, err)
	assert.Equal(t, before, cards)
}

func TestEvaluatePermutationInvariance(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		deck := NewDeck(rng)
		n := 5 + rng.IntN(5)
		cards, err := deck.DrawN(n)
		require.NoError(t, err)

		want, err := Evaluate(cards)
		require.NoError(t, err)

		for j := 0; j < 5; j++ {
			shuffled := append([]Card(nil), cards...)
			rng.Shuffle(len(shuffled), func(a, b int) {
				shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
			})
			got, err := Evaluate(shuffled)
			require.NoError(t, err)
			require.Equal(t, want, got, "cards %s vs %s", FormatCards(cards), FormatCards(shuffled))
		}
	}
}

func TestEvaluateTwoFlushSuitsAnyOrder(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(3, 5))
	tests := []struct {
		cards    string
		expected Combination
	}{
		{"2h3h4h5h6hAsKsQsJs9s", StraightFlushOf(Six)},
		{"2h4h6h8hThAsKs9s7s3s", FlushOf(Ace, King, Nine, Seven, Three)},
	}

	for _, tt := range tests {
		cards := MustParseCards(tt.cards)
		for i := 0; i < 50; i++ {
			rng.Shuffle(len(cards), func(a, b int) {
				cards[a], cards[b] = cards[b], cards[a]
			})
			got, err := Evaluate(cards)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got, "cards %s", FormatCards(cards))
		}
	}
}

func TestEvaluateMatchesStrongestDetector(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 500; i++ {
		cards, err := NewDeck(rng).DrawN(7)
		require.NoError(t, err)

		got, err := Evaluate(cards)
		require.NoError(t, err)

		all := DetectAll(cards)
		require.NotEmpty(t, all, "high card always matches")
		assert.Equal(t, all[0], got)
		assert.Equal(t, HighCard, all[len(all)-1].Category)
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("8c8h9c2c4c6c7d")

	combo, ok := Detect(Pair, cards)
	require.True(t, ok)
	assert.Equal(t, PairOf(Eight, Nine), combo)

	_, ok = Detect(Straight, cards)
	assert.False(t, ok)

	_, ok = Detect(Pair, []Card{{Suit: 9, Rank: Two}})
	assert.False(t, ok)
	assert.Nil(t, DetectAll([]Card{{Suit: Spades, Rank: 0}}))
}

func TestEvaluateConcurrent(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("8hJh9h3sAsQhTh")

	done := make(chan Combination, 16)
	for i := 0; i < cap(done); i++ {
		go func() {
			combo, _ := Evaluate(cards)
			done <- combo
		}()
	}
	for i := 0; i < cap(done); i++ {
		assert.Equal(t, StraightFlushOf(Queen), <-done)
	}
}
