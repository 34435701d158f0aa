package poker

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = NumSuits * NumRanks

// Deck is a standard 52-card deck that hands out cards uniformly at random
// without replacement. A Deck is not safe for concurrent use.
type Deck struct {
	cards []Card
	rng   *rand.Rand // Random source for deterministic dealing
}

// NewDeck creates a full deck drawing from rng. A nil rng falls back to an
// unseeded source.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	d.Reset()
	return d
}

// Reset restores all 52 cards to the deck.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for _, suit := range AllSuits {
		for _, rank := range AllRanks {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
}

// Draw removes and returns a card chosen uniformly at random from the cards
// that remain. It reports false once the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, false
	}

	i := d.rng.IntN(n)
	card := d.cards[i]
	d.cards[i] = d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card, true
}

// DrawN draws n cards. Nothing is drawn if fewer than n cards remain.
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d cards, %d remain", ErrDeckExhausted, n, len(d.cards))
	}

	cards := make([]Card, n)
	for i := range cards {
		cards[i], _ = d.Draw()
	}
	return cards, nil
}

// Remove takes the given cards out of the deck, typically because they are
// already known to be dealt. It returns how many were actually present.
func (d *Deck) Remove(cards ...Card) int {
	removed := 0
	for _, c := range cards {
		if i := slices.Index(d.cards, c); i >= 0 {
			last := len(d.cards) - 1
			d.cards[i] = d.cards[last]
			d.cards = d.cards[:last]
			removed++
		}
	}
	return removed
}

// Contains reports whether card is still in the deck.
func (d *Deck) Contains(card Card) bool {
	return slices.Contains(d.cards, card)
}

// Len returns the number of cards left in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}
