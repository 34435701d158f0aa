package poker

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. Suits carry no ranking; the numeric value is
// only used to index fixed-size per-suit tables.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// NumSuits is the number of suits in a standard deck.
const NumSuits = 4

// AllSuits lists every suit in declaration order.
var AllSuits = [NumSuits]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the name of the suit (e.g. "Hearts").
func (s Suit) String() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	default:
		return "?"
	}
}

// Symbol returns the glyph for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Letter returns the lower-case notation letter for the suit.
func (s Suit) Letter() byte {
	switch s {
	case Spades:
		return 's'
	case Hearts:
		return 'h'
	case Diamonds:
		return 'd'
	case Clubs:
		return 'c'
	default:
		return '?'
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s < NumSuits
}

// Rank represents a card rank. Ranks are totally ordered by their numeric
// value, Two lowest and Ace highest.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks.
const NumRanks = 13

// AllRanks lists every rank from lowest to highest.
var AllRanks = [NumRanks]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankNames = [...]string{
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

const rankLetters = "23456789TJQKA"

// String returns the name of the rank (e.g. "Queen").
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankNames[r]
}

// Plural returns the plural name of the rank ("Sixes", "Eights").
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}
	return r.String() + "s"
}

// Letter returns the notation character for the rank ('2'-'9', 'T', 'J', 'Q', 'K', 'A').
func (r Rank) Letter() byte {
	if !r.Valid() {
		return '?'
	}
	return rankLetters[r-Two]
}

// Valid reports whether r is between Two and Ace.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Next returns the rank immediately above r. Adjacency does not wrap: Ace has
// no successor.
func (r Rank) Next() (Rank, bool) {
	if !r.Valid() || r == Ace {
		return 0, false
	}
	return r + 1, true
}

// Prev returns the rank immediately below r. Two has no predecessor.
func (r Rank) Prev() (Rank, bool) {
	if !r.Valid() || r == Two {
		return 0, false
	}
	return r - 1, true
}

// Precedes reports whether next is the rank directly above r.
func (r Rank) Precedes(next Rank) bool {
	n, ok := r.Next()
	return ok && n == next
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the long form of the card, e.g. "Queen of Hearts".
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Short returns the two-character notation of the card, e.g. "Qh".
func (c Card) Short() string {
	return string([]byte{c.Rank.Letter(), c.Suit.Letter()})
}

// Pretty returns the rank letter followed by the suit glyph, e.g. "Q♥".
func (c Card) Pretty() string {
	return string(c.Rank.Letter()) + c.Suit.Symbol()
}

// Valid reports whether both the suit and rank are in range.
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// FormatCards joins the short form of each card with single spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Short()
	}
	return strings.Join(parts, " ")
}
