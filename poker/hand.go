package poker

// Hole is a player's two private cards.
type Hole [2]Card

// DealHole draws two cards for a player.
func DealHole(d *Deck) (Hole, bool) {
	var h Hole
	for i := range h {
		c, ok := d.Draw()
		if !ok {
			return Hole{}, false
		}
		h[i] = c
	}
	return h, true
}

// Cards returns the hole cards as a slice.
func (h Hole) Cards() []Card {
	return []Card{h[0], h[1]}
}

func (h Hole) String() string {
	return FormatCards(h[:])
}

// Board holds the five community cards: flop, turn and river.
type Board [5]Card

// DealBoard draws the five community cards.
func DealBoard(d *Deck) (Board, bool) {
	var b Board
	for i := range b {
		c, ok := d.Draw()
		if !ok {
			return Board{}, false
		}
		b[i] = c
	}
	return b, true
}

// Flop returns the first three community cards.
func (b Board) Flop() [3]Card {
	return [3]Card{b[0], b[1], b[2]}
}

// Turn returns the fourth community card.
func (b Board) Turn() Card {
	return b[3]
}

// River returns the fifth community card.
func (b Board) River() Card {
	return b[4]
}

// Cards returns the community cards as a slice.
func (b Board) Cards() []Card {
	return b[:]
}

func (b Board) String() string {
	return FormatCards(b[:])
}

// With returns the hole cards followed by the board, ready for Evaluate.
func (h Hole) With(board []Card) []Card {
	cards := make([]Card, 0, len(h)+len(board))
	cards = append(cards, h[:]...)
	return append(cards, board...)
}
