package poker

import "errors"

var (
	// ErrTooFewCards is returned by Evaluate when fewer than MinCards cards are supplied.
	ErrTooFewCards = errors.New("too few cards to evaluate")
	// ErrInvalidCard is returned when a card has an out-of-range suit or rank,
	// or when card notation cannot be parsed.
	ErrInvalidCard = errors.New("invalid card")
	// ErrDeckExhausted is returned when more cards are requested than remain.
	ErrDeckExhausted = errors.New("deck exhausted")
	// ErrNoPlayers is returned by Showdown when there is nobody to compare.
	ErrNoPlayers = errors.New("no players at showdown")
)
