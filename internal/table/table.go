// Package table deals complete hands of hold'em to a ring of players and
// settles them at showdown.
package table

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/showdown/poker"
)

const (
	// MinPlayers is the smallest table that can be dealt.
	MinPlayers = 2
	// MaxPlayers is the largest table a single deck can serve.
	MaxPlayers = (poker.DeckSize - len(poker.Board{})) / len(poker.Hole{})
)

// ErrPlayerCount is returned for tables outside MinPlayers..MaxPlayers.
var ErrPlayerCount = errors.New("invalid number of players")

// Option configures a Table during creation.
type Option func(*Table)

// WithLogger sets the logger used for dealing and showdown events.
func WithLogger(logger *log.Logger) Option {
	return func(t *Table) { t.logger = logger }
}

// WithClock sets the clock used to stamp hands.
func WithClock(clock quartz.Clock) Option {
	return func(t *Table) { t.clock = clock }
}

// Table deals hands to a fixed ring of players, moving the button after
// each hand.
type Table struct {
	ring   *Ring
	rng    *rand.Rand
	deck   *poker.Deck
	clock  quartz.Clock
	logger *log.Logger
	hands  int
}

// New seats players with the button on seat button. The rng is required so
// that every deal is reproducible from its seed.
func New(rng *rand.Rand, players []string, button int, opts ...Option) (*Table, error) {
	if rng == nil {
		return nil, errors.New("rng is required")
	}
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		return nil, fmt.Errorf("%w: got %d, want %d-%d", ErrPlayerCount, len(players), MinPlayers, MaxPlayers)
	}
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if p == "" || seen[p] {
			return nil, fmt.Errorf("player names must be unique and non-empty, got %q", p)
		}
		seen[p] = true
	}

	t := &Table{
		ring:   NewRing(players, button),
		rng:    rng,
		deck:   poker.NewDeck(rng),
		clock:  quartz.NewReal(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Seat is one player's share of a finished hand.
type Seat struct {
	Player      string
	Hole        poker.Hole
	Combination poker.Combination
}

// HandResult is the outcome of a single dealt hand.
type HandResult struct {
	ID      string
	Number  int
	Time    time.Time
	Button  string
	Board   poker.Board
	Seats   []Seat // in deal order
	Winners []string
}

// IsSplit reports whether the pot was shared.
func (r *HandResult) IsSplit() bool {
	return len(r.Winners) > 1
}

// Best returns the winning combination.
func (r *HandResult) Best() poker.Combination {
	var best poker.Combination
	for i, s := range r.Seats {
		if i == 0 || s.Combination.Beats(best) {
			best = s.Combination
		}
	}
	return best
}

// Play deals one hand from a fresh deck, evaluates every player at
// showdown and rotates the button.
func (t *Table) Play() (*HandResult, error) {
	t.deck.Reset()

	now := t.clock.Now()
	order := t.ring.DealOrder()
	result := &HandResult{
		ID:     NewHandID(now, t.rng),
		Number: t.hands + 1,
		Time:   now,
		Button: t.ring.Button(),
		Seats:  make([]Seat, len(order)),
	}
	logger := t.logger.With("hand", result.Number, "id", result.ID)
	logger.Debug("Dealing hand", "button", result.Button, "players", len(order))

	// Two passes of one card each, as at a real table.
	for pass := 0; pass < len(poker.Hole{}); pass++ {
		for i, player := range order {
			card, ok := t.deck.Draw()
			if !ok {
				return nil, fmt.Errorf("dealing to %s: %w", player, poker.ErrDeckExhausted)
			}
			result.Seats[i].Player = player
			result.Seats[i].Hole[pass] = card
		}
	}

	board, ok := poker.DealBoard(t.deck)
	if !ok {
		return nil, fmt.Errorf("dealing board: %w", poker.ErrDeckExhausted)
	}
	result.Board = board
	flop := board.Flop()
	logger.Debug("Board dealt", "flop", poker.FormatCards(flop[:]),
		"turn", board.Turn().Short(), "river", board.River().Short())

	holes := make([][]poker.Card, len(result.Seats))
	for i, seat := range result.Seats {
		holes[i] = seat.Hole.Cards()
	}
	showdown, err := poker.Showdown(board.Cards(), holes)
	if err != nil {
		return nil, fmt.Errorf("showdown: %w", err)
	}

	for i, combo := range showdown.Combinations {
		result.Seats[i].Combination = combo
		logger.Debug("Player shows", "player", result.Seats[i].Player,
			"hole", result.Seats[i].Hole.String(), "combination", combo.String())
	}
	for _, w := range showdown.Winners {
		result.Winners = append(result.Winners, result.Seats[w].Player)
	}

	logger.Info("Hand complete", "winners", FormatNames(result.Winners),
		"combination", result.Best().String(), "split", result.IsSplit())

	t.hands++
	t.ring.Rotate()
	return result, nil
}

// PlayN plays n consecutive hands.
func (t *Table) PlayN(n int) ([]*HandResult, error) {
	if n <= 0 {
		return nil, fmt.Errorf("hand count must be positive, got %d", n)
	}
	results := make([]*HandResult, 0, n)
	for i := 0; i < n; i++ {
		r, err := t.Play()
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}
