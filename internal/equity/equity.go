// Package equity estimates showdown odds for known hole cards by dealing out
// the rest of the board many times.
package equity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"runtime"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/poker"
)

const (
	// DefaultIterations is used when Calculator.Iterations is unset.
	DefaultIterations = 100000
	// MaxWorkers caps the default worker count.
	MaxWorkers = 8

	boardSize = len(poker.Board{})
	holeSize  = len(poker.Hole{})

	// how often workers check for cancellation
	checkEvery = 1024
)

var (
	ErrInvalidHand   = errors.New("invalid hand")
	ErrDuplicateCard = errors.New("duplicate card")
)

// Calculator runs Monte Carlo showdowns. The zero value is usable. Results
// are reproducible for a fixed Seed and Workers.
type Calculator struct {
	Iterations int
	Workers    int
	Seed       int64
	Clock      quartz.Clock
	Logger     *log.Logger
}

// PlayerStats accumulates one player's outcomes.
type PlayerStats struct {
	Hole       poker.Hole
	Wins       int
	Ties       int
	Share      float64 // pots won, with split pots counted fractionally
	Categories [poker.NumCategories]int
}

func (s *PlayerStats) add(o *PlayerStats) {
	s.Wins += o.Wins
	s.Ties += o.Ties
	s.Share += o.Share
	for i, n := range o.Categories {
		s.Categories[i] += n
	}
}

// Report is the outcome of a calculation.
type Report struct {
	Players    []PlayerStats
	Board      []poker.Card
	Iterations int
	Elapsed    time.Duration
}

// WinPct returns how often player i won outright, in percent.
func (r *Report) WinPct(i int) float64 {
	return r.pct(r.Players[i].Wins)
}

// TiePct returns how often player i split the pot, in percent.
func (r *Report) TiePct(i int) float64 {
	return r.pct(r.Players[i].Ties)
}

// CategoryPct returns how often player i finished with category c.
func (r *Report) CategoryPct(i int, c poker.Category) float64 {
	return r.pct(r.Players[i].Categories[c])
}

// Equity returns player i's expected share of the pot in [0, 1].
func (r *Report) Equity(i int) float64 {
	if r.Iterations == 0 {
		return 0
	}
	return r.Players[i].Share / float64(r.Iterations)
}

// Margin95 returns the half-width of the 95% confidence interval for
// Equity(i), using the normal approximation.
func (r *Report) Margin95(i int) float64 {
	if r.Iterations < 2 {
		return 0
	}
	p := r.Equity(i)
	return 1.96 * math.Sqrt(p*(1-p)/float64(r.Iterations))
}

func (r *Report) pct(n int) float64 {
	if r.Iterations == 0 {
		return 0
	}
	return float64(n) / float64(r.Iterations) * 100
}

// Calculate deals the missing board cards c.Iterations times and records
// how each hole fares at showdown.
func (c *Calculator) Calculate(ctx context.Context, holes [][]poker.Card, board []poker.Card) (*Report, error) {
	known, err := validate(holes, board)
	if err != nil {
		return nil, err
	}

	clock := c.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := c.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	iterations := c.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	if len(board) == boardSize {
		// Nothing left to deal: a single showdown is exact.
		iterations = 1
	}
	workers := c.Workers
	if workers <= 0 {
		workers = min(runtime.NumCPU(), MaxWorkers)
	}
	workers = min(workers, iterations)

	start := clock.Now()
	partials := make([][]PlayerStats, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := iterations / workers
		if w < iterations%workers {
			n++
		}
		g.Go(func() error {
			stats, err := simulate(ctx, randutil.Derive(c.Seed, w), holes, board, known, n)
			partials[w] = stats
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Players:    make([]PlayerStats, len(holes)),
		Board:      append([]poker.Card(nil), board...),
		Iterations: iterations,
		Elapsed:    clock.Since(start),
	}
	for i := range report.Players {
		report.Players[i].Hole = poker.Hole{holes[i][0], holes[i][1]}
		for _, p := range partials {
			report.Players[i].add(&p[i])
		}
	}

	logger.Debug("Equity calculated", "players", len(holes), "board", poker.FormatCards(board),
		"iterations", iterations, "workers", workers, "elapsed", report.Elapsed)
	return report, nil
}

func simulate(ctx context.Context, rng *rand.Rand, holes [][]poker.Card, board, known []poker.Card, iterations int) ([]PlayerStats, error) {
	stats := make([]PlayerStats, len(holes))
	combos := make([]poker.Combination, len(holes))
	cards := make([]poker.Card, holeSize+boardSize)
	full := make([]poker.Card, boardSize)
	copy(full, board)

	remaining := remainingCards(known)

	for iter := 0; iter < iterations; iter++ {
		if iter%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		// Partial Fisher-Yates over the unseen cards.
		for k := len(board); k < boardSize; k++ {
			j := k - len(board)
			r := j + rng.IntN(len(remaining)-j)
			remaining[j], remaining[r] = remaining[r], remaining[j]
			full[k] = remaining[j]
		}

		for i, hole := range holes {
			copy(cards, hole)
			copy(cards[holeSize:], full)
			combo, err := poker.Evaluate(cards)
			if err != nil {
				return nil, fmt.Errorf("player %d: %w", i, err)
			}
			combos[i] = combo
			stats[i].Categories[combo.Category]++
		}

		winners := poker.Winners(combos)
		for _, w := range winners {
			if len(winners) == 1 {
				stats[w].Wins++
			} else {
				stats[w].Ties++
			}
			stats[w].Share += 1 / float64(len(winners))
		}
	}
	return stats, nil
}

func remainingCards(known []poker.Card) []poker.Card {
	cards := make([]poker.Card, 0, poker.DeckSize-len(known))
	for _, suit := range poker.AllSuits {
		for _, rank := range poker.AllRanks {
			if c := poker.NewCard(suit, rank); !slices.Contains(known, c) {
				cards = append(cards, c)
			}
		}
	}
	return cards
}

func validate(holes [][]poker.Card, board []poker.Card) ([]poker.Card, error) {
	if len(holes) == 0 {
		return nil, poker.ErrNoPlayers
	}
	if len(board) > boardSize {
		return nil, fmt.Errorf("%w: board has %d cards, at most %d allowed", ErrInvalidHand, len(board), boardSize)
	}

	known := make([]poker.Card, 0, len(holes)*holeSize+len(board))
	for i, hole := range holes {
		if len(hole) != holeSize {
			return nil, fmt.Errorf("%w: player %d has %d cards, want %d", ErrInvalidHand, i, len(hole), holeSize)
		}
		known = append(known, hole...)
	}
	known = append(known, board...)

	if len(known)-len(board)+boardSize > poker.DeckSize {
		return nil, fmt.Errorf("%w: too many players for one deck", ErrInvalidHand)
	}

	seen := make(map[poker.Card]bool, len(known))
	for _, c := range known {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: suit %d rank %d", poker.ErrInvalidCard, c.Suit, c.Rank)
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, c.Short())
		}
		seen[c] = true
	}
	return known, nil
}
