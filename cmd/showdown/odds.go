package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/lox/showdown/internal/equity"
	"github.com/lox/showdown/poker"
)

// OddsCmd estimates each hand's chance of winning by dealing out the rest of
// the board.
type OddsCmd struct {
	Hands         []string `arg:"" help:"Player hands in format 'AcKd QhJs' (space separated, quoted)"`
	Board         string   `short:"b" help:"Community board cards (e.g., 'Td7s8h')"`
	Possibilities bool     `short:"p" help:"Show detailed hand type probabilities"`
	Iterations    int      `short:"i" help:"Number of Monte Carlo iterations (overrides config)"`
	Workers       int      `short:"w" help:"Parallel workers (overrides config)"`
}

func (cmd *OddsCmd) Run(a *app) error {
	hands, err := parseHands(cmd.Hands)
	if err != nil {
		return err
	}

	var board []poker.Card
	if cmd.Board != "" {
		board, err = poker.ParseCards(cmd.Board)
		if err != nil {
			return fmt.Errorf("parsing board: %w", err)
		}
	}

	seed, err := a.seed()
	if err != nil {
		return err
	}

	calc := &equity.Calculator{
		Iterations: a.cfg.Odds.Iterations,
		Workers:    a.cfg.Odds.Workers,
		Seed:       seed,
		Clock:      a.clock,
		Logger:     a.logger,
	}
	if cmd.Iterations > 0 {
		calc.Iterations = cmd.Iterations
	}
	if cmd.Workers > 0 {
		calc.Workers = cmd.Workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := calc.Calculate(ctx, hands, board)
	if err != nil {
		return err
	}
	return displayResults(a, report, cmd.Possibilities)
}

func displayResults(a *app, report *equity.Report, showPossibilities bool) error {
	if len(report.Board) > 0 {
		fmt.Fprintf(a.out, "%s\n", headerStyle.Render("board"))
		fmt.Fprintf(a.out, "%s\n\n", prettyCards(report.Board))
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("equity"))

	for i, p := range report.Players {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			handStyle.Render(poker.FormatCards(p.Hole.Cards())),
			winStyle.Render(fmt.Sprintf("%.1f%%", report.WinPct(i))),
			tieStyle.Render(fmt.Sprintf("%.1f%%", report.TiePct(i))),
			fmt.Sprintf("%.1f%% ±%.1f", report.Equity(i)*100, report.Margin95(i)*100))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if showPossibilities {
		fmt.Fprintln(a.out)
		if err := displayPossibilities(a, report); err != nil {
			return err
		}
	}

	fmt.Fprintf(a.out, "\n%d iterations in %v\n", report.Iterations, report.Elapsed.Truncate(time.Millisecond))
	return nil
}

func displayPossibilities(a *app, report *equity.Report) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s", categoryStyle.Render("hand"))
	for _, p := range report.Players {
		fmt.Fprintf(w, "\t%s", handStyle.Render(poker.FormatCards(p.Hole.Cards())))
	}
	fmt.Fprintln(w)

	for _, category := range poker.Categories {
		seen := false
		for _, p := range report.Players {
			seen = seen || p.Categories[category] > 0
		}
		if !seen {
			continue
		}

		fmt.Fprintf(w, "%s", categoryStyle.Render(category.String()))
		for i, p := range report.Players {
			if p.Categories[category] > 0 {
				fmt.Fprintf(w, "\t%s", percentStyle.Render(fmt.Sprintf("%.1f%%", report.CategoryPct(i, category))))
			} else {
				fmt.Fprintf(w, "\t%s", percentStyle.Render("."))
			}
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
