package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/internal/table"
)

// DealCmd deals complete hands to a table and reports each showdown.
type DealCmd struct {
	Players []string `short:"p" sep:"," help:"Comma separated player names (overrides config)"`
	Hands   int      `short:"n" help:"Number of hands to deal (overrides config)"`
	Button  int      `help:"Seat index holding the dealer button for the first hand"`
	History string   `help:"Write a JSON hand history to this file (overrides config)"`
}

func (cmd *DealCmd) Run(a *app) error {
	players := a.cfg.Table.Players
	if len(cmd.Players) > 0 {
		players = cmd.Players
	}
	hands := a.cfg.Table.Hands
	if cmd.Hands > 0 {
		hands = cmd.Hands
	}
	history := a.cfg.Table.History
	if cmd.History != "" {
		history = cmd.History
	}

	seed, err := a.seed()
	if err != nil {
		return err
	}

	tbl, err := table.New(randutil.New(seed), players, cmd.Button,
		table.WithLogger(a.logger), table.WithClock(a.clock))
	if err != nil {
		return err
	}

	results, err := tbl.PlayN(hands)
	if err != nil {
		return err
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		if err := printHand(a, r); err != nil {
			return err
		}
	}

	if history != "" {
		if err := table.WriteHistory(history, seed, results); err != nil {
			return err
		}
		a.logger.Info("Wrote hand history", "file", history, "hands", len(results), "seed", seed)
	}
	return nil
}

func printHand(a *app, r *table.HandResult) error {
	fmt.Fprintf(a.out, "%s %s\n", headerStyle.Render(fmt.Sprintf("Hand #%d", r.Number)), r.ID)
	fmt.Fprintf(a.out, "board  %s\n\n", prettyCards(r.Board.Cards()))

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", headerStyle.Render("player"), headerStyle.Render("hole"),
		headerStyle.Render("preflop"), headerStyle.Render("combination"))
	for _, s := range r.Seats {
		name := s.Player
		if s.Player == r.Button {
			name += " (D)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", handStyle.Render(name), prettyCards(s.Hole.Cards()),
			categoryStyle.Render(string(s.Hole.Category())), s.Combination.String())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	verb := "wins"
	if r.IsSplit() {
		verb = "split the pot"
	}
	fmt.Fprintf(a.out, "\n%s %s with %s\n", winStyle.Render(table.FormatNames(r.Winners)), verb, r.Best().String())
	return nil
}
