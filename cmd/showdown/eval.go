package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lox/showdown/poker"
)

// EvalCmd prints the best combination available in a set of cards.
type EvalCmd struct {
	Cards []string `arg:"" help:"Cards to evaluate, e.g. 'AsKsQsJsTs' or 'As Ks Qs Js Ts'"`
	All   bool     `short:"a" help:"List every category present, not just the best"`
}

func (cmd *EvalCmd) Run(a *app) error {
	cards, err := poker.ParseCards(strings.Join(cmd.Cards, " "))
	if err != nil {
		return fmt.Errorf("parsing cards: %w", err)
	}

	best, err := poker.Evaluate(cards)
	if err != nil {
		return err
	}
	a.logger.Debug("Evaluated", "cards", poker.FormatCards(cards), "category", best.Category)

	fmt.Fprintf(a.out, "%s\n", prettyCards(cards))
	fmt.Fprintf(a.out, "%s\n", handStyle.Render(best.String()))

	if !cmd.All {
		return nil
	}

	fmt.Fprintln(a.out)
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("category"), headerStyle.Render("combination"))
	for _, combo := range poker.DetectAll(cards) {
		fmt.Fprintf(w, "%s\t%s\n", categoryStyle.Render(combo.Category.String()), combo.String())
	}
	return w.Flush()
}
