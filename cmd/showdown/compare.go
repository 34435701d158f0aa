package main

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/lox/showdown/internal/table"
	"github.com/lox/showdown/poker"
)

// CompareCmd settles a showdown between known hands on a complete board.
type CompareCmd struct {
	Hands []string `arg:"" help:"Player hands, e.g. 'AcKd' 'QhJs'"`
	Board string   `short:"b" required:"" help:"Community cards, e.g. 'Td7s8h2c3d'"`
	Pot   int      `help:"Pot size to split between the winners"`
}

func (cmd *CompareCmd) Run(a *app) error {
	hands, err := parseHands(cmd.Hands)
	if err != nil {
		return err
	}
	board, err := poker.ParseCards(cmd.Board)
	if err != nil {
		return fmt.Errorf("parsing board: %w", err)
	}
	if len(board) > len(poker.Board{}) {
		return fmt.Errorf("board has %d cards, at most %d allowed", len(board), len(poker.Board{}))
	}
	if err := validateNoDuplicates(hands, board); err != nil {
		return err
	}

	result, err := poker.Showdown(board, hands)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\n", headerStyle.Render("board"))
	fmt.Fprintf(a.out, "%s\n\n", prettyCards(board))

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n", headerStyle.Render("hand"), headerStyle.Render("combination"), headerStyle.Render("result"))
	for i, combo := range result.Combinations {
		outcome := ""
		switch {
		case slices.Contains(result.Winners, i) && result.IsSplit():
			outcome = tieStyle.Render("split")
		case slices.Contains(result.Winners, i):
			outcome = winStyle.Render("wins")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", handStyle.Render(poker.FormatCards(hands[i])), combo.String(), outcome)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if cmd.Pot > 0 {
		share, remainder := poker.SplitPot(cmd.Pot, len(result.Winners))
		names := make([]string, len(result.Winners))
		for i, idx := range result.Winners {
			names[i] = poker.FormatCards(hands[idx])
		}
		fmt.Fprintf(a.out, "\n%s each take %d", table.FormatNames(names), share)
		if remainder > 0 {
			fmt.Fprintf(a.out, " (%d odd chips)", remainder)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

// parseHands parses each argument as exactly two hole cards.
func parseHands(handStrings []string) ([][]poker.Card, error) {
	hands := make([][]poker.Card, 0, len(handStrings))
	for i, s := range handStrings {
		cards, err := poker.ParseCards(s)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(cards) != 2 {
			return nil, fmt.Errorf("hand %d must have exactly 2 cards, got %d", i+1, len(cards))
		}
		hands = append(hands, cards)
	}
	if len(hands) == 0 {
		return nil, poker.ErrNoPlayers
	}
	return hands, nil
}

func validateNoDuplicates(hands [][]poker.Card, board []poker.Card) error {
	seen := make(map[poker.Card]bool)
	for _, card := range board {
		if seen[card] {
			return fmt.Errorf("duplicate card on board: %s", card.Short())
		}
		seen[card] = true
	}
	for i, hand := range hands {
		for _, card := range hand {
			if seen[card] {
				return fmt.Errorf("duplicate card found in hand %d: %s", i+1, card.Short())
			}
			seen[card] = true
		}
	}
	return nil
}
