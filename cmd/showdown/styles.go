package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/showdown/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	redSuit = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// prettyCards renders cards with suit symbols, hearts and diamonds in red.
func prettyCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		s := c.Pretty()
		if c.Suit.IsRed() {
			s = redSuit.Render(s)
		}
		parts[i] = s
	}
	return strings.Join(parts, " ")
}
