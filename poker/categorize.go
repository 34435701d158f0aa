package poker

// HoleCategory represents the preflop strength bucket of a pair of hole cards.
type HoleCategory string

const (
	CategoryPremium HoleCategory = "Premium"
	CategoryStrong  HoleCategory = "Strong"
	CategoryMedium  HoleCategory = "Medium"
	CategoryWeak    HoleCategory = "Weak"
	CategoryTrash   HoleCategory = "Trash"
	CategoryUnknown HoleCategory = "Unknown"
)

// Category provides a simple preflop hand categorization.
// Categories: Premium (JJ+, AK), Strong (TT, AQ/AJ), Medium (77-99, suited broadway),
// Weak (small pairs, suited connectors), Trash (everything else).
func (h Hole) Category() HoleCategory {
	if !h[0].Valid() || !h[1].Valid() {
		return CategoryUnknown
	}

	small, big := h[0].Rank, h[1].Rank
	if small > big {
		small, big = big, small
	}
	suited := h[0].Suit == h[1].Suit
	isPair := small == big

	switch {
	case isPair && small >= Jack, small == King && big == Ace:
		return CategoryPremium
	case isPair && small == Ten, big == Ace && (small == Queen || small == Jack):
		return CategoryStrong
	case isPair && small >= Seven, suited && small >= Ten:
		return CategoryMedium
	case isPair, suited && big-small <= 2:
		return CategoryWeak
	default:
		return CategoryTrash
	}
}
