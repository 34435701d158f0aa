package table

import "strings"

// Ring is the seating order around the table. Dealing starts with the seat
// after the button and wraps around.
type Ring struct {
	ids    []string
	button int
}

// NewRing seats ids in order with the button on seat button.
func NewRing(ids []string, button int) *Ring {
	r := &Ring{ids: append([]string(nil), ids...)}
	if len(ids) > 0 {
		r.button = ((button % len(ids)) + len(ids)) % len(ids)
	}
	return r
}

// Len returns the number of seats.
func (r *Ring) Len() int {
	return len(r.ids)
}

// Button returns the ID of the player holding the dealer button.
func (r *Ring) Button() string {
	if len(r.ids) == 0 {
		return ""
	}
	return r.ids[r.button]
}

// DealOrder returns every seat starting left of the button.
func (r *Ring) DealOrder() []string {
	order := make([]string, 0, len(r.ids))
	for i := 1; i <= len(r.ids); i++ {
		order = append(order, r.ids[(r.button+i)%len(r.ids)])
	}
	return order
}

// Rotate moves the button one seat clockwise.
func (r *Ring) Rotate() {
	if len(r.ids) > 0 {
		r.button = (r.button + 1) % len(r.ids)
	}
}

// FormatNames renders names as "a", "a and b" or "a, b and c".
func FormatNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
