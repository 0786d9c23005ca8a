// Package focus keeps the focus flag and z-order of a card set consistent.
//
// The functions operate on slices of card pointers owned by the caller. They
// never allocate ids or reorder the slice; display order is the caller's.
package focus

import (
	"sort"

	"github.com/matzehuels/deck/pkg/card"
)

// Direction is a keyboard navigation step over the display order.
type Direction uint8

// Navigation directions.
const (
	Prev Direction = iota + 1
	Next
	First
	Last
)

// Set marks the card with id as the only focused card. When raise is true
// the card's z-index is lifted above every other card. It returns false, and
// changes nothing, when no card has that id.
func Set(cards []*card.Card, id string, raise bool) bool {
	target := find(cards, id)
	if target == nil {
		return false
	}
	for _, c := range cards {
		c.Focused = c == target
	}
	if raise {
		Raise(cards, target)
	}
	return true
}

// Raise lifts c above every other card in cards. A card already strictly on
// top keeps its z-index.
func Raise(cards []*card.Card, c *card.Card) {
	top := MaxZ(cards, c)
	if c.ZIndex <= top {
		c.ZIndex = top + 1
	}
}

// Clear unfocuses every card.
func Clear(cards []*card.Card) {
	for _, c := range cards {
		c.Focused = false
	}
}

// Focused returns the id of the focused card, or "".
func Focused(cards []*card.Card) string {
	for _, c := range cards {
		if c.Focused {
			return c.ID
		}
	}
	return ""
}

// MaxZ returns the highest z-index among cards, ignoring skip.
func MaxZ(cards []*card.Card, skip *card.Card) int {
	top := 0
	for _, c := range cards {
		if c != skip && c.ZIndex > top {
			top = c.ZIndex
		}
	}
	return top
}

// Normalize rewrites z-indexes to 1..n preserving their relative order.
// Ties are broken by slice position, and the focused card always ends on top.
func Normalize(cards []*card.Card) {
	sorted := make([]*card.Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Focused != sorted[j].Focused {
			return !sorted[i].Focused
		}
		return sorted[i].ZIndex < sorted[j].ZIndex
	})
	for i, c := range sorted {
		c.ZIndex = i + 1
	}
}

// Navigate returns the id reached by stepping dir from current over order.
// Prev and Next wrap around. An unknown or empty current starts from the
// first id for Next and the last for Prev. An empty order returns "".
func Navigate(order []string, current string, dir Direction) string {
	n := len(order)
	if n == 0 {
		return ""
	}
	idx := -1
	for i, id := range order {
		if id == current {
			idx = i
			break
		}
	}
	switch dir {
	case First:
		return order[0]
	case Last:
		return order[n-1]
	case Next:
		if idx < 0 {
			return order[0]
		}
		return order[(idx+1)%n]
	case Prev:
		if idx < 0 {
			return order[n-1]
		}
		return order[(idx-1+n)%n]
	}
	return current
}

func find(cards []*card.Card, id string) *card.Card {
	for _, c := range cards {
		if c.ID == id {
			return c
		}
	}
	return nil
}
