// Package reorder sequences cards by drag and drop, independent of their
// spatial geometry.
//
// A [Controller] keeps a working order seeded from the externally supplied
// card list. A reorder gesture moves the dragged id to the drop target's
// position and hands back the full card sequence in the new order; the owner
// of the card list is expected to adopt it and call [Controller.Sync] again.
package reorder

import (
	"slices"

	"github.com/matzehuels/deck/pkg/card"
)

// Controller tracks the working order and an in-progress reorder gesture.
// The zero value is ready to use.
type Controller struct {
	order   []string
	cards   map[string]card.Card
	dragged string
	over    string
}

// Sync reseeds the working order from cards and drops any gesture whose
// dragged id disappeared.
func (c *Controller) Sync(cards []card.Card) {
	c.order = c.order[:0]
	c.cards = make(map[string]card.Card, len(cards))
	for _, cd := range cards {
		if _, dup := c.cards[cd.ID]; dup {
			continue
		}
		c.order = append(c.order, cd.ID)
		c.cards[cd.ID] = cd
	}
	if _, ok := c.cards[c.dragged]; !ok {
		c.dragged, c.over = "", ""
	}
}

// Order returns a copy of the working order.
func (c *Controller) Order() []string { return slices.Clone(c.order) }

// Start begins a reorder gesture for id. Unknown ids are ignored.
func (c *Controller) Start(id string) bool {
	if _, ok := c.cards[id]; !ok {
		return false
	}
	c.dragged, c.over = id, ""
	return true
}

// Over records the card currently under the dragged one, for drop-target
// highlighting.
func (c *Controller) Over(id string) {
	if c.dragged == "" {
		return
	}
	if _, ok := c.cards[id]; ok {
		c.over = id
	}
}

// Dragging returns the dragged id and the current drop target.
func (c *Controller) Dragging() (dragged, over string) { return c.dragged, c.over }

// Cancel abandons the gesture without changing the order.
func (c *Controller) Cancel() { c.dragged, c.over = "", "" }

// Drop completes the gesture onto target. It returns the reordered cards and
// true when the order changed.
func (c *Controller) Drop(target string) ([]card.Card, bool) {
	dragged := c.dragged
	c.Cancel()
	return c.Move(dragged, target)
}

// Move places dragged at target's index in the working order. It is a no-op
// returning false when the ids are equal or either id is unknown.
func (c *Controller) Move(dragged, target string) ([]card.Card, bool) {
	if dragged == target {
		return nil, false
	}
	from := slices.Index(c.order, dragged)
	to := slices.Index(c.order, target)
	if from < 0 || to < 0 {
		return nil, false
	}
	c.order = slices.Delete(c.order, from, from+1)
	c.order = slices.Insert(c.order, to, dragged)
	return c.Cards(), true
}

// Cards returns the full card sequence in working order.
func (c *Controller) Cards() []card.Card {
	out := make([]card.Card, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.cards[id])
	}
	return out
}
