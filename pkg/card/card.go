package card

import (
	"strings"
	"time"

	"github.com/matzehuels/deck/pkg/geom"
)

// SnapEdge records which workspace edges a card was last aligned to. It is
// informational and never constrains a later move.
type SnapEdge uint8

// Snap edges. A corner is the union of two edges.
const (
	SnapLeft SnapEdge = 1 << iota
	SnapRight
	SnapTop
	SnapBottom
)

// Has reports whether all bits of o are set.
func (e SnapEdge) Has(o SnapEdge) bool { return o != 0 && e&o == o }

func (e SnapEdge) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	for _, p := range []struct {
		bit  SnapEdge
		name string
	}{{SnapTop, "top"}, {SnapBottom, "bottom"}, {SnapLeft, "left"}, {SnapRight, "right"}} {
		if e&p.bit != 0 {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, "-")
}

// Card is a positioned, resizable panel.
type Card struct {
	ID    string
	Type  Type
	Title string

	geom.Rect
	ZIndex int

	Maximized bool
	// Restore holds the geometry to return to when a maximized card is
	// restored. It is nil whenever Maximized is false.
	Restore *geom.Rect

	Focused   bool
	SnappedTo SnapEdge

	Data Payload

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a copy that shares nothing mutable with c except Data, which
// is owned by the content collaborator.
func (c Card) Clone() Card {
	if c.Restore != nil {
		r := *c.Restore
		c.Restore = &r
	}
	return c
}

// Geometry returns the card's rectangle.
func (c Card) Geometry() geom.Rect { return c.Rect }
