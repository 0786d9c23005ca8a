package io

import (
	"strings"
	"time"

	"github.com/matzehuels/deck/pkg/arrange"
	"github.com/matzehuels/deck/pkg/card"
	"github.com/matzehuels/deck/pkg/geom"
	"github.com/matzehuels/deck/pkg/workspace"
)

// Document is a serialized workspace.
type Document struct {
	Viewport geom.Size
	Padding  geom.Insets
	Mode     arrange.Mode
	Focused  string
	Cards    []card.Card
}

// Bounds returns the document's viewport and padding.
func (d *Document) Bounds() geom.Bounds {
	return geom.Bounds{Viewport: d.Viewport, Padding: d.Padding}
}

// Load builds a workspace from the document. The document's bounds and mode
// override those in opts. Cards are added through [workspace.Workspace.Sync],
// so duplicates follow opts.Duplicates and geometry is corrected as usual.
func (d *Document) Load(opts workspace.Options) (*workspace.Workspace, error) {
	opts.Bounds = d.Bounds()
	opts.Mode = d.Mode
	ws := workspace.New(opts)

	cards := make([]card.Card, len(d.Cards))
	for i, c := range d.Cards {
		c.Focused = c.ID == d.Focused
		cards[i] = c
	}
	if err := ws.Sync(cards); err != nil {
		return ws, err
	}
	if d.Focused != "" {
		ws.Focus(d.Focused)
	}
	return ws, nil
}

// FromWorkspace captures ws as a document.
func FromWorkspace(ws *workspace.Workspace) *Document {
	b := ws.Bounds()
	return &Document{
		Viewport: b.Viewport,
		Padding:  b.Padding,
		Mode:     ws.Mode(),
		Focused:  ws.Focused(),
		Cards:    ws.Snapshot(),
	}
}

type document struct {
	Viewport geom.Size   `json:"viewport"`
	Padding  geom.Insets `json:"padding"`
	Mode     string      `json:"mode,omitempty"`
	Focused  string      `json:"focused,omitempty"`
	Cards    []cardJSON  `json:"cards"`
}

type cardJSON struct {
	ID        string     `json:"id"`
	Type      card.Type  `json:"type"`
	Title     string     `json:"title,omitempty"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	ZIndex    int        `json:"z_index,omitempty"`
	Maximized bool       `json:"maximized,omitempty"`
	Restore   *geom.Rect `json:"restore,omitempty"`
	SnappedTo string     `json:"snapped_to,omitempty"`
	Payload   *payload   `json:"payload,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toJSON(c card.Card) cardJSON {
	out := cardJSON{
		ID:        c.ID,
		Type:      c.Type,
		Title:     c.Title,
		X:         c.X,
		Y:         c.Y,
		Width:     c.Width,
		Height:    c.Height,
		ZIndex:    c.ZIndex,
		Maximized: c.Maximized,
		Restore:   c.Restore,
	}
	if c.SnappedTo != 0 {
		out.SnappedTo = c.SnappedTo.String()
	}
	if c.Data != nil {
		out.Payload = &payload{Payload: c.Data}
	}
	if !c.CreatedAt.IsZero() {
		t := c.CreatedAt
		out.CreatedAt = &t
	}
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

func fromJSON(c cardJSON) card.Card {
	out := card.Card{
		ID:        c.ID,
		Type:      c.Type,
		Title:     c.Title,
		Rect:      geom.Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height},
		ZIndex:    c.ZIndex,
		Maximized: c.Maximized,
		Restore:   c.Restore,
		SnappedTo: parseSnapEdge(c.SnappedTo),
	}
	if c.Payload != nil {
		out.Data = c.Payload.Payload
	}
	if c.CreatedAt != nil {
		out.CreatedAt = *c.CreatedAt
	}
	if c.UpdatedAt != nil {
		out.UpdatedAt = *c.UpdatedAt
	}
	return out
}

var snapEdgeNames = map[string]card.SnapEdge{
	"left":   card.SnapLeft,
	"right":  card.SnapRight,
	"top":    card.SnapTop,
	"bottom": card.SnapBottom,
}

// parseSnapEdge reads the form written by [card.SnapEdge.String]. Unknown
// parts are dropped.
func parseSnapEdge(s string) card.SnapEdge {
	var e card.SnapEdge
	for _, part := range strings.Split(s, "-") {
		e |= snapEdgeNames[part]
	}
	return e
}
