package gesture

import (
	"github.com/matzehuels/deck/pkg/card"
	"github.com/matzehuels/deck/pkg/geom"
	"github.com/matzehuels/deck/pkg/snap"
)

// DragSink receives the effects of a drag.
type DragSink interface {
	Focus(id string)
	Move(id string, x, y float64)
	DragEnd(id string)
}

// Snapper adjusts a proposed drag position.
type Snapper interface {
	Snap(id string, proposed geom.Rect) snap.Result
}

// DragRequest describes the pointer-down that may start a drag.
type DragRequest struct {
	Card  card.Card
	Event PointerEvent
	// Managed is true when an arrangement mode owns card placement.
	Managed bool
	// OnControl is true when the pointer went down on a header button.
	OnControl bool
	// TitleEditing is true while the card's title is being edited.
	TitleEditing bool
	// Target is the header element; it receives pointer capture in free
	// mode.
	Target CaptureTarget
}

// DragUpdate reports the outcome of one pointer move.
type DragUpdate struct {
	ID string
	// Raw is origin plus pointer delta, before snapping.
	Raw geom.Point
	// Pos is the position sent to the sink. It equals Raw unless a snap
	// applied. Layout-managed drags leave it at the card origin.
	Pos geom.Point
	// Offset is the pointer delta since Begin.
	Offset geom.Point
	Snap   snap.Result
}

// DragResult describes a finished drag.
type DragResult struct {
	ID      string
	Managed bool
	Offset  geom.Point
	// DropTarget is the card under the pointer on release, if it differs
	// from the dragged card.
	DropTarget string
	Cancelled  bool
}

// Drag is the header drag state machine. At most one drag is active at a
// time.
type Drag struct {
	sink    DragSink
	snapper Snapper

	active       bool
	managed      bool
	id           string
	pointerID    int
	pointerStart geom.Point
	origin       geom.Rect
	last         DragUpdate
	capture      Capture
}

// NewDrag returns an idle controller. snapper may be nil.
func NewDrag(sink DragSink, snapper Snapper) *Drag {
	return &Drag{sink: sink, snapper: snapper}
}

// Begin starts a drag. It refuses, returning false, while another drag is
// active, when the card is maximized, when its title is being edited, and
// when the pointer landed on a header control.
func (d *Drag) Begin(req DragRequest) bool {
	if d.active || req.Card.ID == "" || req.Card.Maximized || req.TitleEditing || req.OnControl {
		return false
	}
	d.active = true
	d.managed = req.Managed
	d.id = req.Card.ID
	d.pointerID = req.Event.PointerID
	d.pointerStart = req.Event.Point()
	d.origin = req.Card.Rect
	d.last = DragUpdate{ID: d.id, Raw: d.origin.Origin(), Pos: d.origin.Origin()}

	if !d.managed {
		// capture failure is not fatal; element-scoped events stop arriving
		// once the pointer leaves, and cancellation still cleans up
		_ = d.capture.Acquire(req.Target, req.Event.PointerID)
	}
	d.sink.Focus(d.id)
	return true
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool { return d.active }

// ID returns the dragged card id, or "" when idle.
func (d *Drag) ID() string {
	if !d.active {
		return ""
	}
	return d.id
}

// Managed reports whether the active drag is layout-managed.
func (d *Drag) Managed() bool { return d.active && d.managed }

// Scope reports where the host should listen for the active drag.
func (d *Drag) Scope() Scope {
	switch {
	case !d.active:
		return ScopeNone
	case d.managed:
		return ScopeWorkspace
	}
	return ScopeElement
}

// Captured reports whether the drag holds pointer capture.
func (d *Drag) Captured() bool { return d.capture.Held() }

// Last returns the most recent update of the active drag.
func (d *Drag) Last() DragUpdate { return d.last }

// Move applies a pointer sample. Samples from other pointers and samples
// while idle are ignored.
func (d *Drag) Move(ev PointerEvent) (DragUpdate, bool) {
	if !d.active || ev.PointerID != d.pointerID {
		return DragUpdate{}, false
	}
	delta := ev.Point().Sub(d.pointerStart)
	u := DragUpdate{
		ID:     d.id,
		Offset: delta,
		Raw:    d.origin.Origin().Add(delta),
		Pos:    d.origin.Origin(),
	}
	if d.managed {
		d.last = u
		return u, true
	}

	u.Pos = u.Raw
	if d.snapper != nil {
		u.Snap = d.snapper.Snap(d.id, d.origin.At(u.Raw))
		u.Pos = u.Snap.Pos
	}
	d.sink.Move(d.id, u.Pos.X, u.Pos.Y)
	d.last = u
	return u, true
}

// End finishes the drag at ev, applying the final position first. It
// releases capture and notifies the sink.
func (d *Drag) End(ev PointerEvent) (DragResult, bool) {
	if !d.active || ev.PointerID != d.pointerID {
		return DragResult{}, false
	}
	u, _ := d.Move(ev)
	res := DragResult{ID: d.id, Managed: d.managed, Offset: u.Offset}
	if ev.OverID != d.id {
		res.DropTarget = ev.OverID
	}
	d.finish()
	return res, true
}

// Cancel abandons the drag where it is. The card keeps its last position.
// Cancelling an idle controller does nothing.
func (d *Drag) Cancel() (DragResult, bool) {
	if !d.active {
		return DragResult{}, false
	}
	res := DragResult{ID: d.id, Managed: d.managed, Offset: d.last.Offset, Cancelled: true}
	d.finish()
	return res, true
}

// Abort drops the drag without notifying the sink. It is used when the card
// is gone.
func (d *Drag) Abort() {
	d.capture.Release()
	d.reset()
}

func (d *Drag) finish() {
	id := d.id
	d.capture.Release()
	d.reset()
	d.sink.DragEnd(id)
}

func (d *Drag) reset() {
	d.active, d.managed, d.id, d.pointerID = false, false, "", 0
	d.last = DragUpdate{}
}
