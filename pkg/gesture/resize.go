package gesture

import (
	"github.com/matzehuels/deck/pkg/card"
	"github.com/matzehuels/deck/pkg/geom"
)

// ResizeSink receives the effects of a resize.
type ResizeSink interface {
	Focus(id string)
	SetRect(id string, r geom.Rect)
	ResizeEnd(id string)
}

// ResizeRequest describes the pointer-down on a resize handle.
type ResizeRequest struct {
	Card   card.Card
	Handle geom.Handle
	Event  PointerEvent
	// Min is the minimum size of the card's type.
	Min geom.Size
	// Area bounds the moving edges. An empty area leaves them unbounded.
	Area geom.Rect
	// Target is the handle element; it receives pointer capture.
	Target CaptureTarget
}

// ResizeResult describes a finished resize.
type ResizeResult struct {
	ID        string
	Handle    geom.Handle
	Rect      geom.Rect
	Cancelled bool
}

// Resize is the handle resize state machine. At most one resize is active at
// a time.
type Resize struct {
	sink ResizeSink

	active       bool
	id           string
	handle       geom.Handle
	pointerID    int
	pointerStart geom.Point
	origin       geom.Rect
	min          geom.Size
	area         geom.Rect
	last         geom.Rect
	capture      Capture
}

// NewResize returns an idle controller.
func NewResize(sink ResizeSink) *Resize {
	return &Resize{sink: sink}
}

// Begin starts a resize. It refuses while another resize is active, for a
// maximized card and for an unknown handle.
func (r *Resize) Begin(req ResizeRequest) bool {
	if r.active || req.Card.ID == "" || req.Card.Maximized {
		return false
	}
	if req.Handle < geom.HandleN || req.Handle > geom.HandleSW {
		return false
	}
	r.active = true
	r.id = req.Card.ID
	r.handle = req.Handle
	r.pointerID = req.Event.PointerID
	r.pointerStart = req.Event.Point()
	r.origin = req.Card.Rect
	r.last = req.Card.Rect
	r.min = req.Min
	r.area = req.Area

	_ = r.capture.Acquire(req.Target, req.Event.PointerID)
	r.sink.Focus(r.id)
	return true
}

// Active reports whether a resize is in progress.
func (r *Resize) Active() bool { return r.active }

// ID returns the resized card id, or "" when idle.
func (r *Resize) ID() string {
	if !r.active {
		return ""
	}
	return r.id
}

// Handle returns the active handle.
func (r *Resize) Handle() geom.Handle { return r.handle }

// Captured reports whether the resize holds pointer capture.
func (r *Resize) Captured() bool { return r.capture.Held() }

// Move applies a pointer sample and returns the new rectangle.
func (r *Resize) Move(ev PointerEvent) (geom.Rect, bool) {
	if !r.active || ev.PointerID != r.pointerID {
		return geom.Rect{}, false
	}
	d := ev.Point().Sub(r.pointerStart)
	rect := geom.Resize(r.origin, r.handle, d.X, d.Y, r.min, r.area)
	r.last = rect
	r.sink.SetRect(r.id, rect)
	return rect, true
}

// End finishes the resize at ev.
func (r *Resize) End(ev PointerEvent) (ResizeResult, bool) {
	if !r.active || ev.PointerID != r.pointerID {
		return ResizeResult{}, false
	}
	rect, _ := r.Move(ev)
	res := ResizeResult{ID: r.id, Handle: r.handle, Rect: rect}
	r.finish()
	return res, true
}

// Cancel abandons the resize, keeping the last applied rectangle.
func (r *Resize) Cancel() (ResizeResult, bool) {
	if !r.active {
		return ResizeResult{}, false
	}
	res := ResizeResult{ID: r.id, Handle: r.handle, Rect: r.last, Cancelled: true}
	r.finish()
	return res, true
}

// Abort drops the resize without notifying the sink.
func (r *Resize) Abort() {
	r.capture.Release()
	r.reset()
}

func (r *Resize) finish() {
	id := r.id
	r.capture.Release()
	r.reset()
	r.sink.ResizeEnd(id)
}

func (r *Resize) reset() {
	r.active, r.id, r.handle, r.pointerID = false, "", 0, 0
}
