package workspace

import (
	"time"

	"github.com/matzehuels/deck/pkg/card"
	"github.com/matzehuels/deck/pkg/focus"
	"github.com/matzehuels/deck/pkg/geom"
	"github.com/matzehuels/deck/pkg/gesture"
	"github.com/matzehuels/deck/pkg/observability"
	"github.com/matzehuels/deck/pkg/snap"
)

// TargetKind is the part of the workspace a pointer went down on.
type TargetKind uint8

// Target kinds.
const (
	// TargetWorkspace is empty workspace background.
	TargetWorkspace TargetKind = iota
	// TargetHeader is a card's title bar, which starts drags.
	TargetHeader
	// TargetControl is a button inside a header. It focuses but never drags.
	TargetControl
	// TargetHandle is one of a card's resize handles.
	TargetHandle
	// TargetBody is a card's content area.
	TargetBody
)

// Target identifies what a pointer-down hit.
type Target struct {
	Kind   TargetKind
	CardID string
	// Handle is set for TargetHandle.
	Handle geom.Handle
	// Element receives pointer capture when the gesture takes it. It may be
	// nil when the host has no capture facility.
	Element gesture.CaptureTarget
}

// Key is a navigation key name.
type Key string

// Navigation keys.
const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
)

var keyDirections = map[Key]focus.Direction{
	KeyArrowLeft:  focus.Prev,
	KeyArrowUp:    focus.Prev,
	KeyArrowRight: focus.Next,
	KeyArrowDown:  focus.Next,
	KeyHome:       focus.First,
	KeyEnd:        focus.Last,
}

// HandleKey moves focus for a navigation key and reports whether the key was
// one.
func (w *Workspace) HandleKey(k Key) bool {
	dir, ok := keyDirections[k]
	if !ok {
		return false
	}
	w.navigate(dir)
	return true
}

// ===== Pointer dispatch =====

// PointerDown routes a pointer-down and reports whether a gesture started.
// Bodies and header controls only focus their card. A resize handle starts a
// resize in free mode; a header starts a drag unless a resize already
// claimed the pointer.
func (w *Workspace) PointerDown(t Target, ev gesture.PointerEvent) bool {
	c := w.cards[t.CardID]
	if c == nil {
		return false
	}

	switch t.Kind {
	case TargetHandle:
		if w.mode.Managed() || w.drag.Active() {
			w.Focus(c.ID)
			return false
		}
		ok := w.resize.Begin(gesture.ResizeRequest{
			Card:   c.Clone(),
			Handle: t.Handle,
			Event:  ev,
			Min:    w.minSize(c),
			Area:   w.Area(),
			Target: t.Element,
		})
		if !ok {
			w.Focus(c.ID)
			return false
		}
		w.gestureStarted(observability.GestureResize, c.ID)
		w.emit(EventResizeStart, c.ID)
		return true

	case TargetHeader:
		if w.resize.Active() {
			return false
		}
		managed := w.mode.Managed()
		ok := w.drag.Begin(gesture.DragRequest{
			Card:         c.Clone(),
			Event:        ev,
			Managed:      managed,
			TitleEditing: w.editing == c.ID,
			Target:       t.Element,
		})
		if !ok {
			w.Focus(c.ID)
			return false
		}
		if managed {
			w.reorder.Start(c.ID)
		}
		w.gestureStarted(observability.GestureDrag, c.ID)
		w.emit(EventDragStart, c.ID)
		return true

	case TargetControl, TargetBody:
		w.Focus(c.ID)
	}
	return false
}

// PointerMove routes a pointer sample to the active gesture.
func (w *Workspace) PointerMove(ev gesture.PointerEvent) {
	switch {
	case w.resize.Active():
		w.resize.Move(ev)
	case w.drag.Active():
		u, ok := w.drag.Move(ev)
		if !ok || !w.drag.Managed() {
			return
		}
		if ev.OverID != "" && ev.OverID != u.ID {
			w.reorder.Over(ev.OverID)
		}
		w.emit(EventDragMove, u.ID)
	}
}

// PointerUp completes the active gesture.
func (w *Workspace) PointerUp(ev gesture.PointerEvent) {
	switch {
	case w.resize.Active():
		if res, ok := w.resize.End(ev); ok {
			w.resizeFinished(res)
		}
	case w.drag.Active():
		if res, ok := w.drag.End(ev); ok {
			w.dragFinished(res)
		}
	}
}

// PointerCancel abandons the active gesture, for example when the host lost
// the pointer. Cards keep their last geometry.
func (w *Workspace) PointerCancel(gesture.PointerEvent) { w.cancelGestures() }

// DragEnd ends the drag of the card with id, keeping its last position.
func (w *Workspace) DragEnd(id string) {
	if w.drag.ID() != id {
		return
	}
	if res, ok := w.drag.Cancel(); ok {
		w.dragFinished(res)
	}
}

// ResizeEnd ends the resize of the card with id, keeping its last geometry.
func (w *Workspace) ResizeEnd(id string) {
	if w.resize.ID() != id {
		return
	}
	if res, ok := w.resize.Cancel(); ok {
		w.resizeFinished(res)
	}
}

func (w *Workspace) cancelGestures() {
	if res, ok := w.drag.Cancel(); ok {
		w.dragFinished(res)
	}
	if res, ok := w.resize.Cancel(); ok {
		w.resizeFinished(res)
	}
}

func (w *Workspace) dragFinished(res gesture.DragResult) {
	w.guides = nil
	if res.Managed {
		switch {
		case res.Cancelled:
			w.reorder.Cancel()
		default:
			target := res.DropTarget
			if target == "" {
				_, target = w.reorder.Dragging()
			}
			if cards, ok := w.reorder.Drop(target); ok {
				w.adoptOrder(cards)
				w.gestureEnded(observability.GestureReorder, res.ID, false)
			}
		}
	}
	w.gestureEnded(observability.GestureDrag, res.ID, res.Cancelled)
	w.emit(EventDragEnd, res.ID)
}

func (w *Workspace) resizeFinished(res gesture.ResizeResult) {
	w.gestureEnded(observability.GestureResize, res.ID, res.Cancelled)
	w.emit(EventResizeEnd, res.ID)
}

// adoptOrder takes the display order from a reordered card sequence.
func (w *Workspace) adoptOrder(cards []card.Card) {
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	w.Reorder(ids)
	w.logger.Debugf("reordered: %v", ids)
}

func (w *Workspace) gestureStarted(kind, id string) {
	w.gestureStart = time.Now()
	w.logger.Debug("gesture start", "kind", kind, "card", id, "mode", w.mode)
	observability.Gesture().OnGestureStart(kind, id)
}

func (w *Workspace) gestureEnded(kind, id string, cancelled bool) {
	elapsed := time.Since(w.gestureStart)
	w.logger.Debug("gesture end", "kind", kind, "card", id, "cancelled", cancelled, "elapsed", elapsed)
	observability.Gesture().OnGestureEnd(kind, id, elapsed, cancelled)
}

// ===== Controller sink =====

// sink adapts the workspace to the gesture controllers. It is kept apart from
// the exported methods so that controller callbacks never re-enter gesture
// bookkeeping.
type sink struct{ w *Workspace }

func (s sink) Focus(id string) { s.w.Focus(id) }

func (s sink) Move(id string, x, y float64) {
	s.w.moveTo(id, x, y, s.w.snapEdges)
}

func (s sink) DragEnd(string) {
	s.w.guides = nil
	s.w.snapEdges = 0
}

func (s sink) SetRect(id string, r geom.Rect) { s.w.SetRect(id, r) }

func (s sink) ResizeEnd(string) {}

// Snap aligns a dragged card and records the guides for the host to draw.
func (s sink) Snap(id string, proposed geom.Rect) snap.Result {
	w := s.w
	res := w.computeSnap(id, proposed)
	w.guides = res.Guides
	w.snapEdges = res.Edges
	if res.Snapped() {
		observability.Gesture().OnSnap(id, len(res.Guides))
	}
	return res
}

// SnapAt reports where the card with id would settle if dragged to (x, y),
// without moving it. It returns false for an unknown id.
func (w *Workspace) SnapAt(id string, x, y float64) (snap.Result, bool) {
	c := w.cards[id]
	if c == nil {
		return snap.Result{}, false
	}
	return w.computeSnap(id, c.Rect.At(geom.Point{X: x, Y: y})), true
}

// computeSnap aligns proposed against the workspace edges, the grid and the
// other cards that are not maximized.
func (w *Workspace) computeSnap(id string, proposed geom.Rect) snap.Result {
	others := make([]geom.Rect, 0, len(w.order))
	for _, oid := range w.order {
		if c := w.cards[oid]; oid != id && !c.Maximized {
			others = append(others, c.Rect)
		}
	}
	return snap.Compute(proposed, others, w.Area(), w.opts.Snap)
}
