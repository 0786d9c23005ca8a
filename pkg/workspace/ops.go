package workspace

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/deck/pkg/arrange"
	"github.com/matzehuels/deck/pkg/card"
	"github.com/matzehuels/deck/pkg/errors"
	"github.com/matzehuels/deck/pkg/focus"
	"github.com/matzehuels/deck/pkg/geom"
	"github.com/matzehuels/deck/pkg/observability"
)

const (
	cascadeStep  = 32
	cascadeDepth = 8
	maxTitle     = 256
)

// ===== Collection =====

// Add inserts c at the end of the display order and focuses it. A card with
// zero size gets its type's default size, and a card with no position is
// cascaded from the top-left of the area. The geometry is then clamped.
//
// Add fails for an invalid id, for an id closed earlier, and, under
// [DuplicateReject], for an id already present. Under [DuplicateReplace] an
// existing record is overwritten in place and keeps its display position.
func (w *Workspace) Add(c card.Card) error {
	if err := errors.ValidateCardID(c.ID); err != nil {
		return err
	}
	if w.Closed(c.ID) {
		return errors.New(errors.ErrCodeCardClosed, "card %q was closed", c.ID)
	}
	prev, exists := w.cards[c.ID]
	if exists {
		if w.opts.Duplicates == DuplicateReject {
			w.logger.Debugf("rejected duplicate card %s", c.ID)
			return errors.Wrap(errors.ErrCodeDuplicateCard, &errors.DuplicateError{IDs: []string{c.ID}},
				"card %q already exists", c.ID)
		}
		w.logger.Debugf("replacing card %s", c.ID)
		c.CreatedAt = prev.CreatedAt
	}

	stored := w.prepare(c, prev, len(w.order))
	if !exists {
		w.order = append(w.order, c.ID)
	}
	w.cards[c.ID] = stored
	stored.ZIndex = focus.MaxZ(w.ptrs(), stored) + 1
	w.reorder.Sync(w.Snapshot())
	w.emit(EventAdded, c.ID)
	w.Focus(c.ID)
	return nil
}

// prepare returns a stored copy of c with defaults, timestamps and clamping
// applied. A card with neither position nor size is unplaced and gets the
// cascade position for slot. prev is the record c replaces, if any; when the
// stored state matches it, UpdatedAt is kept.
func (w *Workspace) prepare(c card.Card, prev *card.Card, slot int) *card.Card {
	cl := c.Clone()
	stored := &cl
	area := w.Area()
	if stored.Width <= 0 || stored.Height <= 0 {
		if stored.X == 0 && stored.Y == 0 {
			k := float64(slot % cascadeDepth)
			stored.X = area.X + k*cascadeStep
			stored.Y = area.Y + k*cascadeStep
		}
		def := w.opts.Sizes.Default(stored.Type)
		stored.Width, stored.Height = def.W, def.H
	}
	stored.Title = sanitizeTitle(stored.Title)
	stored.Focused = false

	switch {
	case stored.Maximized:
		if stored.Restore == nil {
			r := stored.Rect
			stored.Restore = &r
		}
		stored.Rect = area
	default:
		stored.Restore = nil
		stored.Rect = geom.Clamp(stored.Rect, w.minSize(stored), area)
	}

	now := w.now()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	if prev != nil && unchanged(prev, stored) {
		stored.UpdatedAt = prev.UpdatedAt
	} else {
		stored.UpdatedAt = now
	}
	return stored
}

// unchanged reports whether b carries the same user-visible state as a.
func unchanged(a, b *card.Card) bool {
	return a.Type == b.Type && a.Title == b.Title && a.Rect == b.Rect &&
		a.Maximized == b.Maximized && a.SnappedTo == b.SnappedTo
}

// Sync replaces the card set with cards, the collaborator's source of truth.
// Display order follows cards. Closed ids are skipped. Duplicate ids follow
// the duplicate policy; under [DuplicateReject] the first record is kept and
// the error lists the rejected ids, but the rest of the set is still
// applied. Gestures on cards that disappeared are dropped.
func (w *Workspace) Sync(cards []card.Card) error {
	next := make(map[string]*card.Card, len(cards))
	order := make([]string, 0, len(cards))
	var dups []string
	wantFocus := ""

	for _, c := range cards {
		if err := errors.ValidateCardID(c.ID); err != nil {
			w.logger.Debugf("sync: skipping card: %v", err)
			continue
		}
		if w.Closed(c.ID) {
			continue
		}
		if _, seen := next[c.ID]; seen {
			dups = append(dups, c.ID)
			if w.opts.Duplicates == DuplicateReject {
				continue
			}
		} else {
			order = append(order, c.ID)
		}
		prev := w.cards[c.ID]
		if prev != nil && c.CreatedAt.IsZero() {
			c.CreatedAt = prev.CreatedAt
		}
		stored := w.prepare(c, prev, len(next))
		next[c.ID] = stored
		if c.Focused {
			wantFocus = c.ID
		}
	}

	for id := range w.cards {
		if _, ok := next[id]; !ok {
			w.dropGestures(id)
			if w.editing == id {
				w.editing = ""
			}
		}
	}
	w.cards, w.order = next, order

	switch {
	case w.cards[w.focused] != nil:
	case wantFocus != "":
		w.focused = wantFocus
	default:
		w.focused = ""
	}
	if w.focused == "" && w.mode.RequiresFocus() && len(w.order) > 0 {
		w.focused = w.order[0]
	}
	cs := w.ptrs()
	focus.Clear(cs)
	if w.focused != "" {
		focus.Set(cs, w.focused, false)
	}
	focus.Normalize(cs)
	w.reorder.Sync(w.Snapshot())
	w.emit(EventSynced, "")

	if len(dups) > 0 {
		w.logger.Debugf("sync: %d duplicate card ids (%s)", len(dups), w.opts.Duplicates)
		if w.opts.Duplicates == DuplicateReject {
			return errors.Wrap(errors.ErrCodeDuplicateCard, &errors.DuplicateError{IDs: dups},
				"duplicate card ids")
		}
	}
	return nil
}

// Close removes the card with id. Its gestures end, nothing is focused in
// its place, and the id is never accepted again.
func (w *Workspace) Close(id string) {
	if _, ok := w.cards[id]; !ok {
		return
	}
	w.dropGestures(id)
	if w.editing == id {
		w.editing = ""
	}
	delete(w.cards, id)
	w.order = slices.DeleteFunc(w.order, func(s string) bool { return s == id })
	w.closed[id] = struct{}{}
	if w.focused == id {
		w.focused = ""
	}
	focus.Normalize(w.ptrs())
	w.reorder.Sync(w.Snapshot())
	w.logger.Debugf("closed card %s", id)
	w.emit(EventClosed, id)
}

// dropGestures silently ends any gesture on id.
func (w *Workspace) dropGestures(id string) {
	if w.drag.ID() == id {
		w.drag.Abort()
		w.reorder.Cancel()
		w.guides = nil
		w.gestureEnded(observability.GestureDrag, id, true)
		w.emit(EventDragEnd, id)
	}
	if w.resize.ID() == id {
		w.resize.Abort()
		w.gestureEnded(observability.GestureResize, id, true)
		w.emit(EventResizeEnd, id)
	}
}

// ===== Geometry =====

// Move places the card's top-left corner at (x, y), clamped to the area.
// Maximized cards do not move.
func (w *Workspace) Move(id string, x, y float64) { w.moveTo(id, x, y, 0) }

// moveTo moves the card and records the workspace edges it was snapped to.
func (w *Workspace) moveTo(id string, x, y float64, edges card.SnapEdge) {
	c := w.cards[id]
	if c == nil || c.Maximized {
		return
	}
	c.Rect = geom.Clamp(c.Rect.At(geom.Point{X: x, Y: y}), w.minSize(c), w.Area())
	c.SnappedTo = edges
	c.UpdatedAt = w.now()
	w.emit(EventMoved, id)
}

// Resize sets the card's size, keeping its top-left corner. The size is
// floored at the type minimum and capped by the area.
func (w *Workspace) Resize(id string, width, height float64) {
	c := w.cards[id]
	if c == nil {
		return
	}
	r := c.Rect
	r.Width, r.Height = width, height
	w.SetRect(id, r)
}

// SetRect replaces the card's geometry, clamped. Maximized cards keep the
// full area.
func (w *Workspace) SetRect(id string, r geom.Rect) {
	c := w.cards[id]
	if c == nil || c.Maximized {
		return
	}
	c.Rect = geom.Clamp(r, w.minSize(c), w.Area())
	c.UpdatedAt = w.now()
	w.emit(EventResized, id)
}

// MaximizeToggle fills the area with the card, or restores its previous
// geometry when it is already maximized. Maximizing focuses the card and
// ends its gestures.
func (w *Workspace) MaximizeToggle(id string) {
	c := w.cards[id]
	if c == nil {
		return
	}
	if c.Maximized {
		restore := c.Rect
		if c.Restore != nil {
			restore = *c.Restore
		}
		c.Maximized, c.Restore = false, nil
		c.Rect = geom.Clamp(restore, w.minSize(c), w.Area())
		c.UpdatedAt = w.now()
		w.emit(EventRestored, id)
		return
	}

	w.dropGestures(id)
	r := c.Rect
	c.Restore = &r
	c.Maximized = true
	c.Rect = w.Area()
	c.UpdatedAt = w.now()
	w.emit(EventMaximized, id)
	w.Focus(id)
}

// SetViewport changes the workspace size and re-fits every card.
func (w *Workspace) SetViewport(width, height float64) error {
	if err := errors.ValidateViewport(width, height); err != nil {
		return err
	}
	w.bounds.Viewport = geom.Size{W: width, H: height}
	w.refit()
	return nil
}

// SetPadding changes the workspace padding and re-fits every card.
func (w *Workspace) SetPadding(in geom.Insets) {
	w.bounds.Padding = in
	w.refit()
}

func (w *Workspace) refit() {
	area := w.Area()
	for _, c := range w.ptrs() {
		if c.Maximized {
			c.Rect = area
			continue
		}
		c.Rect = geom.Clamp(c.Rect, w.minSize(c), area)
	}
	w.emit(EventViewportChanged, "")
}

// ===== Focus =====

// Focus makes the card with id the only focused card. In free mode it is
// also raised above every other card.
func (w *Workspace) Focus(id string) {
	c := w.cards[id]
	if c == nil {
		return
	}
	cs := w.ptrs()
	z := c.ZIndex
	focus.Set(cs, id, w.mode == arrange.ModeFree)
	if w.focused == id && c.ZIndex == z {
		return
	}
	w.focused = id
	w.emit(EventFocused, id)
}

// FocusNext moves focus to the next card in display order, wrapping.
func (w *Workspace) FocusNext() { w.navigate(focus.Next) }

// FocusPrev moves focus to the previous card in display order, wrapping.
func (w *Workspace) FocusPrev() { w.navigate(focus.Prev) }

// FocusFirst focuses the first card in display order.
func (w *Workspace) FocusFirst() { w.navigate(focus.First) }

// FocusLast focuses the last card in display order.
func (w *Workspace) FocusLast() { w.navigate(focus.Last) }

func (w *Workspace) navigate(dir focus.Direction) {
	if id := focus.Navigate(w.order, w.focused, dir); id != "" {
		w.Focus(id)
	}
}

// ===== Title =====

// BeginTitleEdit marks the card's title as being edited. Header drags are
// refused until the edit ends.
func (w *Workspace) BeginTitleEdit(id string) {
	if w.cards[id] == nil {
		return
	}
	w.editing = id
}

// CancelTitleEdit ends an edit without changing the title.
func (w *Workspace) CancelTitleEdit(id string) {
	if w.editing == id {
		w.editing = ""
	}
}

// Editing returns the id of the card whose title is being edited, or "".
func (w *Workspace) Editing() string { return w.editing }

// TitleChange commits a new title and ends any edit of it. Line breaks become
// spaces and overlong titles are truncated.
func (w *Workspace) TitleChange(id, title string) {
	c := w.cards[id]
	if c == nil {
		return
	}
	if w.editing == id {
		w.editing = ""
	}
	title = sanitizeTitle(title)
	if c.Title == title {
		return
	}
	c.Title = title
	c.UpdatedAt = w.now()
	w.emit(EventTitleChanged, id)
}

func sanitizeTitle(s string) string {
	if errors.ValidateTitle(s) == nil {
		return s
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r':
			return ' '
		case '\x00':
			return -1
		}
		return r
	}, s)
	if utf8.RuneCountInString(s) > maxTitle {
		s = string([]rune(s)[:maxTitle])
	}
	return strings.TrimSpace(s)
}

// ===== Arrangement =====

// SetArrangementMode switches the arrangement. Active gestures are cancelled.
// Entering a mode that needs focus focuses the first card when none is
// focused. Unknown modes are ignored.
func (w *Workspace) SetArrangementMode(m arrange.Mode) {
	if !m.Valid() || m == w.mode {
		return
	}
	w.cancelGestures()
	from := w.mode
	w.mode = m
	if m.RequiresFocus() && w.cards[w.focused] == nil && len(w.order) > 0 {
		focus.Set(w.ptrs(), w.order[0], false)
		w.focused = w.order[0]
	}
	if m == arrange.ModeFree && w.focused != "" {
		focus.Raise(w.ptrs(), w.cards[w.focused])
	}
	w.logger.Debugf("arrangement %s -> %s", from, m)
	observability.Layout().OnModeChange(from.String(), m.String())
	w.emit(EventModeChanged, "")
}

// CycleArrangementMode advances to the next managed mode.
func (w *Workspace) CycleArrangementMode() { w.SetArrangementMode(w.mode.Next()) }

// Reorder sets the display order. ids must name every card exactly once;
// anything else is ignored.
func (w *Workspace) Reorder(ids []string) {
	if len(ids) != len(w.order) {
		return
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if w.cards[id] == nil {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
	}
	if slices.Equal(ids, w.order) {
		return
	}
	w.order = slices.Clone(ids)
	w.reorder.Sync(w.Snapshot())
	w.emit(EventReordered, "")
}
