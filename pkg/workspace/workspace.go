package workspace

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/deck/pkg/arrange"
	"github.com/matzehuels/deck/pkg/card"
	"github.com/matzehuels/deck/pkg/geom"
	"github.com/matzehuels/deck/pkg/gesture"
	"github.com/matzehuels/deck/pkg/observability"
	"github.com/matzehuels/deck/pkg/reorder"
	"github.com/matzehuels/deck/pkg/snap"
)

// DuplicatePolicy decides what happens when a card id is supplied twice.
type DuplicatePolicy string

const (
	// DuplicateReplace keeps the last record supplied for an id.
	DuplicateReplace DuplicatePolicy = "replace"
	// DuplicateReject keeps the first record and reports the duplicate.
	DuplicateReject DuplicatePolicy = "reject"
)

// Options configures a Workspace.
type Options struct {
	Bounds     geom.Bounds
	Sizes      card.SizeTable
	Snap       snap.Config
	Arrange    arrange.Options
	Mode       arrange.Mode
	Duplicates DuplicatePolicy

	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
	// Now stamps CreatedAt and UpdatedAt. Nil uses time.Now.
	Now func() time.Time
}

// DefaultOptions returns options for a free-position workspace with the
// stock card sizes, snapping and arrangement tuning.
func DefaultOptions() Options {
	return Options{
		Bounds:     geom.Bounds{Padding: geom.Uniform(16)},
		Sizes:      card.DefaultSizes(),
		Snap:       snap.DefaultConfig(),
		Arrange:    arrange.DefaultOptions(),
		Mode:       arrange.ModeFree,
		Duplicates: DuplicateReplace,
	}
}

// Workspace is the card store. Create one with New.
type Workspace struct {
	opts   Options
	logger *log.Logger
	now    func() time.Time

	cards   map[string]*card.Card
	order   []string
	closed  map[string]struct{}
	focused string
	mode    arrange.Mode
	bounds  geom.Bounds
	editing string

	drag         *gesture.Drag
	resize       *gesture.Resize
	reorder      reorder.Controller
	guides       []snap.Guide
	snapEdges    card.SnapEdge
	gestureStart time.Time

	subs    map[int]func(Event)
	nextSub int
}

// New returns an empty workspace.
func New(opts Options) *Workspace {
	if opts.Sizes == nil {
		opts.Sizes = card.DefaultSizes()
	}
	if opts.Duplicates == "" {
		opts.Duplicates = DuplicateReplace
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	w := &Workspace{
		opts:   opts,
		logger: logger,
		now:    now,
		cards:  make(map[string]*card.Card),
		closed: make(map[string]struct{}),
		mode:   opts.Mode,
		bounds: opts.Bounds,
		subs:   make(map[int]func(Event)),
	}
	s := sink{w}
	w.drag = gesture.NewDrag(s, s)
	w.resize = gesture.NewResize(s)
	return w
}

// Len returns the number of cards.
func (w *Workspace) Len() int { return len(w.order) }

// Card returns a copy of the card with id.
func (w *Workspace) Card(id string) (card.Card, bool) {
	c, ok := w.cards[id]
	if !ok {
		return card.Card{}, false
	}
	return c.Clone(), true
}

// Snapshot returns copies of all cards in display order.
func (w *Workspace) Snapshot() []card.Card {
	out := make([]card.Card, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.cards[id].Clone())
	}
	return out
}

// Order returns the display order.
func (w *Workspace) Order() []string { return slices.Clone(w.order) }

// Focused returns the focused card id, or "" when no card has focus.
func (w *Workspace) Focused() string { return w.focused }

// Mode returns the arrangement mode.
func (w *Workspace) Mode() arrange.Mode { return w.mode }

// Bounds returns the viewport and padding.
func (w *Workspace) Bounds() geom.Bounds { return w.bounds }

// Area returns the rectangle cards may occupy.
func (w *Workspace) Area() geom.Rect { return w.bounds.Area() }

// Sizes returns the card size table in use.
func (w *Workspace) Sizes() card.SizeTable { return w.opts.Sizes }

// Guides returns the snap guides of the active drag.
func (w *Workspace) Guides() []snap.Guide { return slices.Clone(w.guides) }

// Closed reports whether id was closed in this workspace.
func (w *Workspace) Closed(id string) bool {
	_, ok := w.closed[id]
	return ok
}

// Dragging returns the id of the card being dragged, or "".
func (w *Workspace) Dragging() string { return w.drag.ID() }

// Resizing returns the id of the card being resized, or "".
func (w *Workspace) Resizing() string { return w.resize.ID() }

// DragScope reports where the host should listen for the active drag.
func (w *Workspace) DragScope() gesture.Scope { return w.drag.Scope() }

// DropTarget returns the card currently hovered by a layout-managed drag.
func (w *Workspace) DropTarget() string {
	_, over := w.reorder.Dragging()
	return over
}

// DragOffset returns the pointer offset of the active drag. Hosts use it to
// draw layout-managed drags, which do not move the card.
func (w *Workspace) DragOffset() geom.Point { return w.drag.Last().Offset }

// Layout computes the visual transform of every card for the current mode.
func (w *Workspace) Layout() []arrange.Transform {
	return w.LayoutFor(w.mode)
}

// LayoutFor computes transforms for mode without switching to it.
func (w *Workspace) LayoutFor(mode arrange.Mode) []arrange.Transform {
	start := time.Now()
	ctx := arrange.Context{Mode: mode, Area: w.Area(), Options: w.opts.Arrange}
	out := arrange.Arrange(ctx, w.Snapshot(), w.focused)
	observability.Layout().OnArrange(mode.String(), len(out), time.Since(start))
	return out
}

// Subscribe registers fn to be called after every change. The returned func
// removes the subscription and may be called more than once.
func (w *Workspace) Subscribe(fn func(Event)) (unsubscribe func()) {
	id := w.nextSub
	w.nextSub++
	w.subs[id] = fn
	return func() { delete(w.subs, id) }
}

func (w *Workspace) emit(kind EventKind, id string) {
	if len(w.subs) == 0 {
		return
	}
	ev := Event{Kind: kind, CardID: id, Mode: w.mode}
	keys := make([]int, 0, len(w.subs))
	for k := range w.subs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if fn, ok := w.subs[k]; ok {
			fn(ev)
		}
	}
}

// ptrs returns the cards in display order.
func (w *Workspace) ptrs() []*card.Card {
	out := make([]*card.Card, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.cards[id])
	}
	return out
}

func (w *Workspace) minSize(c *card.Card) geom.Size { return w.opts.Sizes.Min(c.Type) }
