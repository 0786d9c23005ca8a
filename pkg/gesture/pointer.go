package gesture

import "github.com/matzehuels/deck/pkg/geom"

// PointerEvent is one pointer sample in client coordinates.
type PointerEvent struct {
	PointerID int
	X, Y      float64
	// OverID names the card under the pointer, when the host knows it. It
	// is used as the drop target of layout-managed drags.
	OverID string
}

// Point returns the event position.
func (e PointerEvent) Point() geom.Point { return geom.Point{X: e.X, Y: e.Y} }

// CaptureTarget is a host element able to take exclusive pointer capture.
type CaptureTarget interface {
	SetPointerCapture(pointerID int) error
	ReleasePointerCapture(pointerID int) error
}

// Scope tells the host where to listen for the rest of a gesture.
type Scope uint8

const (
	// ScopeNone means no gesture is active.
	ScopeNone Scope = iota
	// ScopeElement gestures receive events through pointer capture on the
	// element that began them.
	ScopeElement
	// ScopeWorkspace gestures receive events from listeners on the
	// workspace itself.
	ScopeWorkspace
)

func (s Scope) String() string {
	switch s {
	case ScopeElement:
		return "element"
	case ScopeWorkspace:
		return "workspace"
	}
	return "none"
}

// Capture is a scoped pointer capture. The zero value holds nothing.
type Capture struct {
	target    CaptureTarget
	pointerID int
	held      bool
}

// Acquire takes capture of pointerID on target, releasing any capture held
// before. A nil target or a host error leaves nothing held and returns the
// error; the gesture can still run without capture.
func (c *Capture) Acquire(target CaptureTarget, pointerID int) error {
	c.Release()
	if target == nil {
		return nil
	}
	if err := target.SetPointerCapture(pointerID); err != nil {
		return err
	}
	c.target, c.pointerID, c.held = target, pointerID, true
	return nil
}

// Release gives capture back. It is safe to call any number of times, and
// host errors (for example, capture already lost) are ignored: the capture
// is considered released regardless.
func (c *Capture) Release() {
	if !c.held {
		return
	}
	target, id := c.target, c.pointerID
	c.target, c.pointerID, c.held = nil, 0, false
	_ = target.ReleasePointerCapture(id)
}

// Held reports whether capture is currently held.
func (c *Capture) Held() bool { return c.held }

// WithCapture runs fn while holding capture of pointerID on target and
// releases it on every return path, including a panic in fn.
func WithCapture(target CaptureTarget, pointerID int, fn func() error) error {
	var c Capture
	if err := c.Acquire(target, pointerID); err != nil {
		return err
	}
	defer c.Release()
	return fn()
}
