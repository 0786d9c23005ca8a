package gesture

import (
	"errors"
	"fmt"

	"github.com/matzehuels/deck/pkg/geom"
)

type recorder struct {
	calls []string
	pos   map[string]geom.Point
	rects map[string]geom.Rect
}

func newRecorder() *recorder {
	return &recorder{pos: map[string]geom.Point{}, rects: map[string]geom.Rect{}}
}

func (r *recorder) Focus(id string) { r.calls = append(r.calls, "focus:"+id) }

func (r *recorder) Move(id string, x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("move:%s:%g,%g", id, x, y))
	r.pos[id] = geom.Point{X: x, Y: y}
}

func (r *recorder) DragEnd(id string) { r.calls = append(r.calls, "dragend:"+id) }

func (r *recorder) SetRect(id string, rect geom.Rect) {
	r.calls = append(r.calls, "rect:"+id)
	r.rects[id] = rect
}

func (r *recorder) ResizeEnd(id string) { r.calls = append(r.calls, "resizeend:"+id) }

func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// element fakes a host element. Release fails when the host already dropped
// capture, like a browser throwing NotFoundError.
type element struct {
	captured  map[int]bool
	acquires  int
	releases  int
	failSet   bool
	lostByEnv bool
}

func newElement() *element { return &element{captured: map[int]bool{}} }

func (e *element) SetPointerCapture(id int) error {
	if e.failSet {
		return errors.New("invalid pointer id")
	}
	e.acquires++
	e.captured[id] = true
	return nil
}

func (e *element) ReleasePointerCapture(id int) error {
	e.releases++
	if !e.captured[id] || e.lostByEnv {
		return errors.New("no active capture")
	}
	delete(e.captured, id)
	return nil
}
