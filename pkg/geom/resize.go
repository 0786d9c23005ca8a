package geom

import (
	"fmt"
	"math"
)

// Handle identifies one of the eight resize grips on a card.
type Handle uint8

// Resize handles. Corner handles combine the two edge rules.
const (
	HandleN Handle = iota + 1
	HandleS
	HandleE
	HandleW
	HandleNE
	HandleNW
	HandleSE
	HandleSW
)

var handleNames = map[Handle]string{
	HandleN: "n", HandleS: "s", HandleE: "e", HandleW: "w",
	HandleNE: "ne", HandleNW: "nw", HandleSE: "se", HandleSW: "sw",
}

// Handles lists every resize handle.
var Handles = []Handle{HandleN, HandleS, HandleE, HandleW, HandleNE, HandleNW, HandleSE, HandleSW}

func (h Handle) String() string {
	if s, ok := handleNames[h]; ok {
		return s
	}
	return fmt.Sprintf("handle(%d)", uint8(h))
}

// ParseHandle maps "n", "se", ... to a Handle.
func ParseHandle(s string) (Handle, bool) {
	for h, name := range handleNames {
		if name == s {
			return h, true
		}
	}
	return 0, false
}

// HasNorth reports whether the handle moves the top edge.
func (h Handle) HasNorth() bool { return h == HandleN || h == HandleNE || h == HandleNW }

// HasSouth reports whether the handle moves the bottom edge.
func (h Handle) HasSouth() bool { return h == HandleS || h == HandleSE || h == HandleSW }

// HasEast reports whether the handle moves the right edge.
func (h Handle) HasEast() bool { return h == HandleE || h == HandleNE || h == HandleSE }

// HasWest reports whether the handle moves the left edge.
func (h Handle) HasWest() bool { return h == HandleW || h == HandleNW || h == HandleSW }

// Resize applies a pointer delta to origin through handle h.
//
// East and south deltas grow or shrink the size from the fixed left or top
// edge. West and north deltas move the origin while the opposite edge stays
// put; the delta is clamped to size-min so the dimension never drops below
// the minimum. Moving edges also stop at the area bounds when area is
// non-empty.
func Resize(origin Rect, h Handle, dx, dy float64, min Size, area Rect) Rect {
	r := origin
	bounded := area.Width > 0 && area.Height > 0

	switch {
	case h.HasEast():
		w := origin.Width + dx
		if bounded {
			w = math.Min(w, area.Right()-origin.X)
		}
		r.Width = math.Max(w, min.W)
	case h.HasWest():
		d := math.Min(dx, origin.Width-min.W)
		if bounded {
			d = math.Max(d, area.X-origin.X)
		}
		r.X = origin.X + d
		r.Width = origin.Width - d
	}

	switch {
	case h.HasSouth():
		ht := origin.Height + dy
		if bounded {
			ht = math.Min(ht, area.Bottom()-origin.Y)
		}
		r.Height = math.Max(ht, min.H)
	case h.HasNorth():
		d := math.Min(dy, origin.Height-min.H)
		if bounded {
			d = math.Max(d, area.Y-origin.Y)
		}
		r.Y = origin.Y + d
		r.Height = origin.Height - d
	}

	return r
}
