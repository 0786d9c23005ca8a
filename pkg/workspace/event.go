package workspace

import (
	"fmt"

	"github.com/matzehuels/deck/pkg/arrange"
)

// EventKind names a change to the workspace.
type EventKind uint8

// Event kinds.
const (
	EventAdded EventKind = iota + 1
	EventRemoved
	EventMoved
	EventResized
	EventFocused
	EventBlurred
	EventMaximized
	EventRestored
	EventClosed
	EventTitleChanged
	EventDragStart
	EventDragMove
	EventDragEnd
	EventResizeStart
	EventResizeEnd
	EventModeChanged
	EventReordered
	EventSynced
	EventViewportChanged
)

var eventNames = map[EventKind]string{
	EventAdded:           "added",
	EventRemoved:         "removed",
	EventMoved:           "moved",
	EventResized:         "resized",
	EventFocused:         "focused",
	EventBlurred:         "blurred",
	EventMaximized:       "maximized",
	EventRestored:        "restored",
	EventClosed:          "closed",
	EventTitleChanged:    "title-changed",
	EventDragStart:       "drag-start",
	EventDragMove:        "drag-move",
	EventDragEnd:         "drag-end",
	EventResizeStart:     "resize-start",
	EventResizeEnd:       "resize-end",
	EventModeChanged:     "mode-changed",
	EventReordered:       "reordered",
	EventSynced:          "synced",
	EventViewportChanged: "viewport-changed",
}

func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return fmt.Sprintf("event(%d)", uint8(k))
}

// Event describes one change. CardID is empty for workspace-wide events.
type Event struct {
	Kind   EventKind
	CardID string
	// Mode is the arrangement mode after the change.
	Mode arrange.Mode
}

func (e Event) String() string {
	if e.CardID == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ":" + e.CardID
}
