// Package workspace is the mutable card store of the Deck and the entry point
// for interaction events.
//
// A [Workspace] owns the card collection, the display order, the focused card,
// the arrangement mode and the workspace bounds. It is mutated only through its
// methods; readers take copies with [Workspace.Snapshot] or [Workspace.Card]
// and follow changes with [Workspace.Subscribe].
//
// # Operations
//
// Per card: [Workspace.Move], [Workspace.Resize], [Workspace.Focus],
// [Workspace.MaximizeToggle], [Workspace.Close], [Workspace.DragEnd],
// [Workspace.ResizeEnd] and [Workspace.TitleChange]. Workspace-wide:
// [Workspace.SetArrangementMode], [Workspace.CycleArrangementMode] and
// [Workspace.Reorder]. Cards enter through [Workspace.Add] or, when an external
// store is the source of truth, [Workspace.Sync].
//
// Operations correct rather than fail. Geometry is clamped to the type's
// minimum size and the padded workspace area, unknown or closed ids are
// ignored, and a reorder that does not name exactly the current cards is
// dropped.
//
// # Input
//
// Hosts forward raw pointer and keyboard events:
//
//	ws.PointerDown(workspace.Target{Kind: workspace.TargetHeader, CardID: id, Element: el}, ev)
//	ws.PointerMove(ev)
//	ws.PointerUp(ev)
//
// The workspace routes them to its drag, resize and reorder controllers. At
// most one drag and one resize are active at once, and a pointer-down on a
// resize handle never also starts a drag.
//
// # Concurrency
//
// A Workspace is not safe for concurrent use. Hosts deliver events from a
// single goroutine, typically their UI event loop. Subscribers are called
// synchronously on that goroutine after each mutation.
package workspace
