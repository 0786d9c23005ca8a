// Package gesture turns pointer event sequences into card geometry updates.
//
// Two controllers are provided. [Drag] moves a card by its header and
// [Resize] changes its size through one of eight edge and corner handles.
// Both follow the same life cycle:
//
//	idle --Begin--> active --Move*--> active --End|Cancel--> idle
//
// A controller never owns card state. It reads a snapshot of the card at
// Begin and writes through a sink interface, which the workspace implements.
//
// # Pointer capture
//
// Free-position drags and all resizes hold exclusive pointer capture on the
// element that started them. [Capture] wraps the host's capture calls so that
// release happens exactly once on every exit path and never fails, even if
// the host already dropped the capture on its own. Layout-managed drags take
// no capture: the arranger may re-parent or transform the card mid-gesture,
// so those drags listen at workspace scope instead (see [Scope]).
package gesture
