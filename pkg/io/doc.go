// Package io provides JSON import and export for Deck workspaces.
//
// # Overview
//
// A workspace file records everything needed to rebuild a card layout: the
// viewport, the padding, the arrangement mode, the focused card and the
// cards themselves. The CLI reads these files for the arrange and snap
// commands and for the terminal workspace, and the layout service accepts
// the same shape in request bodies.
//
// # JSON Format
//
//	{
//	  "viewport": {"width": 1600, "height": 1000},
//	  "padding": {"top": 16, "right": 16, "bottom": 16, "left": 16},
//	  "mode": "stack",
//	  "focused": "chat-1",
//	  "cards": [
//	    {
//	      "id": "chat-1",
//	      "type": "chat",
//	      "title": "Planning",
//	      "x": 40, "y": 40, "width": 480, "height": 640,
//	      "z_index": 2,
//	      "payload": {"kind": "chat", "session_id": "s-1"}
//	    }
//	  ]
//	}
//
// # Card Fields
//
// Required:
//   - id: Unique string identifier
//   - type: Card type; unknown types get fallback sizing
//
// Optional:
//   - title, x, y, width, height, z_index
//   - maximized and restore: restore holds the geometry to return to
//   - snapped_to: workspace edges such as "top-left"
//   - payload: content data tagged with its "kind"
//
// Geometry may be omitted: a workspace assigns default sizes and cascade
// positions when the document is loaded.
//
// # Payloads
//
// Chat, terminal, subagent, project and studio payloads decode into their
// [card] structs. Every other kind decodes into a [card.OpaquePayload] that
// keeps its fields, so documents survive a read and write unchanged.
//
// # Import
//
// Use [ImportJSON] to read a document from a file path, or [ReadJSON] to read
// from any io.Reader. [Document.Load] builds a [workspace.Workspace] from it.
//
// # Export
//
// Use [ExportJSON] or [WriteJSON]. [FromWorkspace] captures the current state
// of a workspace as a document.
package io
