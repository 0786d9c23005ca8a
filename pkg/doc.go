// Package pkg provides the libraries of the Deck card workspace engine.
//
// # Overview
//
// The Deck arranges content panels ("cards") on a bounded workspace. Users
// drag cards by their headers, resize them from eight handles, snap them to
// each other and to the workspace edges, and switch between free positioning
// and managed arrangements. The pkg directory is layered bottom-up:
//
//  1. [geom] - Rectangles, clamping and handle resize math
//  2. [card] - The card record, card types and their sizing
//  3. [snap], [arrange], [focus], [reorder] - Pure engines over card sets
//  4. [gesture] - Drag and resize state machines with scoped pointer capture
//  5. [workspace] - The mutable store and input dispatch tying it together
//  6. [io] - JSON workspace documents
//
// Supporting packages: [errors] for structured error codes, [observability]
// for instrumentation hooks and [buildinfo] for version data.
//
// # Architecture
//
// Input flows one way:
//
//	host pointer / key events
//	         ↓
//	    [workspace] dispatch (header, handle, body, control)
//	         ↓
//	    [gesture] controllers ── [snap] engine
//	         ↓
//	    [workspace] store ── [focus] z-order, [reorder] sequence
//	         ↓
//	    [arrange] transforms → host renders
//
// # Quick Start
//
//	ws := workspace.New(workspace.DefaultOptions())
//	_ = ws.SetViewport(1600, 1000)
//	_ = ws.Add(card.Card{ID: "chat-1", Type: card.TypeChat})
//
//	ws.PointerDown(workspace.Target{Kind: workspace.TargetHeader, CardID: "chat-1"}, ev)
//	ws.PointerMove(ev2)
//	ws.PointerUp(ev2)
//
//	for _, t := range ws.Layout() {
//	    draw(t.ID, t.Frame, t.Offset, t.Scale, t.Opacity, t.ZIndex)
//	}
//
// [geom]: github.com/matzehuels/deck/pkg/geom
// [card]: github.com/matzehuels/deck/pkg/card
// [snap]: github.com/matzehuels/deck/pkg/snap
// [arrange]: github.com/matzehuels/deck/pkg/arrange
// [focus]: github.com/matzehuels/deck/pkg/focus
// [reorder]: github.com/matzehuels/deck/pkg/reorder
// [gesture]: github.com/matzehuels/deck/pkg/gesture
// [workspace]: github.com/matzehuels/deck/pkg/workspace
// [io]: github.com/matzehuels/deck/pkg/io
// [errors]: github.com/matzehuels/deck/pkg/errors
// [observability]: github.com/matzehuels/deck/pkg/observability
// [buildinfo]: github.com/matzehuels/deck/pkg/buildinfo
package pkg
