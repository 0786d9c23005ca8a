// Package geom provides the rectangle math and size constraints used by the
// card engine.
//
// Every card rectangle that the engine stores passes through [Clamp] or
// [Resize]. Both functions correct out-of-range input silently: a width below
// the minimum is raised to the minimum, a rectangle outside the workspace is
// pulled back inside, and nothing ever returns an error.
//
// # Coordinates
//
// All values are workspace-relative pixels with the origin at the top-left
// corner. X grows to the right and Y grows downward, so a rectangle's bottom
// edge is Y+Height.
//
// # Resizing
//
// [Resize] anchors the edge opposite the dragged handle:
//
//	r := geom.Resize(origin, geom.HandleW, 200, 0, geom.Size{W: 320, H: 200}, area)
//	// origin {X: 0, W: 400} becomes {X: 80, W: 320}
//
// West and north deltas are clamped to size-minimum so the far edge never moves.
package geom
