// Package snap aligns a dragged card to nearby lines.
//
// Three kinds of line attract a card edge: the edges of the workspace area,
// the lines of a coordinate grid, and the edges of the other visible cards.
// [Compute] looks at each axis independently. When an edge of the moving
// rectangle lies within [Config.Threshold] pixels of a line, the rectangle is
// shifted so the edge sits exactly on the line and a [Guide] is emitted for
// visual feedback. When nothing is close enough the position is returned
// untouched with no guides.
//
// Only the nearest line per axis wins, so a result carries at most one
// vertical and one horizontal guide. At equal distance a card edge beats a
// workspace edge, which beats a grid line.
package snap
