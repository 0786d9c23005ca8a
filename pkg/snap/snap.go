package snap

import (
	"fmt"
	"math"

	"github.com/matzehuels/deck/pkg/card"
	"github.com/matzehuels/deck/pkg/geom"
)

// DefaultThreshold is the snap distance in pixels.
const DefaultThreshold = 12

// DefaultGridSize is the spacing of the coordinate grid in pixels.
const DefaultGridSize = 20

// Orientation is the direction of a guide line.
type Orientation uint8

const (
	// Vertical guides are lines of constant x.
	Vertical Orientation = iota + 1
	// Horizontal guides are lines of constant y.
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(b []byte) error {
	for _, v := range []Orientation{Vertical, Horizontal} {
		if v.String() == string(b) {
			*o = v
			return nil
		}
	}
	return fmt.Errorf("unknown guide orientation %q", b)
}

// Source is what a guide aligned to.
type Source uint8

// Sources in tie-break priority order.
const (
	SourceCard Source = iota + 1
	SourceEdge
	SourceGrid
)

func (s Source) String() string {
	switch s {
	case SourceCard:
		return "card"
	case SourceEdge:
		return "edge"
	case SourceGrid:
		return "grid"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s Source) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Source) UnmarshalText(b []byte) error {
	for _, v := range []Source{SourceCard, SourceEdge, SourceGrid} {
		if v.String() == string(b) {
			*s = v
			return nil
		}
	}
	return fmt.Errorf("unknown guide source %q", b)
}

// Guide is an alignment line. Pos is the x of a vertical guide or the y of a
// horizontal one; Start and End bound its extent along the other axis.
type Guide struct {
	Orientation Orientation `json:"orientation"`
	Pos         float64     `json:"pos"`
	Start       float64     `json:"start"`
	End         float64     `json:"end"`
	Source      Source      `json:"source"`
}

// Config controls which lines attract and how strongly.
type Config struct {
	Threshold float64 `toml:"threshold"`
	GridSize  float64 `toml:"grid_size"`
	Edges     bool    `toml:"edges"`
	Cards     bool    `toml:"cards"`
	Grid      bool    `toml:"grid"`
}

// DefaultConfig snaps to workspace edges and other cards with the default
// threshold. Grid snapping is off; enabling it at this threshold attracts
// every position, since no point is more than half a spacing from a line.
func DefaultConfig() Config {
	return Config{
		Threshold: DefaultThreshold,
		GridSize:  DefaultGridSize,
		Edges:     true,
		Cards:     true,
	}
}

// Result is the outcome of a snap computation.
type Result struct {
	Pos    geom.Point
	Guides []Guide
	// Edges lists the workspace edges the rectangle now touches through a
	// snap. Card and grid alignment do not set it.
	Edges card.SnapEdge
}

// Snapped reports whether any axis moved.
func (r Result) Snapped() bool { return len(r.Guides) > 0 }

type line struct {
	pos        float64
	start, end float64
	source     Source
	edge       card.SnapEdge
}

type match struct {
	delta  float64
	dist   float64
	target line
	// moving edge was the far (right or bottom) one
	far bool
}

// Compute snaps moving against others and area. others should hold the
// rectangles of every other visible card; the moving card must not be among
// them. An empty area disables workspace-edge and grid snapping.
func Compute(moving geom.Rect, others []geom.Rect, area geom.Rect, cfg Config) Result {
	res := Result{Pos: moving.Origin()}
	if cfg.Threshold <= 0 {
		return res
	}
	hasArea := area.Width > 0 && area.Height > 0

	var xs, ys []line
	if cfg.Cards {
		for _, o := range others {
			if o.Width <= 0 || o.Height <= 0 {
				continue
			}
			xs = append(xs,
				line{pos: o.X, start: o.Y, end: o.Bottom(), source: SourceCard},
				line{pos: o.Right(), start: o.Y, end: o.Bottom(), source: SourceCard})
			ys = append(ys,
				line{pos: o.Y, start: o.X, end: o.Right(), source: SourceCard},
				line{pos: o.Bottom(), start: o.X, end: o.Right(), source: SourceCard})
		}
	}
	if cfg.Edges && hasArea {
		xs = append(xs,
			line{pos: area.X, start: area.Y, end: area.Bottom(), source: SourceEdge, edge: card.SnapLeft},
			line{pos: area.Right(), start: area.Y, end: area.Bottom(), source: SourceEdge, edge: card.SnapRight})
		ys = append(ys,
			line{pos: area.Y, start: area.X, end: area.Right(), source: SourceEdge, edge: card.SnapTop},
			line{pos: area.Bottom(), start: area.X, end: area.Right(), source: SourceEdge, edge: card.SnapBottom})
	}
	if cfg.Grid && cfg.GridSize > 0 && hasArea {
		for _, x := range []float64{moving.X, moving.Right()} {
			xs = append(xs, line{pos: gridLine(x, area.X, cfg.GridSize), start: area.Y, end: area.Bottom(), source: SourceGrid})
		}
		for _, y := range []float64{moving.Y, moving.Bottom()} {
			ys = append(ys, line{pos: gridLine(y, area.Y, cfg.GridSize), start: area.X, end: area.Right(), source: SourceGrid})
		}
	}

	mx, okX := nearest(moving.X, moving.Right(), xs, cfg.Threshold)
	my, okY := nearest(moving.Y, moving.Bottom(), ys, cfg.Threshold)

	snapped := moving
	if okX {
		snapped.X += mx.delta
	}
	if okY {
		snapped.Y += my.delta
	}
	res.Pos = snapped.Origin()

	if okX {
		g := Guide{Orientation: Vertical, Pos: mx.target.pos, Start: mx.target.start, End: mx.target.end, Source: mx.target.source}
		if mx.target.source == SourceCard {
			g.Start = math.Min(g.Start, snapped.Y)
			g.End = math.Max(g.End, snapped.Bottom())
		}
		res.Guides = append(res.Guides, g)
		res.Edges |= edgeFor(mx, card.SnapLeft, card.SnapRight)
	}
	if okY {
		g := Guide{Orientation: Horizontal, Pos: my.target.pos, Start: my.target.start, End: my.target.end, Source: my.target.source}
		if my.target.source == SourceCard {
			g.Start = math.Min(g.Start, snapped.X)
			g.End = math.Max(g.End, snapped.Right())
		}
		res.Guides = append(res.Guides, g)
		res.Edges |= edgeFor(my, card.SnapTop, card.SnapBottom)
	}
	return res
}

// edgeFor returns the workspace edge matched only when the near moving edge
// met the near area edge (or far met far).
func edgeFor(m match, near, far card.SnapEdge) card.SnapEdge {
	switch {
	case m.target.edge == near && !m.far:
		return near
	case m.target.edge == far && m.far:
		return far
	}
	return 0
}

func nearest(lo, hi float64, lines []line, threshold float64) (match, bool) {
	var best match
	found := false
	for _, l := range lines {
		for _, e := range []struct {
			pos float64
			far bool
		}{{lo, false}, {hi, true}} {
			d := l.pos - e.pos
			dist := math.Abs(d)
			if dist > threshold {
				continue
			}
			if !found || dist < best.dist || (dist == best.dist && l.source < best.target.source) {
				best = match{delta: d, dist: dist, target: l, far: e.far}
				found = true
			}
		}
	}
	return best, found
}

func gridLine(v, origin, size float64) float64 {
	return origin + math.Round((v-origin)/size)*size
}
