package arrange

import (
	"math"

	"github.com/matzehuels/deck/pkg/card"
	"github.com/matzehuels/deck/pkg/geom"
)

// Options tunes the managed modes.
type Options struct {
	// StackStep is the vertical offset per index of distance from focus.
	StackStep float64 `toml:"stack_step"`
	// StackScaleDecay is subtracted from the scale per index of distance.
	StackScaleDecay float64 `toml:"stack_scale_decay"`
	StackMinScale   float64 `toml:"stack_min_scale"`
	// StackFade is subtracted from the opacity per index of distance.
	StackFade       float64 `toml:"stack_fade"`
	StackMinOpacity float64 `toml:"stack_min_opacity"`

	// SplitTwoUp and SplitThreeUp are the card counts at which split mode
	// switches to two and three lanes.
	SplitTwoUp   int `toml:"split_two_up"`
	SplitThreeUp int `toml:"split_three_up"`

	// FocusBackdropScale is the scale of non-focused cards in focus mode.
	FocusBackdropScale float64 `toml:"focus_backdrop_scale"`

	// Gap separates lanes and thumbnails.
	Gap float64 `toml:"gap"`
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		StackStep:          28,
		StackScaleDecay:    0.05,
		StackMinScale:      0.7,
		StackFade:          0.2,
		StackMinOpacity:    0.2,
		SplitTwoUp:         2,
		SplitThreeUp:       3,
		FocusBackdropScale: 0.92,
		Gap:                12,
	}
}

// Context carries everything besides the cards that an arrangement depends
// on.
type Context struct {
	Mode    Mode
	Area    geom.Rect
	Options Options
}

// Transform is the visual placement of one card.
type Transform struct {
	ID      string     `json:"id"`
	Offset  geom.Point `json:"offset"`
	Scale   float64    `json:"scale"`
	Opacity float64    `json:"opacity"`
	ZIndex  int        `json:"z_index"`
	// Frame is the rectangle the card is drawn in before Offset and Scale
	// apply.
	Frame geom.Rect `json:"frame"`
	// Managed is true when Frame comes from the arrangement rather than the
	// card's own geometry.
	Managed bool `json:"managed"`
}

// Arrange computes one Transform per card, in the order given. An unknown or
// empty focusedID is treated as "no focus": stack and focus modes then center
// on the first card.
func Arrange(ctx Context, cards []card.Card, focusedID string) []Transform {
	if len(cards) == 0 {
		return nil
	}
	focus := -1
	for i, c := range cards {
		if c.ID == focusedID {
			focus = i
			break
		}
	}

	switch ctx.Mode {
	case ModeStack:
		return stack(ctx, cards, focus)
	case ModeSplit:
		return split(ctx, cards, focus)
	case ModeFocus:
		return focusOnly(ctx, cards, focus)
	case ModeGrid:
		return grid(ctx, cards, focus)
	default:
		return free(cards)
	}
}

func free(cards []card.Card) []Transform {
	out := make([]Transform, len(cards))
	for i, c := range cards {
		out[i] = Transform{ID: c.ID, Scale: 1, Opacity: 1, ZIndex: c.ZIndex, Frame: c.Rect}
	}
	return out
}

func stack(ctx Context, cards []card.Card, focus int) []Transform {
	o := ctx.Options
	if focus < 0 {
		focus = 0
	}
	n := len(cards)
	out := make([]Transform, n)
	for i, c := range cards {
		d := i - focus
		dist := float64(abs(d))
		out[i] = Transform{
			ID:      c.ID,
			Offset:  geom.Point{Y: o.StackStep * float64(d)},
			Scale:   math.Max(o.StackMinScale, 1-o.StackScaleDecay*dist),
			Opacity: math.Max(o.StackMinOpacity, 1-o.StackFade*dist),
			ZIndex:  stackZ(n, d),
			Frame:   ctx.Area,
			Managed: true,
		}
	}
	return out
}

func split(ctx Context, cards []card.Card, focus int) []Transform {
	n := len(cards)
	cols := 1
	if n >= ctx.Options.SplitThreeUp && ctx.Options.SplitThreeUp > 0 {
		cols = 3
	} else if n >= ctx.Options.SplitTwoUp && ctx.Options.SplitTwoUp > 0 {
		cols = 2
	}
	cols = min(cols, n)
	return cells(ctx, cards, focus, cols)
}

func grid(ctx Context, cards []card.Card, focus int) []Transform {
	cols := int(math.Ceil(math.Sqrt(float64(len(cards)))))
	return cells(ctx, cards, focus, cols)
}

// cells lays cards out row-major in a uniform grid of cols columns.
func cells(ctx Context, cards []card.Card, focus, cols int) []Transform {
	n := len(cards)
	rows := (n + cols - 1) / cols
	gap := ctx.Options.Gap
	a := ctx.Area
	w := math.Max((a.Width-gap*float64(cols-1))/float64(cols), 0)
	h := math.Max((a.Height-gap*float64(rows-1))/float64(rows), 0)

	out := make([]Transform, n)
	for i, c := range cards {
		col, row := i%cols, i/cols
		z := 1
		if i == focus {
			z = 2
		}
		out[i] = Transform{
			ID:      c.ID,
			Scale:   1,
			Opacity: 1,
			ZIndex:  z,
			Frame: geom.Rect{
				X:      a.X + float64(col)*(w+gap),
				Y:      a.Y + float64(row)*(h+gap),
				Width:  w,
				Height: h,
			},
			Managed: true,
		}
	}
	return out
}

func focusOnly(ctx Context, cards []card.Card, focus int) []Transform {
	if focus < 0 {
		focus = 0
	}
	out := make([]Transform, len(cards))
	for i, c := range cards {
		t := Transform{
			ID:      c.ID,
			Scale:   ctx.Options.FocusBackdropScale,
			Opacity: 0,
			ZIndex:  1,
			Frame:   ctx.Area,
			Managed: true,
		}
		if i == focus {
			t.Scale, t.Opacity, t.ZIndex = 1, 1, 2
		}
		out[i] = t
	}
	return out
}

// stackZ ranks cards by distance from focus; at equal distance the card
// above the focused one wins.
func stackZ(n, d int) int {
	z := 2 * (n - abs(d))
	if d > 0 {
		z--
	}
	return z
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
