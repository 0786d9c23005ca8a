package arrange

import (
	"fmt"
	"testing"

	"github.com/matzehuels/deck/pkg/card"
	"github.com/matzehuels/deck/pkg/geom"
)

var area = geom.Rect{X: 0, Y: 0, Width: 1200, Height: 800}

func makeCards(n int) []card.Card {
	cards := make([]card.Card, n)
	for i := range cards {
		cards[i] = card.Card{
			ID:     fmt.Sprintf("c%d", i),
			Type:   card.TypeChat,
			Rect:   geom.Rect{X: float64(i * 10), Y: float64(i * 10), Width: 400, Height: 500},
			ZIndex: i + 1,
		}
	}
	return cards
}

func ctx(m Mode) Context {
	return Context{Mode: m, Area: area, Options: DefaultOptions()}
}

func topmost(ts []Transform) string {
	best := ts[0]
	for _, t := range ts[1:] {
		if t.ZIndex > best.ZIndex {
			best = t
		}
	}
	return best.ID
}

func TestArrangeEmpty(t *testing.T) {
	if got := Arrange(ctx(ModeStack), nil, ""); got != nil {
		t.Errorf("Arrange(nil) = %v, want nil", got)
	}
}

func TestArrangeFree(t *testing.T) {
	cards := makeCards(3)
	ts := Arrange(ctx(ModeFree), cards, "c1")
	for i, tr := range ts {
		if tr.Managed {
			t.Errorf("%s: free transform is managed", tr.ID)
		}
		if tr.Frame != cards[i].Rect || tr.ZIndex != cards[i].ZIndex {
			t.Errorf("%s: transform %+v does not mirror card", tr.ID, tr)
		}
	}
}

func TestArrangeStack(t *testing.T) {
	cards := makeCards(5)
	ts := Arrange(ctx(ModeStack), cards, "c2")
	o := DefaultOptions()

	if topmost(ts) != "c2" {
		t.Errorf("topmost = %s, want focused c2", topmost(ts))
	}
	if ts[2].Scale != 1 || ts[2].Opacity != 1 || ts[2].Offset.Y != 0 {
		t.Errorf("focused transform = %+v", ts[2])
	}
	if ts[3].Offset.Y != o.StackStep || ts[0].Offset.Y != -2*o.StackStep {
		t.Errorf("offsets = %v, %v", ts[3].Offset.Y, ts[0].Offset.Y)
	}
	if !(ts[4].Scale < ts[3].Scale && ts[3].Scale < ts[2].Scale) {
		t.Errorf("scale does not decay: %v %v %v", ts[2].Scale, ts[3].Scale, ts[4].Scale)
	}
	if !(ts[4].Opacity < ts[3].Opacity) {
		t.Errorf("opacity does not decay: %v %v", ts[3].Opacity, ts[4].Opacity)
	}

	seen := map[int]bool{}
	for _, tr := range ts {
		if seen[tr.ZIndex] {
			t.Errorf("duplicate z-index %d", tr.ZIndex)
		}
		seen[tr.ZIndex] = true
		if !tr.Managed || tr.Frame != area {
			t.Errorf("%s: stack frame = %+v managed=%v", tr.ID, tr.Frame, tr.Managed)
		}
	}
}

func TestArrangeStackFloors(t *testing.T) {
	cards := makeCards(12)
	ts := Arrange(ctx(ModeStack), cards, "c0")
	o := DefaultOptions()
	last := ts[len(ts)-1]
	if last.Scale != o.StackMinScale {
		t.Errorf("far scale = %v, want floor %v", last.Scale, o.StackMinScale)
	}
	if last.Opacity != o.StackMinOpacity {
		t.Errorf("far opacity = %v, want floor %v", last.Opacity, o.StackMinOpacity)
	}
}

func TestArrangeSplitLanes(t *testing.T) {
	gap := DefaultOptions().Gap
	tests := []struct {
		n     int
		cols  int
		width float64
	}{
		{1, 1, area.Width},
		{2, 2, (area.Width - gap) / 2},
		{3, 3, (area.Width - 2*gap) / 3},
		{6, 3, (area.Width - 2*gap) / 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d cards", tt.n), func(t *testing.T) {
			ts := Arrange(ctx(ModeSplit), makeCards(tt.n), "c0")
			for _, tr := range ts {
				if tr.Frame.Width != tt.width {
					t.Errorf("%s: lane width = %v, want %v", tr.ID, tr.Frame.Width, tt.width)
				}
				if tr.Scale != 1 || tr.Offset != (geom.Point{}) {
					t.Errorf("%s: split should not offset or scale: %+v", tr.ID, tr)
				}
			}
			if tt.n > 1 && ts[1].Frame.X <= ts[0].Frame.X {
				t.Errorf("lanes not left to right: %v, %v", ts[0].Frame.X, ts[1].Frame.X)
			}
		})
	}
}

func TestArrangeSplitElevatesFocus(t *testing.T) {
	ts := Arrange(ctx(ModeSplit), makeCards(3), "c1")
	if topmost(ts) != "c1" {
		t.Errorf("topmost = %s, want c1", topmost(ts))
	}
}

func TestArrangeFocus(t *testing.T) {
	cards := makeCards(4)
	ts := Arrange(ctx(ModeFocus), cards, "c3")
	if len(ts) != 4 {
		t.Fatalf("focus mode dropped cards: %d", len(ts))
	}
	for _, tr := range ts {
		if tr.ID == "c3" {
			if tr.Opacity != 1 || tr.Scale != 1 {
				t.Errorf("focused = %+v", tr)
			}
			continue
		}
		if tr.Opacity != 0 || tr.Scale >= 1 {
			t.Errorf("%s: background card visible: %+v", tr.ID, tr)
		}
	}
}

func TestArrangeGrid(t *testing.T) {
	ts := Arrange(ctx(ModeGrid), makeCards(5), "c4")
	first := ts[0].Frame.Size()
	for _, tr := range ts {
		if tr.Frame.Size() != first {
			t.Errorf("%s: thumbnail size %+v differs from %+v", tr.ID, tr.Frame.Size(), first)
		}
		if tr.Offset != (geom.Point{}) || tr.Scale != 1 {
			t.Errorf("%s: grid offset/scale = %+v", tr.ID, tr)
		}
	}
	// 5 cards -> 3 columns, 2 rows
	if ts[3].Frame.Y <= ts[0].Frame.Y || ts[3].Frame.X != ts[0].Frame.X {
		t.Errorf("c3 should start row 2 under c0: %+v vs %+v", ts[3].Frame, ts[0].Frame)
	}
	if topmost(ts) != "c4" {
		t.Errorf("topmost = %s, want c4", topmost(ts))
	}
}

func TestArrangeUnknownFocus(t *testing.T) {
	ts := Arrange(ctx(ModeFocus), makeCards(2), "missing")
	if ts[0].Opacity != 1 {
		t.Error("focus mode with unknown id should show the first card")
	}
}
