package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/deck/internal/config"
	"github.com/matzehuels/deck/pkg/arrange"
	"github.com/matzehuels/deck/pkg/card"
	"github.com/matzehuels/deck/pkg/geom"
	"github.com/matzehuels/deck/pkg/workspace"
)

// newTestModel returns a 100x40 cell model; with 8x16 cells the viewport is
// 800x608 pixels and the padded area spans 16..784 by 16..592.
func newTestModel(t *testing.T, cards ...card.Card) deckModel {
	t.Helper()
	ws := workspace.New(workspace.DefaultOptions())
	for _, c := range cards {
		if err := ws.Add(c); err != nil {
			t.Fatalf("Add(%s): %v", c.ID, err)
		}
	}
	m := newDeckModel(ws, config.TUIConfig{CellWidth: 8, CellHeight: 16}, "")
	m.newID = func() string { return "0123456789abcdef" }
	return send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func send(m deckModel, msgs ...tea.Msg) deckModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(deckModel)
	}
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

// notes sits at cells 12..61 by 11..30 of the canvas.
func notesCard() card.Card {
	return card.Card{
		ID: "notes", Type: card.TypeNotes, Title: "Notes",
		Rect: geom.Rect{X: 96, Y: 176, Width: 400, Height: 320},
	}
}

func TestModelWindowSize(t *testing.T) {
	m := newTestModel(t)
	vp := m.ws.Bounds().Viewport
	if vp.W != 800 || vp.H != 608 {
		t.Errorf("viewport = %+v, want 800x608", vp)
	}
}

func TestModelKeys(t *testing.T) {
	m := newTestModel(t)

	m = send(m, runeKey("n"), runeKey("n"))
	if got := m.ws.Order(); len(got) != 2 || got[0] != "chat-01234567" || got[1] != "terminal-01234567" {
		t.Fatalf("order = %v", got)
	}
	if m.ws.Focused() != "terminal-01234567" {
		t.Errorf("focused = %q, want the newest card", m.ws.Focused())
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ws.Focused() != "chat-01234567" {
		t.Errorf("tab should wrap to the first card, focused = %q", m.ws.Focused())
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEnd})
	if m.ws.Focused() != "terminal-01234567" {
		t.Errorf("end should focus the last card, focused = %q", m.ws.Focused())
	}

	m = send(m, runeKey("m"))
	if m.ws.Mode() != arrange.ModeStack {
		t.Errorf("m from free should enter stack, got %v", m.ws.Mode())
	}
	m = send(m, runeKey("m"))
	if m.ws.Mode() != arrange.ModeSplit {
		t.Errorf("second m should enter split, got %v", m.ws.Mode())
	}
	m = send(m, runeKey("f"))
	if m.ws.Mode() != arrange.ModeFree {
		t.Errorf("f should return to free, got %v", m.ws.Mode())
	}

	m = send(m, runeKey("z"))
	if c, _ := m.ws.Card("terminal-01234567"); !c.Maximized {
		t.Error("z should maximize the focused card")
	}

	m = send(m, runeKey("x"))
	if m.ws.Len() != 1 || !m.ws.Closed("terminal-01234567") {
		t.Error("x should close the focused card")
	}
	if m.ws.Focused() != "" {
		t.Errorf("close should leave no focus, got %q", m.ws.Focused())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModelDragMovesCard(t *testing.T) {
	m := newTestModel(t, notesCard())

	// screen rows are offset by the title bar
	m = send(m, mouse(tea.MouseActionPress, 20, 12))
	if m.ws.Dragging() != "notes" {
		t.Fatalf("press on header should start a drag, dragging = %q", m.ws.Dragging())
	}
	m = send(m,
		mouse(tea.MouseActionMotion, 30, 17),
		mouse(tea.MouseActionRelease, 30, 17),
	)

	c, _ := m.ws.Card("notes")
	if c.X != 176 || c.Y != 256 {
		t.Errorf("position = %v,%v, want 176,256", c.X, c.Y)
	}
	if m.ws.Dragging() != "" || m.pressed {
		t.Error("release should end the drag")
	}
}

func TestModelResizeFromCorner(t *testing.T) {
	m := newTestModel(t, notesCard())

	m = send(m,
		mouse(tea.MouseActionPress, 61, 31),
		mouse(tea.MouseActionMotion, 71, 36),
		mouse(tea.MouseActionRelease, 71, 36),
	)

	c, _ := m.ws.Card("notes")
	if c.Width != 480 || c.Height != 400 {
		t.Errorf("size = %vx%v, want 480x400", c.Width, c.Height)
	}
	if c.X != 96 || c.Y != 176 {
		t.Errorf("south-east resize moved the origin to %v,%v", c.X, c.Y)
	}
}

func TestModelHeaderControls(t *testing.T) {
	m := newTestModel(t, notesCard())

	m = send(m, mouse(tea.MouseActionPress, 57, 12), mouse(tea.MouseActionRelease, 57, 12))
	if c, _ := m.ws.Card("notes"); !c.Maximized {
		t.Fatal("maximize control should maximize")
	}
	if m.ws.Dragging() != "" {
		t.Error("controls never start a drag")
	}

	// maximized to the area: cells 2..97 by 1..36
	m = send(m, mouse(tea.MouseActionPress, 95, 2))
	if m.ws.Len() != 0 {
		t.Error("close control should close the card")
	}
}

func TestModelIgnoresOtherButtons(t *testing.T) {
	m := newTestModel(t, notesCard())
	m = send(m, tea.MouseMsg{X: 20, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if m.pressed || m.ws.Dragging() != "" {
		t.Error("right button should not start a gesture")
	}
}

func TestModelEscCancelsDrag(t *testing.T) {
	m := newTestModel(t, notesCard())
	m = send(m,
		mouse(tea.MouseActionPress, 20, 12),
		mouse(tea.MouseActionMotion, 30, 17),
		tea.KeyMsg{Type: tea.KeyEsc},
	)
	if m.ws.Dragging() != "" || m.pressed {
		t.Error("esc should cancel the drag")
	}
}

func TestHitTest(t *testing.T) {
	m := newTestModel(t, notesCard())

	tests := []struct {
		name    string
		col     int
		row     int
		kind    workspace.TargetKind
		handle  geom.Handle
		control controlKind
	}{
		{"background", 5, 5, workspace.TargetWorkspace, 0, controlNone},
		{"header", 20, 11, workspace.TargetHeader, 0, controlNone},
		{"body", 30, 20, workspace.TargetBody, 0, controlNone},
		{"maximize", 57, 11, workspace.TargetControl, 0, controlMaximize},
		{"close", 59, 11, workspace.TargetControl, 0, controlClose},
		{"south-east", 61, 30, workspace.TargetHandle, geom.HandleSE, controlNone},
		{"north-west", 12, 11, workspace.TargetHandle, geom.HandleNW, controlNone},
		{"west", 12, 20, workspace.TargetHandle, geom.HandleW, controlNone},
		{"south", 30, 30, workspace.TargetHandle, geom.HandleS, controlNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := m.hitTest(tt.col, tt.row)
			if h.target.Kind != tt.kind || h.target.Handle != tt.handle || h.control != tt.control {
				t.Errorf("hitTest(%d,%d) = %+v", tt.col, tt.row, h)
			}
		})
	}
}

func TestHitTestManagedHasNoHandles(t *testing.T) {
	m := newTestModel(t, notesCard())
	m.ws.SetArrangementMode(arrange.ModeGrid)

	h := m.hitTest(97, 36)
	if h.target.Kind == workspace.TargetHandle {
		t.Errorf("managed modes should not expose resize handles, got %+v", h)
	}
}

func TestVisualRect(t *testing.T) {
	tr := arrange.Transform{
		Frame:  geom.Rect{X: 0, Y: 0, Width: 100, Height: 100},
		Scale:  0.5,
		Offset: geom.Point{Y: 10},
	}
	got := visualRect(tr)
	want := geom.Rect{X: 25, Y: 35, Width: 50, Height: 50}
	if got != want {
		t.Errorf("visualRect() = %+v, want %+v", got, want)
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t, notesCard())
	view := m.View()

	if lines := strings.Count(view, "\n") + 1; lines != 40 {
		t.Errorf("view has %d lines, want 40", lines)
	}
	for _, want := range []string{"deck", "free", "1 cards", "Notes", "notes", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := newDeckModel(workspace.New(workspace.DefaultOptions()), config.TUIConfig{}, "")
	if m.View() != "" {
		t.Error("view should be empty until the terminal size is known")
	}
	if m.cellW != 8 || m.cellH != 16 {
		t.Errorf("cell size = %vx%v, want the 8x16 fallback", m.cellW, m.cellH)
	}
}

func TestCanvasFrame(t *testing.T) {
	cv := newCanvas(4, 2)
	cv.frame(box{c0: 0, r0: 0, c1: 3, r1: 1}, cellBorder)
	if got, want := cv.render(), "╭──╮\n╰──╯"; got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestCanvasClipsOutOfRange(t *testing.T) {
	cv := newCanvas(2, 1)
	cv.set(-1, 0, 'x', cellText)
	cv.set(5, 0, 'x', cellText)
	cv.text(0, 0, "abc", cellText, 10)
	if got := cv.render(); got != "ab" {
		t.Errorf("render() = %q, want %q", got, "ab")
	}
}
