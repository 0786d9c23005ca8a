package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/deck/pkg/arrange"
	"github.com/matzehuels/deck/pkg/card"
	"github.com/matzehuels/deck/pkg/errors"
	"github.com/matzehuels/deck/pkg/workspace"
)

const sample = `{
  "viewport": {"width": 1600, "height": 1000},
  "padding": {"top": 16, "right": 16, "bottom": 16, "left": 16},
  "mode": "Split",
  "focused": "t",
  "cards": [
    {"id": "c", "type": "chat", "title": "Planning", "x": 40, "y": 40, "width": 480, "height": 640,
     "payload": {"kind": "chat", "session_id": "s-1", "model": "m"}},
    {"id": "t", "type": "terminal", "x": 560, "y": 40, "width": 640, "height": 420,
     "snapped_to": "top-right", "payload": {"kind": "terminal", "session_id": "s-2", "cwd": "/tmp"}},
    {"id": "v", "type": "video-studio", "payload": {"kind": "video-studio", "prompt": "waves"}},
    {"id": "w", "type": "whiteboard", "payload": {"kind": "whiteboard", "strokes": 3}}
  ]
}`

func TestReadJSON(t *testing.T) {
	doc, err := ReadJSON(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if doc.Mode != arrange.ModeSplit || doc.Focused != "t" || len(doc.Cards) != 4 {
		t.Fatalf("doc = mode %v focused %q cards %d", doc.Mode, doc.Focused, len(doc.Cards))
	}
	if doc.Viewport.W != 1600 || doc.Padding.Left != 16 {
		t.Errorf("bounds = %+v", doc.Bounds())
	}

	chat, ok := doc.Cards[0].Data.(*card.ChatPayload)
	if !ok || chat.SessionID != "s-1" || chat.Model != "m" {
		t.Errorf("chat payload = %#v", doc.Cards[0].Data)
	}
	if got := doc.Cards[1].SnappedTo; !got.Has(card.SnapTop | card.SnapRight) {
		t.Errorf("snapped_to = %v, want top-right", got)
	}
	studio, ok := doc.Cards[2].Data.(*card.StudioPayload)
	if !ok || studio.CardType() != card.TypeVideoStudio || studio.Prompt != "waves" {
		t.Errorf("studio payload = %#v", doc.Cards[2].Data)
	}
	opaque, ok := doc.Cards[3].Data.(*card.OpaquePayload)
	if !ok || opaque.Kind != "whiteboard" || opaque.Fields["strokes"] != float64(3) {
		t.Errorf("opaque payload = %#v", doc.Cards[3].Data)
	}
	if _, has := opaque.Fields["kind"]; has {
		t.Error("opaque fields kept the kind tag")
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	doc, err := ReadJSON(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	again, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if len(again.Cards) != len(doc.Cards) || again.Mode != doc.Mode {
		t.Fatalf("round trip lost data: %+v", again)
	}
	for i := range doc.Cards {
		a, b := doc.Cards[i], again.Cards[i]
		if a.ID != b.ID || a.Rect != b.Rect || a.SnappedTo != b.SnappedTo || a.Data.CardType() != b.Data.CardType() {
			t.Errorf("card %d: %+v != %+v", i, a, b)
		}
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"malformed", `{"cards": [`, errors.ErrCodeInvalidFormat},
		{"bad mode", `{"mode": "tiles", "cards": []}`, errors.ErrCodeInvalidMode},
		{"payload without kind", `{"cards": [{"id": "a", "type": "chat", "payload": {}}]}`, errors.ErrCodeInvalidFormat},
		{"empty id", `{"cards": [{"id": "", "type": "chat"}]}`, errors.ErrCodeInvalidCardID},
		{"negative viewport", `{"viewport": {"width": -5, "height": 10}, "cards": []}`, errors.ErrCodeInvalidViewport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestExportImport(t *testing.T) {
	doc, err := ReadJSON(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "ws.json")
	if err := ExportJSON(doc, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if _, err := ImportJSON(path); err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
}

func TestDocumentLoad(t *testing.T) {
	doc, err := ReadJSON(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	ws, err := doc.Load(workspace.DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ws.Mode() != arrange.ModeSplit || ws.Focused() != "t" || ws.Len() != 4 {
		t.Errorf("workspace = mode %v focused %q len %d", ws.Mode(), ws.Focused(), ws.Len())
	}
	v, _ := ws.Card("v")
	if v.Width != 720 || v.Height != 640 {
		t.Errorf("unsized studio card = %vx%v, want default 720x640", v.Width, v.Height)
	}

	back := FromWorkspace(ws)
	if back.Focused != "t" || len(back.Cards) != 4 || back.Viewport != doc.Viewport {
		t.Errorf("FromWorkspace = %+v", back)
	}
}
