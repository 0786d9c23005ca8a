package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/deck/internal/server"
	"github.com/matzehuels/deck/pkg/arrange"
	"github.com/matzehuels/deck/pkg/errors"
)

const sampleWorkspace = "../../examples/workspace.json"

// execute runs the root command with args and returns everything printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&buf)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestArrangeJSON(t *testing.T) {
	out, err := execute(t, "arrange", sampleWorkspace, "--mode", "grid", "--json")
	if err != nil {
		t.Fatalf("arrange: %v", err)
	}

	var resp server.ArrangeResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if resp.Mode != arrange.ModeGrid {
		t.Errorf("mode = %v, want grid", resp.Mode)
	}
	if len(resp.Transforms) != 4 {
		t.Fatalf("got %d transforms, want 4", len(resp.Transforms))
	}
	// 1568 wide area, two columns, 12 gap
	if got := resp.Transforms[0].Frame.Width; got != 778 {
		t.Errorf("cell width = %v, want 778", got)
	}
	if resp.Focused != "chat-1" {
		t.Errorf("focused = %q, want chat-1", resp.Focused)
	}
}

func TestArrangeTable(t *testing.T) {
	out, err := execute(t, "arrange", sampleWorkspace)
	if err != nil {
		t.Fatalf("arrange: %v", err)
	}
	for _, want := range []string{"chat-1", "term-1", "notes-1", "agent-1", "free", "cards", "Try another mode"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestArrangeViewportOverride(t *testing.T) {
	out, err := execute(t, "arrange", sampleWorkspace, "--width", "800", "--height", "600", "--json")
	if err != nil {
		t.Fatalf("arrange: %v", err)
	}
	var resp server.ArrangeResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Area.Width != 768 || resp.Area.Height != 568 {
		t.Errorf("area = %+v, want 768x568", resp.Area)
	}
	for _, tr := range resp.Transforms {
		if tr.Frame.Right() > 784 || tr.Frame.Bottom() > 584 {
			t.Errorf("%s frame %+v escapes the area", tr.ID, tr.Frame)
		}
	}
}

func TestArrangeConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.toml")
	if err := os.WriteFile(path, []byte("[arrange]\ngap = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "--config", path, "arrange", sampleWorkspace, "--mode", "grid", "--json")
	if err != nil {
		t.Fatalf("arrange: %v", err)
	}
	var resp server.ArrangeResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatal(err)
	}
	if got := resp.Transforms[0].Frame.Width; got != 784 {
		t.Errorf("cell width = %v, want 784", got)
	}
}

func TestArrangeErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown mode", []string{"arrange", sampleWorkspace, "--mode", "tiles"}, errors.ErrCodeInvalidMode},
		{"missing file", []string{"arrange", "does-not-exist.json"}, errors.ErrCodeFileNotFound},
		{"bad viewport", []string{"arrange", sampleWorkspace, "--width=-5"}, errors.ErrCodeInvalidViewport},
		{"unknown card", []string{"snap", sampleWorkspace, "--card", "ghost"}, errors.ErrCodeCardNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestSnapJSON(t *testing.T) {
	out, err := execute(t, "snap", sampleWorkspace, "--card", "term-1", "--x", "524", "--y", "45", "--json")
	if err != nil {
		t.Fatalf("snap: %v", err)
	}
	var resp server.SnapResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if !resp.Snapped {
		t.Fatal("expected a snap")
	}
	// chat-1 spans x 40..520 at y 40
	if resp.Position.X != 520 || resp.Position.Y != 40 {
		t.Errorf("position = %+v, want 520,40", resp.Position)
	}
	if len(resp.Guides) != 2 {
		t.Errorf("got %d guides, want 2", len(resp.Guides))
	}
}

func TestSnapHuman(t *testing.T) {
	out, err := execute(t, "snap", sampleWorkspace, "--card", "term-1", "--x", "524", "--y", "45")
	if err != nil {
		t.Fatalf("snap: %v", err)
	}
	if !strings.Contains(out, "snaps to") || !strings.Contains(out, "vertical guide at 520") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSnapWarnsInManagedMode(t *testing.T) {
	data, err := os.ReadFile(sampleWorkspace)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "grid.json")
	grid := strings.Replace(string(data), `"mode": "free"`, `"mode": "grid"`, 1)
	if err := os.WriteFile(path, []byte(grid), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "snap", path, "--card", "term-1", "--x", "524", "--y", "45")
	if err != nil {
		t.Fatalf("snap: %v", err)
	}
	if !strings.Contains(out, "grid mode arranges cards") {
		t.Errorf("missing managed mode warning:\n%s", out)
	}

	out, err = execute(t, "snap", sampleWorkspace, "--card", "term-1", "--x", "524", "--y", "45")
	if err != nil {
		t.Fatalf("snap: %v", err)
	}
	if strings.Contains(out, "arranges cards") {
		t.Errorf("free mode should not warn:\n%s", out)
	}
}

func TestSnapRequiresCard(t *testing.T) {
	if _, err := execute(t, "snap", sampleWorkspace); err == nil {
		t.Error("snap without --card should fail")
	}
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "deck") {
		t.Error("bash completion should mention the command name")
	}
}

func TestCompleteModes(t *testing.T) {
	modes, _ := completeModes(nil, nil, "")
	want := []string{"free", "stack", "split", "focus", "grid"}
	if strings.Join(modes, ",") != strings.Join(want, ",") {
		t.Errorf("completeModes() = %v, want %v", modes, want)
	}
}

func TestResizeViewportKeepsUnsetAxis(t *testing.T) {
	c := New(io.Discard, LogInfo)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	ws, err := c.openWorkspace(sampleWorkspace, c.Logger)
	if err != nil {
		t.Fatal(err)
	}
	if err := resizeViewport(ws, 1200, 0); err != nil {
		t.Fatal(err)
	}
	vp := ws.Bounds().Viewport
	if vp.W != 1200 || vp.H != 1000 {
		t.Errorf("viewport = %+v, want 1200x1000", vp)
	}
}
