package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/matzehuels/deck/pkg/arrange"
	"github.com/matzehuels/deck/pkg/card"
	"github.com/matzehuels/deck/pkg/errors"
	"github.com/matzehuels/deck/pkg/geom"
	"github.com/matzehuels/deck/pkg/workspace"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[workspace]
mode = "grid"
duplicates = "reject"

[snap]
threshold = 8

[tui]
cell_width = 10

[cards.terminal]
width = 720
min_height = 260

[cards.whiteboard]
width = 900
height = 700

[bogus]
key = 1
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q", cfg.Path)
	}
	if cfg.Mode() != arrange.ModeGrid {
		t.Errorf("Mode() = %v, want grid", cfg.Mode())
	}
	if cfg.Snap.Threshold != 8 || cfg.Snap.GridSize != 20 {
		t.Errorf("snap = %+v, want threshold 8 and default grid", cfg.Snap)
	}
	if cfg.TUI.CellWidth != 10 || cfg.TUI.CellHeight != 16 {
		t.Errorf("tui = %+v", cfg.TUI)
	}
	if !slices.Contains(cfg.Undecoded, "bogus.key") {
		t.Errorf("Undecoded = %v, want bogus.key", cfg.Undecoded)
	}

	sizes := cfg.Sizes()
	if got := sizes.Lookup(card.TypeTerminal); got.Default != (geom.Size{W: 720, H: 420}) || got.Min != (geom.Size{W: 360, H: 260}) {
		t.Errorf("terminal sizing = %+v", got)
	}
	if got := sizes.Default("whiteboard"); got != (geom.Size{W: 900, H: 700}) {
		t.Errorf("whiteboard default = %+v", got)
	}

	opts := cfg.WorkspaceOptions(nil)
	if opts.Duplicates != workspace.DuplicateReject || opts.Mode != arrange.ModeGrid {
		t.Errorf("options = duplicates %q mode %v", opts.Duplicates, opts.Mode)
	}
	if opts.Bounds.Padding != geom.Uniform(16) {
		t.Errorf("padding = %+v", opts.Bounds.Padding)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(default) = %v, want defaults", err)
	}
	if cfg.Path != "" || cfg.Mode() != arrange.ModeFree {
		t.Errorf("cfg = %+v", cfg)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(explicit missing) = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadParseError(t *testing.T) {
	_, err := Load(writeConfig(t, "[workspace\nmode = "))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestDefaultPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "deck", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative padding", func(c *Config) { c.Workspace.Padding = -1 }},
		{"unknown mode", func(c *Config) { c.Workspace.Mode = "tiles" }},
		{"unknown duplicate policy", func(c *Config) { c.Workspace.Duplicates = "merge" }},
		{"negative threshold", func(c *Config) { c.Snap.Threshold = -4 }},
		{"scale above one", func(c *Config) { c.Arrange.StackMinScale = 1.5 }},
		{"split lanes out of order", func(c *Config) { c.Arrange.SplitThreeUp = 1 }},
		{"zero cell", func(c *Config) { c.TUI.CellHeight = 0 }},
		{"bad timeout", func(c *Config) { c.Server.ReadTimeout = "soon" }},
		{"negative card size", func(c *Config) { c.Cards["chat"] = CardSize{Width: -10} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestTimeouts(t *testing.T) {
	c := Default()
	if c.ReadTimeout() != 10*time.Second || c.ShutdownTimeout() != 5*time.Second {
		t.Errorf("timeouts = %v/%v", c.ReadTimeout(), c.ShutdownTimeout())
	}
}
