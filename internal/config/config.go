// Package config loads the Deck configuration file.
//
// The file is TOML, read from the path given with --config or from
// $XDG_CONFIG_HOME/deck/config.toml. Every key is optional; missing keys keep
// their defaults:
//
//	[workspace]
//	padding = 16
//	mode = "free"          # free, stack, split, focus or grid
//	duplicates = "replace" # replace or reject
//
//	[snap]
//	threshold = 12
//	grid = false           # also snap to a grid_size lattice
//	grid_size = 20
//
//	[arrange]
//	stack_step = 28
//	gap = 12
//
//	[tui]
//	cell_width = 8
//	cell_height = 16
//
//	[server]
//	addr = "127.0.0.1:7420"
//
//	[cards.terminal]
//	width = 720
//	height = 480
//	min_width = 400
//	min_height = 260
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/deck/pkg/arrange"
	"github.com/matzehuels/deck/pkg/card"
	"github.com/matzehuels/deck/pkg/errors"
	"github.com/matzehuels/deck/pkg/geom"
	"github.com/matzehuels/deck/pkg/snap"
	"github.com/matzehuels/deck/pkg/workspace"
)

// Config is the full configuration.
type Config struct {
	Workspace WorkspaceConfig     `toml:"workspace"`
	Snap      snap.Config         `toml:"snap"`
	Arrange   arrange.Options     `toml:"arrange"`
	TUI       TUIConfig           `toml:"tui"`
	Server    ServerConfig        `toml:"server"`
	Cards     map[string]CardSize `toml:"cards"`

	// Path is the file the configuration was read from, or "" for defaults.
	Path string `toml:"-"`
	// Undecoded lists keys present in the file that no field consumed.
	Undecoded []string `toml:"-"`
}

// WorkspaceConfig holds workspace defaults.
type WorkspaceConfig struct {
	Padding    float64 `toml:"padding"`
	Mode       string  `toml:"mode"`
	Duplicates string  `toml:"duplicates"`
}

// TUIConfig maps terminal cells to workspace pixels.
type TUIConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

// ServerConfig configures the layout service.
type ServerConfig struct {
	Addr            string `toml:"addr"`
	ReadTimeout     string `toml:"read_timeout"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

// CardSize overrides the sizing of one card type. Zero fields keep the
// built-in value.
type CardSize struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	MinWidth  float64 `toml:"min_width"`
	MinHeight float64 `toml:"min_height"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			Padding:    16,
			Mode:       arrange.ModeFree.String(),
			Duplicates: string(workspace.DuplicateReplace),
		},
		Snap:    snap.DefaultConfig(),
		Arrange: arrange.DefaultOptions(),
		TUI:     TUIConfig{CellWidth: 8, CellHeight: 16},
		Server: ServerConfig{
			Addr:            "127.0.0.1:7420",
			ReadTimeout:     "10s",
			ShutdownTimeout: "5s",
		},
		Cards: map[string]CardSize{},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/deck/config.toml, falling back to the
// platform's user configuration directory.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "deck", "config.toml"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "deck", "config.toml"), nil
}

// Load reads the configuration at path over the defaults and validates it.
// An empty path means [DefaultPath], where a missing file is not an error.
// A missing file at an explicit path yields FILE_NOT_FOUND.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if explicit {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
			}
			return cfg, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	cfg.Path = path
	for _, k := range md.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, k.String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid value.
func (c *Config) Validate() error {
	if c.Workspace.Padding < 0 {
		return invalid("workspace.padding cannot be negative")
	}
	if _, err := arrange.ParseMode(c.Workspace.Mode); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "workspace.mode")
	}
	switch workspace.DuplicatePolicy(c.Workspace.Duplicates) {
	case workspace.DuplicateReplace, workspace.DuplicateReject:
	default:
		return invalid("workspace.duplicates must be %q or %q, got %q",
			workspace.DuplicateReplace, workspace.DuplicateReject, c.Workspace.Duplicates)
	}

	if c.Snap.Threshold < 0 || c.Snap.GridSize < 0 {
		return invalid("snap.threshold and snap.grid_size cannot be negative")
	}

	a := c.Arrange
	for name, v := range map[string]float64{
		"arrange.stack_min_scale":      a.StackMinScale,
		"arrange.stack_min_opacity":    a.StackMinOpacity,
		"arrange.focus_backdrop_scale": a.FocusBackdropScale,
	} {
		if v < 0 || v > 1 {
			return invalid("%s must be between 0 and 1, got %v", name, v)
		}
	}
	if a.StackStep < 0 || a.Gap < 0 || a.StackScaleDecay < 0 || a.StackFade < 0 {
		return invalid("arrange step, gap, decay and fade cannot be negative")
	}
	if a.SplitTwoUp < 1 || a.SplitThreeUp < a.SplitTwoUp {
		return invalid("arrange.split_three_up must be at least arrange.split_two_up, which must be at least 1")
	}

	if c.TUI.CellWidth <= 0 || c.TUI.CellHeight <= 0 {
		return invalid("tui cell size must be positive")
	}

	for name, s := range map[string]string{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if s == "" {
			continue
		}
		if _, err := time.ParseDuration(s); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", name)
		}
	}

	for typ, s := range c.Cards {
		if s.Width < 0 || s.Height < 0 || s.MinWidth < 0 || s.MinHeight < 0 {
			return invalid("cards.%s sizes cannot be negative", typ)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, format, args...)
}

// Mode returns the configured default arrangement mode.
func (c *Config) Mode() arrange.Mode {
	m, _ := arrange.ParseMode(c.Workspace.Mode)
	return m
}

// Sizes returns the card size table with the configured overrides applied.
func (c *Config) Sizes() card.SizeTable {
	t := card.DefaultSizes()
	for name, o := range c.Cards {
		typ := card.Type(name)
		s := t.Lookup(typ)
		if o.Width > 0 {
			s.Default.W = o.Width
		}
		if o.Height > 0 {
			s.Default.H = o.Height
		}
		if o.MinWidth > 0 {
			s.Min.W = o.MinWidth
		}
		if o.MinHeight > 0 {
			s.Min.H = o.MinHeight
		}
		t.Override(typ, s)
	}
	return t
}

// WorkspaceOptions builds workspace options from the configuration.
func (c *Config) WorkspaceOptions(logger *log.Logger) workspace.Options {
	opts := workspace.DefaultOptions()
	opts.Bounds.Padding = geom.Uniform(c.Workspace.Padding)
	opts.Sizes = c.Sizes()
	opts.Snap = c.Snap
	opts.Arrange = c.Arrange
	opts.Mode = c.Mode()
	opts.Duplicates = workspace.DuplicatePolicy(c.Workspace.Duplicates)
	opts.Logger = logger
	return opts
}

// ReadTimeout returns the parsed server read timeout, or zero.
func (c *Config) ReadTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.ReadTimeout)
	return d
}

// ShutdownTimeout returns the parsed server shutdown timeout, or zero.
func (c *Config) ShutdownTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.ShutdownTimeout)
	return d
}
